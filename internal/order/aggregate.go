package order

import (
	"fmt"
	"strings"

	"github.com/alamintokder/bazar-sodai/internal/catalog"
)

// Aggregator validates submitted carts and folds them into priced, rendered
// order summaries. It has no side effects and holds no per-request state.
type Aggregator struct {
	storeName string
	locale    catalog.Locale
}

// NewAggregator creates an aggregator rendering summaries for the named store
// in the given primary locale.
func NewAggregator(storeName string, locale catalog.Locale) *Aggregator {
	return &Aggregator{
		storeName: storeName,
		locale:    locale,
	}
}

// Aggregate validates the payload and computes the order summary. Validation
// fails fast: the first violated rule is reported and nothing else is
// checked. Prices are whole-taka integers, so line totals and the grand total
// are exact.
func (a *Aggregator) Aggregate(p *Payload) (*Summary, error) {
	if len(p.Cart) == 0 {
		return nil, &ValidationError{Rule: "cart must not be empty", Line: -1}
	}
	for i := range p.Cart {
		line := &p.Cart[i]
		if line.Quantity <= 0 {
			return nil, &ValidationError{Rule: "quantity must be a positive integer", Line: i}
		}
		if line.Price < 0 {
			return nil, &ValidationError{Rule: "price must not be negative", Line: i}
		}
	}

	var total int64
	for i := range p.Cart {
		line := &p.Cart[i]
		total += line.Price * int64(line.Quantity)
	}

	summary := &Summary{
		Name:       p.Name,
		Phone:      p.Phone,
		Email:      p.Email,
		Address:    p.Address,
		Message:    p.Message,
		Lines:      p.Cart,
		TotalPrice: total,
		Subject:    fmt.Sprintf("New Order from %s", a.storeName),
	}
	summary.Body = a.renderBody(summary)

	return summary, nil
}

// renderBody produces the human-readable notification text: one block per
// cart line, then customer details, total and message.
func (a *Aggregator) renderBody(s *Summary) string {
	var b strings.Builder

	b.WriteString("New Order Received!\n\n")

	b.WriteString("Customer Details:\n")
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Phone: %s\n", s.Phone)
	fmt.Fprintf(&b, "Email: %s\n", orNA(s.Email))
	fmt.Fprintf(&b, "Address: %s\n\n", s.Address)

	b.WriteString("Order Details:\n")
	for i := range s.Lines {
		line := &s.Lines[i]
		lineTotal := line.Price * int64(line.Quantity)
		fmt.Fprintf(&b, "- %s (x%d): ৳%d\n", line.Name.In(a.locale), line.Quantity, lineTotal)
		fmt.Fprintf(&b, "  Item ID: %s\n", line.ID)
		if line.Brand != nil && !line.Brand.IsZero() {
			fmt.Fprintf(&b, "  Brand: %s\n", line.Brand.In(a.locale))
		}
		if line.Model != nil && !line.Model.IsZero() {
			fmt.Fprintf(&b, "  Model: %s\n", line.Model.In(a.locale))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total Price: ৳%d\n\n", s.TotalPrice)

	b.WriteString("Customer Message:\n")
	b.WriteString(orNA(s.Message))
	b.WriteString("\n")

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
