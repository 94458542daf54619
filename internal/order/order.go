package order

import (
	"fmt"

	"github.com/alamintokder/bazar-sodai/internal/catalog"
)

// CartLine is one item/quantity pair as submitted by the client. Name, price
// and brand/model are snapshots taken at cart time and are not re-checked
// against the live catalog.
type CartLine struct {
	ID       string                 `json:"id" binding:"required"`
	Name     catalog.LocalizedText  `json:"name"`
	Price    int64                  `json:"price"`
	Quantity int                    `json:"quantity"`
	Brand    *catalog.LocalizedText `json:"brand,omitempty"`
	Model    *catalog.LocalizedText `json:"model,omitempty"`
}

// Payload is the order submission body.
type Payload struct {
	Name    string     `json:"name" binding:"required"`
	Phone   string     `json:"phone" binding:"required"`
	Email   string     `json:"email" binding:"omitempty,email"`
	Address string     `json:"address" binding:"required"`
	Message string     `json:"message"`
	Cart    []CartLine `json:"cart"`
}

// Summary is a priced, rendered order ready for dispatch. It lives for the
// duration of one request.
type Summary struct {
	Name       string
	Phone      string
	Email      string
	Address    string
	Message    string
	Lines      []CartLine
	TotalPrice int64
	Subject    string
	Body       string
}

// ValidationError reports the first cart rule a submission violated. Line is
// the zero-based index of the offending cart line, or -1 when the violation
// concerns the cart as a whole.
type ValidationError struct {
	Rule string
	Line int
}

func (e *ValidationError) Error() string {
	if e.Line < 0 {
		return e.Rule
	}
	return fmt.Sprintf("cart line %d: %s", e.Line+1, e.Rule)
}
