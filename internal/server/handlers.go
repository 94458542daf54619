package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/alamintokder/bazar-sodai/internal/catalog"
	"github.com/alamintokder/bazar-sodai/internal/dispatch"
	"github.com/alamintokder/bazar-sodai/internal/order"
)

// getCatalog returns the full catalog structure.
func (s *Server) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Catalog())
}

// getCategory resolves a category or subcategory by id.
func (s *Server) getCategory(c *gin.Context) {
	section, err := s.store.Catalog().ResolveCategory(c.Param("categoryID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, section)
}

// getProduct resolves an item by (categoryID, productID). The two absence
// cases are reported separately so the client can tell a bad category from a
// bad product.
func (s *Server) getProduct(c *gin.Context) {
	item, err := s.store.Catalog().ResolveItem(c.Param("categoryID"), c.Param("productID"))
	if err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// createOrder validates and prices the submitted cart, then dispatches the
// rendered summary through the configured notifier. Dispatcher failures are
// reported to the client in generic terms only; the detail goes to the log.
func (s *Server) createOrder(c *gin.Context) {
	var payload order.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order payload."})
		return
	}

	summary, err := s.aggregator.Aggregate(&payload)
	if err != nil {
		var ve *order.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"message": ve.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order payload."})
		return
	}

	result, err := s.dispatcher.Dispatch(c.Request.Context(), summary)
	switch result {
	case dispatch.ResultSent:
		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully!"})
	case dispatch.ResultMisconfigured:
		log.WithError(err).Error("Order dispatch misconfigured")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order. Please try again later."})
	default:
		log.WithError(err).Error("Order delivery failed")
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to place order. Please try again."})
	}
}
