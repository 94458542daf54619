package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alamintokder/bazar-sodai/internal/catalog"
	"github.com/alamintokder/bazar-sodai/internal/dispatch"
	"github.com/alamintokder/bazar-sodai/internal/order"
)

type Server struct {
	router     *gin.Engine
	store      *catalog.Store
	aggregator *order.Aggregator
	dispatcher *dispatch.Dispatcher
}

// NewServer creates a new server instance
func NewServer(store *catalog.Store, aggregator *order.Aggregator, dispatcher *dispatch.Dispatcher) *Server {
	router := gin.Default()

	server := &Server{
		router:     router,
		store:      store,
		aggregator: aggregator,
		dispatcher: dispatcher,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/data", s.getCatalog)
		api.GET("/categories/:categoryID", s.getCategory)
		api.GET("/categories/:categoryID/products/:productID", s.getProduct)
		api.POST("/orders", s.createOrder)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	snapshot := s.store.Catalog()

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"service":    "bazar-sodai",
		"version":    "0.1.0",
		"categories": len(snapshot.Categories),
		"items":      snapshot.ItemCount(),
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
