package container

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/alamintokder/bazar-sodai/internal/catalog"
	"github.com/alamintokder/bazar-sodai/internal/config"
	"github.com/alamintokder/bazar-sodai/internal/dispatch"
	"github.com/alamintokder/bazar-sodai/internal/notify"
	"github.com/alamintokder/bazar-sodai/internal/order"
	"github.com/alamintokder/bazar-sodai/internal/server"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Store      *catalog.Store
	Notifier   notify.Notifier
	Dispatcher *dispatch.Dispatcher
	Server     *server.Server
}

// New creates a new container with all dependencies initialized. A broken
// notifier configuration is logged but does not stop startup: the catalog
// keeps being served and order submissions fail as misconfigured until the
// operator fixes the setup.
func New(cfg *config.Config) (*Container, error) {
	snapshot, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	store := catalog.NewStore(snapshot)

	log.WithFields(log.Fields{
		"path":       cfg.Catalog.Path,
		"categories": len(snapshot.Categories),
		"items":      snapshot.ItemCount(),
	}).Info("Catalog loaded")

	notifier, err := notify.New(&cfg.Notifier)
	if err != nil {
		log.WithError(err).Warn("Notifier unavailable, order dispatch will fail until configuration is fixed")
		notifier = nil
	} else {
		log.WithField("provider", notifier.Name()).Info("Notifier ready")
	}

	dispatcher := dispatch.NewDispatcher(notifier)
	aggregator := order.NewAggregator(cfg.Store.Name, catalog.Locale(cfg.Store.PrimaryLocale))

	return &Container{
		Config:     cfg,
		Store:      store,
		Notifier:   notifier,
		Dispatcher: dispatcher,
		Server:     server.NewServer(store, aggregator, dispatcher),
	}, nil
}

// Run serves HTTP and, when enabled, watches the catalog data file for
// changes. Both stop when ctx is cancelled or either fails.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("addr", c.Config.Server.Addr).Info("Starting HTTP server")
		return c.Server.Run(ctx, c.Config.Server.Addr)
	})

	if c.Config.Catalog.Watch {
		g.Go(func() error {
			return catalog.Watch(ctx, c.Config.Catalog.Path, c.Store)
		})
	}

	return g.Wait()
}
