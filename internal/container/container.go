package container

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"cardstore/client/internal/client"
	"cardstore/client/internal/config"
	"cardstore/client/internal/gateway"
	"cardstore/client/internal/router"
	"cardstore/client/internal/state"
	"cardstore/client/internal/storage"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components for one application.
type Container struct {
	Config  *config.Config
	Store   storage.Store
	Gateway *gateway.Gateway
	App     *state.App
	Routes  *router.Table

	// Storefront surface
	Storefront *client.Storefront
	Cart       *state.Cart
	History    *storage.History

	// Back-office surface
	Admin *client.Admin
	User  *state.User
	Guard *router.Guard

	redis *redis.Client
}

// NewStorefront wires the customer-facing application: public gateway,
// cart session, order history and the public route table.
func NewStorefront(cfg *config.Config) (*Container, error) {
	c, err := newBase(cfg)
	if err != nil {
		return nil, err
	}

	c.Storefront = client.NewStorefront(c.Gateway)
	c.Cart = state.NewCart(c.Store, c.Storefront)
	c.History = storage.NewHistory(c.Store)
	c.App = state.NewApp(c.Storefront)
	c.Routes = router.StorefrontRoutes()

	return c, nil
}

// NewAdmin wires the back-office application: authenticated gateway, user
// session and the guarded route table.
func NewAdmin(cfg *config.Config) (*Container, error) {
	c, err := newBase(cfg)
	if err != nil {
		return nil, err
	}

	c.Admin = client.NewAdmin(c.Gateway)
	c.User = state.NewUser(context.Background(), c.Store, c.Admin)
	c.App = state.NewApp(c.Admin)
	c.Routes = router.AdminRoutes()
	c.Guard = router.NewGuard(c.User)

	c.Gateway.SetTokenSource(c.User.Token)
	c.Gateway.SetOnUnauthorized(func() {
		// Logout flips the session to logged out, so the next guard
		// evaluation resolves every protected navigation to the login
		// redirect.
		c.User.Logout(context.Background())
		c.App.Error("login expired, please sign in again")
	})

	return c, nil
}

func newBase(cfg *config.Config) (*Container, error) {
	configureLogging(cfg.Logging)

	c := &Container{Config: cfg}

	store, err := c.buildStore(cfg)
	if err != nil {
		return nil, err
	}
	c.Store = store
	c.Gateway = gateway.New(cfg.API)

	return c, nil
}

func (c *Container) buildStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file", "":
		return storage.NewFileStore(cfg.Storage.Path)
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")
		c.redis = rdb
		return storage.NewRedisStore(rdb, cfg.Storage.Namespace), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func configureLogging(cfg config.LoggingConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// Run performs application startup: the site configuration load and, for the
// storefront, cart restoration run concurrently.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.App.LoadSiteConfig(ctx)
		return nil
	})

	if c.Cart != nil {
		g.Go(func() error {
			return c.Cart.Initialize(ctx)
		})
	}

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("failed to close Redis client: %w", err)
		}
	}
	return nil
}
