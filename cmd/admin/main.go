package main

import (
	"context"

	"cardstore/client/internal/config"
	"cardstore/client/internal/container"
	"cardstore/client/internal/router"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting CardStore back office...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	app, err := container.NewAdmin(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer app.Close()

	ctx := context.Background()
	if err := app.Run(ctx); err != nil {
		log.Fatalf("Startup failed: %v", err)
	}

	match, _ := app.Routes.Resolve("/")
	resolution := app.Guard.Evaluate(ctx, match)
	switch resolution.Decision {
	case router.Permit:
		log.Infof("Signed in as %s (%s), at %q", app.User.Nickname(), router.AdminPageTitle(match), match.FullPath)
	default:
		log.Infof("Not signed in, continue at %s", resolution.Location)
	}
}
