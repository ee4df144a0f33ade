package main

import (
	"context"

	"cardstore/client/internal/config"
	"cardstore/client/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting CardStore storefront...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	app, err := container.NewStorefront(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer app.Close()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Startup failed: %v", err)
	}

	site := app.App.SiteConfig()
	log.Infof("%s ready: %d item(s) restored to the cart, total %s",
		site.SiteName, app.Cart.ItemCount(), app.App.FormatAmount(app.Cart.TotalPrice()))
}
