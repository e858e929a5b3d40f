package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Sharaj17/thottam-IQ/configs"
	"github.com/Sharaj17/thottam-IQ/internal/adapter/backend"
	"github.com/Sharaj17/thottam-IQ/internal/adapter/term"
	domain "github.com/Sharaj17/thottam-IQ/internal/entity"
	"github.com/Sharaj17/thottam-IQ/internal/logging"
	"github.com/Sharaj17/thottam-IQ/internal/observ"
	"github.com/Sharaj17/thottam-IQ/internal/usecase"
)

// CatalogWarning is shown once when the catalog cannot be loaded; the form
// stays usable but nothing resolves until the backend is back.
const CatalogWarning = "Could not load the product list. Please check the backend and PRODUCT_SHEET_URL."

// Run wires the order form and drives one interactive session on stdio.
func Run(ctx context.Context, configDir, envName string) error {
	cfg, err := configs.Load(configDir, envName)
	if err != nil {
		return err
	}

	logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)
	l := logging.New("app")
	l.Info("starting", "env", envName, "backend", cfg.Backend.BaseURL)

	observ.Start(cfg.Metrics.Addr)

	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, logging.New("backend"))

	// One catalog fetch per session, no retry. Failure degrades to an empty
	// catalog with a one-time warning on the form.
	catalog, warn := loadCatalog(ctx, client, cfg.Backend.CatalogTimeout, l)

	form := usecase.NewForm(catalog)
	submit := usecase.NewSubmitOrder(client, logging.New("submit"))

	sess := term.NewSession(os.Stdin, os.Stdout, form, submit, logging.New("term"))
	if warn != "" {
		sess.SetCatalogWarning(warn)
	}
	return sess.Run(ctx)
}

func loadCatalog(ctx context.Context, src usecase.CatalogSource, timeout time.Duration, l *slog.Logger) (domain.Catalog, string) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	products, err := src.FetchProducts(cctx)
	if err != nil {
		l.Error("catalog load failed", "error", err)
		return domain.NewCatalog(nil), CatalogWarning
	}
	l.Info("catalog loaded", "products", len(products))
	return domain.NewCatalog(products), ""
}
