package usecase

import (
	"context"

	domain "github.com/Sharaj17/thottam-IQ/internal/entity"
)

// CatalogSource loads the product list. One fetch per session, no retry.
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}

// OrderGateway delivers a finished order to the storefront backend and
// returns the backend's order number, "" when the backend omitted one.
type OrderGateway interface {
	SubmitOrder(ctx context.Context, sub domain.Submission) (string, error)
}
