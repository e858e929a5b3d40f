package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	domain "github.com/Sharaj17/thottam-IQ/internal/entity"
)

// ErrSubmissionInFlight rejects a submit attempt while another one is still
// waiting on the backend.
var ErrSubmissionInFlight = errors.New("submission already in flight")

type SubmitInput struct {
	Name    string
	Phone   string
	Address [domain.AddressLines]string
}

type SubmitOutput struct {
	OrderNumber string
	Total       float64
	ItemCount   int
}

// SubmitOrder runs the order submission flow:
// Idle -> Validating -> Submitting -> Succeeded | Failed.
// Validation failure makes no network call and returns the flow to Idle;
// a backend failure preserves the form so the customer can resubmit.
type SubmitOrder struct {
	gw       OrderGateway
	log      *slog.Logger
	inFlight atomic.Bool
	status   atomic.Value // domain.Status
}

func NewSubmitOrder(gw OrderGateway, log *slog.Logger) *SubmitOrder {
	uc := &SubmitOrder{gw: gw, log: log}
	uc.status.Store(domain.StatusIdle)
	return uc
}

// Status reports the flow's current state.
func (uc *SubmitOrder) Status() domain.Status {
	return uc.status.Load().(domain.Status)
}

// Execute validates the customer fields and the form's current line items,
// then issues exactly one request to the backend. A *domain.ValidationError
// means no request was made. Only one execution may be in flight at a time.
func (uc *SubmitOrder) Execute(ctx context.Context, in SubmitInput, form *Form) (SubmitOutput, error) {
	if !uc.inFlight.CompareAndSwap(false, true) {
		return SubmitOutput{}, ErrSubmissionInFlight
	}
	defer uc.inFlight.Store(false)

	uc.status.Store(domain.StatusValidating)

	sub := domain.Submission{
		Customer: domain.Customer{
			Name:  strings.TrimSpace(in.Name),
			Phone: strings.TrimSpace(in.Phone),
		},
		Products: form.LineItems(),
	}
	for i, line := range in.Address {
		sub.Customer.Address[i] = strings.TrimSpace(line)
	}
	for _, item := range sub.Products {
		sub.Total += item.LineTotal
	}

	if err := sub.Validate(); err != nil {
		uc.status.Store(domain.StatusIdle)
		return SubmitOutput{}, err
	}

	uc.status.Store(domain.StatusSubmitting)
	orderNo, err := uc.gw.SubmitOrder(ctx, sub)
	if err != nil {
		uc.status.Store(domain.StatusFailed)
		uc.log.Error("order submission failed", "error", err, "items", len(sub.Products))
		return SubmitOutput{}, fmt.Errorf("submit order: %w", err)
	}
	if orderNo == "" {
		orderNo = domain.FallbackOrderNumber
	}

	uc.status.Store(domain.StatusSucceeded)
	uc.log.Info("order submitted",
		"order_number", orderNo, "items", len(sub.Products), "total", sub.Total)
	return SubmitOutput{OrderNumber: orderNo, Total: sub.Total, ItemCount: len(sub.Products)}, nil
}
