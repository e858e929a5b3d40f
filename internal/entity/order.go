package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Status tracks an order submission through its lifecycle.
type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusValidating Status = "VALIDATING"
	StatusSubmitting Status = "SUBMITTING"
	StatusSucceeded  Status = "SUCCEEDED"
	StatusFailed     Status = "FAILED"
)

// AddressLines is the fixed number of address lines the storefront collects.
const AddressLines = 4

// FallbackOrderNumber stands in when the backend omits order_number.
const FallbackOrderNumber = "THO-UNKNOWN"

// The customer-facing validation messages, verbatim from the storefront.
const (
	MsgInvalidName    = "Please enter a valid name (letters and spaces only)"
	MsgInvalidPhone   = "Please enter a valid 10-digit phone number"
	MsgMissingAddress = "Please complete all 4 address lines."
	MsgNoProducts     = "Please add at least one valid product."
	MsgTooManyRows    = "Maximum 20 products allowed per order"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

// ValidationError reports a user-correctable problem with the order form.
// Message is the exact text shown to the customer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type Customer struct {
	Name    string               `json:"name"`
	Phone   string               `json:"phone"`
	Address [AddressLines]string `json:"address"`
}

func (c Customer) Validate() error {
	if c.Name == "" || !nameRe.MatchString(c.Name) {
		return &ValidationError{Field: "name", Message: MsgInvalidName}
	}
	if !phoneRe.MatchString(c.Phone) {
		return &ValidationError{Field: "phone", Message: MsgInvalidPhone}
	}
	for _, line := range c.Address {
		if strings.TrimSpace(line) == "" {
			return &ValidationError{Field: "address", Message: MsgMissingAddress}
		}
	}
	return nil
}

// LineItem is the derived price breakdown for one order row.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Submission is the one-shot payload POSTed to the order endpoint.
type Submission struct {
	Customer Customer   `json:"customer"`
	Products []LineItem `json:"products"`
	Total    float64    `json:"total"`
}

func (s Submission) Validate() error {
	if err := s.Customer.Validate(); err != nil {
		return err
	}
	if len(s.Products) == 0 {
		return &ValidationError{Field: "products", Message: MsgNoProducts}
	}
	return nil
}

// CoerceQuantity turns raw quantity input into an integer >= 1.
// Empty, non-numeric and sub-1 inputs all fall back to 1.
func CoerceQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
