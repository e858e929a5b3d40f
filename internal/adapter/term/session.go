// Package term drives the order form over a line-oriented terminal: product
// search with suggestions, per-row prices, the running total, customer
// details and the submit/confirmation exchange.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	domain "github.com/Sharaj17/thottam-IQ/internal/entity"
	"github.com/Sharaj17/thottam-IQ/internal/usecase"
)

// SubmitFailedMsg is shown verbatim on any non-validation submit failure.
const SubmitFailedMsg = "Order failed to submit. Please try again."

type Session struct {
	in          *bufio.Scanner
	out         io.Writer
	form        *usecase.Form
	submit      *usecase.SubmitOrder
	log         *slog.Logger
	catalogWarn string
}

func NewSession(in io.Reader, out io.Writer, form *usecase.Form, submit *usecase.SubmitOrder, log *slog.Logger) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		form:   form,
		submit: submit,
		log:    log,
	}
}

// SetCatalogWarning arranges a one-time warning before the first prompt, used
// when the catalog failed to load and nothing will resolve.
func (s *Session) SetCatalogWarning(msg string) { s.catalogWarn = msg }

// Run loops order entry until the input closes. Each pass collects rows and
// customer details, submits, and resets the form once the confirmation is
// dismissed.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, titleStyle.Render("Thottam Organics — order entry"))
	if s.catalogWarn != "" {
		fmt.Fprintln(s.out, RenderWarning(s.catalogWarn))
	}
	for {
		err := s.runOrder(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) runOrder(ctx context.Context) error {
	if err := s.fillRow(s.form.Rows()[0], 1); err != nil {
		return err
	}
	for {
		fmt.Fprintln(s.out, RenderTotal(s.form.Total()))
		more, err := s.readLine("Add another product? [y/N]> ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(more), "y") {
			break
		}
		row, addErr := s.form.AddRow()
		if addErr != nil {
			fmt.Fprintln(s.out, RenderError(domain.MsgTooManyRows))
			continue
		}
		if err := s.fillRow(row, s.form.RowCount()); err != nil {
			return err
		}
	}

	for {
		in, err := s.readCustomer()
		if err != nil {
			return err
		}
		out, submitted, err := s.trySubmit(ctx, in)
		if err != nil {
			return err
		}
		if !submitted {
			continue // correct the fields and go again
		}

		s.log.Info("order confirmed",
			"order_number", out.OrderNumber, "items", out.ItemCount, "total", out.Total)
		fmt.Fprintln(s.out, RenderConfirmation(out.OrderNumber))
		_, err = s.readLine(dimStyle.Render("Press Enter to continue "))
		// Dismissing the confirmation resets the form to one empty row; the
		// customer fields are re-collected on the next order anyway.
		s.form.Reset()
		return err
	}
}

// trySubmit runs the submission flow, resubmitting with the same field values
// for as long as the customer asks to retry a failed delivery. submitted is
// false when validation rejected the order or the customer gave up.
func (s *Session) trySubmit(ctx context.Context, in usecase.SubmitInput) (usecase.SubmitOutput, bool, error) {
	for {
		out, err := s.submit.Execute(ctx, in, s.form)
		if err == nil {
			return out, true, nil
		}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(s.out, RenderError(verr.Message))
			return usecase.SubmitOutput{}, false, nil
		}
		fmt.Fprintln(s.out, RenderError(SubmitFailedMsg))
		retry, rerr := s.readLine("Retry with the same details? [y/N]> ")
		if rerr != nil {
			return usecase.SubmitOutput{}, false, rerr
		}
		if !strings.EqualFold(strings.TrimSpace(retry), "y") {
			return usecase.SubmitOutput{}, false, nil
		}
	}
}

func (s *Session) fillRow(row *usecase.Row, n int) error {
	text, err := s.readLine(fmt.Sprintf("Product %d> ", n))
	if err != nil {
		return err
	}
	sugg := row.SetSearchText(text)
	if out := RenderSuggestions(sugg); out != "" {
		fmt.Fprintln(s.out, out)
	}
	if sugg.Visible && len(sugg.Products) > 0 {
		pick, err := s.readLine(dimStyle.Render("pick # or Enter to keep what you typed> "))
		if err != nil {
			return err
		}
		if i, convErr := strconv.Atoi(strings.TrimSpace(pick)); convErr == nil && i >= 1 && i <= len(sugg.Products) {
			row.SelectSuggestion(sugg.Products[i-1])
			fmt.Fprintln(s.out, "Selected "+suggestionStyle.Render(row.SearchText()))
		} else {
			row.HideSuggestions()
		}
	}

	qty, err := s.readLine("Quantity [1]> ")
	if err != nil {
		return err
	}
	row.SetQuantity(qty)
	fmt.Fprintln(s.out, RenderRowPrice(row.LineTotal()))
	return nil
}

func (s *Session) readCustomer() (usecase.SubmitInput, error) {
	var in usecase.SubmitInput
	var err error
	if in.Name, err = s.readLine("Name> "); err != nil {
		return in, err
	}
	if in.Phone, err = s.readLine("Phone> "); err != nil {
		return in, err
	}
	for i := range in.Address {
		if in.Address[i], err = s.readLine(fmt.Sprintf("Address line %d> ", i+1)); err != nil {
			return in, err
		}
	}
	return in, nil
}

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}
