// Package backend is the JSON/HTTP client for the storefront's two
// endpoints: the product catalog and order intake.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domain "github.com/Sharaj17/thottam-IQ/internal/entity"
	"github.com/Sharaj17/thottam-IQ/internal/usecase"
	"github.com/google/uuid"
)

const errBodyLimit = 8 * 1024 // 8KB

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// FetchProducts loads the catalog from GET /api/products. A JSON body that is
// not a product array is tolerated and treated as an empty catalog; transport
// errors, bad statuses and unparseable bodies are not.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	start := time.Now()
	products, err := c.fetchProducts(ctx)
	observe(endpointProducts, start, err)
	return products, err
}

func (c *Client) fetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch products: %s", respError(resp))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch products: read body: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(body, &products); err != nil {
		// Valid JSON of any other shape degrades to an empty catalog, the
		// same tolerance the storefront page applies.
		var v any
		if json.Unmarshal(body, &v) == nil {
			c.log.Warn("product endpoint returned non-array payload",
				"req_id", reqID, "bytes", len(body))
			return nil, nil
		}
		return nil, fmt.Errorf("fetch products: decode: %w", err)
	}

	c.log.Debug("catalog fetched", "req_id", reqID, "products", len(products))
	return products, nil
}

type orderResp struct {
	OrderNumber string `json:"order_number"`
}

// SubmitOrder POSTs the order payload once, no retry. The returned order
// number is "" when the backend omitted it; the caller decides the fallback.
func (c *Client) SubmitOrder(ctx context.Context, sub domain.Submission) (string, error) {
	start := time.Now()
	orderNo, err := c.submitOrder(ctx, sub)
	observe(endpointOrder, start, err)
	return orderNo, err
}

func (c *Client) submitOrder(ctx context.Context, sub domain.Submission) (string, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return "", fmt.Errorf("submit order: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/order", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("submit order: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("submit order: %s", respError(resp))
	}

	out, err := decodeJSON[orderResp](resp.Body)
	if err != nil {
		return "", fmt.Errorf("submit order: decode: %w", err)
	}
	return out.OrderNumber, nil
}

// decodeJSON unmarshals a response body into T.
func decodeJSON[T any](r io.Reader) (T, error) {
	var v T
	err := json.NewDecoder(r).Decode(&v)
	return v, err
}

// respError summarizes a non-2xx response, body capped at errBodyLimit.
func respError(resp *http.Response) string {
	body, truncated := readCapped(resp.Body, errBodyLimit)
	s := fmt.Sprintf("status %d", resp.StatusCode)
	if len(body) > 0 {
		if truncated {
			body = append(body, []byte("...truncated...")...)
		}
		s += ": " + string(body)
	}
	return s
}

func readCapped(r io.Reader, n int) (body []byte, truncated bool) {
	var buf bytes.Buffer
	_, _ = io.CopyN(&buf, r, int64(n+1)) // read up to n+1
	b := buf.Bytes()
	if len(b) > n {
		return b[:n], true
	}
	return b, false
}

var _ usecase.CatalogSource = (*Client)(nil)
var _ usecase.OrderGateway = (*Client)(nil)
