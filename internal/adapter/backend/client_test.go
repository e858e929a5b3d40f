package backend

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "github.com/Sharaj17/thottam-IQ/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// fakeStorefront is a stand-in for the real backend: the two endpoints of the
// storefront API with scriptable responses.
type fakeStorefront struct {
	products       any
	productsStatus int
	orderResponse  gin.H
	orderStatus    int

	lastOrder     domain.Submission
	lastRequestID string
	orderCalls    int
}

func (f *fakeStorefront) server(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", func(c *gin.Context) {
		status := f.productsStatus
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, f.products)
	})
	r.POST("/api/order", func(c *gin.Context) {
		f.orderCalls++
		f.lastRequestID = c.GetHeader("X-Request-Id")
		assert.NoError(t, c.ShouldBindJSON(&f.lastOrder))
		status := f.orderStatus
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, f.orderResponse)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchProducts(t *testing.T) {
	f := &fakeStorefront{products: []domain.Product{
		{Name: "Widget", Price: 100},
		{Name: "Coconut Oil", Price: 250.5},
	}}
	srv := f.server(t)

	c := New(srv.URL, 5*time.Second, nopLogger())
	got, err := c.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Widget", got[0].Name)
	assert.Equal(t, 250.5, got[1].Price)
}

func TestFetchProductsToleratesNonArrayJSON(t *testing.T) {
	f := &fakeStorefront{products: gin.H{"error": "sheet unavailable"}}
	srv := f.server(t)

	c := New(srv.URL, 5*time.Second, nopLogger())
	got, err := c.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchProductsEmptyArray(t *testing.T) {
	f := &fakeStorefront{products: []domain.Product{}}
	srv := f.server(t)

	c := New(srv.URL, 5*time.Second, nopLogger())
	got, err := c.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchProductsServerError(t *testing.T) {
	f := &fakeStorefront{products: gin.H{"error": "boom"}, productsStatus: http.StatusInternalServerError}
	srv := f.server(t)

	c := New(srv.URL, 5*time.Second, nopLogger())
	_, err := c.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchProductsConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nobody home

	c := New(srv.URL, time.Second, nopLogger())
	_, err := c.FetchProducts(context.Background())
	assert.Error(t, err)
}

func sampleSubmission() domain.Submission {
	return domain.Submission{
		Customer: domain.Customer{
			Name:    "John Doe",
			Phone:   "9876543210",
			Address: [domain.AddressLines]string{"12 Farm Lane", "Thottam", "Erode", "638152"},
		},
		Products: []domain.LineItem{
			{Name: "Widget", Quantity: 2, UnitPrice: 100, LineTotal: 200},
		},
		Total: 200,
	}
}

func TestSubmitOrder(t *testing.T) {
	f := &fakeStorefront{orderResponse: gin.H{"ok": true, "order_number": "THO-5"}}
	srv := f.server(t)

	c := New(srv.URL, 5*time.Second, nopLogger())
	orderNo, err := c.SubmitOrder(context.Background(), sampleSubmission())
	require.NoError(t, err)
	assert.Equal(t, "THO-5", orderNo)

	// the wire payload round-trips intact
	assert.Equal(t, 1, f.orderCalls)
	assert.Equal(t, "John Doe", f.lastOrder.Customer.Name)
	assert.Equal(t, [domain.AddressLines]string{"12 Farm Lane", "Thottam", "Erode", "638152"}, f.lastOrder.Customer.Address)
	require.Len(t, f.lastOrder.Products, 1)
	assert.Equal(t, 200.0, f.lastOrder.Products[0].LineTotal)
	assert.Equal(t, 200.0, f.lastOrder.Total)
	assert.NotEmpty(t, f.lastRequestID, "every call carries a request id")
}

func TestSubmitOrderMissingOrderNumber(t *testing.T) {
	f := &fakeStorefront{orderResponse: gin.H{"ok": true}}
	srv := f.server(t)

	c := New(srv.URL, 5*time.Second, nopLogger())
	orderNo, err := c.SubmitOrder(context.Background(), sampleSubmission())
	require.NoError(t, err)
	assert.Equal(t, "", orderNo, "fallback is the caller's decision")
}

func TestSubmitOrderServerError(t *testing.T) {
	f := &fakeStorefront{orderResponse: gin.H{"error": "smtp down"}, orderStatus: http.StatusBadGateway}
	srv := f.server(t)

	c := New(srv.URL, 5*time.Second, nopLogger())
	_, err := c.SubmitOrder(context.Background(), sampleSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestSubmitOrderContextCancelled(t *testing.T) {
	f := &fakeStorefront{orderResponse: gin.H{"order_number": "THO-5"}}
	srv := f.server(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(srv.URL, 5*time.Second, nopLogger())
	_, err := c.SubmitOrder(ctx, sampleSubmission())
	assert.Error(t, err)
}
