package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "two decimals", input: "24.99", want: 2499},
		{name: "integer", input: "25", want: 2500},
		{name: "one decimal", input: "5.9", want: 590},
		{name: "zero", input: "0", want: 0},
		{name: "negative", input: "-1.50", wantErr: e.ErrInvalidPrice},
		{name: "three decimals", input: "24.999", wantErr: e.ErrPricePrecision},
		{name: "not a number", input: "free", wantErr: e.ErrInvalidPrice},
		{name: "at the cap", input: "1000000000", want: 100_000_000_000},
		{name: "just above the cap", input: "1000000000.01", wantErr: e.ErrInvalidPrice},
		{name: "too large", input: "100000000001", wantErr: e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriceToCents_Empty(t *testing.T) {
	_, err := parsePriceToCents("   ")
	require.Error(t, err)
}

func TestFormatCents(t *testing.T) {
	require.Equal(t, "24.99", formatCents(2499))
	require.Equal(t, "5.99", formatCents(599))
	require.Equal(t, "84.96", formatCents(8496))
	require.Equal(t, "0.00", formatCents(0))
	require.Equal(t, "0.05", formatCents(5))
	require.Equal(t, "100.00", formatCents(10000))
}

func multipartProductRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req
}

func TestParseProductForm(t *testing.T) {
	req := multipartProductRequest(t, map[string]string{
		"name":          "Atlantic Salmon",
		"description":   "Fresh Atlantic salmon fillet",
		"category":      "Fish",
		"price":         "24.99",
		"unit":          "lb",
		"display_order": "2",
		"rating":        "4.8",
		"popular":       "true",
	})

	meta, err := parseProductForm(req)

	require.NoError(t, err)
	require.Equal(t, "Atlantic Salmon", meta.Name)
	require.Equal(t, "Fresh Atlantic salmon fillet", meta.Description)
	require.Equal(t, "Fish", meta.CategoryName)
	require.Equal(t, int64(2499), meta.Price)
	require.Equal(t, int64(2), meta.DisplayOrder)
	require.Equal(t, 4.8, meta.Rating)
	require.True(t, meta.Popular)
}

func TestParseProductForm_OptionalFieldsOmitted(t *testing.T) {
	req := multipartProductRequest(t, map[string]string{
		"name":     "Atlantic Salmon",
		"category": "Fish",
		"price":    "24.99",
		"unit":     "lb",
	})

	meta, err := parseProductForm(req)

	require.NoError(t, err)
	require.Empty(t, meta.Description)
	require.Zero(t, meta.Rating)
	require.False(t, meta.Popular)
}

func TestParseProductForm_BadRating(t *testing.T) {
	req := multipartProductRequest(t, map[string]string{
		"name":     "Atlantic Salmon",
		"category": "Fish",
		"price":    "24.99",
		"unit":     "lb",
		"rating":   "excellent",
	})

	_, err := parseProductForm(req)

	require.ErrorIs(t, err, e.ErrStatusBadRequest)
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.ErrInvalidQuantity, http.StatusBadRequest},
		{e.ErrInvalidDelta, http.StatusBadRequest},
		{e.ErrDeliveryAddrRequired, http.StatusBadRequest},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrProductUnavailable, http.StatusConflict},
		{e.ErrCartEmpty, http.StatusConflict},
		{e.ErrUnknownOrderStatus, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, msg := ToHTTPResponse(e.Wrap("SomeUseCase.Op", tt.err))
		require.Equal(t, tt.code, code)
		require.NotEmpty(t, msg)
	}
}
