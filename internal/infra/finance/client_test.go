//go:build unit

package finance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lab-reservation/internal/infra/finance"
	"lab-reservation/internal/pkg/errs"
	"lab-reservation/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentRequest() commands.PaymentRequest {
	return commands.PaymentRequest{
		BookingCode:   "BOOK20261019001",
		ApplicantID:   uuid.New(),
		ApplicantName: "Acme Materials",
		ApplicantCode: "EXT-042",
		DeviceCode:    "D1",
		DeviceName:    "Spectrometer",
		BookingDate:   time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC),
		Slot:          "08:00-10:00",
		Amount:        decimal.RequireFromString("200"),
	}
}

func TestClient_RequestPayment(t *testing.T) {
	t.Run("posts the booking and returns the reference", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/payment", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"success":true,"reference":"FIN-1"}`))
		}))
		defer srv.Close()

		client := finance.NewClient(srv.URL, "http://lab.example/api/finance/callback", time.Second)
		ack, err := client.RequestPayment(context.Background(), paymentRequest())

		require.NoError(t, err)
		assert.Equal(t, "FIN-1", ack.Reference)
		assert.Equal(t, "200.00", got["payment_amount"])
		assert.Equal(t, "2026-10-21", got["booking_date"])
		assert.Equal(t, "08:00-10:00", got["time_slot"])
		assert.Equal(t, "http://lab.example/api/finance/callback", got["callback_url"])
	})

	t.Run("non-2xx status is an invalid response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := finance.NewClient(srv.URL, "", time.Second).RequestPayment(context.Background(), paymentRequest())

		assert.True(t, errs.Is(err, finance.ErrInvalidResponse))
	})

	t.Run("explicit rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"message":"account closed"}`))
		}))
		defer srv.Close()

		_, err := finance.NewClient(srv.URL, "", time.Second).RequestPayment(context.Background(), paymentRequest())

		assert.True(t, errs.Is(err, finance.ErrRejected))
	})

	t.Run("unreachable endpoint is internal", func(t *testing.T) {
		_, err := finance.NewClient("http://127.0.0.1:1", "", 200*time.Millisecond).RequestPayment(context.Background(), paymentRequest())

		assert.True(t, errs.Is(err, finance.ErrInternal))
	})
}

func TestLogOnlyRequester(t *testing.T) {
	ack, err := finance.LogOnlyRequester{}.RequestPayment(context.Background(), paymentRequest())

	require.NoError(t, err)
	assert.Equal(t, "local-BOOK20261019001", ack.Reference)
}
