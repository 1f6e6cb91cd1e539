package finance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"lab-reservation/internal/pkg/errs"
	"lab-reservation/internal/usecase/commands"
)

// Client sends payment requests to the university finance office.
type Client struct {
	baseURL     string
	callbackURL string
	httpClient  *http.Client
}

func NewClient(baseURL, callbackURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     baseURL,
		callbackURL: callbackURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type paymentRequestBody struct {
	BookingCode   string `json:"booking_code"`
	ApplicantName string `json:"applicant_name"`
	ApplicantCode string `json:"applicant_code"`
	DeviceCode    string `json:"device_code"`
	DeviceName    string `json:"device_name"`
	BookingDate   string `json:"booking_date"`
	TimeSlot      string `json:"time_slot"`
	PaymentAmount string `json:"payment_amount"`
	CallbackURL   string `json:"callback_url"`
}

type paymentResponseBody struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

func (c *Client) RequestPayment(ctx context.Context, req commands.PaymentRequest) (*commands.PaymentAck, error) {
	body, err := json.Marshal(paymentRequestBody{
		BookingCode:   req.BookingCode,
		ApplicantName: req.ApplicantName,
		ApplicantCode: req.ApplicantCode,
		DeviceCode:    req.DeviceCode,
		DeviceName:    req.DeviceName,
		BookingDate:   req.BookingDate.Format(time.DateOnly),
		TimeSlot:      req.Slot,
		PaymentAmount: req.Amount.StringFixed(2),
		CallbackURL:   c.callbackURL,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrInternal)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/payment", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to create request"), ErrInternal)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to execute request"), ErrInternal)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errs.Mark(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(raw)), ErrInvalidResponse)
	}

	var out paymentResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode response"), ErrInvalidResponse)
	}
	if !out.Success {
		return nil, errs.Mark(fmt.Errorf("booking %s: %s", req.BookingCode, out.Message), ErrRejected)
	}

	return &commands.PaymentAck{Reference: out.Reference}, nil
}

// LogOnlyRequester records payment requests without sending them. It stands
// in when no finance endpoint is configured.
type LogOnlyRequester struct{}

func (LogOnlyRequester) RequestPayment(_ context.Context, req commands.PaymentRequest) (*commands.PaymentAck, error) {
	slog.Info("payment request (finance endpoint not configured)",
		"booking_code", req.BookingCode,
		"applicant_code", req.ApplicantCode,
		"device_code", req.DeviceCode,
		"amount", req.Amount.StringFixed(2))
	return &commands.PaymentAck{Reference: "local-" + req.BookingCode}, nil
}
