package commands

import (
	"context"
	"log/slog"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/pkg/clock"
	"lab-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=approval.go -destination=../../../tests/mock/commands/approval_mock.go -package=commandsmock

type Decision struct {
	Level   booking.Level
	Action  booking.Action
	Comment string
}

type BatchItem struct {
	Code     string
	Decision Decision
}

type BatchResult struct {
	Code    string
	Booking *booking.Booking
	Err     error
}

type ApprovalCommands interface {
	Decide(ctx context.Context, actor identity.Actor, code string, d Decision) (*booking.Booking, error)
	// BatchDecide applies each item in its own transaction. One failure does
	// not undo the items already applied.
	BatchDecide(ctx context.Context, actor identity.Actor, items []BatchItem) []BatchResult
}

type approvalCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	policy   BookingPolicy
	payments PaymentRequester
	observer Observer
}

func NewApprovalCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	policy BookingPolicy,
	payments PaymentRequester,
	observer Observer,
) ApprovalCommands {
	if observer == nil {
		observer = NopObserver{}
	}
	return &approvalCommandsImpl{
		uow:      uow,
		clock:    clk,
		policy:   policy.withDefaults(),
		payments: payments,
		observer: observer,
	}
}

func (c *approvalCommandsImpl) Decide(ctx context.Context, actor identity.Actor, code string, d Decision) (*booking.Booking, error) {
	var (
		decided *booking.Booking
		tr      booking.Transition
		payReq  *PaymentRequest
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		payReq = nil

		b, err := tx.Bookings().FindByCodeForUpdate(ctx, code)
		if err != nil {
			return mapRepoErr(err)
		}

		tr, err = b.Decide(actor, d.Level, d.Action, d.Comment, now)
		if err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return mapRepoErr(err)
		}
		if err := tx.Approvals().Append(ctx, tr.Record); err != nil {
			return mapRepoErr(err)
		}

		if tr.Grants() {
			recordBorrow(ctx, tx, c.policy, c.observer, b)
		}
		if tr.RequestsPayment() {
			req, err := buildPaymentRequest(ctx, tx, b)
			if err != nil {
				return err
			}
			payReq = req
		}

		decided = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.observer.TransitionApplied(tr.From, tr.To)
	slog.Info("approval recorded",
		"code", decided.Code(),
		"level", string(d.Level),
		"action", string(d.Action),
		"from", string(tr.From),
		"to", string(tr.To),
		"approver_id", actor.UserID.String())

	if payReq != nil {
		c.requestPayment(ctx, *payReq)
	}
	return decided, nil
}

func (c *approvalCommandsImpl) BatchDecide(ctx context.Context, actor identity.Actor, items []BatchItem) []BatchResult {
	results := make([]BatchResult, 0, len(items))
	for _, it := range items {
		b, err := c.Decide(ctx, actor, it.Code, it.Decision)
		results = append(results, BatchResult{Code: it.Code, Booking: b, Err: err})
	}
	return results
}

// requestPayment runs after commit. A failure leaves the booking in
// payment_pending for finance to pick up manually.
func (c *approvalCommandsImpl) requestPayment(ctx context.Context, req PaymentRequest) {
	ack, err := c.payments.RequestPayment(ctx, req)
	if err != nil {
		c.observer.CollaboratorFailed(CollaboratorPayment)
		slog.Error("payment request failed, needs manual reconciliation",
			"code", req.BookingCode,
			"amount", req.Amount.StringFixed(2),
			"error", err.Error())
		return
	}
	slog.Info("payment requested", "code", req.BookingCode, "reference", ack.Reference)
}

func buildPaymentRequest(ctx context.Context, tx shared.Tx, b *booking.Booking) (*PaymentRequest, error) {
	applicant, err := tx.Users().FindByID(ctx, b.ApplicantID())
	if err != nil {
		return nil, mapRepoErr(err)
	}
	dev, err := tx.Devices().FindByID(ctx, b.DeviceID())
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return &PaymentRequest{
		BookingCode:   b.Code(),
		ApplicantID:   applicant.ID(),
		ApplicantName: applicant.Name(),
		ApplicantCode: applicant.UserCode(),
		DeviceCode:    dev.Code(),
		DeviceName:    dev.Model(),
		BookingDate:   b.Date(),
		Slot:          b.Slot(),
		Amount:        b.PaymentAmount(),
	}, nil
}
