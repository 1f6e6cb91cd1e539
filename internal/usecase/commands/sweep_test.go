//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/shared"
	"lab-reservation/tests/common/builder"
	"lab-reservation/tests/common/memstore"

	"github.com/stretchr/testify/suite"
)

type SweepTestSuite struct {
	suite.Suite
	w *world
}

func (s *SweepTestSuite) SetupTest() {
	s.w = newWorld(s.T())
}

func TestSweepSuite(t *testing.T) {
	suite.Run(t, new(SweepTestSuite))
}

func (s *SweepTestSuite) seed(code string, date time.Time, mutate func(*builder.BookingBuilder)) {
	b := builder.NewBookingBuilder().
		WithCode(code).
		WithDevice(s.w.device.ID(), s.w.device.Code()).
		WithDate(date).
		With(mutate).
		BuildStored()
	s.w.store.AddBooking(b)
}

func (s *SweepTestSuite) TestExpiresBookingsLeftUndecided() {
	past := bookingDay.AddDate(0, 0, -4)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	s.seed("BOOK20250520001", past, func(b *builder.BookingBuilder) { b.AsStudent() })
	s.seed("BOOK20250520002", past, func(b *builder.BookingBuilder) { b.AsExternal().WithStatus("admin_approved") })
	s.seed("BOOK20250520003", today, func(b *builder.BookingBuilder) { b.AsTeacher() })
	s.seed("BOOK20250520004", past, func(b *builder.BookingBuilder) { b.AsExternal().WithStatus("payment_pending") })
	s.seed("BOOK20250520005", past, func(b *builder.BookingBuilder) { b.AsTeacher().WithStatus("manager_approved") })
	s.seed("BOOK20250520006", past, func(b *builder.BookingBuilder) { b.AsStudent().WithStatus("teacher_rejected") })
	s.seed("BOOK20250520007", bookingDay, func(b *builder.BookingBuilder) { b.AsTeacher() })

	n, err := s.w.sweep.ExpireStale(context.Background())

	s.Require().NoError(err)
	s.Equal(4, n)

	want := map[string]booking.Status{
		"BOOK20250520001": booking.StatusCancelled,
		"BOOK20250520002": booking.StatusCancelled,
		"BOOK20250520003": booking.StatusCancelled,
		"BOOK20250520004": booking.StatusCancelled,
		"BOOK20250520005": booking.StatusManagerApproved,
		"BOOK20250520006": booking.StatusTeacherRejected,
		"BOOK20250520007": booking.StatusPending,
	}
	for code, status := range want {
		s.Equal(status, s.w.stored(s.T(), code).Status(), code)
	}

	expired := s.w.stored(s.T(), "BOOK20250520004")
	s.Equal(booking.PaymentUnpaid, expired.PaymentStatus(), "expiry never refunds")
	s.True(expired.RefundAmount().IsZero())
	s.Len(s.w.observer.transitions, 4)
}

func (s *SweepTestSuite) TestSecondRunFindsNothing() {
	s.seed("BOOK20250520001", bookingDay.AddDate(0, 0, -3), func(b *builder.BookingBuilder) { b.AsTeacher() })

	first, err := s.w.sweep.ExpireStale(context.Background())
	s.Require().NoError(err)
	second, err := s.w.sweep.ExpireStale(context.Background())
	s.Require().NoError(err)

	s.Equal(1, first)
	s.Equal(0, second)
}

func (s *SweepTestSuite) TestRunsPastOneBatch() {
	past := bookingDay.AddDate(0, 0, -5)
	for i := 1; i <= 130; i++ {
		s.seed(fmt.Sprintf("BOOK20250501%03d", i), past, func(b *builder.BookingBuilder) { b.AsTeacher() })
	}

	n, err := s.w.sweep.ExpireStale(context.Background())

	s.Require().NoError(err)
	s.Equal(130, n)
}

func (s *SweepTestSuite) TestSkippedRowDoesNotEndSweepEarly() {
	past := bookingDay.AddDate(0, 0, -5)
	for i := 1; i <= 150; i++ {
		s.seed(fmt.Sprintf("BOOK20250501%03d", i), past, func(b *builder.BookingBuilder) { b.AsTeacher() })
	}
	granted := builder.NewBookingBuilder().
		WithCode("BOOK20250501999").
		WithDevice(s.w.device.ID(), s.w.device.Code()).
		WithDate(past).
		AsTeacher().
		WithStatus("manager_approved").
		BuildStored()
	store := stickyStore{Store: s.w.store, head: granted}
	sweep := commands.NewSweepCommands(store, s.w.clock, commands.DefaultBookingPolicy(), s.w.observer)

	n, err := sweep.ExpireStale(context.Background())

	s.Require().NoError(err)
	s.Equal(150, n)
}

// stickyStore puts one booking that cannot expire at the head of every
// stale batch, as a row changed by a concurrent writer would appear.
type stickyStore struct {
	*memstore.Store
	head *booking.Booking
}

func (s stickyStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.Store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, stickyTx{Tx: tx, head: s.head})
	})
}

type stickyTx struct {
	shared.Tx
	head *booking.Booking
}

func (t stickyTx) Bookings() shared.BookingRepository {
	return stickyBookings{BookingRepository: t.Tx.Bookings(), head: t.head}
}

type stickyBookings struct {
	shared.BookingRepository
	head *booking.Booking
}

func (r stickyBookings) FindStale(ctx context.Context, before time.Time, limit int) ([]*booking.Booking, error) {
	rows, err := r.BookingRepository.FindStale(ctx, before, limit-1)
	if err != nil {
		return nil, err
	}
	return append([]*booking.Booking{r.head}, rows...), nil
}
