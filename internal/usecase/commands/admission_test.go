//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/pkg/errs"
	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AdmissionTestSuite struct {
	suite.Suite
	w *world
}

func (s *AdmissionTestSuite) SetupTest() {
	s.w = newWorld(s.T())
}

func TestAdmissionSuite(t *testing.T) {
	suite.Run(t, new(AdmissionTestSuite))
}

func (s *AdmissionTestSuite) TestInitialStatusAndPayment() {
	advisor := s.w.teacher.UserID
	cases := []struct {
		name    string
		actor   identity.Actor
		advisor *uuid.UUID
		slot    string
		status  booking.Status
		payment string
	}{
		{"student waits for the teacher", s.w.student, &advisor, catalogSlot(0), booking.StatusTeacherPending, "0"},
		{"teacher goes straight to admin", s.w.teacher, nil, catalogSlot(1), booking.StatusPending, "0"},
		{"external pays the external price", s.w.external, nil, catalogSlot(2), booking.StatusPending, "100"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			res, err := s.w.bookings.CreateBooking(context.Background(), tc.actor, s.w.request(tc.slot, tc.advisor))
			s.Require().NoError(err)
			s.Equal(tc.status, res.Booking.Status())
			s.True(decimal.RequireFromString(tc.payment).Equal(res.Booking.PaymentAmount()))
			s.Equal(booking.PaymentUnpaid, res.Booking.PaymentStatus())
			s.Equal(bookingDay, res.Booking.Date())
			s.Empty(res.Displaced)
		})
	}
	s.Equal([]booking.ApplicantClass{booking.ClassStudent, booking.ClassTeacher, booking.ClassExternal}, s.w.observer.admitted)
}

func (s *AdmissionTestSuite) TestCodesAreSequentialPerDay() {
	first := s.w.book(s.T(), s.w.external, morning)
	second := s.w.book(s.T(), s.w.otherExternal, noon)

	s.Equal("BOOK20250601001", first.Booking.Code())
	s.Equal("BOOK20250601002", second.Booking.Code())
}

func (s *AdmissionTestSuite) TestValidationOrder() {
	ctx := context.Background()
	advisor := s.w.teacher.UserID

	s.Run("unknown slot", func() {
		_, err := s.w.bookings.CreateBooking(ctx, s.w.external, s.w.request("07:00-08:00", nil))
		s.True(errs.Is(err, booking.ErrInvalidSlot))
	})

	s.Run("account without an applicant role", func() {
		_, err := s.w.bookings.CreateBooking(ctx, s.w.admin, s.w.request(morning, nil))
		s.True(errs.Is(err, booking.ErrNotApplicant))
	})

	s.Run("window bounds", func() {
		for _, offset := range []int{0, -1, 8} {
			req := s.w.request(morning, nil)
			req.Date = now.AddDate(0, 0, offset)
			_, err := s.w.bookings.CreateBooking(ctx, s.w.external, req)
			s.True(errs.Is(err, booking.ErrInvalidDateRange), "offset %d", offset)
		}
		for _, offset := range []int{1, 7} {
			req := s.w.request(morning, nil)
			req.Date = now.AddDate(0, 0, offset)
			_, err := s.w.bookings.CreateBooking(ctx, s.w.otherExternal, req)
			s.NoError(err, "offset %d", offset)
		}
	})

	s.Run("device under maintenance", func() {
		req := s.w.request(morning, nil)
		req.DeviceCode = "D2"
		_, err := s.w.bookings.CreateBooking(ctx, s.w.external, req)
		s.True(errs.Is(err, booking.ErrDeviceUnavailable))
	})

	s.Run("unknown device", func() {
		req := s.w.request(morning, nil)
		req.DeviceCode = "NOPE"
		_, err := s.w.bookings.CreateBooking(ctx, s.w.external, req)
		s.True(errs.Is(err, booking.ErrDeviceUnavailable))
	})

	s.Run("window is checked before the device", func() {
		req := s.w.request(morning, nil)
		req.DeviceCode = "D2"
		req.Date = now
		_, err := s.w.bookings.CreateBooking(ctx, s.w.external, req)
		s.True(errs.Is(err, booking.ErrInvalidDateRange))
	})

	s.Run("student without advisor", func() {
		_, err := s.w.bookings.CreateBooking(ctx, s.w.student, s.w.request(noon, nil))
		s.True(errs.Is(err, booking.ErrAdvisorRequired))
	})

	s.Run("student naming someone else's teacher", func() {
		other := s.w.otherTeacher.UserID
		_, err := s.w.bookings.CreateBooking(ctx, s.w.student, s.w.request(noon, &other))
		s.True(errs.Is(err, booking.ErrNotYourAdvisor))
	})

	s.Run("student naming a non-teacher", func() {
		notTeacher := s.w.external.UserID
		_, err := s.w.bookings.CreateBooking(ctx, s.w.student, s.w.request(noon, &notTeacher))
		s.True(errs.Is(err, booking.ErrNotYourAdvisor))
	})

	s.Run("student naming an unknown user", func() {
		ghost := uuid.New()
		_, err := s.w.bookings.CreateBooking(ctx, s.w.student, s.w.request(noon, &ghost))
		s.True(errs.Is(err, booking.ErrNotYourAdvisor))
	})

	s.Run("conflict is reported before the advisor check", func() {
		s.w.book(s.T(), s.w.teacher, catalogSlot(3))
		_, err := s.w.bookings.CreateBooking(ctx, s.w.student, s.w.request(catalogSlot(3), nil))
		s.True(errs.Is(err, booking.ErrSlotConflict))
	})

	s.Run("valid advisor", func() {
		res, err := s.w.bookings.CreateBooking(ctx, s.w.student, s.w.request(catalogSlot(4), &advisor))
		s.Require().NoError(err)
		s.Equal(&advisor, res.Booking.AdvisorID())
	})
}

func (s *AdmissionTestSuite) TestConflictResolution() {
	ctx := context.Background()

	s.Run("external cannot join an external", func() {
		s.w.book(s.T(), s.w.external, morning)
		_, err := s.w.bookings.CreateBooking(ctx, s.w.otherExternal, s.w.request(morning, nil))
		s.True(errs.Is(err, booking.ErrSlotConflict))
	})

	s.Run("internal cannot displace internal", func() {
		s.w.book(s.T(), s.w.teacher, noon)
		_, err := s.w.bookings.CreateBooking(ctx, s.w.otherTeacher, s.w.request(noon, nil))
		s.True(errs.Is(err, booking.ErrSlotConflict))
	})

	s.Run("external cannot take an internal slot", func() {
		_, err := s.w.bookings.CreateBooking(ctx, s.w.otherExternal, s.w.request(noon, nil))
		s.True(errs.Is(err, booking.ErrSlotConflict))
	})
}

func (s *AdmissionTestSuite) TestDisplacement() {
	t := s.T()
	ext := s.w.book(t, s.w.external, morning).Booking
	s.w.decide(t, s.w.admin, ext.Code(), booking.LevelAdmin, booking.ActionApprove)
	s.w.decide(t, s.w.manager, ext.Code(), booking.LevelManager, booking.ActionApprove)
	s.Equal(booking.StatusPaymentPending, s.w.stored(t, ext.Code()).Status())

	res := s.w.book(t, s.w.student, morning)

	s.Require().Len(res.Displaced, 1)
	displaced := s.w.stored(t, ext.Code())
	s.Equal(booking.StatusCancelled, displaced.Status())
	s.Equal(booking.PaymentRefunded, displaced.PaymentStatus())
	s.True(decimal.RequireFromString("95.00").Equal(displaced.RefundAmount()))
	s.Equal(1, s.w.observer.displaced)

	var notice map[string]string
	jobs := s.w.store.Jobs()
	s.Require().Len(jobs, 1)
	s.Equal(shared.TopicBookingDisplaced, jobs[0].Topic)
	s.Require().NoError(json.Unmarshal(jobs[0].Payload, &notice))
	s.Equal(ext.Code(), notice["booking_code"])
	s.Equal("95.00", notice["refund_amount"])

	// the slot now has exactly one occupant
	occupants := 0
	for _, b := range s.w.store.Bookings() {
		if b.Slot() == morning && b.Occupies() {
			occupants++
		}
	}
	s.Equal(1, occupants)
}

func (s *AdmissionTestSuite) TestDisplacementOfUnpaidBookingHasNoRefund() {
	t := s.T()
	ext := s.w.book(t, s.w.external, morning).Booking
	s.w.store.AddBooking(zeroPriced(ext))

	s.w.book(t, s.w.teacher, morning)

	displaced := s.w.stored(t, ext.Code())
	s.Equal(booking.StatusCancelled, displaced.Status())
	s.True(displaced.RefundAmount().IsZero())
	s.Equal(booking.PaymentUnpaid, displaced.PaymentStatus())
}

func (s *AdmissionTestSuite) TestFailedAdmissionRollsBackDisplacement() {
	t := s.T()
	ext := s.w.book(t, s.w.external, morning).Booking

	_, err := s.w.bookings.CreateBooking(context.Background(), s.w.student, s.w.request(morning, nil))
	s.Require().True(errs.Is(err, booking.ErrAdvisorRequired))

	s.Equal(booking.StatusPending, s.w.stored(t, ext.Code()).Status())
	s.Empty(s.w.store.Jobs())
}

func TestConcurrentAdmissionAdmitsOne(t *testing.T) {
	w := newWorld(t)
	const n = 16

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		clashes int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			actor := w.external
			if i%2 == 1 {
				actor = w.otherExternal
			}
			_, err := w.bookings.CreateBooking(context.Background(), actor, w.request(morning, nil))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errs.Is(err, booking.ErrSlotConflict):
				clashes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, clashes)
	require.Len(t, w.store.Bookings(), 1)
}

func catalogSlot(i int) string {
	return booking.DefaultCatalog().Names()[i]
}

func zeroPriced(b *booking.Booking) *booking.Booking {
	snap := b.Snapshot()
	snap.PaymentAmount = decimal.Zero
	return booking.Reconstruct(snap)
}
