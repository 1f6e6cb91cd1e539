//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/pkg/clock"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/tests/common/builder"
	"lab-reservation/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	now        = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	bookingDay = time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
)

const (
	morning = "08:00-10:00"
	noon    = "10:00-12:00"
)

type recordingObserver struct {
	mu          sync.Mutex
	admitted    []booking.ApplicantClass
	displaced   int
	transitions [][2]booking.Status
	failures    []string
}

func (o *recordingObserver) BookingAdmitted(c booking.ApplicantClass) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.admitted = append(o.admitted, c)
}

func (o *recordingObserver) BookingsDisplaced(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.displaced += n
}

func (o *recordingObserver) TransitionApplied(from, to booking.Status) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.transitions = append(o.transitions, [2]booking.Status{from, to})
}

func (o *recordingObserver) CollaboratorFailed(c string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures = append(o.failures, c)
}

type fakeRequester struct {
	mu       sync.Mutex
	requests []commands.PaymentRequest
	err      error
}

func (f *fakeRequester) RequestPayment(_ context.Context, req commands.PaymentRequest) (*commands.PaymentAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &commands.PaymentAck{Reference: "FIN-" + req.BookingCode}, nil
}

// world is a seeded lab: one bookable device, one maintenance device, and
// an actor per role. The student is advised by the teacher.
type world struct {
	store    *memstore.Store
	clock    *clock.MockClock
	observer *recordingObserver
	payments *fakeRequester

	bookings  commands.BookingCommands
	approvals commands.ApprovalCommands
	payment   commands.PaymentCommands
	sweep     commands.SweepCommands
	devices   commands.DeviceCommands

	device      *device.Device
	maintenance *device.Device

	student, otherStudent, teacher, otherTeacher identity.Actor
	external, otherExternal, admin, manager      identity.Actor
}

func newWorld(t *testing.T) *world {
	t.Helper()

	w := &world{
		store:    memstore.New(),
		clock:    clock.NewMockClock(now),
		observer: &recordingObserver{},
		payments: &fakeRequester{},
	}
	policy := commands.DefaultBookingPolicy()
	w.bookings = commands.NewBookingCommands(w.store, w.clock, policy, w.observer)
	w.approvals = commands.NewApprovalCommands(w.store, w.clock, policy, w.payments, w.observer)
	w.payment = commands.NewPaymentCommands(w.store, w.clock, policy, w.observer)
	w.sweep = commands.NewSweepCommands(w.store, w.clock, policy, w.observer)
	w.devices = commands.NewDeviceCommands(w.store, w.clock, w.observer)

	w.device = builder.NewDeviceBuilder().WithCode("D1").BuildStored()
	w.maintenance = builder.NewDeviceBuilder().WithCode("D2").InMaintenance().BuildStored()
	w.store.AddDevice(w.device)
	w.store.AddDevice(w.maintenance)

	w.student = w.addUser(builder.NewUserBuilder().AsStudent().WithEmail("s1@example.com"))
	w.otherStudent = w.addUser(builder.NewUserBuilder().AsStudent().WithEmail("s2@example.com"))
	w.teacher = w.addUser(builder.NewUserBuilder().AsTeacher().WithEmail("t1@example.com"))
	w.otherTeacher = w.addUser(builder.NewUserBuilder().AsTeacher().WithEmail("t2@example.com"))
	w.external = w.addUser(builder.NewUserBuilder().AsExternal().WithEmail("e1@example.com"))
	w.otherExternal = w.addUser(builder.NewUserBuilder().AsExternal().WithEmail("e2@example.com"))
	w.admin = w.addUser(builder.NewUserBuilder().AsAdmin())
	w.manager = w.addUser(builder.NewUserBuilder().AsManager())

	w.store.LinkAdvisor(w.student.UserID, w.teacher.UserID)
	w.store.LinkAdvisor(w.otherStudent.UserID, w.otherTeacher.UserID)
	return w
}

func (w *world) addUser(b *builder.UserBuilder) identity.Actor {
	u := b.BuildStored()
	w.store.AddUser(u)
	return identity.NewActor(u.ID(), u.Roles())
}

func (w *world) request(slot string, advisor *uuid.UUID) commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		DeviceCode: "D1",
		Date:       bookingDay,
		Slot:       slot,
		Purpose:    "measurement",
		AdvisorID:  advisor,
	}
}

func (w *world) book(t *testing.T, actor identity.Actor, slot string) *commands.CreateBookingResult {
	t.Helper()
	var advisor *uuid.UUID
	if actor.UserID == w.student.UserID {
		id := w.teacher.UserID
		advisor = &id
	}
	res, err := w.bookings.CreateBooking(context.Background(), actor, w.request(slot, advisor))
	require.NoError(t, err)
	return res
}

func (w *world) decide(t *testing.T, actor identity.Actor, code string, level booking.Level, action booking.Action) *booking.Booking {
	t.Helper()
	b, err := w.approvals.Decide(context.Background(), actor, code, commands.Decision{Level: level, Action: action})
	require.NoError(t, err)
	return b
}

func (w *world) stored(t *testing.T, code string) *booking.Booking {
	t.Helper()
	b, ok := w.store.Booking(code)
	require.True(t, ok, "booking %s not stored", code)
	return b
}

// grantExternal walks an external booking through admin, manager and payment.
func (w *world) grantExternal(t *testing.T, code string) {
	t.Helper()
	w.decide(t, w.admin, code, booking.LevelAdmin, booking.ActionApprove)
	w.decide(t, w.manager, code, booking.LevelManager, booking.ActionApprove)
	_, err := w.payment.HandlePaymentCallback(context.Background(), commands.PaymentCallback{BookingCode: code, Status: commands.CallbackPaid})
	require.NoError(t, err)
}
