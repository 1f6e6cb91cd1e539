//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for use case tests.
// Transactions run one at a time and roll back on error.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/pkg/errs"
	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrLedgerDown = errs.New("ledger unavailable")

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type state struct {
	bookings  map[string]booking.Snapshot
	devices   map[uuid.UUID]*device.Device
	approvals []*booking.ApprovalRecord
	sequences map[string]int
	borrows   []shared.BorrowEntry
	returns   []shared.ReturnEntry
	discards  []shared.DiscardEntry
	jobs      []Job
	lastLogin map[uuid.UUID]time.Time
}

func (s *state) clone() *state {
	c := &state{
		bookings:  make(map[string]booking.Snapshot, len(s.bookings)),
		devices:   make(map[uuid.UUID]*device.Device, len(s.devices)),
		approvals: append([]*booking.ApprovalRecord(nil), s.approvals...),
		sequences: make(map[string]int, len(s.sequences)),
		borrows:   append([]shared.BorrowEntry(nil), s.borrows...),
		returns:   append([]shared.ReturnEntry(nil), s.returns...),
		discards:  append([]shared.DiscardEntry(nil), s.discards...),
		jobs:      append([]Job(nil), s.jobs...),
		lastLogin: make(map[uuid.UUID]time.Time, len(s.lastLogin)),
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.devices {
		c.devices[k] = copyDevice(v)
	}
	for k, v := range s.sequences {
		c.sequences[k] = v
	}
	for k, v := range s.lastLogin {
		c.lastLogin[k] = v
	}
	return c
}

type Store struct {
	mu       sync.Mutex
	st       *state
	users    map[uuid.UUID]*user.User
	advisors map[[2]uuid.UUID]bool

	// LedgerFails makes every ledger write return ErrLedgerDown.
	LedgerFails bool
}

func New() *Store {
	return &Store{
		st: &state{
			bookings:  map[string]booking.Snapshot{},
			devices:   map[uuid.UUID]*device.Device{},
			sequences: map[string]int{},
			lastLogin: map[uuid.UUID]time.Time{},
		},
		users:    map[uuid.UUID]*user.User{},
		advisors: map[[2]uuid.UUID]bool{},
	}
}

// Seeding

func (s *Store) AddUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

func (s *Store) AddDevice(d *device.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.devices[d.ID()] = copyDevice(d)
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.Code()] = b.Snapshot()
}

func (s *Store) LinkAdvisor(studentID, teacherID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advisors[[2]uuid.UUID{studentID, teacherID}] = true
}

// Inspection

func (s *Store) Booking(code string) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.st.bookings[code]
	if !ok {
		return nil, false
	}
	return booking.Reconstruct(snap), true
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.st.bookings))
	for _, snap := range s.st.bookings {
		out = append(out, booking.Reconstruct(snap))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out
}

func (s *Store) Device(id uuid.UUID) *device.Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDevice(s.st.devices[id])
}

func (s *Store) Approvals() []*booking.ApprovalRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*booking.ApprovalRecord(nil), s.st.approvals...)
}

func (s *Store) Borrows() []shared.BorrowEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.BorrowEntry(nil), s.st.borrows...)
}

func (s *Store) Returns() []shared.ReturnEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.ReturnEntry(nil), s.st.returns...)
}

func (s *Store) Discards() []shared.DiscardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.DiscardEntry(nil), s.st.discards...)
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.st.jobs...)
}

func (s *Store) LastLogin(id uuid.UUID) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.st.lastLogin[id]
	return t, ok
}

// shared.UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &memTx{store: s, st: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memTx{store: s, st: s.st.clone()})
}

type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Bookings() shared.BookingRepository           { return bookingRepo{t} }
func (t *memTx) Approvals() shared.ApprovalRepository         { return approvalRepo{t} }
func (t *memTx) Devices() shared.DeviceRepository             { return deviceRepo{t} }
func (t *memTx) Advisors() shared.AdvisorRepository           { return advisorRepo{t} }
func (t *memTx) CodeSequences() shared.CodeSequenceRepository { return sequenceRepo{t} }
func (t *memTx) Ledger() shared.LedgerRepository              { return ledgerRepo{t} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t} }
func (t *memTx) Users() shared.UserRepository                 { return userRepo{t} }

func notFound(what string) error {
	return infra.NewRepoErr(infra.KindNotFound, what+" not found")
}

type bookingRepo struct{ tx *memTx }

func (r bookingRepo) LockSlot(context.Context, booking.SlotKey) error { return nil }

func (r bookingRepo) FindOccupants(_ context.Context, key booking.SlotKey) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, snap := range r.tx.st.bookings {
		if snap.DeviceID == key.DeviceID && snap.Date.Equal(key.Date) && snap.Slot == key.Slot && snap.Status.Occupies() {
			out = append(out, booking.Reconstruct(snap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out, nil
}

func (r bookingRepo) FindByCodeForUpdate(_ context.Context, code string) (*booking.Booking, error) {
	snap, ok := r.tx.st.bookings[code]
	if !ok {
		return nil, notFound("booking")
	}
	return booking.Reconstruct(snap), nil
}

func (r bookingRepo) FindStale(_ context.Context, before time.Time, limit int) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, snap := range r.tx.st.bookings {
		if snap.Status.Occupies() && snap.Status != booking.StatusManagerApproved && !snap.Date.After(before) {
			out = append(out, booking.Reconstruct(snap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r bookingRepo) Insert(_ context.Context, b *booking.Booking) error {
	if _, dup := r.tx.st.bookings[b.Code()]; dup {
		return infra.NewRepoErr(infra.KindDuplicateKey, "booking code taken")
	}
	r.tx.st.bookings[b.Code()] = b.Snapshot()
	return nil
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.tx.st.bookings[b.Code()]; !ok {
		return notFound("booking")
	}
	r.tx.st.bookings[b.Code()] = b.Snapshot()
	return nil
}

type approvalRepo struct{ tx *memTx }

func (r approvalRepo) Append(_ context.Context, rec *booking.ApprovalRecord) error {
	r.tx.st.approvals = append(r.tx.st.approvals, rec)
	return nil
}

type deviceRepo struct{ tx *memTx }

func (r deviceRepo) FindByCode(_ context.Context, code string) (*device.Device, error) {
	for _, d := range r.tx.st.devices {
		if d.Code() == code {
			return copyDevice(d), nil
		}
	}
	return nil, notFound("device")
}

func (r deviceRepo) FindByID(_ context.Context, id uuid.UUID) (*device.Device, error) {
	d, ok := r.tx.st.devices[id]
	if !ok {
		return nil, notFound("device")
	}
	return copyDevice(d), nil
}

func (r deviceRepo) Update(_ context.Context, d *device.Device) error {
	if _, ok := r.tx.st.devices[d.ID()]; !ok {
		return notFound("device")
	}
	r.tx.st.devices[d.ID()] = copyDevice(d)
	return nil
}

type advisorRepo struct{ tx *memTx }

func (r advisorRepo) IsAdvisor(_ context.Context, studentID, teacherID uuid.UUID) (bool, error) {
	return r.tx.store.advisors[[2]uuid.UUID{studentID, teacherID}], nil
}

type sequenceRepo struct{ tx *memTx }

func (r sequenceRepo) Next(_ context.Context, day time.Time) (int, error) {
	key := day.Format("20060102")
	r.tx.st.sequences[key]++
	return r.tx.st.sequences[key], nil
}

type ledgerRepo struct{ tx *memTx }

func (r ledgerRepo) RecordBorrow(_ context.Context, e shared.BorrowEntry) error {
	if r.tx.store.LedgerFails {
		return ErrLedgerDown
	}
	for _, b := range r.tx.st.borrows {
		if b.BookingID == e.BookingID {
			return infra.NewRepoErr(infra.KindDuplicateKey, "borrow already recorded")
		}
	}
	r.tx.st.borrows = append(r.tx.st.borrows, e)
	return nil
}

func (r ledgerRepo) RecordReturn(_ context.Context, e shared.ReturnEntry) error {
	if r.tx.store.LedgerFails {
		return ErrLedgerDown
	}
	r.tx.st.returns = append(r.tx.st.returns, e)
	return nil
}

func (r ledgerRepo) RecordDiscard(_ context.Context, e shared.DiscardEntry) error {
	if r.tx.store.LedgerFails {
		return ErrLedgerDown
	}
	r.tx.st.discards = append(r.tx.st.discards, e)
	return nil
}

type notificationRepo struct{ tx *memTx }

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.tx.st.jobs = append(r.tx.st.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

type userRepo struct{ tx *memTx }

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.tx.store.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return u, nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	if _, ok := r.tx.store.users[id]; !ok {
		return notFound("user")
	}
	r.tx.st.lastLogin[id] = at
	return nil
}

func copyDevice(d *device.Device) *device.Device {
	if d == nil {
		return nil
	}
	return device.ReconstructDevice(d.ID(), d.Code(), d.Model(), d.Manufacturer(), d.Status(),
		d.PriceInternal(), d.PriceExternal(), d.CreatedAt(), d.UpdatedAt())
}
