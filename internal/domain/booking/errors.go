package booking

import "lab-reservation/internal/pkg/errs"

var (
	ErrInvalidDateRange  = errs.New("booking date outside the booking window")
	ErrDeviceUnavailable = errs.New("device unavailable for booking")
	ErrSlotConflict      = errs.New("time slot already occupied")
	ErrAdvisorRequired   = errs.New("advisor is required for student bookings")
	ErrNotYourAdvisor    = errs.New("referenced teacher is not the applicant's advisor")
	ErrUnauthorized      = errs.New("actor not authorized for this action")
	ErrAlreadyTerminal   = errs.New("booking already in a terminal status")
	ErrNotOwner          = errs.New("actor is not the applicant")
	ErrTooLate           = errs.New("booking can no longer be cancelled")
	ErrNotFound          = errs.New("booking not found")

	ErrInvalidSlot       = errs.New("unknown time slot")
	ErrInvalidTransition = errs.New("transition not allowed from current status")
	ErrInvalidStatus     = errs.New("invalid booking status")
	ErrNotApplicant      = errs.New("actor holds no applicant role")
	ErrInvalidDecision   = errs.New("invalid approval decision")
	ErrInvalidCatalog    = errs.New("invalid slot catalog")
)
