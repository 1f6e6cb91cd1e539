package commands

import (
	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/pkg/errs"
)

var ErrInvalidPaymentStatus = errs.New("payment status must be paid or failed")

// mapRepoErr translates storage errors into domain errors at the use case
// boundary. Domain errors pass through untouched.
func mapRepoErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, booking.ErrNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, booking.ErrSlotConflict)
	case infra.IsKind(err, infra.KindDBFailure), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}
