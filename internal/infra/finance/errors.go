package finance

import "lab-reservation/internal/pkg/errs"

var (
	ErrInternal        = errs.New("finance: internal error")
	ErrInvalidResponse = errs.New("finance: invalid response")
	ErrRejected        = errs.New("finance: payment request rejected")
)
