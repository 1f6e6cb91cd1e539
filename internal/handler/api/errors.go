package api

import (
	"net/http"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/handler/httperr"
	"lab-reservation/internal/pkg/errs"
	"lab-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("request is not authenticated")

type errorMapping struct {
	target error
	status int
	msg    string
}

// ordered: the first matching sentinel wins
var domainErrors = []errorMapping{
	{booking.ErrInvalidDateRange, http.StatusBadRequest, "Booking date outside the booking window"},
	{booking.ErrInvalidSlot, http.StatusBadRequest, "Unknown time slot"},
	{booking.ErrInvalidStatus, http.StatusBadRequest, "Invalid booking status"},
	{booking.ErrInvalidDecision, http.StatusBadRequest, "Invalid approval decision"},
	{device.ErrInvalidStatus, http.StatusBadRequest, "Invalid device status"},
	{commands.ErrInvalidPaymentStatus, http.StatusBadRequest, "Payment status must be paid or failed"},
	{errs.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},

	{booking.ErrUnauthorized, http.StatusForbidden, "Not authorized for this action"},
	{booking.ErrNotOwner, http.StatusForbidden, "Only the applicant can do this"},
	{booking.ErrNotYourAdvisor, http.StatusForbidden, "Teacher is not your advisor"},
	{booking.ErrNotApplicant, http.StatusForbidden, "Account cannot apply for bookings"},

	{booking.ErrNotFound, http.StatusNotFound, "Booking not found"},
	{device.ErrNotFound, http.StatusNotFound, "Device not found"},

	{booking.ErrSlotConflict, http.StatusConflict, "Time slot already occupied"},
	{booking.ErrAlreadyTerminal, http.StatusConflict, "Booking already closed"},
	{booking.ErrTooLate, http.StatusConflict, "Booking can no longer be cancelled"},
	{booking.ErrInvalidTransition, http.StatusConflict, "Transition not allowed from current status"},
	{device.ErrDiscardedIsTerminal, http.StatusConflict, "Discarded device cannot change status"},
	{device.ErrStatusUnchanged, http.StatusConflict, "Device already in requested status"},

	{booking.ErrDeviceUnavailable, http.StatusUnprocessableEntity, "Device unavailable for booking"},
	{booking.ErrAdvisorRequired, http.StatusUnprocessableEntity, "Advisor is required for student bookings"},
}

func statusFor(err error) (int, string) {
	for _, m := range domainErrors {
		if errs.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// abortWithDomainError translates use case errors into HTTP responses.
func abortWithDomainError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	httperr.AbortWithError(c, status, err, msg, nil)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}
