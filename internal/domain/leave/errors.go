package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrInvalidDateRange     = errors.New("leave end date precedes start date")
	ErrAlreadyReviewed      = errors.New("leave request already reviewed")
)
