package errorvalues

import "errors"

var (
	ErrUserExists   = errors.New("such user already exists")
	ErrUserNotFound = errors.New("user doesn't exists")
	ErrInvalidToken = errors.New("invalid token")

	ErrGroupNotFound     = errors.New("group not found")
	ErrInviteCodeUnknown = errors.New("invite code is not valid")
	ErrInviteCodeTaken   = errors.New("invite code already taken")
	ErrAlreadyMember     = errors.New("user is already an active member of the group")
	ErrGroupFull         = errors.New("group has reached its member limit")
	ErrNotGroupMember    = errors.New("user is not an active member of the group")
	ErrOwnerCannotLeave  = errors.New("owner cannot leave the group without transferring ownership")
	ErrNotGroupAdmin     = errors.New("operation requires owner or admin role")

	ErrValidation          = errors.New("validation failed")
	ErrNegativeSolvedCount = errors.New("solved count cannot be negative")
	ErrDateInFuture        = errors.New("report date cannot be in the future")
	ErrBadDateFormat       = errors.New("date must be in YYYY-MM-DD form")
	ErrBadDateRange        = errors.New("date range start must not be after end")

	ErrMailDelivery = errors.New("mail delivery failed")
)
