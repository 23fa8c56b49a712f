package earlydeparture

import "errors"

var (
	ErrRequestNotFound        = errors.New("early departure request not found")
	ErrRequestAlreadyResolved = errors.New("early departure request has already been approved or rejected")
)
