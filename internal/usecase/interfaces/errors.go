package interfaces

import "errors"

// Errors every persistence adapter must return so usecases can tell a lost
// race from an infrastructure failure.
var (
	ErrAlreadyExists   = errors.New("item already exists")
	ErrConditionFailed = errors.New("write condition failed")
)

// ErrCallbackIgnored is returned by a payment gateway for notifications that
// carry no signed payment: other topics, pings without a payment id and
// unsigned legacy IPN calls. They must not change any state.
var ErrCallbackIgnored = errors.New("notification carries no signed payment")
