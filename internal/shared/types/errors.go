package types

import "errors"

var (
	ErrNoSubscriptions    = errors.New("no subscriptions to process. Pass --subscription or provide a subscriptions config file")
	ErrActivationConflict = errors.New("activation request already exists")
)
