package core

import "errors"

var (
	ErrNotConnected     = errors.New("hub is not connected")
	ErrNotFound         = errors.New("not found")
	ErrNotAuthenticated = errors.New("not authenticated")
)
