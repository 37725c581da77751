package client

import "errors"

var (
	ErrNoIdentity   = errors.New("no user given: pass --user-id or --token")
	ErrInvalidToken = errors.New("cannot read user id from token")
	ErrInvalidID    = errors.New("goal id must be a positive integer")
)
