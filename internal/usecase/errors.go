package usecase

import "errors"

// ErrInternal covers storage and hashing failures. The cause is logged
// where it happens and never travels to the client.
var ErrInternal = errors.New("internal error")
