package service

import "errors"

// ErrNotOwner is returned when a user touches a resource that belongs to
// someone else. Handlers map it to 404 rather than 403 to avoid leaking
// resource existence.
var ErrNotOwner = errors.New("resource does not belong to user")
