package services

import "errors"

// ErrInvalidInput is returned when a required field is missing or an
// identifier is malformed.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound is returned when the requested item is absent. For watch-list
// removal this covers both a missing document and a missing entry; the store
// update reports zero modifications in either case and the two are not told
// apart.
var ErrNotFound = errors.New("item not found")

// ErrDuplicateItem is returned when the item is already on the user's watch
// list. It is a domain conflict, not a failure: nothing was written.
var ErrDuplicateItem = errors.New("item already in watch list")
