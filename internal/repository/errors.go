package repository

import "errors"

// ErrNotFound is returned when no row matches; for teacher-scoped
// resources this also covers rows owned by another teacher, which are
// indistinguishable from missing ones.
var ErrNotFound = errors.New("resource not found")
