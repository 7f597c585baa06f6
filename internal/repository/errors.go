package repository

import "errors"

// ErrNotFound is returned when a single-item lookup finds nothing. The
// service layer translates it into app_errors.ErrNotFound so callers never
// see driver errors such as sql.ErrNoRows or a missing bbolt key.
var ErrNotFound = errors.New("repository: not found")
