package atom

import "errors"

// ErrValue is returned when an Atomize request violates the table's
// contract (e.g. a byte sequence too long to represent).
var ErrValue = errors.New("value error")
