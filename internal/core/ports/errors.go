package ports

import "errors"

// ErrVersionConflict is returned by Update when the aggregate's stored
// version no longer matches the version it was loaded with. The competing
// transition already won; callers must not retry blindly.
var ErrVersionConflict = errors.New("aggregate version conflict")

// ErrConfirmationNotFound is returned by GetFirstUnapplied when no payment
// confirmation awaits processing. The sweep job treats it as an idle tick.
var ErrConfirmationNotFound = errors.New("no unapplied payment confirmation found")
