package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest = "failed to parse request body"

	ErrStoreUnavailable = errors.New("backing store unavailable")
)

// DateLayout is the only textual form dates take across the API and the
// backing store. Time-of-day never crosses either boundary.
const DateLayout = "2006-01-02"
