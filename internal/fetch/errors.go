package fetch

import (
	"errors"
	"fmt"
)

// Kind classifies why a fetch failed.
type Kind int

const (
	KindLinkUnavailable Kind = iota + 1
	KindTransport
	KindMalformed
	KindTimeout
	KindBadStatus
)

func (k Kind) String() string {
	switch k {
	case KindLinkUnavailable:
		return "link_unavailable"
	case KindTransport:
		return "transport_failure"
	case KindMalformed:
		return "malformed_response"
	case KindTimeout:
		return "timeout"
	case KindBadStatus:
		return "bad_status"
	default:
		return "unknown"
	}
}

// Error is returned by Fetch for every failure.
type Error struct {
	Kind   Kind
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindBadStatus:
		return fmt.Sprintf("fetch: %s: status %d", e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("fetch: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("fetch: %s", e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from err, or 0 if err is not a fetch error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// Banner is the short text shown on the panel when err is fatal.
func Banner(err error) string {
	switch KindOf(err) {
	case KindLinkUnavailable:
		return "Failed to connect to WiFi"
	case KindMalformed:
		return "No text in response"
	default:
		return "Failed to fetch text"
	}
}
