package loader

import (
	"errors"
	"fmt"
)

// Kind classifies a failed load.
type Kind int

const (
	KindTransport Kind = iota + 1
	KindHTTPStatus
	KindDecode
	KindShapeMismatch
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http status"
	case KindDecode:
		return "decode"
	case KindShapeMismatch:
		return "shape mismatch"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is against a *FetchError.
var (
	ErrTransport     = errors.New("transport failure")
	ErrHTTPStatus    = errors.New("non-success status")
	ErrDecode        = errors.New("malformed json")
	ErrShapeMismatch = errors.New("unexpected payload shape")
)

// FetchError is returned for every failed load.
type FetchError struct {
	Kind       Kind
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("load %s: received non-2xx status code: %d", e.Source, e.StatusCode)
	}
	if e.Err == nil {
		return fmt.Sprintf("load %s: %s", e.Source, e.Kind)
	}
	return fmt.Sprintf("load %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is matches the kind sentinels.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrHTTPStatus:
		return e.Kind == KindHTTPStatus
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrShapeMismatch:
		return e.Kind == KindShapeMismatch
	}
	return false
}

// ShapeMismatch builds the error callers return when a decoded payload lacks
// expected fields.
func ShapeMismatch(source, what string) error {
	return &FetchError{Kind: KindShapeMismatch, Source: source, Err: errors.New(what)}
}
