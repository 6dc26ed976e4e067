package storage

import "errors"

// Kind tells a failure to reach the document apart from bad contents.
type Kind int

const (
	// KindOpen means the document could not be opened, created or read.
	KindOpen Kind = iota + 1
	// KindCodec means the document could not be parsed or serialized.
	KindCodec
)

// Op names the storage operation that failed.
type Op string

const (
	OpLoad  Op = "load"
	OpWrite Op = "write"
)

var (
	// ErrOpen matches every *Error of KindOpen.
	ErrOpen = errors.New("storage: open failure")
	// ErrCodec matches every *Error of KindCodec.
	ErrCodec = errors.New("storage: codec failure")
)

// Error is returned by Load, Write and Decode. Err is the underlying cause.
type Error struct {
	Op   Op
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.message() + ": " + e.Err.Error()
}

func (e *Error) message() string {
	switch {
	case e.Kind == KindOpen:
		return "failed to open storage"
	case e.Op == OpWrite:
		return "failed to write storage"
	default:
		return "failed to load storage"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrOpen:
		return e.Kind == KindOpen
	case ErrCodec:
		return e.Kind == KindCodec
	}
	return false
}
