// Package services holds the resource managers. Each manager checks required
// fields, calls its repository and shapes the outcome into a Result, the
// tagged form of the {success, message, data} envelope.
package services

// Kind classifies a Result.
type Kind int

const (
	KindOK Kind = iota
	// KindValidation is reported before any storage call.
	KindValidation
	// KindStorage covers every failed or row-less storage call.
	KindStorage
	// KindEmpty is a listing that returned no rows. Callers see it exactly
	// like KindStorage; it is kept apart for logging and tests.
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	case KindEmpty:
		return "empty"
	}
	return "unknown"
}

// Result is either a success carrying data or a failure carrying a kind.
// Both variants carry a human readable message.
type Result[T any] struct {
	kind    Kind
	message string
	data    T
}

func Ok[T any](message string, data T) Result[T] {
	return Result[T]{kind: KindOK, message: message, data: data}
}

func Fail[T any](kind Kind, message string) Result[T] {
	return Result[T]{kind: kind, message: message}
}

func (r Result[T]) Success() bool   { return r.kind == KindOK }
func (r Result[T]) Kind() Kind      { return r.kind }
func (r Result[T]) Message() string { return r.message }

// Data returns the payload of a successful result.
func (r Result[T]) Data() (T, bool) {
	return r.data, r.kind == KindOK
}
