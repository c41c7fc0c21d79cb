package exchange

import "fmt"

type Kind int

const (
	// KindInvalidRequest covers requests that could not be built: bad method,
	// unparseable URL, invalid header name or value.
	KindInvalidRequest Kind = iota + 1
	KindTransport
	KindReadBody
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid request"
	case KindTransport:
		return "transport"
	case KindReadBody:
		return "read body"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Cause() error {
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}
