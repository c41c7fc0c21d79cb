package input

import (
	"strings"

	"github.com/pkg/errors"
)

type Method string

const (
	MethodOptions Method = "OPTIONS"
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodTrace   Method = "TRACE"
	MethodConnect Method = "CONNECT"
	MethodPatch   Method = "PATCH"
)

// Methods lists every selectable method in display order.
var Methods = []Method{
	MethodOptions,
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodHead,
	MethodTrace,
	MethodConnect,
	MethodPatch,
}

// ParseMethod accepts a method name in any case.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(s))
	if !m.Valid() {
		return "", errors.Errorf("unsupported method: %s", s)
	}
	return m, nil
}

func (m Method) Valid() bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

// Next returns the method following m in Methods, wrapping around.
// An unknown method steps to the first one.
func (m Method) Next() Method {
	return m.step(1)
}

func (m Method) Prev() Method {
	return m.step(-1)
}

func (m Method) step(delta int) Method {
	for i, known := range Methods {
		if m == known {
			n := len(Methods)
			return Methods[((i+delta)%n+n)%n]
		}
	}
	return Methods[0]
}

type Request struct {
	Method Method
	URL    string
	Header Header
	Body   string
}

// Header keeps fields in transmission order. Duplicate and empty fields are kept as is.
type Header struct {
	Fields []Field
}

type Field struct {
	Name  string
	Value string
}

var DefaultHeader = Field{Name: "Content-Type", Value: "application/json"}

// NewRequest returns the request the editor starts with.
func NewRequest() *Request {
	return &Request{
		Method: MethodGet,
		Header: Header{
			Fields: []Field{DefaultHeader},
		},
	}
}

func (r *Request) Clone() Request {
	c := *r
	if r.Header.Fields != nil {
		c.Header.Fields = make([]Field, len(r.Header.Fields))
		copy(c.Header.Fields, r.Header.Fields)
	}
	return c
}

type Options struct {
	ReadStdin bool
	Body      string
}
