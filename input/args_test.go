package input

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParseArgs(t *testing.T) {
	testCases := []struct {
		title           string
		args            []string
		options         Options
		stdin           string
		expectedRequest *Request
		shouldBeError   bool
	}{
		{
			title: "No arguments",
			args:  []string{},
			expectedRequest: &Request{
				Method: MethodGet,
				Header: Header{Fields: []Field{DefaultHeader}},
			},
		},
		{
			title: "URL only",
			args:  []string{"http://example.com/hello"},
			expectedRequest: &Request{
				Method: MethodGet,
				URL:    "http://example.com/hello",
				Header: Header{Fields: []Field{DefaultHeader}},
			},
		},
		{
			title: "Lower case method",
			args:  []string{"patch", "http://example.com/hello"},
			expectedRequest: &Request{
				Method: MethodPatch,
				URL:    "http://example.com/hello",
				Header: Header{Fields: []Field{DefaultHeader}},
			},
		},
		{
			title: "Header items replace the default header",
			args:  []string{"POST", "http://example.com/", "X-Foo:bar", "X-Foo:baz", "X-Empty:"},
			expectedRequest: &Request{
				Method: MethodPost,
				URL:    "http://example.com/",
				Header: Header{Fields: []Field{
					{Name: "X-Foo", Value: "bar"},
					{Name: "X-Foo", Value: "baz"},
					{Name: "X-Empty", Value: ""},
				}},
			},
		},
		{
			title:   "Body from --data",
			args:    []string{"PUT", "http://example.com/"},
			options: Options{Body: `{"a":1}`},
			expectedRequest: &Request{
				Method: MethodPut,
				URL:    "http://example.com/",
				Header: Header{Fields: []Field{DefaultHeader}},
				Body:   `{"a":1}`,
			},
		},
		{
			title:   "Body from stdin",
			args:    []string{"POST", "http://example.com/"},
			options: Options{ReadStdin: true},
			stdin:   "hello",
			expectedRequest: &Request{
				Method: MethodPost,
				URL:    "http://example.com/",
				Header: Header{Fields: []Field{DefaultHeader}},
				Body:   "hello",
			},
		},
		{
			title:         "Stdin and --data mixed",
			args:          []string{"POST", "http://example.com/"},
			options:       Options{ReadStdin: true, Body: "x"},
			shouldBeError: true,
		},
		{
			title:         "Unknown method",
			args:          []string{"FETCH", "http://example.com/hello"},
			shouldBeError: true,
		},
		{
			title:         "URL missing",
			args:          []string{"POST"},
			shouldBeError: true,
		},
		{
			title:         "Invalid header field name",
			args:          []string{"GET", "http://example.com/", `Bad"header":test`},
			shouldBeError: true,
		},
		{
			title:         "Not a header item",
			args:          []string{"GET", "http://example.com/", "hello=world"},
			shouldBeError: true,
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			request, err := ParseArgs(tt.args, strings.NewReader(tt.stdin), &tt.options)
			if (err != nil) != tt.shouldBeError {
				t.Errorf("unexpected error: shouldBeError=%v, err=%v", tt.shouldBeError, err)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(request, tt.expectedRequest) {
				t.Errorf("unexpected request: expected=%+v, actual=%+v", tt.expectedRequest, request)
			}
		})
	}
}

func TestParseArgs_UsageError(t *testing.T) {
	_, err := ParseArgs([]string{"DELETE"}, strings.NewReader(""), &Options{})
	if _, ok := errors.Cause(err).(*UsageError); !ok {
		t.Errorf("expected usage error: err=%+v", err)
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods {
		actual, err := ParseMethod(strings.ToLower(string(m)))
		if err != nil {
			t.Errorf("unexpected error: method=%s, err=%v", m, err)
		}
		if actual != m {
			t.Errorf("unexpected method: expected=%s, actual=%s", m, actual)
		}
	}
	if _, err := ParseMethod("GET/POST"); err == nil {
		t.Errorf("expected error for invalid method")
	}
}

func TestMethod_NextPrev(t *testing.T) {
	if MethodGet.Next() != MethodPost {
		t.Errorf("unexpected next of GET: %s", MethodGet.Next())
	}
	if MethodPatch.Next() != MethodOptions {
		t.Errorf("Next should wrap around: %s", MethodPatch.Next())
	}
	if MethodOptions.Prev() != MethodPatch {
		t.Errorf("Prev should wrap around: %s", MethodOptions.Prev())
	}
	if Method("FETCH").Next() != MethodOptions {
		t.Errorf("unknown method should step to the first one")
	}
}

func TestRequest_Clone(t *testing.T) {
	// Setup
	original := NewRequest()
	original.URL = "http://example.com/"

	// Exercise
	clone := original.Clone()
	original.Header.Fields[0].Value = "text/plain"
	original.Header.Fields = append(original.Header.Fields, Field{Name: "X-Foo", Value: "bar"})
	original.URL = "http://example.org/"

	// Verify
	expected := Request{
		Method: MethodGet,
		URL:    "http://example.com/",
		Header: Header{Fields: []Field{DefaultHeader}},
	}
	if !reflect.DeepEqual(clone, expected) {
		t.Errorf("clone shares state with original: expected=%+v, actual=%+v", expected, clone)
	}
}
