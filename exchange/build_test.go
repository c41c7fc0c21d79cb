package exchange

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"reflect"
	"testing"

	"github.com/nojima/httpui/input"
	"github.com/nojima/httpui/version"
	"github.com/pkg/errors"
)

func readAll(t *testing.T, reader io.Reader) string {
	b, err := ioutil.ReadAll(reader)
	if err != nil {
		t.Fatalf("failed to read all: %s", err)
	}
	return string(b)
}

func TestBuildHTTPRequest(t *testing.T) {
	// Setup
	in := &input.Request{
		Method: input.MethodPost,
		URL:    "https://localhost:4000/foo?q=hello+world",
		Header: input.Header{
			Fields: []input.Field{
				{Name: "X-Foo", Value: "fizz buzz"},
				{Name: "Host", Value: "example.com:8080"},
				{Name: "X-Foo", Value: "again"},
			},
		},
		Body: `{"hoge": "fuga"}`,
	}

	// Exercise
	actual, err := BuildHTTPRequest(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}

	// Verify
	if actual.Method != "POST" {
		t.Errorf("unexpected method: expected=%v, actual=%v", "POST", actual.Method)
	}
	expectedURL := "https://localhost:4000/foo?q=hello+world"
	if actual.URL.String() != expectedURL {
		t.Errorf("unexpected URL: expected=%v, actual=%v", expectedURL, actual.URL)
	}
	expectedHeader := http.Header{
		"X-Foo":      []string{"fizz buzz", "again"},
		"User-Agent": []string{fmt.Sprintf("httpui/%s", version.Current())},
		"Host":       []string{"example.com:8080"},
	}
	if !reflect.DeepEqual(expectedHeader, actual.Header) {
		t.Errorf("unexpected header: expected=%v, actual=%v", expectedHeader, actual.Header)
	}
	expectedHost := "example.com:8080"
	if actual.Host != expectedHost {
		t.Errorf("unexpected host: expected=%v, actual=%v", expectedHost, actual.Host)
	}
	expectedBody := `{"hoge": "fuga"}`
	if body := readAll(t, actual.Body); body != expectedBody {
		t.Errorf("unexpected body: expected=%v, actual=%v", expectedBody, body)
	}
	if actual.ContentLength != int64(len(expectedBody)) {
		t.Errorf("unexpected content length: expected=%v, actual=%v", len(expectedBody), actual.ContentLength)
	}
}

func TestBuildHTTPRequest_KeepsUserAgent(t *testing.T) {
	in := &input.Request{
		Method: input.MethodGet,
		URL:    "http://example.com/",
		Header: input.Header{Fields: []input.Field{{Name: "User-Agent", Value: "curl/8.0"}}},
	}
	actual, err := BuildHTTPRequest(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}
	if ua := actual.Header.Get("User-Agent"); ua != "curl/8.0" {
		t.Errorf("unexpected user agent: %s", ua)
	}
	if actual.ContentLength != 0 {
		t.Errorf("empty body should have no content length: %d", actual.ContentLength)
	}
}

func TestBuildHTTPRequest_Invalid(t *testing.T) {
	testCases := []struct {
		title string
		in    input.Request
	}{
		{
			title: "Empty header name",
			in: input.Request{
				Method: input.MethodGet,
				URL:    "http://example.com/",
				Header: input.Header{Fields: []input.Field{{Name: "", Value: "x"}}},
			},
		},
		{
			title: "Header name with space",
			in: input.Request{
				Method: input.MethodGet,
				URL:    "http://example.com/",
				Header: input.Header{Fields: []input.Field{{Name: "X Foo", Value: "x"}}},
			},
		},
		{
			title: "Header value with newline",
			in: input.Request{
				Method: input.MethodGet,
				URL:    "http://example.com/",
				Header: input.Header{Fields: []input.Field{{Name: "X-Foo", Value: "a\nb"}}},
			},
		},
		{
			title: "Unknown method",
			in: input.Request{
				Method: input.Method("FETCH"),
				URL:    "http://example.com/",
			},
		},
		{
			title: "Unparseable URL",
			in: input.Request{
				Method: input.MethodGet,
				URL:    "http://[::1",
			},
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			_, err := BuildHTTPRequest(context.Background(), &tt.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			var e *Error
			if !errors.As(err, &e) || e.Kind != KindInvalidRequest {
				t.Errorf("unexpected error kind: err=%#v", err)
			}
			if err.Error() == "" {
				t.Errorf("error text should not be empty")
			}
		})
	}
}
