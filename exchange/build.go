package exchange

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nojima/httpui/input"
	"github.com/nojima/httpui/version"
	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"
)

func BuildHTTPRequest(ctx context.Context, in *input.Request) (*http.Request, error) {
	if !in.Method.Valid() {
		return nil, newError(KindInvalidRequest, errors.Errorf("unsupported method: %q", in.Method))
	}

	header, err := buildHTTPHeader(in)
	if err != nil {
		return nil, newError(KindInvalidRequest, err)
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", fmt.Sprintf("httpui/%s", version.Current()))
	}

	var body io.Reader
	if in.Body != "" {
		body = strings.NewReader(in.Body)
	}

	r, err := http.NewRequestWithContext(ctx, string(in.Method), in.URL, body)
	if err != nil {
		return nil, newError(KindInvalidRequest, errors.Wrap(err, "building HTTP request"))
	}
	r.Header = header
	if host := header.Get("Host"); host != "" {
		r.Host = host
	}
	return r, nil
}

// buildHTTPHeader adds every field in order, so repeated names keep all their values.
func buildHTTPHeader(in *input.Request) (http.Header, error) {
	header := make(http.Header)
	for _, field := range in.Header.Fields {
		if !httpguts.ValidHeaderFieldName(field.Name) {
			return nil, errors.Errorf("invalid header field name: %q", field.Name)
		}
		if !httpguts.ValidHeaderFieldValue(field.Value) {
			return nil, errors.Errorf("invalid value for header field '%s': %q", field.Name, field.Value)
		}
		header.Add(field.Name, field.Value)
	}
	return header, nil
}
