package exchange

import (
	"context"
	"io/ioutil"
	"net/http"

	"github.com/nojima/httpui/input"
	"github.com/nojima/httpui/output"
	"github.com/pkg/errors"
)

// Exchange performs one blocking HTTP call and returns the text to show for it.
// Failures are returned as *Error; any HTTP status counts as success.
func Exchange(ctx context.Context, client *http.Client, request *input.Request) (string, error) {
	r, err := BuildHTTPRequest(ctx, request)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(r)
	if err != nil {
		return "", newError(KindTransport, errors.Wrap(err, "sending HTTP request"))
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", newError(KindReadBody, errors.Wrap(err, "reading response body"))
	}

	if output.IsJSON(resp.Header.Get("Content-Type")) {
		return output.PrettyFormatJSON(string(body)), nil
	}
	return string(body), nil
}
