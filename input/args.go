package input

import (
	"io"
	"io/ioutil"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	reMethod          = regexp.MustCompile(`^[a-zA-Z]+$`)
	reHeaderFieldName = regexp.MustCompile("^[-!#$%&'*+.^_|~a-zA-Z0-9]+$")
)

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// ParseArgs turns "[METHOD] [URL] [Name:Value ...]" into the request the editor
// starts with. Every argument is optional; missing parts keep the defaults of NewRequest.
func ParseArgs(args []string, stdin io.Reader, options *Options) (*Request, error) {
	in := NewRequest()

	var argItems []string
	switch {
	case len(args) == 0:
	case len(args) == 1:
		if _, err := ParseMethod(args[0]); err == nil {
			return nil, newUsageError("URL is required after METHOD")
		}
		in.URL = args[0]
	default:
		if reMethod.MatchString(args[0]) {
			method, err := ParseMethod(args[0])
			if err != nil {
				return nil, newUsageError(err.Error())
			}
			in.Method = method
			in.URL = args[1]
			argItems = args[2:]
		} else {
			in.URL = args[0]
			argItems = args[1:]
		}
	}

	if len(argItems) > 0 {
		in.Header.Fields = nil
	}
	for _, arg := range argItems {
		field, err := parseHeaderItem(arg)
		if err != nil {
			return nil, err
		}
		in.Header.Fields = append(in.Header.Fields, field)
	}

	in.Body = options.Body
	if options.ReadStdin {
		if options.Body != "" {
			return nil, errors.New("request body (from stdin) and --data cannot be mixed")
		}
		b, err := ioutil.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		in.Body = string(b)
	}

	return in, nil
}

func parseHeaderItem(s string) (Field, error) {
	i := strings.Index(s, ":")
	if i < 0 {
		return Field{}, newUsageError("unknown request item (expected Name:Value): " + s)
	}
	name, value := s[:i], s[i+1:]
	if !isValidHeaderFieldName(name) {
		return Field{}, errors.Errorf("invalid header field name: %s", name)
	}
	return Field{Name: name, Value: value}, nil
}

func isValidHeaderFieldName(s string) bool {
	return reHeaderFieldName.MatchString(s)
}
