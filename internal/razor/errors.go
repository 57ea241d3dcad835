package razor

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"

	"github.com/dantech2000/razorctl/internal/ui"
)

// APIError is a non-2xx response from the Razor server.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("razor API %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("razor API %s: %d %s: %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// newAPIError builds an APIError, taking the message from the body's error
// field when the server sent JSON.
func newAPIError(url string, status int, body []byte) *APIError {
	msg := ""
	if gjson.ValidBytes(body) {
		msg = gjson.GetBytes(body, "error").String()
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
		if len(msg) > 200 {
			msg = msg[:197] + "..."
		}
	}
	return &APIError{StatusCode: status, Message: msg, URL: url}
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsConnectionError reports whether err means the server could not be reached.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}
	text := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"context deadline exceeded",
	} {
		if strings.Contains(text, pattern) {
			return true
		}
	}
	return false
}

// PrintConnectionHelp prints hints for pointing razorctl at a server to stderr.
func PrintConnectionHelp(apiURL string) {
	ui.Errln(color.YellowString("Could not reach the Razor server at %s", apiURL))
	ui.Errln()
	ui.Errln("1. Pass the API root explicitly:")
	ui.Errln("   razorctl --api http://razor.example.com:8150/api collections")
	ui.Errln()
	ui.Errln("2. Or set it once in the environment:")
	ui.Errln("   export RAZOR_API_URL=\"http://razor.example.com:8150/api\"")
	ui.Errln()
	ui.Errln("3. Or in ~/.razorctl.yaml:")
	ui.Errln("   api_url: http://razor.example.com:8150/api")
	ui.Errln()
}
