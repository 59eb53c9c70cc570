package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/daystar-app/daystar-client/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError translates a non-2xx response into the package's sentinel
// errors. The server's failure envelope ({error, details?}) is decoded
// when present so the message reaches the caller verbatim.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg, details := decodeErrorBody(resp)

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError:
		return &ValidationError{Status: resp.StatusCode(), Message: msg, Details: details}
	default:
		return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), msg)
	}
}

// decodeErrorBody extracts the server's error message and field details
// from the response body, falling back to the raw body and then the HTTP
// status text when the envelope is absent.
func decodeErrorBody(resp *resty.Response) (string, map[string]string) {
	body := strings.TrimSpace(string(resp.Body()))

	var er models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &er); err == nil && er.Error != "" {
		return er.Error, er.Details
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return body, nil
}
