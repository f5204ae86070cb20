package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := remoteMessage(resp)

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteAPI, resp.StatusCode(), message)
	}
}

// remoteMessage extracts the server-supplied error message from a GitHub API
// error body ({"message": "..."}), falling back to the raw body or the HTTP
// status text.
func remoteMessage(resp *resty.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
