package rostersdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the roster API.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Details     map[string]string
	IDs         []int64
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("roster: %d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("roster: %d %s: %s", e.StatusCode, e.Code, e.Description)
}

// IsCode reports whether err is an *APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Details:     errResp.Details,
			IDs:         errResp.IDs,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        CodeInternal,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
