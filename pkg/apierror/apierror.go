package apierror

import "fmt"

// APIError carries an error code, a human-readable detail message, optional
// per-field validation messages, and the HTTP status it should map to.
type APIError struct {
	Code       string            `json:"code"`
	Detail     string            `json:"detail"`
	Fields     map[string]string `json:"fields,omitempty"`
	HTTPStatus int               `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%d invalid fields)", e.Code, e.Detail, len(e.Fields))
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func New(code string, detail string, status int) *APIError {
	return &APIError{Code: code, Detail: detail, HTTPStatus: status}
}

// Validation builds an error carrying field-level messages so the caller can
// correct the request and resubmit.
func Validation(fields map[string]string) *APIError {
	return &APIError{
		Code:       "VALIDATION_FAILED",
		Detail:     "Request validation failed",
		Fields:     fields,
		HTTPStatus: 422,
	}
}
