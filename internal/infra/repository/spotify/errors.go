package spotify

import (
	"fmt"
)

// ConfigurationError is returned when the client is built with missing
// credentials. No network call is made in that case.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is required", e.Field)
}

// AuthenticationError is returned when the token endpoint refuses the
// client-credentials grant, or when a query runs without a valid token.
type AuthenticationError struct {
	// Code is the provider's "error" field, e.g. "invalid_client".
	Code        string
	Description string
	Err         error
}

func (e *AuthenticationError) Error() string {
	switch {
	case e.Code != "" && e.Description != "":
		return fmt.Sprintf("authentication error: %s: %s", e.Code, e.Description)
	case e.Code != "":
		return "authentication error: " + e.Code
	case e.Err != nil:
		return "authentication error: " + e.Err.Error()
	}

	return "authentication error"
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// RequestError is returned when a query fails in transport or the API
// answers with a non-2xx status. Body holds the provider's response verbatim.
type RequestError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request error: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("request error: status %d: %v", e.StatusCode, e.Err)
	}

	return fmt.Sprintf("request error: status %d: %s", e.StatusCode, string(e.Body))
}

func (e *RequestError) Unwrap() error { return e.Err }
