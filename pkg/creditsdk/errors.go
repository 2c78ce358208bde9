package creditsdk

import "fmt"

// APIError is a non-2xx response decoded into the stable error taxonomy.
type APIError struct {
	Status      int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("credits api: %s (http %d)", e.Code, e.Status)
	}
	return fmt.Sprintf("credits api: %s: %s (http %d)", e.Code, e.Description, e.Status)
}

// Retryable reports whether the caller may safely retry the request as-is.
func (e *APIError) Retryable() bool {
	return e.Code == CodeDatabaseBusy
}

// IsCode reports whether err is an APIError carrying the given stable code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}
