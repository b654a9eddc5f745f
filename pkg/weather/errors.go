package weather

import "fmt"

// ValidationError describes one way a record or table breaks the metadata
// contract.
type ValidationError struct {
	Table   string
	Code    int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("validation error for code %d field '%s': %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("validation error in %s for code %d field '%s': %s", e.Table, e.Code, e.Field, e.Message)
}
