package telemetry

import (
	"fmt"
	"strings"
)

// ErrorMissingEnvVariable is returned when an exporter requires settings that were not provided.
type ErrorMissingEnvVariable struct {
	Vars []string
}

func (e *ErrorMissingEnvVariable) Error() string {
	return fmt.Sprintf("missing environment variable: %s", strings.Join(e.Vars, ", "))
}
