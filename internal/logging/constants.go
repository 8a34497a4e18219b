package logging

// Standardized field names for structured logging.
// Keeping them in one place keeps the log output consistent across packages.
const (
	FieldPath      = "path"
	FieldContainer = "container"
	FieldTemplate  = "template"
	FieldAttempt   = "attempt"
	FieldAttempts  = "max_attempts"
	FieldSource    = "source"
	FieldLabel     = "label"
	FieldCount     = "count"
	FieldOperation = "operation"
	FieldBackend   = "backend"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldStatus    = "status"
	FieldMethod    = "method"
	FieldRoute     = "route"
)
