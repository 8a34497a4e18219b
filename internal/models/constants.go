package models

// Record field names, as used in content templates and validation messages.
const (
	FieldDate        = "date"
	FieldTimestamp   = "timestamp"
	FieldFromAccount = "fromAccount"
	FieldToAccount   = "toAccount"
	FieldAmount      = "amount"
	FieldTag         = "tag"
	FieldDetails     = "details"
)

// Path template placeholders.
const (
	PlaceholderYear    = "year"
	PlaceholderMonth   = "month"
	PlaceholderDay     = "day"
	PlaceholderDetails = "details"
)

// DocumentExtension is appended to every created document path.
const DocumentExtension = ".md"

// DefaultMaxAttempts bounds the numeric suffix retries of the unique writer.
const DefaultMaxAttempts = 10

// File permissions
const (
	PermissionFile      = 0644
	PermissionDirectory = 0755
	PermissionDatabase  = 0600
)
