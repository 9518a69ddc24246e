package logger

// Standard field names for consistent structured logging across lineage.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldPassID  = "pass_id"
	FieldPointer = "pointer"
	FieldRecord  = "record"
	FieldTag     = "tag"
	FieldKind    = "kind"

	// Operations
	FieldOperation = "operation"
	FieldField     = "field"
	FieldSpouse    = "spouse"
	FieldFile      = "file"

	// Errors
	FieldError  = "error"
	FieldReason = "reason"

	// Counts and sizes
	FieldCount       = "count"
	FieldIndividuals = "individuals"
	FieldFamilies    = "families"
	FieldWarnings    = "warnings"
	FieldWorkers     = "workers"

	// Timing
	FieldDurationMS = "duration_ms"
)
