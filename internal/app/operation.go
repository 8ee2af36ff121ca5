package app

// Operation tracks a CLI run that may be recorded in the run-history
// database. Operations are created in memory with an empty ID. Only
// DB-recorded commands persist them (giving them a UUID from the database
// layer).
type Operation struct {
	ID          string
	Operation   string
	Status      string // "success" or "error"
	Detail      string // commit message, diagnostic, or error text
	BytesCopied int64
}

// NewOperation creates a new in-memory operation.
func NewOperation(operation string) *Operation {
	return &Operation{
		Operation: operation,
		Status:    "success",
	}
}

// Persisted returns true if this operation has been saved to the database.
func (op *Operation) Persisted() bool {
	return op.ID != ""
}
