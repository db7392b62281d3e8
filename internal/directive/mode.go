package directive

//go:generate go tool stringer -type=Mode -output=mode_string.go

// Mode selects which decomposer handles a record.
type Mode int

const (
	// ModeUnset means the record requested no decomposer.
	ModeUnset Mode = iota
	// ModeComponent generates wrappers plus an aggregate bundle.
	ModeComponent
	// ModeResource generates wrappers plus registry insertion dispatchers.
	ModeResource
)
