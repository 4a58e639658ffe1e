package diag

// Severity ranks a finding; comparisons rely on the declaration order.
type Severity uint8

const (
	// SevInfo marks advisory findings that never affect the exit status.
	SevInfo Severity = iota
	// SevWarning marks findings worth fixing that still let validation pass,
	// e.g. TypeScript residue under src/.
	SevWarning
	// SevError marks findings that fail validation.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
