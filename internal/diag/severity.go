package diag

// Severity ranks a diagnostic; ordering matters (HasErrors compares >=).
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for problems the run can proceed past.
	SevWarning
	// SevError is for diagnostics that make the result unusable.
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
