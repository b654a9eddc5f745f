package weather

import "fmt"

// PrecipitationSeverity labels the intensity of precipitation reported by a code.
type PrecipitationSeverity string

const (
	SeveritySlight   PrecipitationSeverity = "slight"
	SeverityModerate PrecipitationSeverity = "moderate"
	SeverityHeavy    PrecipitationSeverity = "heavy"
	SeverityViolent  PrecipitationSeverity = "violent"
)

// severityPrecedence is the total order over severities. WMO wording does not
// sort lexically by intensity, so the order is spelled out here.
var severityPrecedence = map[PrecipitationSeverity]int{
	SeveritySlight:   0,
	SeverityModerate: 1,
	SeverityHeavy:    2,
	SeverityViolent:  3,
}

// Severities returns every severity label in ascending order.
func Severities() []PrecipitationSeverity {
	return []PrecipitationSeverity{SeveritySlight, SeverityModerate, SeverityHeavy, SeverityViolent}
}

// Rank returns the precedence of s, or false for an unknown label.
func (s PrecipitationSeverity) Rank() (int, bool) {
	r, ok := severityPrecedence[s]
	return r, ok
}

// Valid reports whether s is one of the four known labels.
func (s PrecipitationSeverity) Valid() bool {
	_, ok := severityPrecedence[s]
	return ok
}

func (s PrecipitationSeverity) String() string { return string(s) }

// CompareSeverity returns -1, 0 or +1 when a is less severe than, as severe as,
// or more severe than b. Unknown labels sort below every known label.
func CompareSeverity(a, b PrecipitationSeverity) int {
	ra, okA := a.Rank()
	rb, okB := b.Rank()
	if !okA {
		ra = -1
	}
	if !okB {
		rb = -1
	}
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// ParseSeverity converts a label into a PrecipitationSeverity.
func ParseSeverity(s string) (PrecipitationSeverity, error) {
	sev := PrecipitationSeverity(s)
	if !sev.Valid() {
		return "", fmt.Errorf("unknown precipitation severity %q", s)
	}
	return sev, nil
}
