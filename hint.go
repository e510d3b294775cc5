package sanipath

// Hint is a tri-state role assertion supplied by calling code that may
// already know path semantics (for example from a filesystem walk). The
// zero value is HintUnknown, so an empty options struct asserts nothing.
type Hint int

const (
	// HintUnknown means the caller makes no claim either way.
	HintUnknown Hint = iota
	// HintYes asserts the role holds.
	HintYes
	// HintNo asserts the role does not hold.
	HintNo
)

// HintFromBool converts a known boolean into an asserted hint.
func HintFromBool(v bool) Hint {
	if v {
		return HintYes
	}
	return HintNo
}

func (h Hint) String() string {
	switch h {
	case HintYes:
		return "yes"
	case HintNo:
		return "no"
	default:
		return "unknown"
	}
}
