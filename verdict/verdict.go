// Package verdict defines the equivalence verdict enumeration and the
// fusion rule that combines partial verdicts from independently running
// engines into a single final answer.
package verdict

import "fmt"

// Verdict is the outcome an engine (or the orchestrator as a whole)
// reports for a circuit pair. Its total order is implied by the fusion
// rules in Fuse, not by the values below.
type Verdict uint8

const (
	NoInformation Verdict = iota
	NotEquivalent
	ProbablyNotEquivalent
	ProbablyEquivalent
	EquivalentUpToPhase
	EquivalentUpToGlobalPhase
	Equivalent
)

// stableStrings holds the wire representation required by host bindings;
// see the config package for the same stable-string convention applied to
// other enumerations.
var stableStrings = [...]string{
	NoInformation:             "no_information",
	NotEquivalent:             "not_equivalent",
	ProbablyNotEquivalent:     "probably_not_equivalent",
	ProbablyEquivalent:        "probably_equivalent",
	EquivalentUpToPhase:       "equivalent_up_to_phase",
	EquivalentUpToGlobalPhase: "equivalent_up_to_global_phase",
	Equivalent:                "equivalent",
}

var fromStableString = func() map[string]Verdict {
	m := make(map[string]Verdict, len(stableStrings))
	for v, s := range stableStrings {
		m[s] = Verdict(v)
	}
	return m
}()

// String implements fmt.Stringer using the stable wire representation.
func (v Verdict) String() string {
	if int(v) < len(stableStrings) {
		return stableStrings[v]
	}
	return fmt.Sprintf("verdict(%d)", uint8(v))
}

// Parse converts a stable string back into a Verdict. It is the inverse
// of String and is a bijection over the seven defined values.
func Parse(s string) (Verdict, error) {
	v, ok := fromStableString[s]
	if !ok {
		return NoInformation, fmt.Errorf("verdict: unknown stable string %q", s)
	}
	return v, nil
}

// MarshalJSON implements json.Marshaler using the stable string form.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler using the stable string form.
func (v *Verdict) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ConsideredEquivalent reports whether v belongs to the
// "consideredEquivalent" set: {Equivalent, ProbablyEquivalent,
// EquivalentUpToGlobalPhase, EquivalentUpToPhase}. It is a pure function
// of v alone, with no hidden state.
func ConsideredEquivalent(v Verdict) bool {
	switch v {
	case Equivalent, ProbablyEquivalent, EquivalentUpToGlobalPhase, EquivalentUpToPhase:
		return true
	default:
		return false
	}
}
