package verdict

import (
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var all = []Verdict{
	NoInformation, NotEquivalent, ProbablyNotEquivalent, ProbablyEquivalent,
	EquivalentUpToPhase, EquivalentUpToGlobalPhase, Equivalent,
}

func TestStableStringBijection(t *testing.T) {
	seen := make(map[string]bool, len(all))
	for _, v := range all {
		s := v.String()
		if seen[s] {
			t.Fatalf("duplicate stable string %q", s)
		}
		seen[s] = true

		parsed, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if parsed != v {
			t.Fatalf("Parse(String(%v)) = %v, want %v", v, parsed, v)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("definitely_not_a_verdict"); err == nil {
		t.Fatal("expected error for unknown stable string")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, v := range all {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", v, err)
		}
		var got Verdict
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got != v {
			t.Fatalf("round trip %v -> %s -> %v", v, data, got)
		}
	}
}

func TestConsideredEquivalentSet(t *testing.T) {
	want := map[Verdict]bool{
		Equivalent:                true,
		ProbablyEquivalent:        true,
		EquivalentUpToGlobalPhase: true,
		EquivalentUpToPhase:       true,
	}
	for _, v := range all {
		got := ConsideredEquivalent(v)
		if got != want[v] {
			t.Fatalf("ConsideredEquivalent(%v) = %v, want %v", v, got, want[v])
		}
	}
}

func TestConsideredEquivalentIsPure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("calling ConsideredEquivalent twice on the same input agrees", prop.ForAll(
		func(v Verdict) bool {
			return ConsideredEquivalent(v) == ConsideredEquivalent(v)
		},
		gen.OneConstOf(all[0], all[1], all[2], all[3], all[4], all[5], all[6]),
	))

	properties.TestingRun(t)
}
