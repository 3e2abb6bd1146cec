package transition

import "testing"

func TestDecisionString(t *testing.T) {
	tests := []struct {
		decision Decision
		expected string
	}{
		{Decision{NONE, SHIFT, ""}, "NS"},
		{Decision{NONE, REDUCE, ""}, "NR"},
		{Decision{NONE, PASS, ""}, "NP"},
		{Decision{LEFT, REDUCE, "SBJ"}, "LR-SBJ"},
		{Decision{LEFT, PASS, "ATT"}, "LP-ATT"},
		{Decision{RIGHT, SHIFT, "OBJ"}, "RS-OBJ"},
		{Decision{RIGHT, PASS, "VC"}, "RP-VC"},
	}
	for _, test := range tests {
		if got := test.decision.String(); got != test.expected {
			t.Error("Expected", test.expected, "got", got)
		}
		parsed, err := ParseDecision(test.expected)
		if err != nil {
			t.Error("Failed to parse", test.expected, ":", err)
			continue
		}
		if !parsed.Equal(test.decision) {
			t.Error("Round trip failed for", test.expected, "got", parsed)
		}
	}
}

func TestParseDecisionErrors(t *testing.T) {
	for _, bad := range []string{"", "N", "XS", "NX", "LR", "LRSBJ", "NS-SBJ"} {
		if _, err := ParseDecision(bad); err == nil {
			t.Error("Expected parse error for", bad)
		}
	}
}

func TestDecisionEqual(t *testing.T) {
	a := Decision{LEFT, REDUCE, "SBJ"}
	if !a.Equal(Decision{LEFT, REDUCE, "SBJ"}) {
		t.Error("Identical decisions should be equal")
	}
	if a.Equal(Decision{LEFT, PASS, "SBJ"}) {
		t.Error("Decisions with different actions should differ")
	}
	if a.Equal(Decision{LEFT, REDUCE, "OBJ"}) {
		t.Error("Decisions with different labels should differ")
	}
}
