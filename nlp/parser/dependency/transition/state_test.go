package transition

import (
	"testing"

	nlp "listdep/nlp/types"
)

func TestInitialState(t *testing.T) {
	state := testInitialState()
	if len(state.Tokens) != len(testSentence)+1 {
		t.Fatal("Expected", len(testSentence)+1, "tokens, got", len(state.Tokens))
	}
	if state.Tokens[0].Form != nlp.ROOT_TOKEN {
		t.Error("Token 0 should be ROOT, got", state.Tokens[0].Form)
	}
	if state.Stack != 0 || state.Input != 1 {
		t.Error("Expected cursors (0,1), got", state.Stack, state.Input)
	}
	if state.Terminal() {
		t.Error("Fresh state should not be terminal")
	}
	if state.Reduced.Count() != 0 {
		t.Error("Fresh state should have no reduced tokens")
	}
	for _, token := range state.Tokens {
		if token.HasHead() {
			t.Error("Token", token.ID, "should start unattached")
		}
	}
}

func TestSentinelLookups(t *testing.T) {
	state := testInitialState()
	if state.InputToken(10) != NullToken {
		t.Error("Input lookup past the sentence should yield the sentinel")
	}
	if state.InputToken(-2) != NullToken {
		t.Error("Input lookup before the sentence should yield the sentinel")
	}
	if state.LambdaToken(-1) != NullToken {
		t.Error("Lambda lookup left of ROOT should yield the sentinel")
	}
	if state.StackToken(-1) != NullToken {
		t.Error("Nothing is left of ROOT on the stack")
	}
	if state.LeftmostDependent(0) != NullToken || state.RightmostDependent(3) != NullToken {
		t.Error("Dependent lookups on a fresh state should yield the sentinel")
	}
	if state.TokenAt(-1) != NullToken || state.TokenAt(99) != NullToken {
		t.Error("Out of range TokenAt should yield the sentinel")
	}
	// sentinel lookups are idempotent and mutation-free
	if NullToken.ID != -1 || NullToken.HasHead() {
		t.Error("Sentinel token was mutated")
	}
}

func TestStackTokenSkipsReduced(t *testing.T) {
	state := testInitialState()
	state.Stack = 2
	state.Input = 3
	state.Reduced.Add(1)
	if got := state.StackToken(-1); got.ID != 0 {
		t.Error("StackToken(-1) should skip reduced token 1 and reach ROOT, got", got.ID)
	}
	if got := state.LambdaToken(-1); got.ID != 1 {
		t.Error("LambdaToken(-1) indexes directly and should reach token 1, got", got.ID)
	}
	if state.StackToken(-2) != NullToken {
		t.Error("Only ROOT remains left of the stack cursor")
	}
}

func TestAddArcUpdatesCaches(t *testing.T) {
	state := testInitialState()
	state.AddArc(1, 3, "ATT")
	state.AddArc(4, 3, "VC")
	if got := state.LeftmostDependent(3); got.ID != 1 {
		t.Error("Expected leftmost dependent 1, got", got.ID)
	}
	if got := state.RightmostDependent(3); got.ID != 4 {
		t.Error("Expected rightmost dependent 4, got", got.ID)
	}
	state.AddArc(2, 3, "SBJ")
	if got := state.LeftmostDependent(3); got.ID != 1 {
		t.Error("Leftmost dependent should remain 1, got", got.ID)
	}
	if tok := state.Tokens[1]; tok.Head != 3 || tok.Label != "ATT" {
		t.Error("Arc not recorded on token 1:", tok.Head, tok.Label)
	}
}

func TestAddArcDoubleHeadPanics(t *testing.T) {
	state := testInitialState()
	state.AddArc(1, 2, "ATT")
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on second head assignment")
		}
	}()
	state.AddArc(1, 3, "SBJ")
}

func TestAddArcRootModifierPanics(t *testing.T) {
	state := testInitialState()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic attaching ROOT under a token")
		}
	}()
	state.AddArc(0, 2, "ATT")
}

func TestIsDescendantOf(t *testing.T) {
	state := testInitialState()
	state.AddArc(3, 2, "ATT")
	state.AddArc(2, 1, "ATT")
	if !state.IsDescendantOf(3, 2) || !state.IsDescendantOf(3, 1) {
		t.Error("Token 3 should descend from 2 and 1")
	}
	if state.IsDescendantOf(1, 3) {
		t.Error("Ancestry is not symmetric")
	}
	if state.IsDescendantOf(3, 0) {
		t.Error("Chain does not reach ROOT yet")
	}
	state.AddArc(1, 0, "ROOT")
	if !state.IsDescendantOf(3, 0) {
		t.Error("Token 3 should now descend from ROOT")
	}
	if state.IsDescendantOf(4, 0) {
		t.Error("Unattached token has no ancestors")
	}
}

func TestCopyIsolation(t *testing.T) {
	state := testInitialState()
	state.AddArc(1, 2, "ATT")
	copied := state.Copy().(*ParseState)
	state.AddArc(3, 2, "SBJ")
	state.Reduced.Add(1)
	state.Stack = 2
	if copied.Tokens[3].HasHead() {
		t.Error("Copy should not see arcs added to the original")
	}
	if copied.Reduced.Has(1) {
		t.Error("Copy should not see reductions on the original")
	}
	if copied.Stack != 0 {
		t.Error("Copy should keep its own cursors")
	}
	if !copied.Tokens[1].HasHead() {
		t.Error("Copy should retain arcs present at copy time")
	}
}

func TestUnattached(t *testing.T) {
	state := testInitialState()
	state.AddArc(2, 0, "ROOT")
	state.AddArc(4, 2, "VC")
	missing := state.Unattached()
	if len(missing) != 2 || missing[0] != 1 || missing[1] != 3 {
		t.Error("Expected unattached [1 3], got", missing)
	}
}

func TestRetreat(t *testing.T) {
	state := testInitialState()
	state.Reduced.Add(2)
	state.Reduced.Add(1)
	if got := state.Retreat(3); got != 0 {
		t.Error("Retreat should skip reduced 2 and 1 to ROOT, got", got)
	}
	state.Reduced.Add(0)
	if got := state.Retreat(3); got != -1 {
		t.Error("Retreat past all tokens should yield -1, got", got)
	}
}
