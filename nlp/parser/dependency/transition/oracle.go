package transition

import (
	"errors"

	. "listdep/alg/transition"
	nlp "listdep/nlp/types"
)

// GoldOracle derives, per configuration, the decision that leads to
// the gold dependency graph. It follows the list-based strategy:
// attach when the cursor pair is a gold arc, PASS whenever the input
// token still has gold business with a non-reduced token left of the
// stack cursor, REDUCE a headed stack token with no remaining gold
// dependents ahead, SHIFT otherwise.
type GoldOracle struct {
	gold *nlp.Graph
}

var _ Oracle = &GoldOracle{}

func (o *GoldOracle) SetGold(g interface{}) {
	graph, ok := g.(*nlp.Graph)
	if !ok {
		panic("Gold is not a labeled dependency graph")
	}
	o.gold = graph
}

func (o *GoldOracle) Decision(from Configuration) (Decision, error) {
	c, ok := from.(*ParseState)
	if !ok {
		panic("Got wrong configuration type")
	}
	if o.gold == nil {
		panic("Oracle needs gold reference, use SetGold")
	}
	if c.Terminal() {
		return Decision{}, errors.New("no decision possible in terminal configuration")
	}
	s, i := c.Stack, c.Input
	if s >= 0 {
		if s > 0 && !c.Tokens[s].HasHead() {
			if arc, attached := o.gold.HeadOf(s); attached && arc.Head == i {
				if o.gold.HasDependentAfter(s, i) {
					return Decision{Dir: LEFT, Action: PASS, Label: string(arc.Relation)}, nil
				}
				return Decision{Dir: LEFT, Action: REDUCE, Label: string(arc.Relation)}, nil
			}
		}
		if !c.Tokens[i].HasHead() {
			if arc, attached := o.gold.HeadOf(i); attached && arc.Head == s {
				if o.pendingLeftOf(c, i, s) {
					return Decision{Dir: RIGHT, Action: PASS, Label: string(arc.Relation)}, nil
				}
				return Decision{Dir: RIGHT, Action: SHIFT, Label: string(arc.Relation)}, nil
			}
		}
		if o.pendingLeftOf(c, i, s) {
			return Decision{Dir: NONE, Action: PASS}, nil
		}
		if s > 0 && c.Tokens[s].HasHead() && !o.gold.HasDependentAfter(s, i) {
			return Decision{Dir: NONE, Action: REDUCE}, nil
		}
	}
	return Decision{Dir: NONE, Action: SHIFT}, nil
}

// pendingLeftOf reports whether the input token i still has an
// unassigned gold arc (as head or as modifier) with a non-reduced
// token strictly left of the stack cursor s; such an arc can only be
// reached by retreating the stack, so the oracle must PASS.
func (o *GoldOracle) pendingLeftOf(c *ParseState, i, s int) bool {
	for _, arc := range o.gold.Arcs {
		var other = -1
		switch {
		case arc.Modifier == i && !c.Tokens[i].HasHead():
			other = arc.Head
		case arc.Head == i && !c.Tokens[arc.Modifier].HasHead():
			other = arc.Modifier
		}
		if other >= 0 && other < s && !c.Reduced.Has(other) {
			return true
		}
	}
	return false
}

func (o *GoldOracle) Name() string {
	return "List-Based Gold Oracle"
}
