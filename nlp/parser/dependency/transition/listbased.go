package transition

import (
	"errors"
	"fmt"

	. "listdep/alg/transition"
	nlp "listdep/nlp/types"
	"listdep/util"
)

// ErrIllegal is wrapped by every transition legality error; callers
// abandon the sentence on such an error rather than the process.
var ErrIllegal = errors.New("illegal transition")

// ListBased is the list-based non-projective transition system: seven
// transitions combining an attachment direction (NONE, LEFT, RIGHT)
// with a stack action (SHIFT, REDUCE, PASS). Relations is the closed
// set of arc labels directed decisions may carry.
//
// AllowHeadlessReduce relaxes the default legality rule that a token
// may only be reduced once it has a head; some training regimes prefer
// to let a misguided classifier discard tokens and fail the sentence
// at the end instead.
type ListBased struct {
	Relations           *util.EnumSet
	AllowHeadlessReduce bool

	oracle Oracle
}

var _ System = &ListBased{}

func (l *ListBased) Apply(from Configuration, d Decision) error {
	c, ok := from.(*ParseState)
	if !ok {
		panic("Got wrong configuration type")
	}
	if err := l.legal(c, d); err != nil {
		return err
	}
	switch d.Dir {
	case LEFT:
		c.AddArc(c.Stack, c.Input, nlp.DepRel(d.Label))
	case RIGHT:
		c.AddArc(c.Input, c.Stack, nlp.DepRel(d.Label))
	}
	switch d.Action {
	case SHIFT:
		c.Stack = c.Input
		c.Input++
	case REDUCE:
		c.Reduced.Add(c.Stack)
		c.Stack = c.Retreat(c.Stack)
	case PASS:
		c.Stack = c.Retreat(c.Stack)
	}
	c.Last = d
	c.hasLast = true
	return nil
}

// legal checks a decision against the current configuration without
// mutating it.
func (l *ListBased) legal(c *ParseState, d Decision) error {
	if c.Terminal() {
		return fmt.Errorf("%w: %s in terminal configuration", ErrIllegal, d)
	}
	switch d.Dir {
	case NONE:
		if d.Label != "" {
			return fmt.Errorf("%w: %s carries a label without a direction", ErrIllegal, d)
		}
		if d.Action != SHIFT && c.Stack < 0 {
			return fmt.Errorf("%w: %s on an empty stack", ErrIllegal, d)
		}
	case LEFT:
		if d.Action == SHIFT {
			return fmt.Errorf("%w: %s, LEFT cannot combine with SHIFT", ErrIllegal, d)
		}
		if c.Stack <= 0 {
			return fmt.Errorf("%w: %s, ROOT cannot receive a head", ErrIllegal, d)
		}
		if c.Tokens[c.Stack].HasHead() {
			return fmt.Errorf("%w: %s, token %d already has a head", ErrIllegal, d, c.Stack)
		}
		if err := l.legalLabel(d); err != nil {
			return err
		}
	case RIGHT:
		if d.Action == REDUCE {
			return fmt.Errorf("%w: %s, RIGHT cannot combine with REDUCE", ErrIllegal, d)
		}
		if c.Stack < 0 {
			return fmt.Errorf("%w: %s on an empty stack", ErrIllegal, d)
		}
		if c.Tokens[c.Input].HasHead() {
			return fmt.Errorf("%w: %s, token %d already has a head", ErrIllegal, d, c.Input)
		}
		if err := l.legalLabel(d); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrIllegal, d.Dir)
	}
	if d.Action == REDUCE {
		if c.Stack == 0 {
			return fmt.Errorf("%w: %s, ROOT cannot be reduced", ErrIllegal, d)
		}
		if d.Dir != LEFT && !c.Tokens[c.Stack].HasHead() && !l.AllowHeadlessReduce {
			return fmt.Errorf("%w: %s, token %d has no head", ErrIllegal, d, c.Stack)
		}
	}
	return nil
}

func (l *ListBased) legalLabel(d Decision) error {
	if d.Label == "" {
		return fmt.Errorf("%w: %s is missing a label", ErrIllegal, d)
	}
	if l.Relations != nil {
		if _, exists := l.Relations.IndexOf(nlp.DepRel(d.Label)); !exists {
			return fmt.Errorf("%w: %s, unknown relation %q", ErrIllegal, d, d.Label)
		}
	}
	return nil
}

// Possible enumerates the decisions legal in the given configuration,
// expanding directed decisions over the relation set.
func (l *ListBased) Possible(from Configuration) []Decision {
	c, ok := from.(*ParseState)
	if !ok {
		panic("Got wrong configuration type")
	}
	numRelations := 0
	if l.Relations != nil {
		numRelations = l.Relations.Len()
	}
	retval := make([]Decision, 0, 4*numRelations+3)
	if c.Terminal() {
		return retval
	}
	retval = append(retval, Decision{Dir: NONE, Action: SHIFT})
	if c.Stack >= 0 {
		retval = append(retval, Decision{Dir: NONE, Action: PASS})
	}
	if c.Stack > 0 {
		stackHasHead := c.Tokens[c.Stack].HasHead()
		if stackHasHead || l.AllowHeadlessReduce {
			retval = append(retval, Decision{Dir: NONE, Action: REDUCE})
		}
		if !stackHasHead {
			retval = l.eachRelation(retval, LEFT, REDUCE)
			retval = l.eachRelation(retval, LEFT, PASS)
		}
	}
	if c.Stack >= 0 && !c.Tokens[c.Input].HasHead() {
		retval = l.eachRelation(retval, RIGHT, SHIFT)
		retval = l.eachRelation(retval, RIGHT, PASS)
	}
	return retval
}

func (l *ListBased) eachRelation(decisions []Decision, dir Direction, action Action) []Decision {
	if l.Relations == nil {
		return decisions
	}
	for i := 0; i < l.Relations.Len(); i++ {
		relation := l.Relations.ValueOf(i).(nlp.DepRel)
		decisions = append(decisions, Decision{Dir: dir, Action: action, Label: string(relation)})
	}
	return decisions
}

func (l *ListBased) TransitionTypes() []string {
	return []string{"NS", "NR", "NP", "LR-*", "LP-*", "RS-*", "RP-*"}
}

func (l *ListBased) Oracle() Oracle {
	return l.oracle
}

func (l *ListBased) AddDefaultOracle() {
	l.oracle = new(GoldOracle)
}

func (l *ListBased) Name() string {
	return "List-Based Non-Projective"
}
