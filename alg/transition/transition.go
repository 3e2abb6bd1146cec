package transition

import (
	"fmt"
	"strings"
)

// Direction encodes which of {stack-top, input-front} becomes the head
// of the other when a decision creates an arc.
type Direction byte

const (
	NONE  Direction = 'N'
	LEFT  Direction = 'L'
	RIGHT Direction = 'R'
)

// Action is the configuration change applied after arc creation.
type Action byte

const (
	SHIFT  Action = 'S'
	REDUCE Action = 'R'
	PASS   Action = 'P'
)

// Decision is a single transition of the list-based system: an
// attachment direction, an action and an arc label. The label is
// meaningful only when Dir is not NONE. Decisions are pure values.
type Decision struct {
	Dir    Direction
	Action Action
	Label  string
}

func (d Decision) Equal(other Decision) bool {
	return d.Dir == other.Dir && d.Action == other.Action && d.Label == other.Label
}

// String renders the seven-transition inventory as NS, NR, NP,
// LR-<label>, LP-<label>, RS-<label>, RP-<label>.
func (d Decision) String() string {
	prefix := string(d.Dir) + actionLetter(d.Action)
	if d.Dir == NONE {
		return prefix
	}
	return prefix + "-" + d.Label
}

func actionLetter(a Action) string {
	// REDUCE and RIGHT would collide on 'R'
	switch a {
	case SHIFT:
		return "S"
	case REDUCE:
		return "R"
	case PASS:
		return "P"
	}
	return "?"
}

// ParseDecision is the inverse of Decision.String.
func ParseDecision(s string) (Decision, error) {
	var d Decision
	if len(s) < 2 {
		return d, fmt.Errorf("transition too short: %q", s)
	}
	switch s[0] {
	case 'N':
		d.Dir = NONE
	case 'L':
		d.Dir = LEFT
	case 'R':
		d.Dir = RIGHT
	default:
		return d, fmt.Errorf("unknown direction in transition %q", s)
	}
	switch s[1] {
	case 'S':
		d.Action = SHIFT
	case 'R':
		d.Action = REDUCE
	case 'P':
		d.Action = PASS
	default:
		return d, fmt.Errorf("unknown action in transition %q", s)
	}
	if d.Dir != NONE {
		if !strings.HasPrefix(s[2:], "-") {
			return d, fmt.Errorf("directed transition %q is missing a label", s)
		}
		d.Label = s[3:]
	} else if len(s) != 2 {
		return d, fmt.Errorf("undirected transition %q should not carry a label", s)
	}
	return d, nil
}

// Configuration is a parse state drivable by a transition System.
// Init readies the configuration for a new problem instance; a
// configuration is mutated in place by successive transitions until
// Terminal.
type Configuration interface {
	Init(interface{})
	Terminal() bool

	Copy() Configuration
	Clear()

	String() string
}

// System applies decisions to configurations and enumerates the
// decisions legal in a given configuration.
type System interface {
	Apply(c Configuration, d Decision) error
	Possible(c Configuration) []Decision

	TransitionTypes() []string

	Oracle() Oracle
	AddDefaultOracle()

	Name() string
}

// Classifier chooses the next transition given the feature
// representation of the current configuration. Implementations are
// external to the parser; the state machine only checks that the
// returned decision is legal before applying it.
type Classifier interface {
	Decide(features []string) (Decision, error)
}

// Oracle replays a known-correct parse: given a gold structure it
// yields, per configuration, the decision a correct parser would take.
type Oracle interface {
	SetGold(interface{})
	Decision(c Configuration) (Decision, error)
	Name() string
}

// FeatureExtractor derives the ordered categorical feature
// representation of a configuration; generators are applied in a
// fixed, caller-specified order and always observe a fully-updated
// configuration.
type FeatureExtractor interface {
	Features(c Configuration) []string
}
