package search

import (
	"fmt"
	"log"

	"listdep/alg/transition"
)

var SHOW_ORACLE = false

// Deterministic drives a configuration greedily from Init to Terminal,
// one transition per step, with no backtracking. Base supplies fresh
// configurations by Copy; Guide chooses transitions when parsing,
// while ParseOracle consults the transition system's oracle instead.
type Deterministic struct {
	TransFunc     transition.System
	FeatExtractor transition.FeatureExtractor
	Guide         transition.Classifier
	Base          transition.Configuration

	// NoRecover disables the panic net, letting internal consistency
	// violations crash with a full stack trace.
	NoRecover bool
}

// IncompleteParseError reports a terminal configuration that left
// tokens unattached; the partial result is still returned alongside.
type IncompleteParseError struct {
	Missing []int
}

func (e *IncompleteParseError) Error() string {
	return fmt.Sprintf("incomplete parse: %d token(s) left without a head: %v", len(e.Missing), e.Missing)
}

type incompletable interface {
	Unattached() []int
}

func (d *Deterministic) completeness(c transition.Configuration) error {
	checkable, ok := c.(incompletable)
	if !ok {
		return nil
	}
	if missing := checkable.Unattached(); len(missing) > 0 {
		return &IncompleteParseError{Missing: missing}
	}
	return nil
}

// Parse drives a single problem instance using the guide classifier.
// An illegal classifier decision abandons the sentence with an error;
// an incomplete terminal configuration is returned together with an
// IncompleteParseError.
func (d *Deterministic) Parse(problem interface{}) (configuration transition.Configuration, err error) {
	if d.TransFunc == nil {
		panic("Can't parse without a transition system")
	}
	if d.FeatExtractor == nil {
		panic("Can't parse without feature extraction")
	}
	if d.Guide == nil {
		panic("Can't parse without a guide classifier")
	}
	if !d.NoRecover {
		defer func() {
			if r := recover(); r != nil {
				configuration = nil
				err = fmt.Errorf("recovering parse error: %v", r)
				log.Println("Recovering parse error: ", r)
			}
		}()
	}
	c := d.Base.Copy()
	c.Clear()
	c.Init(problem)
	for !c.Terminal() {
		decision, guideErr := d.Guide.Decide(d.FeatExtractor.Features(c))
		if guideErr != nil {
			return nil, guideErr
		}
		if applyErr := d.TransFunc.Apply(c, decision); applyErr != nil {
			return nil, fmt.Errorf("abandoning sentence: %v", applyErr)
		}
	}
	return c, d.completeness(c)
}

// ParseOracle replays the gold-derived transition sequence for a
// problem instance, returning the terminal configuration and the
// decisions taken.
func (d *Deterministic) ParseOracle(problem, gold interface{}) (configuration transition.Configuration, sequence []transition.Decision, err error) {
	if d.TransFunc == nil {
		panic("Can't parse without a transition system")
	}
	oracle := d.TransFunc.Oracle()
	if oracle == nil {
		panic("Transition system has no oracle, use AddDefaultOracle")
	}
	if !d.NoRecover {
		defer func() {
			if r := recover(); r != nil {
				configuration, sequence = nil, nil
				err = fmt.Errorf("recovering parse error: %v", r)
				log.Println("Recovering parse error: ", r)
			}
		}()
	}
	oracle.SetGold(gold)
	c := d.Base.Copy()
	c.Clear()
	c.Init(problem)
	sequence = make([]transition.Decision, 0, 32)
	for !c.Terminal() {
		decision, oracleErr := oracle.Decision(c)
		if oracleErr != nil {
			return nil, nil, oracleErr
		}
		if SHOW_ORACLE {
			log.Println(decision.String(), "\t", c.String())
		}
		if applyErr := d.TransFunc.Apply(c, decision); applyErr != nil {
			return nil, nil, applyErr
		}
		sequence = append(sequence, decision)
	}
	return c, sequence, d.completeness(c)
}

// Step pairs the feature representation of a configuration with the
// gold decision taken from it.
type Step struct {
	Features []string
	Decision transition.Decision
}

// OracleSteps replays the gold sequence while extracting features at
// every pre-transition configuration, producing classifier training
// instances.
func (d *Deterministic) OracleSteps(problem, gold interface{}) (steps []Step, configuration transition.Configuration, err error) {
	if d.FeatExtractor == nil {
		panic("Can't extract training steps without feature extraction")
	}
	oracle := d.TransFunc.Oracle()
	if oracle == nil {
		panic("Transition system has no oracle, use AddDefaultOracle")
	}
	if !d.NoRecover {
		defer func() {
			if r := recover(); r != nil {
				steps, configuration = nil, nil
				err = fmt.Errorf("recovering parse error: %v", r)
				log.Println("Recovering parse error: ", r)
			}
		}()
	}
	oracle.SetGold(gold)
	c := d.Base.Copy()
	c.Clear()
	c.Init(problem)
	steps = make([]Step, 0, 32)
	for !c.Terminal() {
		decision, oracleErr := oracle.Decision(c)
		if oracleErr != nil {
			return nil, nil, oracleErr
		}
		steps = append(steps, Step{Features: d.FeatExtractor.Features(c), Decision: decision})
		if applyErr := d.TransFunc.Apply(c, decision); applyErr != nil {
			return nil, nil, applyErr
		}
	}
	return steps, c, d.completeness(c)
}
