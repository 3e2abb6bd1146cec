// Package eval accumulates dependency attachment scores.
package eval

import "fmt"

// Result holds attachment counts for a single parsed sentence:
// Attached counts tokens whose head matches the gold head, Labeled
// additionally requires the gold relation, Tokens is the number of
// scorable tokens.
type Result struct {
	Attached int
	Labeled  int
	Tokens   int
}

func (r *Result) UAS() float64 {
	if r.Tokens == 0 {
		return 0
	}
	return float64(r.Attached) / float64(r.Tokens)
}

func (r *Result) LAS() float64 {
	if r.Tokens == 0 {
		return 0
	}
	return float64(r.Labeled) / float64(r.Tokens)
}

func (r *Result) String() string {
	return fmt.Sprintf("UAS %.4f LAS %.4f (%d tokens)", r.UAS(), r.LAS(), r.Tokens)
}

// Total accumulates per-sentence results over a corpus.
type Total struct {
	Result
	Exact      int
	Population int
}

func (t *Total) Add(r *Result) {
	t.Attached += r.Attached
	t.Labeled += r.Labeled
	t.Tokens += r.Tokens
	if r.Tokens > 0 && r.Labeled == r.Tokens {
		t.Exact++
	}
	t.Population++
}

func (t *Total) ExactMatch() float64 {
	if t.Population == 0 {
		return 0
	}
	return float64(t.Exact) / float64(t.Population)
}

func (t *Total) String() string {
	return fmt.Sprintf("UAS %.4f LAS %.4f Exact %.4f (%d sentences, %d tokens)",
		t.UAS(), t.LAS(), t.ExactMatch(), t.Population, t.Tokens)
}
