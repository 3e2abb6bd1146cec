package transition

import (
	"fmt"
	"strings"

	"listdep/alg"
	. "listdep/alg/transition"
	nlp "listdep/nlp/types"
	"listdep/util"
)

// ParseToken wraps one sentence token for parsing. ID is the token's
// position within the sentence; index 0 is the synthetic ROOT. Head
// is the index of the token's syntactic head, -1 while unattached;
// a token has at most one head at any time.
type ParseToken struct {
	ID    int
	Form  string
	Lemma string
	POS   string
	Head  int
	Label nlp.DepRel
}

func (t *ParseToken) HasHead() bool {
	return t.Head >= 0
}

func (t *ParseToken) String() string {
	return t.Form
}

// NullToken is the sentinel returned by out-of-range lookups; feature
// generation code can address positions near sentence boundaries
// without branching. Compared by identity, never mutated.
var NullToken = &ParseToken{ID: -1, Form: "-NULL-", Head: -1}

// ParseState is the mutable cursor of the list-based transition
// system: a fixed token array addressed by two integer cursors plus a
// bitset of indices retired from stack consideration. Stack is the
// index of the current top-of-stack token (-1 once the stack has
// retreated past ROOT), Input the index of the current front-of-buffer
// token.
type ParseState struct {
	Tokens  []*ParseToken
	Stack   int
	Input   int
	Reduced *alg.BitSet

	// per-head extremal dependent cache, -1 when none assigned
	leftmost, rightmost []int

	Last    Decision
	hasLast bool
}

var _ Configuration = &ParseState{}

func (c *ParseState) Init(abstractSentence interface{}) {
	sent, ok := abstractSentence.(nlp.TaggedSentence)
	if !ok {
		panic("Got wrong problem type, expected a tagged sentence")
	}
	tagged := sent.TaggedTokens()
	c.Tokens = make([]*ParseToken, 0, len(tagged)+1)
	c.Tokens = append(c.Tokens, &ParseToken{
		ID:    0,
		Form:  nlp.ROOT_TOKEN,
		Lemma: nlp.ROOT_TOKEN,
		POS:   nlp.ROOT_TOKEN,
		Head:  -1,
	})
	for i, token := range tagged {
		c.Tokens = append(c.Tokens, &ParseToken{
			ID:    i + 1,
			Form:  token.Token,
			Lemma: token.Lemma,
			POS:   token.POS,
			Head:  -1,
		})
	}

	c.Stack = 0
	c.Input = 1
	c.Reduced = alg.NewBitSet(len(c.Tokens))
	c.leftmost = make([]int, len(c.Tokens))
	c.rightmost = make([]int, len(c.Tokens))
	for i := range c.leftmost {
		c.leftmost[i] = -1
		c.rightmost[i] = -1
	}
	c.Last = Decision{}
	c.hasLast = false
}

func (c *ParseState) Clear() {
	c.Tokens = nil
	c.Reduced = nil
	c.leftmost = nil
	c.rightmost = nil
	c.Stack = 0
	c.Input = 0
	c.hasLast = false
}

func (c *ParseState) Copy() Configuration {
	newState := new(ParseState)
	*newState = *c
	if c.Tokens != nil {
		newState.Tokens = make([]*ParseToken, len(c.Tokens))
		for i, token := range c.Tokens {
			copied := new(ParseToken)
			*copied = *token
			newState.Tokens[i] = copied
		}
	}
	if c.Reduced != nil {
		newState.Reduced = c.Reduced.Copy()
	}
	if c.leftmost != nil {
		newState.leftmost = make([]int, len(c.leftmost))
		copy(newState.leftmost, c.leftmost)
		newState.rightmost = make([]int, len(c.rightmost))
		copy(newState.rightmost, c.rightmost)
	}
	return newState
}

// Terminal reports buffer exhaustion; no transition is legal past
// this point.
func (c *ParseState) Terminal() bool {
	return c.Input >= len(c.Tokens)
}

// TokenAt returns the token at the given index, or NullToken when the
// index is outside the sentence.
func (c *ParseState) TokenAt(index int) *ParseToken {
	if index < 0 || index >= len(c.Tokens) {
		return NullToken
	}
	return c.Tokens[index]
}

// InputToken addresses tokens relative to the input cursor by direct
// indexing.
func (c *ParseState) InputToken(offset int) *ParseToken {
	return c.TokenAt(c.Input + offset)
}

// LambdaToken addresses tokens relative to the stack cursor by direct
// indexing, without regard to reduction.
func (c *ParseState) LambdaToken(offset int) *ParseToken {
	return c.TokenAt(c.Stack + offset)
}

// StackToken returns the offset-th non-reduced token relative to the
// stack cursor; negative offsets walk left, positive offsets walk
// right up to (but not including) the input cursor. This is the only
// reduction-aware lookup.
func (c *ParseState) StackToken(offset int) *ParseToken {
	if offset == 0 {
		return c.TokenAt(c.Stack)
	}
	direction := util.Sign(offset)
	remaining := util.AbsInt(offset)
	for i := c.Stack + direction; i >= 0 && i < c.Input; i += direction {
		if c.Reduced.Has(i) {
			continue
		}
		remaining--
		if remaining == 0 {
			return c.Tokens[i]
		}
	}
	return NullToken
}

// LeftmostDependent returns the lowest-index dependent attached to the
// token at the given index so far, or NullToken.
func (c *ParseState) LeftmostDependent(index int) *ParseToken {
	if index < 0 || index >= len(c.Tokens) || c.leftmost[index] < 0 {
		return NullToken
	}
	return c.Tokens[c.leftmost[index]]
}

// RightmostDependent returns the highest-index dependent attached to
// the token at the given index so far, or NullToken.
func (c *ParseState) RightmostDependent(index int) *ParseToken {
	if index < 0 || index >= len(c.Tokens) || c.rightmost[index] < 0 {
		return NullToken
	}
	return c.Tokens[c.rightmost[index]]
}

// AddArc attaches the token at modifier under the token at head. All
// preconditions are checked before any mutation; a second head
// assignment is an invariant violation, not an overwrite.
func (c *ParseState) AddArc(modifier, head int, label nlp.DepRel) {
	if modifier == 0 {
		panic("ROOT cannot receive a head")
	}
	if modifier < 0 || modifier >= len(c.Tokens) {
		panic(fmt.Sprintf("Modifier %d out of range", modifier))
	}
	if head < 0 || head >= len(c.Tokens) {
		panic(fmt.Sprintf("Head %d out of range", head))
	}
	if c.Tokens[modifier].HasHead() {
		panic(fmt.Sprintf("Token %d already has a head (%d), refusing to assign %d", modifier, c.Tokens[modifier].Head, head))
	}
	token := c.Tokens[modifier]
	token.Head = head
	token.Label = label
	if modifier < head {
		if c.leftmost[head] < 0 || modifier < c.leftmost[head] {
			c.leftmost[head] = modifier
		}
	} else {
		if c.rightmost[head] < 0 || modifier > c.rightmost[head] {
			c.rightmost[head] = modifier
		}
	}
}

// IsDescendantOf walks the head chain upward from a looking for b.
// The walk is bounded by the sentence length; exceeding the bound
// means the arc graph contains a cycle, which is a consistency error.
func (c *ParseState) IsDescendantOf(a, b int) bool {
	current := c.TokenAt(a)
	for steps := 0; current != NullToken && current.HasHead(); steps++ {
		if steps > len(c.Tokens) {
			panic(fmt.Sprintf("Cycle detected in arc graph walking up from token %d", a))
		}
		if current.Head == b {
			return true
		}
		current = c.TokenAt(current.Head)
	}
	return false
}

// Retreat returns the nearest non-reduced index strictly left of
// from, or -1 when none remains.
func (c *ParseState) Retreat(from int) int {
	i := from - 1
	for i >= 0 && c.Reduced.Has(i) {
		i--
	}
	return i
}

// Unattached lists the non-ROOT tokens still lacking a head; a
// non-empty result at the terminal configuration is a parse failure.
func (c *ParseState) Unattached() []int {
	var missing []int
	for _, token := range c.Tokens[1:] {
		if !token.HasHead() {
			missing = append(missing, token.ID)
		}
	}
	return missing
}

// Arcs extracts the (head, modifier, relation) triples assigned so
// far, ordered by modifier.
func (c *ParseState) Arcs() []nlp.Arc {
	arcs := make([]nlp.Arc, 0, len(c.Tokens)-1)
	for _, token := range c.Tokens[1:] {
		if token.HasHead() {
			arcs = append(arcs, nlp.Arc{Head: token.Head, Modifier: token.ID, Relation: token.Label})
		}
	}
	return arcs
}

func (c *ParseState) TaggedSentence() nlp.TaggedSentence {
	sent := make(nlp.BasicTaggedSentence, len(c.Tokens)-1)
	for i, token := range c.Tokens[1:] {
		sent[i] = nlp.TaggedToken{Token: token.Form, Lemma: token.Lemma, POS: token.POS}
	}
	return sent
}

func (c *ParseState) Graph() *nlp.Graph {
	graph := nlp.NewGraph(c.TaggedSentence())
	graph.Arcs = c.Arcs()
	return graph
}

// OUTPUT FUNCTIONS

func (c *ParseState) String() string {
	last := ""
	if c.hasLast {
		last = c.Last.String()
	}
	return fmt.Sprintf("%s\t=>([%s],\t[%s],\tA%d)",
		last, c.stringStack(), c.stringBuffer(), len(c.Arcs()))
}

func (c *ParseState) stringStack() string {
	if c.Stack < 0 {
		return ""
	}
	window := make([]string, 0, 3)
	for offset := -2; offset <= 0; offset++ {
		if token := c.StackToken(offset); token != NullToken {
			window = append(window, token.Form)
		}
	}
	if c.StackToken(-3) != NullToken {
		window = append([]string{"..."}, window...)
	}
	return strings.Join(window, ",")
}

func (c *ParseState) stringBuffer() string {
	window := make([]string, 0, 3)
	for offset := 0; offset <= 2; offset++ {
		if token := c.InputToken(offset); token != NullToken {
			window = append(window, token.Form)
		}
	}
	if c.InputToken(3) != NullToken {
		window = append(window, "...")
	}
	return strings.Join(window, ",")
}

func NewParseState() Configuration {
	return Configuration(new(ParseState))
}
