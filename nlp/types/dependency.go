package types

import (
	"fmt"
	"sort"
	"strings"

	"listdep/util"
)

type DepRel string

func (d DepRel) String() string {
	return string(d)
}

// Arc is a directed labeled dependency edge between token indices;
// Head is the index of the syntactic head, Modifier the index of the
// dependent it is attached to.
type Arc struct {
	Head     int
	Modifier int
	Relation DepRel
}

func (a Arc) String() string {
	return fmt.Sprintf("(%d,%s,%d)", a.Head, a.Relation, a.Modifier)
}

func (a Arc) Equal(other Arc) bool {
	return a.Head == other.Head && a.Modifier == other.Modifier && a.Relation == other.Relation
}

// Graph is a labeled dependency graph over a tagged sentence; node 0
// is the synthetic ROOT. A well-formed graph has exactly one arc per
// non-ROOT node but partial graphs (failed parses) are representable.
type Graph struct {
	Nodes []TaggedToken
	Arcs  []Arc
}

func NewGraph(sent TaggedSentence) *Graph {
	tagged := sent.TaggedTokens()
	nodes := make([]TaggedToken, 0, len(tagged)+1)
	nodes = append(nodes, TaggedToken{Token: ROOT_TOKEN, Lemma: ROOT_TOKEN, POS: ROOT_TOKEN})
	nodes = append(nodes, tagged...)
	return &Graph{Nodes: nodes, Arcs: make([]Arc, 0, len(tagged))}
}

func (g *Graph) NumberOfNodes() int {
	return len(g.Nodes)
}

func (g *Graph) NumberOfArcs() int {
	return len(g.Arcs)
}

// HeadOf returns the arc attaching the given modifier, if any.
func (g *Graph) HeadOf(modifier int) (Arc, bool) {
	for _, arc := range g.Arcs {
		if arc.Modifier == modifier {
			return arc, true
		}
	}
	return Arc{Head: -1, Modifier: modifier}, false
}

// HasDependentAfter reports whether head has a dependent at index from
// or beyond.
func (g *Graph) HasDependentAfter(head, from int) bool {
	for _, arc := range g.Arcs {
		if arc.Head == head && arc.Modifier >= from {
			return true
		}
	}
	return false
}

func (g *Graph) TaggedSentence() TaggedSentence {
	return BasicTaggedSentence(g.Nodes[1:])
}

func (g *Graph) Sentence() Sentence {
	return g.TaggedSentence()
}

func (g *Graph) sortedArcs() []Arc {
	arcs := make([]Arc, len(g.Arcs))
	copy(arcs, g.Arcs)
	sort.Slice(arcs, func(i, j int) bool {
		return arcs[i].Modifier < arcs[j].Modifier
	})
	return arcs
}

func (g *Graph) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*Graph)
	if !ok {
		return false
	}
	if len(g.Nodes) != len(other.Nodes) || len(g.Arcs) != len(other.Arcs) {
		return false
	}
	for i, node := range g.Nodes {
		if node != other.Nodes[i] {
			return false
		}
	}
	left, right := g.sortedArcs(), other.sortedArcs()
	for i := range left {
		if !left[i].Equal(right[i]) {
			return false
		}
	}
	return true
}

func (g *Graph) StringArcs() string {
	arcs := make([]string, len(g.Arcs))
	for i, arc := range g.sortedArcs() {
		arcs[i] = arc.String()
	}
	return strings.Join(arcs, "\n")
}
