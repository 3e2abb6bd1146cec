package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nlp "listdep/nlp/types"
)

func testEvalGraphs() (*nlp.Graph, *nlp.Graph) {
	sent := nlp.BasicTaggedSentence{
		{Token: "the", POS: "DT"},
		{Token: "dog", POS: "NN"},
		{Token: "barks", POS: "VB"},
	}
	gold := nlp.NewGraph(sent)
	gold.Arcs = append(gold.Arcs,
		nlp.Arc{Head: 2, Modifier: 1, Relation: "ATT"},
		nlp.Arc{Head: 3, Modifier: 2, Relation: "SBJ"},
		nlp.Arc{Head: 0, Modifier: 3, Relation: "ROOT"},
	)
	test := nlp.NewGraph(sent)
	test.Arcs = append(test.Arcs,
		nlp.Arc{Head: 2, Modifier: 1, Relation: "ATT"},  // correct
		nlp.Arc{Head: 3, Modifier: 2, Relation: "OBJ"},  // right head, wrong label
		nlp.Arc{Head: 2, Modifier: 3, Relation: "ROOT"}, // wrong head
	)
	return test, gold
}

func TestDepEval(t *testing.T) {
	test, gold := testEvalGraphs()
	result := DepEval(test, gold)
	assert.Equal(t, 3, result.Tokens)
	assert.Equal(t, 2, result.Attached)
	assert.Equal(t, 1, result.Labeled)
}

func TestDepEvalPerfect(t *testing.T) {
	_, gold := testEvalGraphs()
	result := DepEval(gold, gold)
	assert.Equal(t, result.Tokens, result.Attached)
	assert.Equal(t, result.Tokens, result.Labeled)
}

func TestDepEvalMissingArcs(t *testing.T) {
	_, gold := testEvalGraphs()
	empty := nlp.NewGraph(gold.TaggedSentence())
	result := DepEval(empty, gold)
	assert.Equal(t, 3, result.Tokens)
	assert.Equal(t, 0, result.Attached)
}

func TestCollectLabels(t *testing.T) {
	_, gold := testEvalGraphs()
	labels := CollectLabels([]*nlp.Graph{gold})
	assert.Equal(t, []string{"ATT", "ROOT", "SBJ"}, labels)
}
