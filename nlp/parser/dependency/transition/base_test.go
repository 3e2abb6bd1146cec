package transition

import (
	nlp "listdep/nlp/types"
	"listdep/util"
)

// The running example is a wh-question whose object fronting produces
// a crossing arc (see <- Who over did <- ROOT), so the gold parse is
// non-projective and exercises both PASS flavors.
//
//	ROOT Who did you see
//	0    1   2   3   4
//
//	did  <- ROOT  (ROOT)
//	see  <- did   (VC)
//	you  <- see   (SBJ)
//	Who  <- see   (OBJ)
var (
	testSentence = nlp.BasicTaggedSentence{
		{Token: "Who", Lemma: "who", POS: "WP"},
		{Token: "did", Lemma: "do", POS: "VBD"},
		{Token: "you", Lemma: "you", POS: "PRP"},
		{Token: "see", Lemma: "see", POS: "VB"},
	}

	testGoldArcs = []nlp.Arc{
		{Head: 0, Modifier: 2, Relation: "ROOT"},
		{Head: 2, Modifier: 4, Relation: "VC"},
		{Head: 4, Modifier: 3, Relation: "SBJ"},
		{Head: 4, Modifier: 1, Relation: "OBJ"},
	}

	testRelations = []string{"ROOT", "OBJ", "SBJ", "VC", "ATT"}

	testOracleSequence = []string{"NS", "NP", "RS-ROOT", "NS", "LR-SBJ", "RP-VC", "LR-OBJ", "NS"}
)

func testGoldGraph() *nlp.Graph {
	graph := nlp.NewGraph(testSentence)
	graph.Arcs = append(graph.Arcs, testGoldArcs...)
	return graph
}

func testRelationEnum() *util.EnumSet {
	enum := util.NewEnumSet(len(testRelations))
	for _, relation := range testRelations {
		enum.Add(nlp.DepRel(relation))
	}
	enum.Frozen = true
	return enum
}

func testSystem() *ListBased {
	system := &ListBased{Relations: testRelationEnum()}
	system.AddDefaultOracle()
	return system
}

func testInitialState() *ParseState {
	state := new(ParseState)
	state.Init(testSentence)
	return state
}
