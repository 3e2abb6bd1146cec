// Package conll reads and writes the CoNLL-X dependency format.
package conll

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	nlp "listdep/nlp/types"
)

const NUM_FIELDS = 10

const UNDERSCORE = "_"

// Row is a single token line; fields PHEAD and PDEPREL are read but
// not retained.
type Row struct {
	ID      int
	Form    string
	Lemma   string
	CPosTag string
	PosTag  string
	Feats   string
	Head    int
	DepRel  string
}

func (r Row) String() string {
	fields := []string{
		strconv.Itoa(r.ID),
		blankDefault(r.Form),
		blankDefault(r.Lemma),
		blankDefault(r.CPosTag),
		blankDefault(r.PosTag),
		blankDefault(r.Feats),
		strconv.Itoa(r.Head),
		blankDefault(r.DepRel),
		UNDERSCORE,
		UNDERSCORE,
	}
	return strings.Join(fields, "\t")
}

func blankDefault(field string) string {
	if field == "" {
		return UNDERSCORE
	}
	return field
}

// Sentence is a map of row ID to row; IDs start at 1.
type Sentence map[int]Row

type Sentences []Sentence

func ParseInt(value string) (int, error) {
	if value == UNDERSCORE {
		value = "0"
	}
	return strconv.Atoi(value)
}

func ParseString(value string) string {
	if value == UNDERSCORE {
		return ""
	}
	return value
}

func ParseRow(record []string) (Row, error) {
	var row Row
	if len(record) < NUM_FIELDS {
		return row, fmt.Errorf("expected %d fields, got %d", NUM_FIELDS, len(record))
	}

	id, err := ParseInt(record[0])
	if err != nil {
		return row, fmt.Errorf("error parsing ID field (%s): %s", record[0], err.Error())
	}
	row.ID = id

	row.Form = ParseString(record[1])
	if row.Form == "" {
		return row, fmt.Errorf("empty FORM field in row %d", id)
	}
	row.Lemma = ParseString(record[2])

	row.CPosTag = ParseString(record[3])
	row.PosTag = ParseString(record[4])
	if row.CPosTag == "" && row.PosTag == "" {
		return row, fmt.Errorf("empty POS fields in row %d", id)
	}
	row.Feats = ParseString(record[5])

	head, err := ParseInt(record[6])
	if err != nil {
		return row, fmt.Errorf("error parsing HEAD field (%s): %s", record[6], err.Error())
	}
	row.Head = head

	row.DepRel = ParseString(record[7])
	return row, nil
}

func Read(reader io.Reader, limit int) (Sentences, error) {
	sentences := make(Sentences, 0, 100)
	csvReader := csv.NewReader(reader)
	csvReader.Comma = '\t'
	csvReader.FieldsPerRecord = NUM_FIELDS
	csvReader.LazyQuotes = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}

	var currentSent Sentence
	for i, record := range records {
		// a record with id '1' opens a new sentence, since the csv
		// reader ignores the empty separator lines
		if record[0] == "1" {
			if currentSent != nil {
				sentences = append(sentences, currentSent)
				if limit > 0 && len(sentences) >= limit {
					return sentences, nil
				}
			}
			currentSent = make(Sentence)
		}
		if currentSent == nil {
			return nil, fmt.Errorf("record %d appears before any sentence start", i)
		}
		row, err := ParseRow(record)
		if err != nil {
			return nil, fmt.Errorf("error processing record %d: %s", i, err.Error())
		}
		currentSent[row.ID] = row
	}
	if len(currentSent) > 0 {
		sentences = append(sentences, currentSent)
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) (Sentences, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file, limit)
}

func Write(writer io.Writer, sentences Sentences) error {
	for _, sent := range sentences {
		ids := make([]int, 0, len(sent))
		for id := range sent {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			if _, err := fmt.Fprintln(writer, sent[id].String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, sentences Sentences) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, sentences)
}

// Conll2Graph converts a read sentence to a dependency graph; HEAD
// fields index the sentence with 0 as ROOT, matching graph indexing.
func Conll2Graph(sent Sentence) (*nlp.Graph, error) {
	tagged := make(nlp.BasicTaggedSentence, len(sent))
	arcs := make([]nlp.Arc, 0, len(sent))
	for id, row := range sent {
		if id < 1 || id > len(sent) {
			return nil, fmt.Errorf("non-contiguous row ID %d in sentence of length %d", id, len(sent))
		}
		pos := row.PosTag
		if pos == "" {
			pos = row.CPosTag
		}
		tagged[id-1] = nlp.TaggedToken{Token: row.Form, Lemma: row.Lemma, POS: pos}
		if row.Head < 0 || row.Head > len(sent) {
			return nil, fmt.Errorf("row %d has head %d outside the sentence", id, row.Head)
		}
		if row.DepRel != "" {
			arcs = append(arcs, nlp.Arc{Head: row.Head, Modifier: id, Relation: nlp.DepRel(row.DepRel)})
		}
	}
	graph := nlp.NewGraph(tagged)
	graph.Arcs = arcs
	return graph, nil
}

// Graph2Conll converts a graph back to rows; unattached tokens get
// head 0 with an empty relation.
func Graph2Conll(graph *nlp.Graph) Sentence {
	sent := make(Sentence, graph.NumberOfNodes()-1)
	for id := 1; id < graph.NumberOfNodes(); id++ {
		node := graph.Nodes[id]
		row := Row{
			ID:     id,
			Form:   node.Token,
			Lemma:  node.Lemma,
			PosTag: node.POS,
		}
		if arc, attached := graph.HeadOf(id); attached {
			row.Head = arc.Head
			row.DepRel = string(arc.Relation)
		}
		sent[id] = row
	}
	return sent
}

func Conll2GraphCorpus(corpus Sentences) ([]*nlp.Graph, error) {
	graphs := make([]*nlp.Graph, len(corpus))
	for i, sent := range corpus {
		graph, err := Conll2Graph(sent)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %s", i, err.Error())
		}
		graphs[i] = graph
	}
	return graphs, nil
}

func Graph2ConllCorpus(graphs []*nlp.Graph) Sentences {
	corpus := make(Sentences, len(graphs))
	for i, graph := range graphs {
		corpus[i] = Graph2Conll(graph)
	}
	return corpus
}
