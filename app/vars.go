package app

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/gonuts/commander"

	nlp "listdep/nlp/types"
	"listdep/util"
	"listdep/util/conf"
)

var (
	allOut bool = true

	// global command flags
	input        string
	inputGold    string
	outFile      string
	labelsFile   string
	featuresFile string
	limit        int

	// closed relation set shared by all commands
	ERel *util.EnumSet
)

const APPROX_LABELS = 32

var DEFAULT_CONF_DIRS = []string{".", "conf"}

// SetupRelationEnum freezes the relation enum; the ROOT label is
// always present.
func SetupRelationEnum(labels []string) {
	if ERel != nil {
		return
	}
	ERel = util.NewEnumSet(len(labels) + 1)
	ERel.Add(nlp.DepRel(nlp.ROOT_LABEL))
	for _, label := range labels {
		if label != nlp.ROOT_LABEL {
			ERel.Add(nlp.DepRel(label))
		}
	}
	ERel.Frozen = true
}

// ReadLabels loads a relation label configuration file, searching the
// default conf directories.
func ReadLabels(filename string) ([]string, error) {
	found, err := util.LocateFile(filename, DEFAULT_CONF_DIRS)
	if err != nil {
		return nil, err
	}
	labelConf, err := conf.ReadFile(found)
	if err != nil {
		return nil, err
	}
	return labelConf.Values, nil
}

// CollectLabels derives the relation label set from a gold corpus
// when no label configuration is given.
func CollectLabels(graphs []*nlp.Graph) []string {
	seen := make(map[string]bool)
	for _, graph := range graphs {
		for _, arc := range graph.Arcs {
			seen[string(arc.Relation)] = true
		}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, flagName := range required {
		f := cmd.Flag.Lookup(flagName)
		if f == nil || f.Value.String() == "" {
			return fmt.Errorf("required flag -%s not provided, see -help", flagName)
		}
	}
	return nil
}
