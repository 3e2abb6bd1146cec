package app

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"listdep/alg/search"
	"listdep/nlp/format/conll"
	dep "listdep/nlp/parser/dependency/transition"
	"listdep/util"
)

var featureIDs bool

func FeaturesConfigOut(extractor *dep.Extractor, corpus int) {
	log.Println("Configuration")
	log.Printf("Feature Templates:\t%d", len(extractor.Templates))
	if featuresFile != "" {
		log.Printf("Features File:\t\t%s", featuresFile)
	} else {
		log.Println("Features:\t\tbuilt-in default set")
	}
	log.Println()
	log.Println("Data")
	log.Printf("Gold file:\t\t%s", inputGold)
	log.Printf("Sentences:\t\t%d", corpus)
	log.Println()
}

// DumpFeatures writes one line per gold transition: sentence index,
// the transition taken and the features extracted just before it.
func DumpFeatures(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"g"}); err != nil {
		return err
	}
	corpus, err := conll.ReadFile(inputGold, limit)
	if err != nil {
		return err
	}
	graphs, err := conll.Conll2GraphCorpus(corpus)
	if err != nil {
		return err
	}

	var labels []string
	if labelsFile != "" {
		if labels, err = ReadLabels(labelsFile); err != nil {
			return err
		}
	} else {
		labels = CollectLabels(graphs)
	}
	SetupRelationEnum(labels)

	extractor := &dep.Extractor{EFeatures: util.NewEnumSet(APPROX_LABELS * 100)}
	if featuresFile != "" {
		found, err := util.LocateFile(featuresFile, DEFAULT_CONF_DIRS)
		if err != nil {
			return err
		}
		setup, err := dep.LoadFeatureConfFile(found)
		if err != nil {
			return err
		}
		if err := extractor.LoadSetup(setup); err != nil {
			return err
		}
	} else if err := extractor.LoadFeatures(dep.DefaultFeatures); err != nil {
		return err
	}

	system := &dep.ListBased{Relations: ERel}
	system.AddDefaultOracle()
	driver := &search.Deterministic{
		TransFunc:     system,
		FeatExtractor: extractor,
		Base:          new(dep.ParseState),
	}
	if allOut {
		FeaturesConfigOut(extractor, len(graphs))
	}

	var out io.Writer = os.Stdout
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	instances := 0
	for i, gold := range graphs {
		steps, _, parseErr := driver.OracleSteps(gold.TaggedSentence(), gold)
		if parseErr != nil {
			log.Printf("Sentence %d: %v", i, parseErr)
			continue
		}
		for _, step := range steps {
			if _, err := fmt.Fprintf(writer, "%d\t%s\t%s\n", i, step.Decision.String(),
				strings.Join(renderFeatures(extractor, step.Features), "\t")); err != nil {
				return err
			}
			instances++
		}
	}
	log.Println("Wrote", instances, "training instances for", len(graphs), "sentences")
	if featureIDs {
		log.Println("Feature vocabulary size:", extractor.EFeatures.Len())
	}
	return nil
}

// renderFeatures optionally swaps feature strings for their interned
// ids, producing compact instances for id-based learners.
func renderFeatures(extractor *dep.Extractor, features []string) []string {
	if !featureIDs {
		return features
	}
	rendered := make([]string, len(features))
	for i, feature := range features {
		id, _ := extractor.EFeatures.IndexOf(feature)
		rendered[i] = fmt.Sprintf("%d", id)
	}
	return rendered
}

func FeaturesCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       DumpFeatures,
		UsageLine: "features <file options> [arguments]",
		Short:     "dumps classifier training instances from gold derivations",
		Long: `
dumps classifier training instances from gold derivations

	$ ./listdep features -g <conll> [-f <features.yaml>] [options]

`,
		Flag: *flag.NewFlagSet("features", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inputGold, "g", "", "Gold CoNLL File")
	cmd.Flag.StringVar(&featuresFile, "f", "", "Feature Templates Configuration File")
	cmd.Flag.StringVar(&outFile, "o", "", "Output TSV File (default stdout)")
	cmd.Flag.StringVar(&labelsFile, "l", "", "Dependency Labels Configuration File")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit number of sentences")
	cmd.Flag.BoolVar(&featureIDs, "ids", false, "Emit interned feature ids instead of strings")
	return cmd
}
