package app

import (
	"log"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/gosuri/uiprogress"

	"listdep/alg/search"
	"listdep/nlp/format/conll"
	dep "listdep/nlp/parser/dependency/transition"
	nlp "listdep/nlp/types"
)

var (
	showOracle     bool
	headlessReduce bool
	noProgress     bool
)

func ReplayConfigOut(system *dep.ListBased, corpus int) {
	log.Println("Configuration")
	log.Printf("Transition System:\t%s", system.Name())
	log.Printf("Relations:\t\t%d", system.Relations.Len())
	log.Println()
	log.Println("Data")
	log.Printf("Gold file:\t\t%s", inputGold)
	log.Printf("Sentences:\t\t%d", corpus)
	if outFile != "" {
		log.Printf("Output file:\t\t%s", outFile)
	}
	log.Println()
}

func Replay(cmd *commander.Command, args []string) error {
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

	system := &dep.ListBased{Relations: ERel, AllowHeadlessReduce: headlessReduce}
	system.AddDefaultOracle()
	driver := &search.Deterministic{
		TransFunc: system,
		Base:      new(dep.ParseState),
	}
	if allOut {
		ReplayConfigOut(system, len(graphs))
	}
	search.SHOW_ORACLE = showOracle

	var bar *uiprogress.Bar
	progress := allOut && !showOracle && !noProgress
	if progress {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(graphs)).AppendCompleted().PrependElapsed()
	}
	parsed := make([]*nlp.Graph, len(graphs))
	reproduced := 0
	for i, gold := range graphs {
		if progress {
			bar.Incr()
		}
		result, _, parseErr := driver.ParseOracle(gold.TaggedSentence(), gold)
		if parseErr != nil {
			log.Printf("Sentence %d: %v", i, parseErr)
		}
		if result != nil {
			parsed[i] = result.(*dep.ParseState).Graph()
			if parseErr == nil && parsed[i].Equal(gold) {
				reproduced++
			}
		} else {
			parsed[i] = nlp.NewGraph(gold.TaggedSentence())
		}
	}
	if progress {
		uiprogress.Stop()
	}
	log.Printf("Reproduced %d of %d gold graphs (%.2f%%)", reproduced, len(graphs),
		100*float64(reproduced)/float64(len(graphs)))

	if outFile != "" {
		if err := conll.WriteFile(outFile, conll.Graph2ConllCorpus(parsed)); err != nil {
			return err
		}
		log.Println("Wrote", len(parsed), "sentences to", outFile)
	}
	return nil
}

func ReplayCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Replay,
		UsageLine: "replay <file options> [arguments]",
		Short:     "replays gold derivations through the oracle",
		Long: `
replays gold derivations through the oracle

	$ ./listdep replay -g <conll> [options]

`,
		Flag: *flag.NewFlagSet("replay", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inputGold, "g", "", "Gold CoNLL File")
	cmd.Flag.StringVar(&outFile, "o", "", "Output CoNLL File")
	cmd.Flag.StringVar(&labelsFile, "l", "", "Dependency Labels Configuration File")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit number of sentences")
	cmd.Flag.BoolVar(&showOracle, "showoracle", false, "Log oracle transitions")
	cmd.Flag.BoolVar(&headlessReduce, "headlessreduce", false, "Allow reducing unattached tokens")
	cmd.Flag.BoolVar(&noProgress, "noprogress", false, "Disable progress bar")
	return cmd
}
