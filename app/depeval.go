package app

import (
	"fmt"
	"log"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"listdep/eval"
	"listdep/nlp/format/conll"
	nlp "listdep/nlp/types"
)

func DepEvalConfigOut() {
	log.Println("Configuration")
	log.Println()
	log.Println("Data")
	log.Printf("Parsed result file:\t%s", input)
	log.Printf("Gold file:\t\t%s", inputGold)
	log.Println()
}

// DepEval scores a parsed graph against its gold counterpart; the
// denominator is the gold token count, so missing arcs in the parse
// count against attachment.
func DepEval(test, gold *nlp.Graph) *eval.Result {
	result := &eval.Result{Tokens: gold.NumberOfNodes() - 1}
	for modifier := 1; modifier < gold.NumberOfNodes(); modifier++ {
		goldArc, goldAttached := gold.HeadOf(modifier)
		testArc, testAttached := test.HeadOf(modifier)
		if !goldAttached || !testAttached {
			continue
		}
		if testArc.Head == goldArc.Head {
			result.Attached++
			if testArc.Relation == goldArc.Relation {
				result.Labeled++
			}
		}
	}
	return result
}

func EvalCommand(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"p", "g"}); err != nil {
		return err
	}
	if allOut {
		DepEvalConfigOut()
	}
	parsedCorpus, err := conll.ReadFile(input, limit)
	if err != nil {
		return err
	}
	goldCorpus, err := conll.ReadFile(inputGold, limit)
	if err != nil {
		return err
	}
	if len(parsedCorpus) != len(goldCorpus) {
		return fmt.Errorf("corpus size mismatch: %d parsed vs %d gold sentences",
			len(parsedCorpus), len(goldCorpus))
	}
	parsed, err := conll.Conll2GraphCorpus(parsedCorpus)
	if err != nil {
		return err
	}
	gold, err := conll.Conll2GraphCorpus(goldCorpus)
	if err != nil {
		return err
	}

	total := new(eval.Total)
	for i := range gold {
		if parsed[i].NumberOfNodes() != gold[i].NumberOfNodes() {
			return fmt.Errorf("sentence %d: length mismatch", i)
		}
		total.Add(DepEval(parsed[i], gold[i]))
	}
	log.Println(total.String())
	fmt.Printf("UAS\t%.4f\n", total.UAS())
	fmt.Printf("LAS\t%.4f\n", total.LAS())
	fmt.Printf("Exact\t%.4f\n", total.ExactMatch())
	return nil
}

func EvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       EvalCommand,
		UsageLine: "eval <file options> [arguments]",
		Short:     "scores a parsed corpus against gold",
		Long: `
scores a parsed corpus against gold

	$ ./listdep eval -p <conll> -g <conll> [options]

`,
		Flag: *flag.NewFlagSet("eval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "p", "", "Parse Result CoNLL File")
	cmd.Flag.StringVar(&inputGold, "g", "", "Gold CoNLL File")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit number of sentences")
	return cmd
}
