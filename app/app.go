// Package app wires the command line interface: gold replay, feature
// dumping and evaluation over CoNLL corpora.
package app

import (
	"log"
	"os"
	"runtime"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

const NUM_CPUS_FLAG = "cpus"

var CPUs int

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine: os.Args[0] + " replay|features|eval [arguments]",
		Short:     "list-based non-projective dependency parsing",
		Subcommands: []*commander.Command{
			ReplayCmd(),
			FeaturesCmd(),
			EvalCmd(),
		},
		Flag: *flag.NewFlagSet("app", flag.ExitOnError),
	}
	for _, sub := range cmd.Subcommands {
		sub.Run = NewAppWrapCommand(sub.Run)
		sub.Flag.IntVar(&CPUs, NUM_CPUS_FLAG, 0, "Max CPUS to use (runtime.GOMAXPROCS); 0 = all")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) {
	maxCPUs := runtime.NumCPU()
	if CPUs > maxCPUs {
		log.Printf("Warning: Number of CPUs capped to all available (%d)", maxCPUs)
		CPUs = 0
	}
	if CPUs == 0 {
		CPUs = maxCPUs
	}
	runtime.GOMAXPROCS(CPUs)
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	return func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		return f(cmd, args)
	}
}
