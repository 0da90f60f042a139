package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use: "dequectl",
		Long: `
	dequectl replays a script of deque operations, one per line, against a
	fixed-capacity deque of ints.
`,
		Example: `  $ dequectl run ops.txt --size 16
  $ echo "push_back 1" | dequectl run --stats
  `,

		// a rejected script line is reported with its line number already
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newSizesCmd())
	return root
}

type runOptions struct {
	size    int
	verbose bool
	stats   bool
}

func (o *runOptions) bind(fs *pflag.FlagSet) {
	fs.IntVarP(&o.size, "size", "s", 8, "backing array length, the deque holds one less")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log every operation")
	fs.BoolVar(&o.stats, "stats", false, "print statistics as JSON after the script")
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Replay a script read from a file, or from stdin when omitted or -",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			log, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return execute(in, cmd.OutOrStdout(), opts, log)
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

func newSizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "List the supported backing array lengths",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, size := range slices.Sorted(maps.Keys(backings)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\tcapacity %d\n", size, size-1)
			}
		},
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
