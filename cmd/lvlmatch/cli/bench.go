package cli

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmatch/bench"
	"github.com/katalvlaran/lvlmatch/matching"
)

func newBenchCommand(ctx context.Context) *cobra.Command {
	var (
		methods []string
		nodes   []int
		rates   []int
		seed    int64
		workers int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a benchmark suite over generated missions",
		RunE: func(*cobra.Command, []string) error {
			if len(methods) == 0 {
				methods = matching.Methods()
			}

			cells := bench.Grid(methods, nodes, rates, seed)
			rows, err := bench.Run(ctx, cells,
				bench.WithWorkers(workers),
				bench.WithLogger(log.StandardLogger()))
			if err != nil {
				return err
			}

			failed := 0
			for _, row := range rows {
				if row.Err != nil {
					failed++
					log.WithError(row.Err).WithField("cell", row.Cell).Warn("cell failed")

					continue
				}
				fmt.Printf("%s\tn=%d\trate=%d\tedges=%d\tscore=%d\tsteps=%d\t%s\n",
					row.Cell.Method, row.Cell.Nodes, row.Cell.EdgeRate,
					row.Edges, row.Score, row.Steps, row.Elapsed)
			}
			if failed > 0 {
				return fmt.Errorf("bench: %d of %d cells failed", failed, len(rows))
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&methods, "methods", "m", nil, "matchers to run (default all)")
	cmd.Flags().IntSliceVarP(&nodes, "nodes", "n", []int{20, 50}, "node counts")
	cmd.Flags().IntSliceVarP(&rates, "rates", "r", []int{30}, "edge rates percent")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 1, "base seed")
	cmd.Flags().IntVarP(&workers, "workers", "w", bench.DefaultWorkers, "worker pool size")

	return cmd
}
