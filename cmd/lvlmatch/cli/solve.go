package cli

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/katalvlaran/lvlmatch/graphio"
	"github.com/katalvlaran/lvlmatch/matching"
	"github.com/katalvlaran/lvlmatch/mission"
	"github.com/katalvlaran/lvlmatch/trace"
)

func newSolveCommand(ctx context.Context) *cobra.Command {
	var (
		method    string
		inputPath string
		nodes     int
		edgeRate  int
		seed      int64
		showTrace bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute a matching on a mission file or a random mission",
		RunE: func(*cobra.Command, []string) error {
			g, err := loadOrGenerate(inputPath, nodes, edgeRate, seed)
			if err != nil {
				return err
			}

			m, err := matching.MatcherFor(method, matching.DefaultNaiveCap)
			if err != nil {
				return fmt.Errorf("available methods: %s: %w",
					strings.Join(matching.Methods(), ", "), err)
			}

			opts := []matching.Option{matching.WithContext(ctx)}
			if showTrace {
				opts = append(opts, matching.WithTracer(trace.NewLog(log.StandardLogger())))
			}

			res, err := matching.RunCooperative(g, m, opts...)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"method":  method,
				"nodes":   g.VertexCount(),
				"edges":   g.EdgeCount(),
				"score":   res.Score,
				"steps":   res.Steps,
				"elapsed": res.Elapsed,
			}).Info("solved")
			for _, e := range res.Matching.Edges(g) {
				fmt.Printf("%d\t%d\t%d\n", e.From, e.To, e.Weight)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", matching.MethodBlossom,
		"matcher: "+strings.Join(matching.Methods(), "|"))
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "mission YAML file (omit to generate)")
	cmd.Flags().IntVarP(&nodes, "nodes", "n", 20, "node count for generated missions")
	cmd.Flags().IntVarP(&edgeRate, "rate", "r", 30, "edge rate percent for generated missions")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 1, "seed for generated missions")
	cmd.Flags().BoolVarP(&showTrace, "trace", "t", false, "log matcher trace events")

	return cmd
}

// loadOrGenerate reads a mission file when a path is given, otherwise
// samples a random mission.
func loadOrGenerate(path string, nodes, edgeRate int, seed int64) (*core.Graph, error) {
	if path != "" {
		return graphio.Load(path)
	}

	return mission.Random(nodes, edgeRate, mission.WithSeed(seed))
}
