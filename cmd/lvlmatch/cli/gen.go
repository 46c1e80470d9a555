package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmatch/graphio"
	"github.com/katalvlaran/lvlmatch/mission"
)

func newGenCommand() *cobra.Command {
	var (
		nodes    int
		edgeRate int
		seed     int64
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random mission and write it as YAML",
		RunE: func(*cobra.Command, []string) error {
			g, err := mission.Random(nodes, edgeRate, mission.WithSeed(seed))
			if err != nil {
				return err
			}

			if outPath == "" {
				return graphio.Write(os.Stdout, g)
			}
			if err = graphio.Save(outPath, g); err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"file":  outPath,
				"nodes": g.VertexCount(),
				"edges": g.EdgeCount(),
			}).Info("mission written")

			return nil
		},
	}

	cmd.Flags().IntVarP(&nodes, "nodes", "n", 20, "node count")
	cmd.Flags().IntVarP(&edgeRate, "rate", "r", 30, "edge rate percent")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 1, "generator seed")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	return cmd
}
