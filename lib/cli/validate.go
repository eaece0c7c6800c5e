package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-trimesh/go-trimesh/lib/adjacency"
	"github.com/go-trimesh/go-trimesh/lib/config"
	"github.com/go-trimesh/go-trimesh/lib/topology"
	"github.com/go-trimesh/go-trimesh/lib/wavefront"
)

var (
	reportPath      string
	checkDegenerate bool
	checkBackfacing bool
	checkBowties    bool
	skipAdjacency   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <mesh.obj>",
	Short: "Validate the topology of a Wavefront OBJ mesh",
	Long: `Loads a Wavefront OBJ file, derives its face adjacency table, and checks
the index buffer for out-of-range values, degenerate triangles, duplicated
neighbor links, and bowtie vertices.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&reportPath, "report", "", "write a YAML report to this path")
	validateCmd.Flags().BoolVar(&checkDegenerate, "degenerate", true, "report degenerate triangles")
	validateCmd.Flags().BoolVar(&checkBackfacing, "backfacing", true, "report duplicated neighbor links")
	validateCmd.Flags().BoolVar(&checkBowties, "bowties", true, "report bowtie vertices")
	validateCmd.Flags().BoolVar(&skipAdjacency, "no-adjacency", false, "skip adjacency derivation; disables backfacing and bowtie checks")
	rootCmd.AddCommand(validateCmd)
}

// lintFlags resolves the effective check set: config defaults, overridden
// by whichever flags the user set explicitly.
func lintFlags(cmd *cobra.Command) (topology.Flags, bool) {
	lint := config.TrimeshConfigProperties.Lint

	degenerate := lint.CheckDegenerate
	backfacing := lint.CheckBackfacing
	bowties := lint.CheckBowties
	buildAdj := lint.BuildAdjacency

	if cmd.Flags().Changed("degenerate") {
		degenerate = checkDegenerate
	}
	if cmd.Flags().Changed("backfacing") {
		backfacing = checkBackfacing
	}
	if cmd.Flags().Changed("bowties") {
		bowties = checkBowties
	}
	if cmd.Flags().Changed("no-adjacency") {
		buildAdj = !skipAdjacency
	}
	if !buildAdj {
		backfacing = false
		bowties = false
	}

	var flags topology.Flags
	if degenerate {
		flags |= topology.ValidateDegenerate
	}
	if backfacing {
		flags |= topology.ValidateBackfacing
	}
	if bowties {
		flags |= topology.ValidateBowties
	}
	return flags, buildAdj
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	mesh, err := wavefront.LoadFile(path)
	if err != nil {
		return err
	}
	log.WithField("faces", mesh.NumFaces()).WithField("verts", mesh.NumVerts()).Debug("loaded mesh")

	flags, buildAdj := lintFlags(cmd)

	var adj []uint32
	if buildAdj {
		adj, err = adjacency.Build(mesh.Indices, mesh.NumFaces(), mesh.NumVerts())
		if err != nil {
			return err
		}
	}

	var diags topology.Diagnostics
	verr := topology.Validate(mesh.Indices, mesh.NumFaces(), mesh.NumVerts(), adj, flags, &diags)

	rep := newReport(path, mesh, flags, &diags, verr)
	fmt.Fprintln(cmd.OutOrStdout(), renderReport(rep))

	out := reportPath
	if out == "" {
		out = config.TrimeshConfigProperties.ReportPath
	}
	if out != "" {
		if err := writeReport(out, rep); err != nil {
			return err
		}
		log.WithField("path", out).Debug("wrote validation report")
	}

	return verr
}
