// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvstride/compact"
	"github.com/katalvlaran/lvstride/internal/config"
)

// graphFile is the YAML graph format read by toposort and written by gen.
// Exactly one of Edges (with Vertices) or Adjacency describes the graph.
type graphFile struct {
	Vertices  int     `yaml:"vertices,omitempty"`
	Edges     [][]int `yaml:"edges,omitempty"`
	Adjacency [][]int `yaml:"adjacency,omitempty"`
}

// decodeGraph parses a graph file into a matrix.
func decodeGraph(r io.Reader) (*compact.AdjacencyMatrix, error) {
	var gf graphFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&gf); err != nil {
		return nil, fmt.Errorf("%w: %w", errGraphFile, err)
	}
	switch {
	case gf.Adjacency != nil && gf.Edges != nil:
		return nil, fmt.Errorf("%w: both edges and adjacency given", errGraphFile)
	case gf.Adjacency != nil:
		return compact.FromAdjacencyList(gf.Adjacency)
	default:
		return compact.FromEdges(gf.Vertices, gf.Edges)
	}
}

// encodeGraph writes a in the vertices/edges form.
func encodeGraph(w io.Writer, a *compact.AdjacencyMatrix) error {
	gf := graphFile{Vertices: a.NVertices(), Edges: make([][]int, 0, a.NEdges())}
	for _, e := range a.Edges() {
		gf.Edges = append(gf.Edges, []int{e[0], e[1]})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(gf); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return enc.Close()
}

func newToposortCommand(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "toposort",
		Short: "Topologically sort a graph file",
		Long: `Read a YAML graph and print a topological order, or the first cycle found.

The file holds either
  vertices: 4
  edges: [[0, 1], [0, 2], [1, 2], [2, 3]]
or
  adjacency: [[1, 2], [2], [3], []]

Use --file - to read standard input. A cycle exits non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			g, err := decodeGraph(r)
			if err != nil {
				return err
			}

			order, cycle, err := g.ToposortContext(cmd.Context())
			if err != nil {
				return err
			}
			a.metrics.Toposort(cycle != nil)
			a.log.Debug("toposort", "vertices", g.NVertices(), "edges", g.NEdges(), "cycle", cycle != nil)

			if g.NVertices() == 0 {
				a.render.Note("empty graph")
				return nil
			}
			a.render.Adjacency(g.ToAdjacencyList())
			if cycle != nil {
				a.render.Fail("cycle: %v", cycle)
				return fmt.Errorf("%w: %v", errCycleFound, cycle)
			}
			a.render.OK("order: %v", order)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "Graph YAML file, - for stdin")
	return cmd
}

// generators maps --kind names to deterministic constructors.
var generators = map[string]func(int) (*compact.AdjacencyMatrix, error){
	"path":     compact.Path,
	"cycle":    compact.Cycle,
	"star":     compact.Star,
	"complete": compact.Complete,
}

func newGenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a graph file",
		Long: `Print a generated graph as YAML in the format toposort reads.

Kinds: path, cycle, star, complete, dag (random, uses --p and --seed).`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, err := a.generate()
			if err != nil {
				return err
			}
			a.log.Debug("generated", "kind", a.cfg.Gen.Kind, "vertices", g.NVertices(), "edges", g.NEdges())
			return encodeGraph(a.out, g)
		},
	}
	cmd.Flags().String("kind", config.DefaultGenKind, "Graph kind: path, cycle, star, complete, dag")
	cmd.Flags().Int("n", config.DefaultGenVertices, "Number of vertices")
	cmd.Flags().Float64("p", config.DefaultGenProbability, "Edge probability for dag")
	cmd.Flags().Int64("seed", config.DefaultGenSeed, "Random seed for dag")
	return cmd
}

func (a *app) generate() (*compact.AdjacencyMatrix, error) {
	gc := a.cfg.Gen
	if gc.Kind == "dag" {
		return compact.RandomDAG(gc.Vertices, gc.Probability, rand.New(rand.NewSource(gc.Seed)))
	}
	gen, ok := generators[gc.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownKind, gc.Kind)
	}
	return gen(gc.Vertices)
}
