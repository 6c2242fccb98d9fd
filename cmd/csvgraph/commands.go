package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/csvgraph/config"
	"github.com/katalvlaran/csvgraph/core"
	"github.com/katalvlaran/csvgraph/csvimport"
)

// importFlags holds command-line overrides for the config file.
type importFlags struct {
	configPath     string
	format         string
	delimiter      string
	nodeID         bool
	edgeWeights    bool
	zeroWhenNoEdge bool
	directed       bool
	weighted       bool
	loops          bool
	multiEdges     bool
	logMode        string
	verbose        bool
	metrics        bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "csvgraph",
		Short:         "Import delimited-text graphs (edge list, adjacency list, matrix)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newImportCmd())

	return root
}

func newImportCmd() *cobra.Command {
	var fl importFlags
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Import a file and print the resulting vertices and edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, fl, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.configPath, "config", "", "YAML config file; flags override its values")
	f.StringVar(&fl.format, "format", "edge_list", "edge_list, adjacency_list or matrix")
	f.StringVar(&fl.delimiter, "delimiter", ";", "single-character field delimiter")
	f.BoolVar(&fl.nodeID, "node-id", false, "matrix header lists vertex names")
	f.BoolVar(&fl.edgeWeights, "edge-weights", false, "matrix cells are edge weights")
	f.BoolVar(&fl.zeroWhenNoEdge, "zero-when-no-edge", false, "matrix cell 0 means no edge")
	f.BoolVar(&fl.directed, "directed", true, "build a directed graph")
	f.BoolVar(&fl.weighted, "weighted", false, "build a weighted graph")
	f.BoolVar(&fl.loops, "loops", false, "allow self-loops")
	f.BoolVar(&fl.multiEdges, "multi-edges", false, "allow parallel edges")
	f.StringVar(&fl.logMode, "log-mode", "dev", "logger: dev, prod or none")
	f.BoolVar(&fl.verbose, "verbose", false, "log every row")
	f.BoolVar(&fl.metrics, "metrics", false, "write import metrics to stderr in Prometheus text format")

	return cmd
}

// resolveConfig loads the config file (or defaults) and applies changed flags.
func resolveConfig(cmd *cobra.Command, fl importFlags) (*config.File, error) {
	cfg := config.Default()
	if fl.configPath != "" {
		var err error
		if cfg, err = config.Load(fl.configPath); err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = fl.format
	}
	if changed("delimiter") {
		cfg.Delimiter = fl.delimiter
	}
	setParam := func(flag string, p csvimport.Parameter, on bool) {
		if !changed(flag) {
			return
		}
		kept := cfg.Parameters[:0:0]
		for _, name := range cfg.Parameters {
			if q, err := csvimport.ParseParameter(name); err != nil || q != p {
				kept = append(kept, name)
			}
		}
		if on {
			kept = append(kept, p.String())
		}
		cfg.Parameters = kept
	}
	setParam("node-id", csvimport.MatrixFormatNodeID, fl.nodeID)
	setParam("edge-weights", csvimport.MatrixFormatEdgeWeights, fl.edgeWeights)
	setParam("zero-when-no-edge", csvimport.MatrixFormatZeroWhenNoEdge, fl.zeroWhenNoEdge)
	if changed("directed") {
		cfg.Graph.Directed = fl.directed
	}
	if changed("weighted") {
		cfg.Graph.Weighted = fl.weighted
	}
	if changed("loops") {
		cfg.Graph.Loops = fl.loops
	}
	if changed("multi-edges") {
		cfg.Graph.MultiEdges = fl.multiEdges
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runImport(cmd *cobra.Command, fl importFlags, path string) error {
	cfg, err := resolveConfig(cmd, fl)
	if err != nil {
		return err
	}
	log, err := newLogger(fl.logMode, fl.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts, err := cfg.ImportOptions()
	if err != nil {
		return err
	}
	opts = append(opts, csvimport.WithLogger(log))
	if fl.metrics {
		reg := prometheus.NewRegistry()
		opts = append(opts, csvimport.WithMetrics(csvimport.NewMetrics(reg)))
		defer func() {
			if werr := writeMetrics(cmd.ErrOrStderr(), reg); werr != nil {
				log.Warn("write metrics", zap.Error(werr))
			}
		}()
	}

	in, closeIn, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer closeIn()

	g := core.NewGraph(cfg.GraphOptions()...)
	if err = csvimport.ReadCore(g, in, opts...); err != nil {
		return err
	}

	return printGraph(cmd.OutOrStdout(), g)
}

// writeMetrics encodes everything in g using the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}

// openInput opens path, or stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

// newLogger mirrors the dev/prod switch used by our services.
func newLogger(mode string, verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "none", "off":
		return zap.NewNop(), nil
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	case "dev", "development":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log mode %q", mode)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

// printGraph writes a stable, line-oriented dump of g.
func printGraph(w io.Writer, g *core.Graph) error {
	st := g.Stats()
	if _, err := fmt.Fprintf(w, "vertices: %d\nedges: %d\n", st.VertexCount, st.EdgeCount); err != nil {
		return err
	}
	for _, id := range g.Vertices() {
		if _, err := fmt.Fprintf(w, "vertex %s\n", id); err != nil {
			return err
		}
	}
	arrow := "--"
	if st.DirectedDefault {
		arrow = "->"
	}
	for _, e := range g.Edges() {
		line := fmt.Sprintf("edge %s %s %s %s", e.ID, e.From, arrow, e.To)
		if st.Weighted {
			line += fmt.Sprintf(" weight=%g", e.Weight)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
