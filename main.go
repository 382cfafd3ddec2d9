package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/graphparser"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/logger"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/partitioner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type config struct {
	input       string
	format      string
	output      string
	exportEdges string
	verify      bool
	workers     int
	maxCellSize int
	cells       string
	levels      string
	mlp         string
}

var configFile string

var rootCmd = &cobra.Command{
	Use:   "stoer-wagner-partitioner",
	Short: "global minimum cut of a weighted undirected graph",
	Long: `Computes the global minimum cut of a weighted undirected graph with the Stoer-Wagner
algorithm and prints the product of the two partition sizes.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cfg.input == "" {
			return fmt.Errorf("--input is required")
		}

		log, err := logger.New()
		if err != nil {
			return err
		}
		defer log.Sync()

		product, err := run(cmd.Context(), cfg, log)
		if err != nil {
			log.Error("failed", zap.Error(err))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), product)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "config file with flag defaults (yaml, json or toml)")
	flags.StringP("input", "i", "", "graph file: adjacency list, edge list or .osm.pbf, optionally .bz2")
	flags.String("format", "", "input format: adjacency, edgelist, osm (default: from file name)")
	flags.StringP("output", "o", "", "write the minimum cut as JSON to this file")
	flags.String("export-edges", "", "write the parsed graph as an edge list (.bz2 to compress)")
	flags.Bool("verify", false, "check the cut weight against max flow")
	flags.Int("workers", pkg.DEFAULT_VERIFIER_WORKERS, "number of max flow workers for --verify")
	flags.Int("max-cell-size", 0, "recursively bisect into cells of at most this many vertices")
	flags.String("cells", "cells.txt", "cell assignment output file for --max-cell-size")
	flags.String("levels", "", "comma separated max cell sizes for multilevel partitioning, smallest first")
	flags.String("mlp", "partition.mlp", "multilevel partition output file for --levels")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
}

// initConfig reads the config file if given, environment variables override it.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "reading config %s: %v\n", configFile, err)
		}
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func loadConfig() config {
	return config{
		input:       viper.GetString("input"),
		format:      viper.GetString("format"),
		output:      viper.GetString("output"),
		exportEdges: viper.GetString("export-edges"),
		verify:      viper.GetBool("verify"),
		workers:     viper.GetInt("workers"),
		maxCellSize: viper.GetInt("max-cell-size"),
		cells:       viper.GetString("cells"),
		levels:      viper.GetString("levels"),
		mlp:         viper.GetString("mlp"),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, log *zap.Logger) (int, error) {
	edges, err := graphparser.ReadGraphFile(ctx, cfg.input, cfg.format, log)
	if err != nil {
		return 0, err
	}
	if cfg.exportEdges != "" {
		if err := graphparser.SaveEdgeListToFile(cfg.exportEdges, edges); err != nil {
			return 0, err
		}
	}

	graph, ids := datastructure.BuildWeightedGraph(edges)
	log.Sugar().Infof("graph loaded, vertices: %d, edges: %d", graph.NumberOfVertices(), graph.NumberOfEdges())

	sw, err := partitioner.NewStoerWagner(graph, ids, log)
	if err != nil {
		return 0, err
	}
	minCut, err := sw.ComputeMinCut()
	if err != nil {
		return 0, err
	}
	one, two := minCut.GetPartitionSizes()
	log.Sugar().Infof("minimum cut weight %d, partition sizes %d x %d, cut edges %d",
		minCut.GetWeight(), one, two, minCut.GetNumberOfMinCutEdges())

	if cfg.verify {
		verifier := partitioner.NewMinCutVerifier(cfg.workers, log)
		if err := verifier.Verify(ctx, graph, minCut); err != nil {
			return 0, err
		}
		log.Info("minimum cut verified")
	}

	if cfg.output != "" {
		if err := partitioner.SaveMinCutToFile(cfg.output, minCut); err != nil {
			return 0, err
		}
	}

	if cfg.maxCellSize > 0 {
		rb, err := partitioner.NewRecursiveBisection(graph, ids, cfg.maxCellSize, log)
		if err != nil {
			return 0, err
		}
		if err := rb.PartitionAll(); err != nil {
			return 0, err
		}
		if err := rb.SaveCellAssignmentToFile(cfg.cells); err != nil {
			return 0, err
		}
	}

	if cfg.levels != "" {
		u, err := parseLevels(cfg.levels)
		if err != nil {
			return 0, err
		}
		mp, err := partitioner.NewMultilevelPartitioner(u, graph, ids, log)
		if err != nil {
			return 0, err
		}
		if err := mp.RunMultilevelPartitioning(); err != nil {
			return 0, err
		}
		if err := mp.SaveMLPToFile(cfg.mlp); err != nil {
			return 0, err
		}
	}

	return minCut.GetProduct(), nil
}

func parseLevels(levels string) ([]int, error) {
	fields := strings.Split(levels, ",")
	u := make([]int, 0, len(fields))
	for _, field := range fields {
		size, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid level size %q: %w", field, err)
		}
		u = append(u, size)
	}
	return u, nil
}
