// Package main provides the bitkernel CLI entry point.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/molkit/bitkernel/pkg/config"
	"github.com/molkit/bitkernel/pkg/fingerprint"
	"github.com/molkit/bitkernel/pkg/kernel"
	"github.com/molkit/bitkernel/pkg/simd"
	"github.com/molkit/bitkernel/pkg/tensor"
)

var (
	version = "0.1.0"
	commit  = "dev" // Set via ldflags: -X main.commit=$(git rev-parse --short HEAD)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bitkernel",
		Short: "Tanimoto similarity kernels over molecular fingerprints",
		Long: `bitkernel computes pairwise similarity matrices between sets of
bit or count vector fingerprints, for use as Gaussian Process
covariance functions or for standalone similarity screening.`,
		SilenceUsage: true,
	}
	root.AddCommand(newMatrixCmd())
	root.AddCommand(newInfoCmd())
	return root
}

func newMatrixCmd() *cobra.Command {
	var (
		configPath string
		metric     string
		format     string
		precision  int
		diag       bool
	)

	cmd := &cobra.Command{
		Use:   "matrix FILE [FILE2]",
		Short: "Compute the pairwise similarity matrix for fingerprint file(s)",
		Long: `Reads one fingerprint per line and prints the pairwise similarity
matrix. With one file, computes self-similarity (diagonal exactly 1).
With two files, computes the cross-similarity between them.

Rows of all zeros have no defined self-similarity and produce NaN.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFile(configPath)
			if err != nil {
				return err
			}
			cfg.ApplyEnv()
			if cmd.Flags().Changed("metric") {
				cfg.Metric = metric
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if cmd.Flags().Changed("precision") {
				cfg.Precision = precision
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			x1, err := readFingerprints(args[0], fingerprint.Format(cfg.Format))
			if err != nil {
				return err
			}
			x2 := x1
			if len(args) == 2 {
				if x2, err = readFingerprints(args[1], fingerprint.Format(cfg.Format)); err != nil {
					return err
				}
			}

			k := kernel.New(kernel.Metric(cfg.Metric))
			res, err := k.Compute(x1, x2, kernel.ComputeOptions{Diag: diag})
			if err != nil {
				return err
			}
			printMatrix(cmd, res, cfg.Precision)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.FindConfigFile(), "config file path")
	cmd.Flags().StringVar(&metric, "metric", string(kernel.MetricTanimoto), "similarity metric")
	cmd.Flags().StringVar(&format, "format", string(fingerprint.FormatBits), "fingerprint format: bits, hex, counts")
	cmd.Flags().IntVar(&precision, "precision", 4, "decimal places in output")
	cmd.Flags().BoolVar(&diag, "diag", false, "print only the pairwise diagonal")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show version and SIMD runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			info := simd.Info()
			cmd.Printf("bitkernel %s (%s)\n", version, commit)
			cmd.Printf("simd: %s accelerated=%v features=%s\n",
				info.Implementation, info.Accelerated, strings.Join(info.Features, ","))
		},
	}
}

func readFingerprints(path string, format fingerprint.Format) (*tensor.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	batch, err := fingerprint.ReadBatch(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return batch, nil
}

// printMatrix writes the last-two-dims matrix (or last-dim vector, for
// diagonal results) of each batch as whitespace-separated rows.
func printMatrix(cmd *cobra.Command, t *tensor.Dense, precision int) {
	shape := t.Shape()
	cols := shape[len(shape)-1]
	data := t.Data()
	for off := 0; off < len(data); off += cols {
		row := make([]string, cols)
		for j, v := range data[off : off+cols] {
			row[j] = strconv.FormatFloat(v, 'f', precision, 64)
		}
		cmd.Println(strings.Join(row, " "))
	}
}
