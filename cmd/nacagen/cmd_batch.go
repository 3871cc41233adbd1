// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/katalvlaran/naca/foilio"
	"github.com/katalvlaran/naca/internal/config"
	"github.com/katalvlaran/naca/naca"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	batchConfigPath string
	batchInit       bool
)

// batchCmd generates many profiles from a YAML file
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate a set of profiles described by a YAML file",
	Long: `Reads a batch configuration and writes one file per profile into
output_dir, generating up to "workers" profiles at a time.

Profiles outside the formulas' domain are skipped with a warning; any other
failure stops the batch.

Example:
  nacagen batch --init --config batch.yaml   # write the default file
  nacagen batch --config batch.yaml`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchConfigPath, "config", "c", "batch.yaml", "Batch configuration file")
	batchCmd.Flags().BoolVar(&batchInit, "init", false, "Write the default configuration to --config and exit")
}

// batchResult counts the outcome of a batch run.
type batchResult struct {
	mu      sync.Mutex
	written []string
	skipped []string
}

func (r *batchResult) add(list *[]string, d string) {
	r.mu.Lock()
	*list = append(*list, d)
	r.mu.Unlock()
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchInit {
		if err := config.Default().Save(batchConfigPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", batchConfigPath)
		return nil
	}

	cfg, err := config.Load(batchConfigPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := generateBatch(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d profiles to %s, skipped %d\n", len(res.written), cfg.OutputDir, len(res.skipped))

	return nil
}

// generateBatch writes every configured profile with a bounded worker pool.
func generateBatch(ctx context.Context, cfg *config.Config) (*batchResult, error) {
	format, err := cfg.OutputFormat()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	opts := cfg.Options()
	designators := cfg.Designators()
	logger.Info("Starting batch",
		zap.Int("profiles", len(designators)),
		zap.Int("workers", cfg.Workers),
		zap.String("format", string(format)),
		zap.String("output_dir", cfg.OutputDir))

	res := &batchResult{}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for _, d := range designators {
		d := d
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			foil, err := naca.Generate(d, cfg.Points, &opts)
			if errors.Is(err, naca.ErrDomain) {
				logger.Warn("Skipping profile", zap.String("designator", d), zap.Error(err))
				res.add(&res.skipped, d)
				return nil
			}
			if err != nil {
				return err
			}

			path := filepath.Join(cfg.OutputDir, "naca"+d+format.Ext())
			if err := writeFile(path, func(w io.Writer) error { return foilio.Write(w, format, foil) }); err != nil {
				return err
			}
			logger.Debug("Wrote airfoil", zap.String("designator", d), zap.String("path", path))
			res.add(&res.written, d)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("batch failed: %w", err)
	}
	logger.Info("Batch complete", zap.Int("written", len(res.written)), zap.Int("skipped", len(res.skipped)))

	return res, nil
}
