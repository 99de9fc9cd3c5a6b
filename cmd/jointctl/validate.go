package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jakecoffman/joint/preset"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func validateCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Build and validate every preset in the files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				failed += a.validateFile(path)
			}
			if !watch {
				if failed > 0 {
					return fmt.Errorf("%d invalid presets", failed)
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, args)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Validate again whenever a file changes")
	return cmd
}

// validateFile logs every problem in path and returns how many presets failed.
// A file that cannot be loaded counts as one failure.
func (a *app) validateFile(path string) int {
	log := a.log.With(zap.String("file", path))

	file, err := preset.LoadFile(path)
	if err != nil {
		log.Error("cannot load presets", zap.Error(err))
		return 1
	}

	failed := 0
	for _, p := range file.Joints {
		data, err := p.Build()
		if err == nil {
			err = data.Validate()
		}
		if err != nil {
			failed++
			for _, issue := range multierr.Errors(err) {
				log.Error("invalid preset", zap.String("preset", p.Name), zap.Error(issue))
			}
			continue
		}
		log.Debug("preset ok", zap.String("preset", p.Name), zap.Stringer("free", data.FreeAxes()))
	}
	log.Info("validated", zap.Int("presets", len(file.Joints)), zap.Int("failed", failed))
	return failed
}

func (a *app) watch(ctx context.Context, paths []string) error {
	w, err := preset.NewWatcher(a.log, paths...)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	a.log.Info("watching", zap.Strings("files", paths))
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			a.validateFile(path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", zap.Error(err))
		case <-ctx.Done():
			return nil
		}
	}
}
