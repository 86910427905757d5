package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ray-zero3/hatchlog/internal/render"
)

var (
	watchConfig string
	watchOut    string
	watchSeed   uint32
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchConfig, "config", "c", "", "Path to sketch config YAML")
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "sketch.svg", "Output SVG path")
	watchCmd.Flags().Uint32Var(&watchSeed, "seed", 0, "Random seed override")
}

var watchCmd = &cobra.Command{
	Use:   "watch <log>",
	Short: "Re-render whenever the log or config changes",
	Long:  "Renders once, then watches the session log (and config file, if given)\nand re-renders after each change. Useful next to a live editing session.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	logPath := args[0]

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rerender := func() {
		res, err := render.Run(ctx, render.Options{
			LogPath:    logPath,
			ConfigPath: watchConfig,
			OutPath:    watchOut,
			Seed:       watchSeed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d events, grid %d)\n",
			res.OutPath, res.Report.Events, res.Report.GridSize)
	}
	rerender()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, p := range []string{logPath, watchConfig} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watch %q: %w", p, err)
		}
	}

	// Debounce: wait 500ms after the last write before re-rendering.
	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(500*time.Millisecond, rerender)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "file watcher error: %v\n", err)
		}
	}
}
