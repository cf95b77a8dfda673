package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dgallion1/sitefx/internal/contact"
	"github.com/dgallion1/sitefx/internal/site"
)

var (
	auditSteps  string
	auditStride float64
	auditFormat string
	auditWatch  bool
)

var auditCmd = &cobra.Command{
	Use:   "audit <page>",
	Short: "Replay scroll effects for a page and report each frame",
	Long: `Audit lays out an HTML or Markdown page and scrolls a simulated viewport
through it. Each frame lists the active section, the elements revealed and
the images loaded at that position.

Steps are comma separated: numbers scroll, "#id" clicks an in-page anchor,
"mailto:" and "tel:" links are handed to the navigator.

  sitefx audit index.html --steps 0,600,#projects,2400
  sitefx audit README.md --stride 300 --format yaml`,
	Args: pageArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(auditFormat, site.Formats); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := runAudit(out, args[0]); err != nil {
			return err
		}
		if !auditWatch {
			return nil
		}
		return watch(cmd.Context(), args[0], func() {
			fmt.Fprintln(out)
			if err := runAudit(out, args[0]); err != nil {
				log.Error("audit failed", "page", args[0], "error", err)
			}
		})
	},
}

func runAudit(w io.Writer, path string) error {
	notify := contact.NotifierFunc(func(msg string) { fmt.Fprintln(w, msg) })
	_, report, err := simulate(path, auditSteps, auditStride, notify)
	if err != nil {
		return err
	}
	log.Debug("audit complete", "page", path, "frames", len(report.Frames), "unrevealed", len(report.Unrevealed))
	return site.Encode(w, report, auditFormat)
}

// watch calls fn each time path is written until ctx is cancelled. The
// parent directory is watched so editors that replace the file on save are
// still seen.
func watch(ctx context.Context, path string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	log.Info("watching page", "page", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			log.Debug("page changed", "page", abs, "op", ev.Op.String())
			fn()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)
		}
	}
}

func checkFormat(format string, allowed []string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return fmt.Errorf("unknown format %q (want one of %v)", format, allowed)
}

func init() {
	auditCmd.Flags().StringVar(&auditSteps, "steps", "", "comma-separated scroll positions and link clicks (default: sweep the page)")
	auditCmd.Flags().Float64Var(&auditStride, "stride", 0, "sweep increment in px (default: half the viewport)")
	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "text", "output format: text, json or yaml")
	auditCmd.Flags().BoolVarP(&auditWatch, "watch", "w", false, "re-run when the page file changes")
	rootCmd.AddCommand(auditCmd)
}
