package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/sitefx/internal/contact"
	"github.com/dgallion1/sitefx/internal/dom"
	"github.com/dgallion1/sitefx/internal/parser"
	"github.com/dgallion1/sitefx/internal/site"
)

// pageArg accepts exactly one page file with a loadable extension.
var pageArg = cobra.MatchAll(cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
	if !parser.IsSupportedExtension(args[0]) {
		return fmt.Errorf("%s: not a page file (want one of %s)",
			args[0], strings.Join(parser.SupportedExtensions(), ", "))
	}
	return nil
})

// loadPage parses an HTML or Markdown file by extension.
func loadPage(path string) (*dom.Document, error) {
	p, err := parser.ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()

	doc, err := p.Parse(f, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// simulate loads path and replays steps against it. An empty steps string
// sweeps the page top to bottom in stride increments.
func simulate(path, steps string, stride float64, notifier contact.Notifier) (*site.Simulator, *site.Report, error) {
	doc, err := loadPage(path)
	if err != nil {
		return nil, nil, err
	}
	sim, err := site.NewSimulator(cfg, doc, notifier, log)
	if err != nil {
		return nil, nil, err
	}

	var plan []site.Step
	if steps != "" {
		plan, err = site.ParseSteps(steps)
		if err != nil {
			return nil, nil, err
		}
	} else {
		plan = site.SweepSteps(doc.ScrollHeight(), cfg.Viewport.Height, stride)
	}
	return sim, sim.Run(plan), nil
}
