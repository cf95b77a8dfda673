package site

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Formats accepted by Encode.
var Formats = []string{"text", "json", "yaml"}

// Encode writes r in the given format.
func Encode(w io.Writer, r *Report, format string) error {
	switch format {
	case "json", "yaml":
		return EncodeValue(w, r, format)
	case "", "text":
		return encodeText(w, r)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// EncodeValue writes v as indented JSON or YAML.
func EncodeValue(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

func encodeText(w io.Writer, r *Report) error {
	fmt.Fprintf(w, "%s: %.0fpx page, %.0fpx viewport, %d observed (%s)\n",
		r.Title, r.PageHeight, r.Viewport, r.Observed, r.Strategy)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tSCROLL\tACTIVE\tPROGRESS\tREVEALED\tLOADED")
	for _, f := range r.Frames {
		active := f.Active
		if active == "" {
			active = "-"
		}
		step := f.Step
		if f.Navigated != "" {
			step += " -> " + f.Navigated
		}
		fmt.Fprintf(tw, "%s\t%.0f\t%s\t%.0f%%\t%s\t%s\n",
			step, f.ScrollY, active, f.Progress, list(f.Revealed), list(f.Loaded))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Unrevealed) > 0 {
		fmt.Fprintf(w, "never revealed: %s\n", strings.Join(r.Unrevealed, ", "))
	}
	return nil
}

func list(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, " ")
}
