package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dgallion1/sitefx/internal/geo"
	"github.com/dgallion1/sitefx/internal/site"
)

var geoFormat string

var geoCmd = &cobra.Command{
	Use:   "geo",
	Short: "Geospatial formulas: distance, coordinate checks, NDVI",
}

var geoDistanceCmd = &cobra.Command{
	Use:   "distance <lat1> <lon1> <lat2> <lon2>",
	Short: "Great-circle distance in kilometres",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := floats(args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.3f km\n", geo.Distance(v[0], v[1], v[2], v[3]))
		return nil
	},
}

var geoValidateCmd = &cobra.Command{
	Use:   "validate <lat> <lon>",
	Short: "Report whether a coordinate is in range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := floats(args)
		if err != nil {
			return err
		}
		if !geo.IsValidCoordinate(v[0], v[1]) {
			return fmt.Errorf("coordinate (%s, %s) out of range", args[0], args[1])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	},
}

var geoNDVICmd = &cobra.Command{
	Use:   "ndvi <red> <nir>",
	Short: "Vegetation index and land-cover class for one reflectance pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := floats(args)
		if err != nil {
			return err
		}
		idx := geo.VegetationIndex(v[0], v[1])
		fmt.Fprintf(cmd.OutOrStdout(), "%.4f %s\n", idx, geo.ClassifyLandCover(idx))
		return nil
	},
}

var geoClassifyCmd = &cobra.Command{
	Use:   "classify <samples.geojson>",
	Short: "Classify a GeoJSON FeatureCollection of red/nir samples",
	Long: `Classify reads Point features with numeric "red" and "nir" properties and
reports each sample's index and land cover, summary statistics over the
indices, a count per land-cover class, and the widest distance between
samples. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(geoFormat, []string{"json", "yaml"}); err != nil {
			return err
		}
		var r io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open samples: %w", err)
			}
			defer f.Close()
			r = f
		}
		samples, err := geo.LoadSamples(r)
		if err != nil {
			return err
		}
		survey := geo.Classify(samples)
		log.Debug("classified samples", "count", len(samples), "span_km", survey.SpanKm)
		return site.EncodeValue(cmd.OutOrStdout(), survey, geoFormat)
	},
}

var geoStatsCmd = &cobra.Command{
	Use:   "stats <value>...",
	Short: "Mean, min and max of a list of numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := floats(args)
		if err != nil {
			return err
		}
		s := geo.SummaryStats(v)
		if s == nil {
			return errors.New("no values")
		}
		return site.EncodeValue(cmd.OutOrStdout(), s, geoFormat)
	},
}

func floats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not a number", i+1, a)
		}
		out[i] = v
	}
	return out, nil
}

func init() {
	geoCmd.PersistentFlags().StringVarP(&geoFormat, "format", "f", "yaml", "output format for classify and stats: yaml or json")
	geoCmd.AddCommand(geoDistanceCmd, geoValidateCmd, geoNDVICmd, geoClassifyCmd, geoStatsCmd)
	rootCmd.AddCommand(geoCmd)
}
