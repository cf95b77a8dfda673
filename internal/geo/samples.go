package geo

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Sample is one reflectance measurement at a point.
type Sample struct {
	Name  string
	Point orb.Point
	Red   float64
	NIR   float64
}

func (s Sample) Coordinate() Coordinate {
	return Coordinate{Lat: s.Point.Lat(), Lon: s.Point.Lon()}
}

// Classification is the NDVI result for a single sample.
type Classification struct {
	Name       string     `json:"name" yaml:"name"`
	Coordinate Coordinate `json:"coordinate" yaml:"coordinate"`
	Valid      bool       `json:"valid" yaml:"valid"`
	Index      float64    `json:"index" yaml:"index"`
	Cover      LandCover  `json:"cover" yaml:"cover"`
}

// Survey aggregates a batch of classified samples.
type Survey struct {
	Samples []Classification `json:"samples" yaml:"samples"`
	Index   *Stats           `json:"index,omitempty" yaml:"index,omitempty"`
	Cover   map[string]int   `json:"cover" yaml:"cover"`
	SpanKm  float64          `json:"span_km" yaml:"span_km"`
}

// LoadSamples decodes a GeoJSON FeatureCollection of Point features carrying
// numeric "red" and "nir" properties. An optional "name" property labels
// the sample.
func LoadSamples(r io.Reader) ([]Sample, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}

	samples := make([]Sample, 0, len(fc.Features))
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("feature %d: expected Point geometry, got %T", i, f.Geometry)
		}
		red, err := band(f.Properties, "red")
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		nir, err := band(f.Properties, "nir")
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		name, _ := f.Properties["name"].(string)
		if name == "" {
			name = fmt.Sprintf("sample-%d", i+1)
		}
		samples = append(samples, Sample{Name: name, Point: pt, Red: red, NIR: nir})
	}
	return samples, nil
}

func band(props geojson.Properties, key string) (float64, error) {
	v, ok := props[key]
	if !ok {
		return 0, fmt.Errorf("missing %q property", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("property %q is %T, want number", key, v)
	}
	if f < 0 {
		return 0, fmt.Errorf("property %q is negative: %v", key, f)
	}
	return f, nil
}

// Classify computes NDVI and land cover for every sample, summary stats over
// the indices, and the largest pairwise distance between valid samples.
func Classify(samples []Sample) Survey {
	s := Survey{
		Samples: make([]Classification, 0, len(samples)),
		Cover:   make(map[string]int),
	}

	indices := make([]float64, 0, len(samples))
	var valid []Coordinate
	for _, sm := range samples {
		idx := VegetationIndex(sm.Red, sm.NIR)
		cover := ClassifyLandCover(idx)
		coord := sm.Coordinate()
		c := Classification{
			Name:       sm.Name,
			Coordinate: coord,
			Valid:      coord.Valid(),
			Index:      idx,
			Cover:      cover,
		}
		s.Samples = append(s.Samples, c)
		s.Cover[cover.String()]++
		indices = append(indices, idx)
		if c.Valid {
			valid = append(valid, coord)
		}
	}

	s.Index = SummaryStats(indices)
	for i := range valid {
		for j := i + 1; j < len(valid); j++ {
			if d := valid[i].DistanceTo(valid[j]); d > s.SpanKm {
				s.SpanKm = d
			}
		}
	}
	return s
}
