package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldSurvey = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [0, 0]},
     "properties": {"name": "lake", "red": 0.3, "nir": 0.1}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [90, 0]},
     "properties": {"name": "forest", "red": 0.05, "nir": 0.6}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [10, 10]},
     "properties": {"red": 0, "nir": 0}}
  ]
}`

func TestLoadSamples(t *testing.T) {
	samples, err := LoadSamples(strings.NewReader(fieldSurvey))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, "lake", samples[0].Name)
	assert.Equal(t, "sample-3", samples[2].Name)
	assert.Equal(t, Coordinate{Lat: 0, Lon: 90}, samples[1].Coordinate())
	assert.Equal(t, 0.6, samples[1].NIR)
}

func TestLoadSamples_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bad json", `{`, "decode geojson"},
		{"line geometry", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":{"red":1,"nir":1}}]}`, "expected Point"},
		{"missing nir", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"red":1}}]}`, `missing "nir"`},
		{"string band", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"red":"x","nir":1}}]}`, "want number"},
		{"negative band", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"red":-1,"nir":1}}]}`, "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSamples(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestClassify(t *testing.T) {
	samples, err := LoadSamples(strings.NewReader(fieldSurvey))
	require.NoError(t, err)

	survey := Classify(samples)
	require.Len(t, survey.Samples, 3)

	assert.Equal(t, Water, survey.Samples[0].Cover)
	assert.Equal(t, DenseForest, survey.Samples[1].Cover)
	assert.Equal(t, UrbanBarren, survey.Samples[2].Cover)
	assert.Equal(t, 0.0, survey.Samples[2].Index)

	assert.Equal(t, 1, survey.Cover["Water"])
	assert.Equal(t, 1, survey.Cover["Dense Forest"])
	require.NotNil(t, survey.Index)
	assert.InDelta(t, -0.5, survey.Index.Min, 1e-9)

	// (0,0) to (0,90) is the widest pair.
	assert.InDelta(t, 10007.5, survey.SpanKm, 0.1)
}

func TestClassify_Empty(t *testing.T) {
	survey := Classify(nil)
	assert.Empty(t, survey.Samples)
	assert.Nil(t, survey.Index)
	assert.Zero(t, survey.SpanKm)
}
