package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVegetationIndex(t *testing.T) {
	assert.Equal(t, 0.0, VegetationIndex(0, 0))
	assert.False(t, math.IsNaN(VegetationIndex(0, 0)))
	assert.InDelta(t, 0.4286, VegetationIndex(0.2, 0.5), 1e-4)
	assert.Equal(t, 1.0, VegetationIndex(0, 0.3))
	assert.Equal(t, -1.0, VegetationIndex(0.3, 0))
}

func TestClassifyLandCover_Ladder(t *testing.T) {
	tests := []struct {
		index float64
		want  LandCover
	}{
		{-1, Water},
		{-0.11, Water},
		{-0.1, UrbanBarren},
		{0, UrbanBarren},
		{0.19, UrbanBarren},
		{0.2, Cropland},
		{0.39, Cropland},
		{0.4, Grassland},
		{0.59, Grassland},
		{0.6, DenseForest},
		{1, DenseForest},
		{math.Inf(1), DenseForest},
		{math.Inf(-1), Water},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLandCover(tt.index), "index=%v", tt.index)
	}
}

func TestClassifyLandCover_TotalAndOrdered(t *testing.T) {
	prev := Water
	for x := -2.0; x <= 2.0; x += 0.001 {
		got := ClassifyLandCover(x)
		if got < Water || got > DenseForest {
			t.Fatalf("index %v produced out-of-range category %d", x, got)
		}
		if got < prev {
			t.Fatalf("ladder not monotonic at %v: %s after %s", x, got, prev)
		}
		prev = got
	}
}

func TestLandCover_String(t *testing.T) {
	assert.Equal(t, "Water", Water.String())
	assert.Equal(t, "Urban/Barren", UrbanBarren.String())
	assert.Equal(t, "Cropland", Cropland.String())
	assert.Equal(t, "Grassland", Grassland.String())
	assert.Equal(t, "Dense Forest", DenseForest.String())
	assert.Equal(t, "Unknown", LandCover(42).String())
}
