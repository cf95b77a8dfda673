package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Reflexive(t *testing.T) {
	points := []Coordinate{
		{0, 0},
		{90, 180},
		{-90, -180},
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
	}
	for _, p := range points {
		assert.Zero(t, Distance(p.Lat, p.Lon, p.Lat, p.Lon), "point %+v", p)
	}
}

func TestDistance_QuarterGreatCircle(t *testing.T) {
	d := Distance(0, 0, 0, 90)
	assert.InDelta(t, 10007.5, d, 0.1)
}

func TestDistance_Symmetric(t *testing.T) {
	london := Coordinate{51.5074, -0.1278}
	paris := Coordinate{48.8566, 2.3522}

	ab := london.DistanceTo(paris)
	ba := paris.DistanceTo(london)
	assert.InDelta(t, ab, ba, 1e-9)
	// London to Paris is roughly 344 km.
	assert.InDelta(t, 343.5, ab, 1.0)
}

func TestDistance_NoValidation(t *testing.T) {
	// Out-of-range input still yields a number.
	d := Distance(200, 0, 0, 0)
	assert.False(t, IsValidCoordinate(200, 0))
	assert.GreaterOrEqual(t, d, 0.0)
}

func TestIsValidCoordinate(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{90, 180, true},
		{-90, -180, true},
		{0, 0, true},
		{91, 0, false},
		{-91, 0, false},
		{0, -181, false},
		{0, 181, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidCoordinate(tt.lat, tt.lon), "lat=%v lon=%v", tt.lat, tt.lon)
		assert.Equal(t, tt.want, Coordinate{tt.lat, tt.lon}.Valid())
	}
}
