// Package geo holds small geospatial formulas: great-circle distance,
// coordinate checks, vegetation index and land-cover classification.
// Nothing here touches the page packages.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points given in degrees (Haversine). Inputs are not validated; use
// IsValidCoordinate first if the caller cares.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	φ1, φ2 := radians(lat1), radians(lat2)
	Δφ := radians(lat2 - lat1)
	Δλ := radians(lon2 - lon1)
	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// IsValidCoordinate reports whether lat is in [-90, 90] and lon in [-180, 180].
func IsValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func (c Coordinate) Valid() bool {
	return IsValidCoordinate(c.Lat, c.Lon)
}

// DistanceTo returns the Haversine distance to o in kilometers.
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	return Distance(c.Lat, c.Lon, o.Lat, o.Lon)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
