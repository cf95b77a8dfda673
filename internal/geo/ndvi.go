package geo

// VegetationIndex computes NDVI = (nir - red) / (nir + red).
// Both bands at zero yield exactly 0 rather than NaN.
func VegetationIndex(red, nir float64) float64 {
	if red == 0 && nir == 0 {
		return 0
	}
	return (nir - red) / (nir + red)
}

// LandCover is a coarse land-cover category derived from NDVI.
type LandCover int

const (
	Water LandCover = iota
	UrbanBarren
	Cropland
	Grassland
	DenseForest
)

var landCoverNames = [...]string{
	Water:       "Water",
	UrbanBarren: "Urban/Barren",
	Cropland:    "Cropland",
	Grassland:   "Grassland",
	DenseForest: "Dense Forest",
}

func (c LandCover) String() string {
	if c < Water || c > DenseForest {
		return "Unknown"
	}
	return landCoverNames[c]
}

func (c LandCover) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ClassifyLandCover maps an index onto the threshold ladder, checked low to
// high. NaN fails every comparison and lands on DenseForest.
func ClassifyLandCover(index float64) LandCover {
	switch {
	case index < -0.1:
		return Water
	case index < 0.2:
		return UrbanBarren
	case index < 0.4:
		return Cropland
	case index < 0.6:
		return Grassland
	default:
		return DenseForest
	}
}
