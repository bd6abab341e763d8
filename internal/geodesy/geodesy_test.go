package geodesy

import (
	"math"
	"testing"
)

func TestGeodeticToGeocentric_MaunaKea(t *testing.T) {
	// UKIRT site: geodetic 19d49m20.75s N, 4198.2 m. The geocentric
	// latitude of this site is a published reference value.
	lat := DMSToRad(1, 19, 49, 20.75)
	geocLat, geocDist := GeodeticToGeocentric(lat, 4198.2)

	if math.Abs(geocLat-0.343830843) > 1e-8 {
		t.Errorf("geocentric latitude = %.9f rad, want 0.343830843", geocLat)
	}

	// Geocentric latitude is pulled toward the equator on an oblate Earth.
	if geocLat >= lat {
		t.Errorf("geocentric latitude %.9f should be less than geodetic %.9f", geocLat, lat)
	}

	// Distance should be within a scale height of the equatorial radius.
	if geocDist < 6.35e6 || geocDist > 6.39e6 {
		t.Errorf("geocentric distance = %.1f m out of range", geocDist)
	}
}

func TestGeodeticToGeocentric_Equator(t *testing.T) {
	geocLat, geocDist := GeodeticToGeocentric(0, 0)
	if math.Abs(geocLat) > 1e-12 {
		t.Errorf("geocentric latitude at equator = %v, want 0", geocLat)
	}
	// The two ellipsoid constants are independently rounded, so the
	// sea-level radius lands within a centimetre of nominal, not exactly.
	if math.Abs(geocDist-EquatorialRadiusM) > 0.01 {
		t.Errorf("sea-level distance at equator = %v, want %v", geocDist, EquatorialRadiusM)
	}
}

func TestGeodeticRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		latDeg float64
		altM   float64
	}{
		{"equator sea level", 0, 0},
		{"mid latitude", 47.3260, 530},
		{"mauna kea", 19.8261, 4213},
		{"southern site", -30.1650, 2215},
		{"far south", -77.85, 30},
		{"near pole", 89.5, 100},
		{"near south pole", -89.5, 2835},
		{"below ellipsoid", 52.0, -100},
		{"high altitude", 27.99, 8848},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat := DegToRad(tt.latDeg)
			geocLat, geocDist := GeodeticToGeocentric(lat, tt.altM)
			lat2, alt2 := GeocentricToGeodetic(geocLat, geocDist)

			if math.Abs(lat2-lat) > 1e-9 {
				t.Errorf("latitude round trip error = %.3e rad", math.Abs(lat2-lat))
			}
			if math.Abs(alt2-tt.altM) > 1e-6 {
				t.Errorf("altitude round trip error = %.3e m", math.Abs(alt2-tt.altM))
			}
		})
	}
}

func TestGeocentricToGeodetic_SouthernMirror(t *testing.T) {
	// A southern site must come back with the same magnitudes as its
	// northern mirror image.
	lat := DegToRad(31.2733)
	geocLat, geocDist := GeodeticToGeocentric(lat, 1149)

	nLat, nAlt := GeocentricToGeodetic(geocLat, geocDist)
	sLat, sAlt := GeocentricToGeodetic(-geocLat, geocDist)

	if math.Abs(nLat+sLat) > 1e-12 {
		t.Errorf("mirrored latitudes differ: %v vs %v", nLat, -sLat)
	}
	if math.Abs(nAlt-sAlt) > 1e-9 {
		t.Errorf("mirrored altitudes differ: %v vs %v", nAlt, sAlt)
	}
}

func TestParallaxRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		geocLatDeg float64
		geocDistM  float64
	}{
		{"equator", 0, EquatorialRadiusM},
		{"mauna kea", 19.70, 6379857},
		{"southern", -29.87, 6372100},
		{"polar", 89.0, 6356800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocLat := DegToRad(tt.geocLatDeg)
			c, s := GeocentricToParallax(geocLat, tt.geocDistM)
			lat2, dist2 := ParallaxToGeocentric(c, s)

			if math.Abs(lat2-geocLat) > 1e-9 {
				t.Errorf("latitude round trip error = %.3e rad", math.Abs(lat2-geocLat))
			}
			if math.Abs(dist2-tt.geocDistM) > 1e-3 {
				t.Errorf("distance round trip error = %.3e m", math.Abs(dist2-tt.geocDistM))
			}
		})
	}
}

func TestGeocentricToParallax_Normalization(t *testing.T) {
	// At sea level on the equator rho is exactly one Earth radius.
	c, s := GeocentricToParallax(0, EquatorialRadiusM)
	if math.Abs(c) > 1e-12 || math.Abs(s-1) > 1e-12 {
		t.Errorf("equatorial parallax constants = (%v, %v), want (0, 1)", c, s)
	}
}

func TestDMSToRad(t *testing.T) {
	got := DMSToRad(-1, 30, 30, 0)
	want := -DegToRad(30.5)
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("DMSToRad = %v, want %v", got, want)
	}
}
