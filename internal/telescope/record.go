// Package telescope resolves telescope identifiers against the site and
// observatory-code catalogs and carries fully derived position records.
package telescope

import (
	"github.com/litescript/ls-telsite/internal/geodesy"
)

// Source tags which catalog supplied a record's native coordinate
// representation. The other two representations are always derived.
type Source int

const (
	SourceNone Source = iota
	SourceSiteCatalog
	SourceMPC
	SourceExplicit
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceSiteCatalog:
		return "site-catalog"
	case SourceMPC:
		return "mpc"
	case SourceExplicit:
		return "explicit"
	default:
		return "none"
	}
}

// Record is a fully resolved telescope position. All three coordinate
// representations are populated and mutually consistent; longitude is
// east-positive radians. Records are immutable after resolution except
// for SetLimits.
type Record struct {
	Mnemonic string `json:"mnemonic"`
	FullName string `json:"name"`
	ObsCode  string `json:"obs_code,omitempty"`

	LongitudeRad float64 `json:"longitude_rad"`

	GeodLatRad float64 `json:"geodetic_lat_rad"`
	AltM       float64 `json:"altitude_m"`

	GeocLatRad float64 `json:"geocentric_lat_rad"`
	GeocDistM  float64 `json:"geocentric_dist_m"`

	ParallaxC float64 `json:"parallax_c"`
	ParallaxS float64 `json:"parallax_s"`

	Limits LimitsSpec `json:"limits"`

	source Source
}

// Source reports which catalog the record was resolved from.
func (r *Record) Source() Source {
	return r.source
}

// SetLimits overrides the pointing limits for this record instance.
// Re-resolving to any identity yields a fresh record at catalog defaults,
// so an override never outlives the identity it was set on.
func (r *Record) SetLimits(spec LimitsSpec) {
	r.Limits = spec
}

// LongitudeDeg returns the east-positive longitude in decimal degrees.
func (r *Record) LongitudeDeg() float64 {
	return geodesy.RadToDeg(r.LongitudeRad)
}

// GeodLatDeg returns the geodetic latitude in decimal degrees.
func (r *Record) GeodLatDeg() float64 {
	return geodesy.RadToDeg(r.GeodLatRad)
}

// LongitudeSexagesimal formats the longitude with the given separator; an
// empty separator selects a single space.
func (r *Record) LongitudeSexagesimal(sep string) string {
	return geodesy.FormatSexagesimal(r.LongitudeRad, sep)
}

// GeodLatSexagesimal formats the geodetic latitude with the given
// separator; an empty separator selects a single space.
func (r *Record) GeodLatSexagesimal(sep string) string {
	return geodesy.FormatSexagesimal(r.GeodLatRad, sep)
}

// deriveFromGeodetic fills the geocentric and parallax representations
// from an already-populated geodetic pair.
func (r *Record) deriveFromGeodetic() {
	r.GeocLatRad, r.GeocDistM = geodesy.GeodeticToGeocentric(r.GeodLatRad, r.AltM)
	r.ParallaxC, r.ParallaxS = geodesy.GeocentricToParallax(r.GeocLatRad, r.GeocDistM)
}

// deriveFromGeocentric fills the geodetic and parallax representations
// from an already-populated geocentric pair.
func (r *Record) deriveFromGeocentric() {
	r.GeodLatRad, r.AltM = geodesy.GeocentricToGeodetic(r.GeocLatRad, r.GeocDistM)
	r.ParallaxC, r.ParallaxS = geodesy.GeocentricToParallax(r.GeocLatRad, r.GeocDistM)
}

// deriveFromParallax fills the geocentric and geodetic representations
// from already-populated parallax constants.
func (r *Record) deriveFromParallax() {
	r.GeocLatRad, r.GeocDistM = geodesy.ParallaxToGeocentric(r.ParallaxC, r.ParallaxS)
	r.GeodLatRad, r.AltM = geodesy.GeocentricToGeodetic(r.GeocLatRad, r.GeocDistM)
}
