// Package geodesy provides coordinate conversions on the oblate-spheroid
// Earth model used for observatory positions: geodetic latitude/altitude,
// geocentric latitude/distance, and the normalized parallax constants
// (rho-sin-phi', rho-cos-phi') used in astrometric reduction.
package geodesy

import "math"

// Ellipsoid constants shared by all conversions.
const (
	// EquatorialRadiusM is the Earth equatorial radius in metres.
	EquatorialRadiusM = 6378100.0

	// FlatteningE is 1 minus the flattening factor of the reference spheroid.
	FlatteningE = 0.996647186

	// Eccentricity is sqrt(1 - FlatteningE^2).
	Eccentricity = 0.081819221
)

// GeodeticToGeocentric converts a geodetic position (latitude in radians,
// altitude above the reference spheroid in metres) to geocentric latitude
// in radians and distance from the Earth's centre in metres.
//
// The sea-level point below the site sits at the reduced auxiliary angle
// lambda on the spheroid; altitude is applied along the local normal,
// whose direction is the geodetic latitude.
func GeodeticToGeocentric(latRad, altM float64) (geocLatRad, geocDistM float64) {
	lambda := math.Atan2(FlatteningE*FlatteningE*math.Tan(latRad), 1.0)

	// Sea-level geocentric radius at the auxiliary angle.
	r := EquatorialRadiusM * FlatteningE /
		math.Sqrt(1.0-Eccentricity*Eccentricity*math.Cos(lambda)*math.Cos(lambda))

	px := r*math.Cos(lambda) + altM*math.Cos(latRad)
	py := r*math.Sin(lambda) + altM*math.Sin(latRad)

	return math.Atan2(py, px), math.Hypot(px, py)
}

// GeocentricToGeodetic converts a geocentric position (latitude in radians,
// distance from the Earth's centre in metres) back to geodetic latitude and
// altitude. It is the inverse of GeodeticToGeocentric.
//
// A closed-form estimate (Bowring's auxiliary-angle method) is corrected by
// a single residual step against the forward conversion, so the pair
// round-trips well inside 1e-9 rad and 1e-6 m for terrestrial sites. The
// auxiliary angle takes its sign from the geocentric latitude, which keeps
// southern sites mirrored correctly.
func GeocentricToGeodetic(geocLatRad, geocDistM float64) (latRad, altM float64) {
	p := geocDistM * math.Cos(geocLatRad)
	z := geocDistM * math.Sin(geocLatRad)

	a := EquatorialRadiusM
	b := a * FlatteningE
	e2 := Eccentricity * Eccentricity
	ep2 := e2 / (FlatteningE * FlatteningE)

	u := math.Atan2(z*a, p*b)
	su, cu := math.Sincos(u)
	lat := math.Atan2(z+ep2*b*su*su*su, p-e2*a*cu*cu*cu)

	sl, cl := math.Sincos(lat)
	alt := p*cl + z*sl - a*math.Sqrt(1.0-e2*sl*sl)

	// One correction step against the forward model. The two ellipsoid
	// constants are not exact algebraic complements of each other, which
	// leaves the closed form a few millimetres off without this.
	fgl, fgd := GeodeticToGeocentric(lat, alt)
	dx := p - fgd*math.Cos(fgl)
	dz := z - fgd*math.Sin(fgl)
	alt += dx*cl + dz*sl
	lat += (-dx*sl + dz*cl) / (a + alt)

	return lat, alt
}

// GeocentricToParallax converts a geocentric position to the parallax
// constants C = rho*sin(phi') and S = rho*cos(phi'), where rho is the
// geocentric distance in Earth radii and phi' the geocentric latitude.
func GeocentricToParallax(geocLatRad, geocDistM float64) (c, s float64) {
	rho := geocDistM / EquatorialRadiusM
	return rho * math.Sin(geocLatRad), rho * math.Cos(geocLatRad)
}

// ParallaxToGeocentric converts parallax constants back to geocentric
// latitude in radians and distance in metres. Inverse of
// GeocentricToParallax.
func ParallaxToGeocentric(c, s float64) (geocLatRad, geocDistM float64) {
	return math.Atan2(c, s), math.Hypot(c, s) * EquatorialRadiusM
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// DMSToRad converts a sign plus degrees, arcminutes and arcseconds to
// radians. The sign argument applies to the whole angle, so southern
// latitudes pass sign = -1 with positive d/m/s.
func DMSToRad(sign int, d, m int, s float64) float64 {
	rad := DegToRad(float64(d) + float64(m)/60 + s/3600)
	if sign < 0 {
		return -rad
	}
	return rad
}
