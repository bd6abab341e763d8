// Package catalog provides the two observatory catalogs behind telescope
// resolution: a built-in astrometric site table keyed by short mnemonic,
// and the Minor Planet Center observatory-code table parsed from its
// fixed-width text format.
package catalog

import (
	"strings"

	"github.com/litescript/ls-telsite/internal/geodesy"
)

// Sentinel is the name returned past the end of the site table.
const Sentinel = "?"

// SiteEntry is one astrometric site record. Longitude is stored
// west-positive, the convention of the source table; latitude is geodetic.
type SiteEntry struct {
	Mnemonic   string
	Name       string
	WestLonRad float64
	GeodLatRad float64
	AltM       float64
}

func dms(sign, d, m int, s float64) float64 {
	return geodesy.DMSToRad(sign, d, m, s)
}

// sites is the astrometric site table. Coordinates are geodetic; west
// longitude is positive, so east-hemisphere sites carry a negative value.
var sites = []SiteEntry{
	{"AAT", "Anglo-Australian 3.9m Telescope", dms(-1, 149, 3, 57.91), dms(-1, 31, 16, 37.34), 1164},
	{"LPO4.2", "William Herschel 4.2m Telescope", dms(1, 17, 52, 53.9), dms(1, 28, 45, 38.3), 2332},
	{"INT", "Isaac Newton 2.5m Telescope", dms(1, 17, 52, 39.5), dms(1, 28, 45, 43.4), 2336},
	{"JKT", "Jacobus Kapteyn 1m Telescope", dms(1, 17, 52, 41.2), dms(1, 28, 45, 39.9), 2364},
	{"PALOMAR200", "Hale 5m Telescope", dms(1, 116, 51, 50.0), dms(1, 33, 21, 22.0), 1706},
	{"KPNO158", "Kitt Peak 158 inch", dms(1, 111, 35, 57.6), dms(1, 31, 57, 50.3), 2120},
	{"CTIO4M", "Cerro Tololo 4 metre", dms(1, 70, 48, 54.0), dms(-1, 30, 9, 55.0), 2235},
	{"ESO3.6", "ESO 3.6 metre", dms(1, 70, 43, 47.0), dms(-1, 29, 15, 26.0), 2400},
	{"ESONTT", "ESO 3.5 metre NTT", dms(1, 70, 43, 54.3), dms(-1, 29, 15, 18.4), 2353},
	{"VLT1", "ESO VLT, UT1", dms(1, 70, 24, 11.6), dms(-1, 24, 37, 33.1), 2635},
	{"DUPONT", "Du Pont 2.5m Telescope", dms(1, 70, 42, 9.0), dms(-1, 29, 0, 11.0), 2280},
	{"MAGELLAN1", "Magellan 1, 6.5m Telescope", dms(1, 70, 41, 31.9), dms(-1, 29, 0, 51.7), 2408},
	{"MAUNAK88", "Mauna Kea 88 inch", dms(1, 155, 28, 9.96), dms(1, 19, 49, 22.77), 4214},
	{"UKIRT", "UK Infra Red Telescope", dms(1, 155, 28, 13.18), dms(1, 19, 49, 20.75), 4198.2},
	{"JCMT", "JCMT 15 metre", dms(1, 155, 28, 37.20), dms(1, 19, 49, 22.11), 4111},
	{"CSO", "Caltech Sub-mm Observatory", dms(1, 155, 28, 31.79), dms(1, 19, 49, 20.78), 4080},
	{"CFHT", "Canada-France-Hawaii 3.6m Telescope", dms(1, 155, 28, 7.95), dms(1, 19, 49, 30.91), 4204.1},
	{"IRTF", "NASA IR Telescope Facility", dms(1, 155, 28, 19.2), dms(1, 19, 49, 34.39), 4168},
	{"KECK1", "Keck 10m Telescope #1", dms(1, 155, 28, 28.99), dms(1, 19, 49, 33.41), 4160},
	{"GEMININ", "Gemini North 8-m telescope", dms(1, 155, 28, 8.57), dms(1, 19, 49, 25.69), 4213.4},
	{"SUBARU", "Subaru 8m telescope", dms(1, 155, 28, 33.67), dms(1, 19, 49, 31.81), 4163},
	{"PARKES", "Parkes 64 metre", dms(-1, 148, 15, 44.3), dms(-1, 32, 59, 59.8), 391.79},
	{"VLA", "Very Large Array", dms(1, 107, 37, 3.82), dms(1, 34, 4, 43.5), 2124},
	{"JODRELL1", "Jodrell Bank 76 metre", dms(1, 2, 18, 25.0), dms(1, 53, 14, 10.5), 78},
	{"ARECIBO", "Arecibo 1000 foot", dms(1, 66, 45, 11.1), dms(1, 18, 20, 36.6), 496},
	{"MOPRA", "ATNF Mopra Observatory", dms(-1, 149, 5, 58.3), dms(-1, 31, 16, 4.0), 850},
}

// Site returns the n-th site record, with n starting at 1 to match the
// source table's index convention. Past the end it returns an entry whose
// Name is the Sentinel and ok = false, so callers can scan sequentially
// until they hit the terminator.
func Site(n int) (SiteEntry, bool) {
	if n < 1 || n > len(sites) {
		return SiteEntry{Name: Sentinel}, false
	}
	return sites[n-1], true
}

// FindSite scans the table to the sentinel for an exact mnemonic match.
// Matching is case-insensitive. No index is kept; the table is small.
func FindSite(mnemonic string) (SiteEntry, bool) {
	want := strings.ToUpper(mnemonic)
	for n := 1; ; n++ {
		e, ok := Site(n)
		if !ok || e.Name == Sentinel {
			return SiteEntry{Name: Sentinel}, false
		}
		if e.Mnemonic == want {
			return e, true
		}
	}
}

// SiteMnemonics returns all mnemonics in table order.
func SiteMnemonics() []string {
	out := make([]string, 0, len(sites))
	for n := 1; ; n++ {
		e, ok := Site(n)
		if !ok || e.Name == Sentinel {
			return out
		}
		out = append(out, e.Mnemonic)
	}
}

// siteCodes maps site mnemonics to Minor Planet Center observatory codes
// where one exists for the physical site.
var siteCodes = map[string]string{
	"AAT":        "260",
	"LPO4.2":     "950",
	"INT":        "950",
	"JKT":        "950",
	"PALOMAR200": "675",
	"KPNO158":    "695",
	"CTIO4M":     "807",
	"ESO3.6":     "809",
	"ESONTT":     "809",
	"VLT1":       "309",
	"DUPONT":     "304",
	"MAGELLAN1":  "304",
	"MAUNAK88":   "568",
	"UKIRT":      "568",
	"JCMT":       "568",
	"CSO":        "568",
	"CFHT":       "568",
	"IRTF":       "568",
	"KECK1":      "568",
	"GEMININ":    "568",
	"SUBARU":     "568",
	"ARECIBO":    "251",
}

// MPCCode returns the MPC observatory code for a site mnemonic, if the
// site has one. Radio-only sites generally do not.
func MPCCode(mnemonic string) (string, bool) {
	code, ok := siteCodes[strings.ToUpper(mnemonic)]
	return code, ok
}
