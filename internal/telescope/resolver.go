package telescope

import (
	"errors"
	"sort"
	"strings"

	"github.com/litescript/ls-telsite/internal/catalog"
	"github.com/litescript/ls-telsite/internal/logging"
)

var (
	// ErrNotFound means an identifier matched neither catalog. It is an
	// empty result, not a fault; callers retry with another identifier.
	ErrNotFound = errors.New("telescope: identifier not found in any catalog")

	// ErrIncompleteInput means an explicit field set was missing its
	// required name, longitude, or coordinate representation.
	ErrIncompleteInput = errors.New("telescope: incomplete explicit fields")
)

// Resolver turns identifiers into fully derived Records. Resolution never
// mutates an existing record: every call builds a fresh one, so a failed
// re-resolution leaves the caller's current handle untouched.
type Resolver struct {
	mpc *catalog.MPCTable
	log *logging.Logger
}

// NewResolver creates a resolver over the given observatory-code table.
// A nil table selects the embedded one; a nil logger discards advisories.
func NewResolver(mpc *catalog.MPCTable, log *logging.Logger) *Resolver {
	if mpc == nil {
		mpc = catalog.NewMPCTable()
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Resolver{mpc: mpc, log: log}
}

// Resolve tries the identifier first as a site mnemonic, then as an MPC
// observatory code.
func (r *Resolver) Resolve(id string) (*Record, error) {
	rec, err := r.ResolveName(id)
	if err == nil {
		return rec, nil
	}
	return r.ResolveCode(id)
}

// ResolveName resolves a site-catalog mnemonic. The catalog's geodetic
// triple is the native representation; its west-positive longitude is
// negated to the east-positive convention.
func (r *Resolver) ResolveName(id string) (*Record, error) {
	site, ok := catalog.FindSite(id)
	if !ok || site.Name == catalog.Sentinel {
		return nil, ErrNotFound
	}

	rec := &Record{
		Mnemonic:     site.Mnemonic,
		FullName:     site.Name,
		LongitudeRad: -site.WestLonRad,
		GeodLatRad:   site.GeodLatRad,
		AltM:         site.AltM,
		source:       SourceSiteCatalog,
	}
	rec.deriveFromGeodetic()

	if code, ok := catalog.MPCCode(site.Mnemonic); ok {
		rec.ObsCode = code
	}
	rec.Limits = DefaultLimits(rec.Mnemonic, rec.source)
	return rec, nil
}

// ResolveCode resolves a 3-character MPC observatory code. Longitude and
// the parallax constants are native; geocentric and geodetic follow.
func (r *Resolver) ResolveCode(code string) (*Record, error) {
	entry, ok := r.mpc.Lookup(code)
	if !ok {
		if err := r.mpc.Err(); err != nil {
			r.log.Warn("observatory-code table unavailable: %v", err)
		}
		return nil, ErrNotFound
	}

	rec := &Record{
		Mnemonic:     strings.ToUpper(entry.Code),
		FullName:     entry.Name,
		ObsCode:      entry.Code,
		LongitudeRad: entry.EastLonRad,
		ParallaxC:    entry.ParallaxC,
		ParallaxS:    entry.ParallaxS,
		source:       SourceMPC,
	}
	rec.deriveFromParallax()
	rec.Limits = DefaultLimits(rec.Mnemonic, rec.source)
	return rec, nil
}

// Fields is an explicit position supplied by the caller. Name and
// Longitude are required, plus at least one complete coordinate
// representation; nil pointers mark absent values.
type Fields struct {
	Name    string
	ObsCode string

	LongitudeRad *float64

	GeodLatRad *float64
	AltM       *float64

	GeocLatRad *float64
	GeocDistM  *float64

	ParallaxC *float64
	ParallaxS *float64
}

// ResolveExplicit builds a record from caller-supplied fields. When more
// than one representation is supplied, geodetic wins over geocentric over
// parallax. A geodetic latitude without an altitude gets altitude 0 and a
// logged advisory.
func (r *Resolver) ResolveExplicit(f Fields) (*Record, error) {
	if f.Name == "" || f.LongitudeRad == nil {
		return nil, ErrIncompleteInput
	}

	rec := &Record{
		Mnemonic:     strings.ToUpper(f.Name),
		FullName:     f.Name,
		ObsCode:      f.ObsCode,
		LongitudeRad: *f.LongitudeRad,
		source:       SourceExplicit,
	}

	switch {
	case f.GeodLatRad != nil:
		rec.GeodLatRad = *f.GeodLatRad
		if f.AltM != nil {
			rec.AltM = *f.AltM
		} else {
			r.log.Warn("no altitude supplied for %s; assuming 0 m", rec.Mnemonic)
		}
		rec.deriveFromGeodetic()
	case f.GeocLatRad != nil && f.GeocDistM != nil:
		rec.GeocLatRad = *f.GeocLatRad
		rec.GeocDistM = *f.GeocDistM
		rec.deriveFromGeocentric()
	case f.ParallaxC != nil && f.ParallaxS != nil:
		rec.ParallaxC = *f.ParallaxC
		rec.ParallaxS = *f.ParallaxS
		rec.deriveFromParallax()
	default:
		return nil, ErrIncompleteInput
	}

	rec.Limits = DefaultLimits(rec.Mnemonic, rec.source)
	return rec, nil
}

// Names returns every site-catalog mnemonic in ascending order.
func (r *Resolver) Names() []string {
	names := catalog.SiteMnemonics()
	sort.Strings(names)
	return names
}
