package catalog

import (
	_ "embed"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/litescript/ls-telsite/internal/geodesy"
)

// Fixed-width column layout of the MPC observatory-code table:
// 3-character code, 10-character east longitude in degrees, 8-character
// rho-cos-phi' field, 9-character signed rho-sin-phi' field, then the
// free-text site name.
const (
	colCodeEnd = 3
	colLonEnd  = 13
	colCosEnd  = 21
	colSinEnd  = 30
)

//go:embed obscodes.dat
var embeddedTable []byte

// MPCEntry is one parsed observatory-code record. ParallaxC and ParallaxS
// are rho-sin-phi' and rho-cos-phi' in Earth radii; longitude is
// east-positive radians.
type MPCEntry struct {
	Code       string
	Name       string
	EastLonRad float64
	ParallaxC  float64
	ParallaxS  float64
}

// MPCTable is the parsed observatory-code table. Parsing happens once, on
// first lookup; the parsed map is shared for the life of the table.
type MPCTable struct {
	once    sync.Once
	source  func() ([]byte, error)
	entries map[string]MPCEntry
	err     error
}

// NewMPCTable returns a table backed by the embedded snapshot of the MPC
// observatory-code list.
func NewMPCTable() *MPCTable {
	return &MPCTable{source: func() ([]byte, error) { return embeddedTable, nil }}
}

// NewMPCTableFromFile returns a table backed by an on-disk copy of the
// full MPC list. The file is read lazily, on first lookup.
func NewMPCTableFromFile(path string) *MPCTable {
	return &MPCTable{source: func() ([]byte, error) { return os.ReadFile(path) }}
}

// load parses the table at most once, no matter how many lookups race in.
func (t *MPCTable) load() {
	t.once.Do(func() {
		data, err := t.source()
		if err != nil {
			t.err = err
			t.entries = map[string]MPCEntry{}
			return
		}
		t.entries = parseObsCodes(data)
	})
}

// Lookup returns the entry for a 3-character observatory code.
func (t *MPCTable) Lookup(code string) (MPCEntry, bool) {
	t.load()
	e, ok := t.entries[strings.ToUpper(code)]
	return e, ok
}

// Len reports how many terrestrial entries the table holds.
func (t *MPCTable) Len() int {
	t.load()
	return len(t.entries)
}

// Err reports a failure to read the backing file, if any. The embedded
// table never fails.
func (t *MPCTable) Err() error {
	t.load()
	return t.err
}

// parseObsCodes parses the fixed-width observatory-code format. Lines
// whose longitude field contains no digit are non-terrestrial entries
// (spacecraft, roving observers) and are skipped, as are lines too short
// to carry the numeric columns.
func parseObsCodes(data []byte) map[string]MPCEntry {
	entries := make(map[string]MPCEntry)
	for _, line := range strings.Split(string(data), "\n") {
		if len(line) <= colSinEnd {
			continue
		}
		lonField := line[colCodeEnd:colLonEnd]
		if !strings.ContainsAny(lonField, "0123456789") {
			continue
		}

		lonDeg, err1 := strconv.ParseFloat(strings.TrimSpace(lonField), 64)
		s, err2 := strconv.ParseFloat(strings.TrimSpace(line[colLonEnd:colCosEnd]), 64)
		c, err3 := strconv.ParseFloat(strings.TrimSpace(line[colCosEnd:colSinEnd]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}

		code := strings.ToUpper(strings.TrimSpace(line[:colCodeEnd]))
		entries[code] = MPCEntry{
			Code:       code,
			Name:       strings.TrimSpace(line[colSinEnd:]),
			EastLonRad: geodesy.DegToRad(lonDeg),
			ParallaxC:  c,
			ParallaxS:  s,
		}
	}
	return entries
}
