package catalog

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/litescript/ls-telsite/internal/geodesy"
)

func TestMPCTable_Lookup(t *testing.T) {
	table := NewMPCTable()

	e, ok := table.Lookup("011")
	if !ok {
		t.Fatal("code 011 not found")
	}
	if e.Name != "Wetzikon" {
		t.Errorf("011 Name = %q, want %q", e.Name, "Wetzikon")
	}
	if math.Abs(e.EastLonRad-geodesy.DegToRad(8.6006)) > 1e-12 {
		t.Errorf("011 longitude = %v rad, want %v", e.EastLonRad, geodesy.DegToRad(8.6006))
	}
	if e.ParallaxC <= 0 || e.ParallaxS <= 0 {
		t.Errorf("011 parallax constants = (%v, %v), want both positive", e.ParallaxC, e.ParallaxS)
	}

	if _, ok := table.Lookup("999"); ok {
		t.Error("unknown code should not be found")
	}
}

func TestMPCTable_SouthernSign(t *testing.T) {
	table := NewMPCTable()
	e, ok := table.Lookup("260")
	if !ok {
		t.Fatal("code 260 not found")
	}
	if e.ParallaxC >= 0 {
		t.Errorf("Siding Spring rho-sin-phi' = %v, want negative", e.ParallaxC)
	}
	if e.ParallaxS <= 0 {
		t.Errorf("Siding Spring rho-cos-phi' = %v, want positive", e.ParallaxS)
	}
}

func TestMPCTable_SkipsNonTerrestrial(t *testing.T) {
	table := NewMPCTable()
	for _, code := range []string{"245", "248", "250", "C51"} {
		if _, ok := table.Lookup(code); ok {
			t.Errorf("space-based code %s should be excluded", code)
		}
	}
	// Ground entries survive.
	if _, ok := table.Lookup("568"); !ok {
		t.Error("code 568 missing from table")
	}
}

func TestMPCTable_ParseIdempotent(t *testing.T) {
	first := parseObsCodes(embeddedTable)
	for i := 0; i < 3; i++ {
		again := parseObsCodes(embeddedTable)
		if !reflect.DeepEqual(first, again) {
			t.Fatal("repeated parses produced different maps")
		}
	}

	// The lazy table parses once and serves the same map afterwards.
	table := NewMPCTable()
	n := table.Len()
	for i := 0; i < 5; i++ {
		if table.Len() != n {
			t.Fatal("table size changed between lookups")
		}
	}
	if n != len(first) {
		t.Errorf("table has %d entries, direct parse has %d", n, len(first))
	}
}

func TestMPCTable_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obscodes.dat")
	line := "689  248.39810.849740+0.526030U.S. Naval Observatory, Flagstaff\n" +
		"247                           Roving Observer\n"
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		t.Fatal(err)
	}

	table := NewMPCTableFromFile(path)
	e, ok := table.Lookup("689")
	if !ok {
		t.Fatal("code 689 not found in file-backed table")
	}
	if e.Name != "U.S. Naval Observatory, Flagstaff" {
		t.Errorf("689 Name = %q", e.Name)
	}
	if math.Abs(e.ParallaxS-0.849740) > 1e-12 || math.Abs(e.ParallaxC-0.526030) > 1e-12 {
		t.Errorf("689 parallax = (%v, %v)", e.ParallaxC, e.ParallaxS)
	}
	if _, ok := table.Lookup("247"); ok {
		t.Error("roving observer line should be skipped")
	}
	if table.Err() != nil {
		t.Errorf("unexpected table error: %v", table.Err())
	}
}

func TestMPCTable_FileError(t *testing.T) {
	table := NewMPCTableFromFile(filepath.Join(t.TempDir(), "missing.dat"))
	if _, ok := table.Lookup("011"); ok {
		t.Error("lookup against unreadable file should miss")
	}
	if table.Err() == nil {
		t.Error("expected read error to be reported")
	}
}

func TestParseObsCodes_ShortAndMalformedLines(t *testing.T) {
	data := []byte("too short\n" +
		"689  248.3981xxxxxxxx+0.526030Bad cos field\n" +
		"\n" +
		"690  248.39810.849740+0.526030Good\n")
	entries := parseObsCodes(data)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if _, ok := entries["690"]; !ok {
		t.Error("well-formed line missing")
	}
}
