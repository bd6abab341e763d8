package telescope

import (
	"math"
	"testing"

	"github.com/litescript/ls-telsite/internal/geodesy"
)

func TestMountTypeString(t *testing.T) {
	tests := []struct {
		m    MountType
		want string
	}{
		{MountNone, "NONE"},
		{MountAzEl, "AZEL"},
		{MountHADec, "HADEC"},
		{MountType(99), "NONE"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("MountType(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestDefaultLimits(t *testing.T) {
	if spec := DefaultLimits("JCMT", SourceSiteCatalog); spec.Mount != MountAzEl {
		t.Errorf("JCMT mount = %v, want AZEL", spec.Mount)
	}
	if spec := DefaultLimits("UKIRT", SourceSiteCatalog); spec.Mount != MountHADec {
		t.Errorf("UKIRT mount = %v, want HADEC", spec.Mount)
	}

	// Site-catalog telescope with no catalog limits.
	if spec := DefaultLimits("PARKES", SourceSiteCatalog); spec.Mount != MountNone {
		t.Errorf("PARKES mount = %v, want NONE", spec.Mount)
	}

	// Code-only sites assume an alt-az mount clear to the horizon.
	spec := DefaultLimits("011", SourceMPC)
	if spec.Mount != MountAzEl {
		t.Fatalf("MPC default mount = %v, want AZEL", spec.Mount)
	}
	if spec.El.Min != 0 || math.Abs(spec.El.Max-geodesy.DegToRad(90)) > 1e-12 {
		t.Errorf("MPC default elevation = %+v, want [0, 90] degrees", spec.El)
	}

	// A catalog entry wins over the source fallback.
	if spec := DefaultLimits("JCMT", SourceMPC); spec.El.Min == 0 {
		t.Error("catalog limits should take precedence over the MPC fallback")
	}

	if spec := DefaultLimits("ANYTHING", SourceExplicit); spec.Mount != MountNone {
		t.Errorf("explicit default mount = %v, want NONE", spec.Mount)
	}
}

func TestHourAngle(t *testing.T) {
	if got, want := hourAngle(4.5), geodesy.DegToRad(67.5); math.Abs(got-want) > 1e-15 {
		t.Errorf("hourAngle(4.5) = %v, want %v", got, want)
	}
}
