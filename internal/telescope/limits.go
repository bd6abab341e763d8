package telescope

import "github.com/litescript/ls-telsite/internal/geodesy"

// MountType discriminates the axis pair a pointing-limit spec applies to.
type MountType int

const (
	MountNone MountType = iota
	MountAzEl
	MountHADec
)

// String returns the mount type name.
func (m MountType) String() string {
	switch m {
	case MountAzEl:
		return "AZEL"
	case MountHADec:
		return "HADEC"
	default:
		return "NONE"
	}
}

// Range is an inclusive axis bound pair in radians.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// LimitsSpec is a pointing-limit policy. El applies to AzEl mounts; HA and
// Dec to HADec mounts. A MountNone spec carries no usable bounds.
type LimitsSpec struct {
	Mount MountType `json:"mount"`
	El    Range     `json:"el,omitempty"`
	HA    Range     `json:"ha,omitempty"`
	Dec   Range     `json:"dec,omitempty"`
}

// hourAngle converts hours to radians (15 degrees per hour).
func hourAngle(h float64) float64 {
	return geodesy.DegToRad(h * 15)
}

// defaultLimits holds catalog pointing limits for telescopes whose mounts
// are known. Everything else falls back by resolution source.
var defaultLimits = map[string]LimitsSpec{
	"JCMT": {
		Mount: MountAzEl,
		El:    Range{Min: geodesy.DegToRad(5), Max: geodesy.DegToRad(88)},
	},
	"UKIRT": {
		Mount: MountHADec,
		HA:    Range{Min: hourAngle(-4.5), Max: hourAngle(4.5)},
		Dec:   Range{Min: geodesy.DegToRad(-42), Max: geodesy.DegToRad(60)},
	},
}

// mpcDefault is the policy assumed for sites known only by observatory
// code: an alt-az mount free to point anywhere above the horizon.
var mpcDefault = LimitsSpec{
	Mount: MountAzEl,
	El:    Range{Min: 0, Max: geodesy.DegToRad(90)},
}

// DefaultLimits returns the catalog pointing limits for a mnemonic, the
// generic horizon-to-zenith policy for MPC-code resolutions without a
// catalog entry, or an empty MountNone spec.
func DefaultLimits(mnemonic string, source Source) LimitsSpec {
	if spec, ok := defaultLimits[mnemonic]; ok {
		return spec
	}
	if source == SourceMPC {
		return mpcDefault
	}
	return LimitsSpec{}
}
