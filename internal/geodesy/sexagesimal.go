package geodesy

import (
	"fmt"
	"math"
	"strings"
)

// DefaultSeparator is the field separator used by FormatSexagesimal when
// the caller passes an empty separator.
const DefaultSeparator = " "

// FormatSexagesimal renders an angle in radians as a signed sexagesimal
// string: degrees, minutes and whole seconds joined by sep, followed by a
// two-digit fraction of a second. Positive angles carry no sign character.
//
//	FormatSexagesimal(0.34600, " ")  -> "19 49 22.11" (for the JCMT latitude)
//	FormatSexagesimal(-2.71366, ":") -> "-155:28:37.20"
func FormatSexagesimal(rad float64, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}

	neg := math.Signbit(rad)
	// Work in centi-arcseconds so the carry at x9.995" rounds cleanly.
	cs := int64(math.Round(math.Abs(rad) * 180 / math.Pi * 3600 * 100))

	frac := cs % 100
	sec := (cs / 100) % 60
	min := (cs / 6000) % 60
	deg := cs / 360000

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	fmt.Fprintf(&b, "%d%s%02d%s%02d.%02d", deg, sep, min, sep, sec, frac)
	return b.String()
}
