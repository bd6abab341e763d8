// Command ls-telsite resolves telescope identifiers to site positions and
// pointing limits, as a one-shot printer or an interactive browser.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/litescript/ls-telsite/internal/catalog"
	"github.com/litescript/ls-telsite/internal/config"
	"github.com/litescript/ls-telsite/internal/geodesy"
	"github.com/litescript/ls-telsite/internal/logging"
	"github.com/litescript/ls-telsite/internal/telescope"
	"github.com/litescript/ls-telsite/internal/ui"
	"github.com/litescript/ls-telsite/internal/version"
)

var (
	configPath  string
	logLevel    string
	separator   string
	listNames   bool
	resolveName string
	resolveCode string
	jsonOut     bool
	showVersion bool

	// Explicit position fields, degrees and metres.
	siteName string
	longDeg  float64
	latDeg   float64
	altM     float64
)

func main() {
	flag.StringVar(&configPath, "config", defaultConfigPath(), "Path to TOML config")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&separator, "sep", "", "Sexagesimal field separator (single character)")
	flag.BoolVar(&listNames, "list", false, "Print all site mnemonics and exit")
	flag.StringVar(&resolveName, "resolve", "", "Resolve a mnemonic or code and print the record")
	flag.StringVar(&resolveCode, "code", "", "Resolve an MPC observatory code and print the record")
	flag.BoolVar(&jsonOut, "json", false, "Print records as JSON")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.StringVar(&siteName, "name", "", "Explicit site name (with --long and --lat)")
	flag.Float64Var(&longDeg, "long", 0, "Explicit east longitude, degrees")
	flag.Float64Var(&latDeg, "lat", 0, "Explicit geodetic latitude, degrees")
	flag.Float64Var(&altM, "alt", 0, "Explicit altitude, metres")
	flag.Parse()

	if showVersion {
		fmt.Println("ls-telsite", version.Version)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if logLevel == "" {
		logLevel = cfg.Logging.Level
	}
	if separator == "" {
		separator = cfg.Display.Separator
	}

	logger := logging.New(logging.ParseLevel(logLevel))

	var table *catalog.MPCTable
	if cfg.Catalog.ObsCodesPath != "" {
		table = catalog.NewMPCTableFromFile(cfg.Catalog.ObsCodesPath)
	} else {
		table = catalog.NewMPCTable()
	}
	resolver := telescope.NewResolver(table, logger)

	switch {
	case listNames:
		for _, n := range resolver.Names() {
			fmt.Println(n)
		}
		return
	case resolveName != "":
		printRecord(resolver.Resolve(resolveName))
		return
	case resolveCode != "":
		printRecord(resolver.ResolveCode(resolveCode))
		return
	case siteName != "":
		printRecord(resolveExplicit(resolver))
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "no identifier given and stdout is not a terminal; try --resolve or --list")
		os.Exit(1)
	}

	p := tea.NewProgram(ui.New(resolver, separator), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ui:", err)
		os.Exit(1)
	}
}

// resolveExplicit maps the --name/--long/--lat/--alt flags onto an
// explicit field set. Flags that were not set stay absent, so the
// resolver's own completeness rules apply.
func resolveExplicit(r *telescope.Resolver) (*telescope.Record, error) {
	f := telescope.Fields{Name: siteName}
	if flag.CommandLine.Changed("long") {
		lon := geodesy.DegToRad(longDeg)
		f.LongitudeRad = &lon
	}
	if flag.CommandLine.Changed("lat") {
		lat := geodesy.DegToRad(latDeg)
		f.GeodLatRad = &lat
	}
	if flag.CommandLine.Changed("alt") {
		alt := altM
		f.AltM = &alt
	}
	return r.ResolveExplicit(f)
}

func printRecord(rec *telescope.Record, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if jsonOut {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "encode:", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("%-12s %s\n", "Mnemonic", rec.Mnemonic)
	fmt.Printf("%-12s %s\n", "Name", rec.FullName)
	if rec.ObsCode != "" {
		fmt.Printf("%-12s %s\n", "MPC code", rec.ObsCode)
	}
	fmt.Printf("%-12s %s  (%.6f deg E)\n", "Longitude", rec.LongitudeSexagesimal(separator), rec.LongitudeDeg())
	fmt.Printf("%-12s %s  (%.6f deg)\n", "Latitude", rec.GeodLatSexagesimal(separator), rec.GeodLatDeg())
	fmt.Printf("%-12s %.1f m\n", "Altitude", rec.AltM)
	fmt.Printf("%-12s %.9f rad, %.1f m\n", "Geocentric", rec.GeocLatRad, rec.GeocDistM)
	fmt.Printf("%-12s C=%+.6f S=%.6f\n", "Parallax", rec.ParallaxC, rec.ParallaxS)
	fmt.Printf("%-12s %s\n", "Limits", formatLimits(rec.Limits))
}

func formatLimits(spec telescope.LimitsSpec) string {
	switch spec.Mount {
	case telescope.MountAzEl:
		return fmt.Sprintf("AZEL el %.1f..%.1f deg",
			geodesy.RadToDeg(spec.El.Min), geodesy.RadToDeg(spec.El.Max))
	case telescope.MountHADec:
		return fmt.Sprintf("HADEC ha %+.2f..%+.2f h, dec %.1f..%.1f deg",
			geodesy.RadToDeg(spec.HA.Min)/15, geodesy.RadToDeg(spec.HA.Max)/15,
			geodesy.RadToDeg(spec.Dec.Min), geodesy.RadToDeg(spec.Dec.Max))
	default:
		return "none"
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "telsite.toml"
	}
	return home + "/.config/telsite.toml"
}
