// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - TUI site browser, MPC code jump, TOML configuration
// 0.1.0 - Initial release: name/code/explicit resolution, pointing limits,
//         headless resolve and list modes
