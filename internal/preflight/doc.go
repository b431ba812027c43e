// Package preflight provides readiness checks for the filesystem paths and
// external executable a launch depends on.
//
// These checks run in two contexts:
//   - "stlaunch check" runs RunAll and renders every result.
//   - The launcher resolves the server executable on its own before handing
//     over control; it does not call RunAll.
//
// A failed check never modifies anything on disk.
package preflight
