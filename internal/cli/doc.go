// Package cli turns command-line arguments into an app.Config. Bad input is
// reported as an *ExitError carrying the process exit code; a help request
// or a missing puzzle path prints usage and asks the caller to exit cleanly.
package cli
