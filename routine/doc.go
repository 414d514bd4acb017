// Package routine runs functions with automatic panic recovery.
//
// Scheduled promise work executes caller-supplied code on arbitrary
// goroutines; a panic there would otherwise crash the process. RunSafe and
// GoSafe contain the panic and hand its value to cleanup callbacks, and
// Recovered/RecoveredError turn it into an error carrying a stack trace.
package routine
