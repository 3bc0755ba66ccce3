// Package errs defines the application error types and constructors.
//
// Every error that reaches a client is shaped here: a stable HTTP status,
// a machine-readable code for logs and telemetry, and a human-readable
// message that the global error handler serializes as {"error": "..."}.
// Field-level detail rides along for validation failures.
package errs
