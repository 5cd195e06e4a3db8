// Package log declares the logger the server components write to.
package log

// Logger is satisfied by *log.Logger from the standard library.
// Components take a Logger rather than using the default logger so tests can capture or discard output.
type Logger interface {
	// Printf writes the formatted message in the manner of fmt.Printf.
	Printf(format string, v ...interface{})
}
