package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	environmentVariablePort     = "PORT"
	environmentVariableCacheSec = "CACHE_SECONDS"
)

// mainFlags are the configuration options which can be easily configured at run startup for different environments.
type mainFlags struct {
	port     int
	cacheSec int
}

const (
	defaultCacheSec int = 60 * 60 * 24 // 1 day
)

// usage prints how to run the server to the flagset's output.
func usage(fs *flag.FlagSet) {
	envVars := []string{
		environmentVariablePort,
		environmentVariableCacheSec,
	}
	fmt.Fprintf(fs.Output(), "Serves the piece catalog\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables when possible: [%s]\n", strings.Join(envVars, ","))
	fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// newFlagSet creates a flagSet that populates the specified mainFlags.
func (m *mainFlags) newFlagSet(osLookupEnvFunc func(string) (string, bool), output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	envValueInt := func(key string, defaultValue int) int {
		v1, ok := osLookupEnvFunc(key)
		if !ok {
			return defaultValue
		}
		v2, err := strconv.Atoi(v1)
		if err != nil {
			return defaultValue
		}
		return v2
	}
	fs.IntVar(&m.port, "port", envValueInt(environmentVariablePort, 0), "The TCP port for server http requests.")
	fs.IntVar(&m.cacheSec, "cache-sec", envValueInt(environmentVariableCacheSec, defaultCacheSec), "The number of seconds catalog responses are cached.")
	return fs
}

// newMainFlags creates a new, populated mainFlags structure.
// Fields are populated from command line arguments.
// If fields are not specified on the command line, environment variable values are used before defaulting to other defaults.
func newMainFlags(osArgs []string, osLookupEnvFunc func(string) (string, bool), output io.Writer) (*mainFlags, error) {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	programArgs := osArgs[1:]
	var m mainFlags
	fs := m.newFlagSet(osLookupEnvFunc, output)
	if err := fs.Parse(programArgs); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	return &m, nil
}
