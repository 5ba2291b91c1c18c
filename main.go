// Package main is the entry point for the zenwatch CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/danielolaszy/zenwatch/cmd"
	"github.com/danielolaszy/zenwatch/internal/logging"
)

// main executes the root command and handles any errors that occur.
func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logging.Debug("starting zenwatch", "log_level", logLevel)

	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
