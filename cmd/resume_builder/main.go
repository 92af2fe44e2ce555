// Package main provides the entry point for the resume builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// maxprocs.Set only fails on an invalid GOMAXPROCS value; runtime defaults apply then
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := newApp().rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
