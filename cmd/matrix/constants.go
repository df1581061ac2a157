package main

// Default limits for CLI commands.
const (
	DefaultSearchLimit = 10
)
