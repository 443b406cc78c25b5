package main

import (
	"context"
	"io"
	"time"

	"github.com/mkohler/coincidence"
)

// Dependencies holds the services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Source coincidence.ArticleSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Compare  CompareCmd  `cmd:"" default:"1" help:"Fetch two Wikipedia articles and print their longest common substrings"`
	SelfTest SelfTestCmd `cmd:"" name:"selftest" help:"Run the substring engine against the built-in fixture suite"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Lang    string        `default:"en" help:"Wikipedia language edition"`
	Timeout time.Duration `default:"10s" help:"Per-request timeout"`
	HTML    bool          `help:"Fetch rendered article pages instead of the XML export"`
	Title   []string      `short:"T" help:"Compare two named articles instead of random ones (repeat twice)"`
	Verbose bool          `short:"v" help:"Log fetch progress to stderr"`
}

// SelfTestCmd is the "selftest" subcommand.
type SelfTestCmd struct{}
