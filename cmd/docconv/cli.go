package main

import (
	"context"
	"io"

	"github.com/fwojciec/docconv"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Converter docconv.ConversionService
	Registry  docconv.ConverterRegistry
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose     bool   `short:"v" help:"Log registry and conversion activity to stderr"`
	LogLevel    string `name:"log-level" enum:"debug,info,warn,error" default:"info" env:"DOCCONV_LOG_LEVEL" help:"Log level used with --verbose"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent conversions for demo"`

	Convert ConvertCmd `cmd:"" help:"Convert content from one format to another"`
	List    ListCmd    `cmd:"" help:"List supported conversions"`
	Demo    DemoCmd    `cmd:"" help:"Run the sample conversions"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Source  string `arg:"" help:"Source format (e.g. pdf, text, markdown, html, xml)"`
	Target  string `arg:"" help:"Target format (e.g. text, html, markdown)"`
	Content string `arg:"" optional:"" help:"Content to convert (read from stdin when omitted)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DemoCmd is the "demo" subcommand.
type DemoCmd struct{}
