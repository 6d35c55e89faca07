package main

import (
	"fmt"

	"github.com/fwojciec/docconv"
)

// demoRequests are the sample documents converted by the demo command.
var demoRequests = []docconv.ConversionRequest{
	{Content: "This is a sample PDF document with some content.", Source: "pdf", Target: "text"},
	{Content: "This is plain text that will be converted to HTML.", Source: "text", Target: "html"},
	{Content: "# This is a Markdown Heading", Source: "markdown", Target: "html"},
}

// Run executes the demo command.
func (c *DemoCmd) Run(deps *Dependencies) error {
	results, err := deps.Converter.ConvertBatch(deps.Ctx, demoRequests)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docconv.ErrorMessage(r.Err))
			return r.Err
		}
		fmt.Fprintf(deps.Stdout, "Result: %s\n\n", r.Output)
	}
	return nil
}
