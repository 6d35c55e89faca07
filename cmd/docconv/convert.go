package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/docconv"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	content := c.Content
	if content == "" && deps.Stdin != nil {
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		content = string(b)
	}

	out, err := deps.Converter.Convert(content, c.Source, c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docconv.ErrorMessage(err))
		if docconv.ErrorCode(err) == docconv.EUNSUPPORTED {
			fmt.Fprintln(deps.Stderr, "Hint: run 'docconv list' to see supported conversions")
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
