package main

import "fmt"

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	for _, pair := range deps.Registry.List() {
		fmt.Fprintln(deps.Stdout, pair.String())
	}
	return nil
}
