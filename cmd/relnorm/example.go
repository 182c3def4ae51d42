package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/relnorm/internal/cli"
	"github.com/pthm/relnorm/internal/examples"
)

var exampleCmd = &cobra.Command{
	Use:   "example [name]",
	Short: "List or show built-in examples",
	Long:  `Without arguments, list the built-in examples. With a name, print that example's relation and dependencies in the accepted input formats.`,
	Example: `  # List examples
  relnorm example

  # Show one example
  relnorm example marketplace`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, name := range examples.List() {
				ex, err := examples.Load(name)
				if err != nil {
					return cli.GeneralError("loading example", err)
				}
				fmt.Printf("%-13s %s\n", name, ex.Description)
			}
			return nil
		}

		ex, err := examples.Load(args[0])
		if err != nil {
			return cli.InputParseError("loading example", err)
		}

		fmt.Println(ex.Relation)
		fmt.Println()
		fmt.Print(ex.FDs)
		return nil
	},
}
