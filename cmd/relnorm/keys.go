package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var keysInput inputFlags

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List candidate keys",
	Long:  `List every candidate key of the relation along with the prime attributes they imply.`,
	Example: `  # Keys of a built-in example
  relnorm keys --example marketplace

  # Keys from inline input
  relnorm keys -r 'R(A, B, C)' -f 'A -> B
B -> A'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := keysInput.analysis()
		if err != nil {
			return err
		}

		for _, key := range a.Keys {
			fmt.Println(key)
		}
		if !quiet {
			fmt.Printf("\nPrime attributes: %s\n", strings.Join(a.Prime.Sorted(), ", "))
		}
		return nil
	},
}

func init() {
	keysInput.register(keysCmd)
}
