package factscmder

import (
	"fmt"

	"github.com/spf13/cobra"
)

const listLongDesc string = `List all stored facts.

Enabled facts are marked with [x], disabled facts with [ ].

Examples:
  factbot facts list`

const listShortDesc string = "List all stored facts"

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: listShortDesc,
		Long:  listLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing facts: %w", err)
	}

	if len(all) == 0 {
		fmt.Println("No facts stored yet.")
		return nil
	}

	for _, f := range all {
		marker := " "
		if f.Enabled {
			marker = "x"
		}
		fmt.Printf("[%s] %s\n", marker, f.Text)
	}

	return nil
}
