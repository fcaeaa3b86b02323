package factscmder

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const addLongDesc string = `Add a fact.

The fact is stored enabled unless --disabled is given. Adding a fact with
text that already exists overwrites its enabled flag instead of creating
a duplicate.

Examples:
  factbot facts add "Ben likes tea"
  factbot facts add --disabled "Ben has a dog"`

const addShortDesc string = "Add a fact"

func newAddCmd() *cobra.Command {
	var disabled bool

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: addShortDesc,
		Long:  addLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], !disabled)
		},
	}

	cmd.Flags().BoolVar(&disabled, "disabled", false, "Store the fact disabled")

	return cmd
}

func runAdd(cmd *cobra.Command, text string, enabled bool) error {
	if text == "" {
		return errors.New("fact text must not be empty")
	}
	if len(text) > 1000 {
		return errors.New("fact text must be at most 1000 characters")
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Add(cmd.Context(), text, enabled); err != nil {
		return fmt.Errorf("adding fact: %w", err)
	}

	fmt.Println("Fact added.")
	return nil
}
