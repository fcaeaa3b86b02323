package factscmder

import (
	"fmt"

	"github.com/spf13/cobra"
)

const selectLongDesc string = `Select the active facts.

Enables exactly the facts whose text is given and disables every other
stored fact. Texts that are not stored are ignored; no facts are added
or removed.

Examples:
  factbot facts select "Ben likes tea"
  factbot facts select "Ben likes tea" "Ben has a dog"`

const selectShortDesc string = "Select the active facts"

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select <text>...",
		Short: selectShortDesc,
		Long:  selectLongDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, args)
		},
	}

	return cmd
}

func runSelect(cmd *cobra.Command, selected []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SetEnabled(cmd.Context(), selected); err != nil {
		return fmt.Errorf("selecting facts: %w", err)
	}

	fmt.Println("Active facts updated.")
	return nil
}
