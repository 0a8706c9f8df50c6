package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthias-bs/bresser-decode/internal/options"
	"github.com/matthias-bs/bresser-decode/internal/profile"
)

var errNoProfile = errors.New("no profile selected")

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List built-in payload profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range profile.Names() {
			p, err := profile.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-20s %3d bytes  %v\n", p.Name, p.Width(), p.Names())
		}
		if p, ok := options.ProfileFromContext(cmd.Context()); ok {
			fmt.Printf("\nselected: %s (%d bytes)\n", p.Name, p.Width())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
