package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pouchkit/verify"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <capture>",
		Short: "Check the capture for corrupt lists and bookkeeping",
		Long: `The validate command opens the pause menu (a full read-only walk of
the inventory list) and then checks list links, counts, ingredient arrays
and tab heads.

Example:
  pmdmctl validate pmdm.bin
  pmdmctl validate pmdm.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func runValidate(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return fmt.Errorf("failed to load capture: %w", err)
	}

	err = s.mgr.OpenPauseMenu()
	if err == nil {
		err = verify.AllInvariants(s.mgr)
	}

	result := map[string]any{
		"file":  s.path,
		"valid": err == nil,
	}
	if err != nil {
		result["error"] = err.Error()
	}
	if jsonOut {
		if perr := printJSON(result); perr != nil {
			return perr
		}
		return err
	}

	printInfo("\nValidating %s...\n\n", s.path)
	if err != nil {
		printInfo("  ✗ %v\n", err)
		return err
	}
	printInfo("  ✓ Lists intact\n")
	printInfo("  ✓ Bookkeeping consistent\n")
	return nil
}
