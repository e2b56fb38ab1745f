package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pouchkit/dump"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <capture>",
		Short: "Report the manager address and list bookkeeping",
		Long: `The info command loads a capture and reports the manager address, the
heap base it implies and the counts of both item lists.

Example:
  pmdmctl info pmdm.bin
  pmdmctl info pmdm.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

func runInfo(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return fmt.Errorf("failed to load capture: %w", err)
	}
	st := s.mgr.State()
	active, err := s.mgr.Active().Count()
	if err != nil {
		return err
	}
	graveyard, err := s.mgr.Graveyard().Count()
	if err != nil {
		return err
	}
	info := map[string]any{
		"file":            s.path,
		"address":         fmt.Sprintf("0x%x", s.addr),
		"heap_base":       fmt.Sprintf("0x%x", (dump.Snapshot{Addr: s.addr}).HeapBase()),
		"active_count":    active,
		"graveyard_count": graveyard,
		"num_tabs":        st.NumTabs,
		"last_added_item": st.LastAddedItem.String(),
	}
	if jsonOut {
		return printJSON(info)
	}

	printInfo("PauseMenuDataMgr::sInstance == %s\n", info["address"])
	printInfo("Heap base: %s\n", info["heap_base"])
	printInfo("  Active items:    %d\n", active)
	printInfo("  Graveyard slots: %d\n", graveyard)
	printInfo("  Tabs:            %d\n", st.NumTabs)
	printInfo("  Last added item: %s\n", st.LastAddedItem)
	return nil
}
