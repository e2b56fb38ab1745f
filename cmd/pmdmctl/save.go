package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pouchkit/dump"
	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/pouch"
)

var newAddr string

func init() {
	rootCmd.AddCommand(newSaveCmd())

	load := newLoadCmd()
	addOutputFlags(load)
	rootCmd.AddCommand(load)

	create := newNewCmd()
	create.Flags().StringVar(&newAddr, "addr", "0x2a982c8b0", "Manager address recorded in the capture")
	rootCmd.AddCommand(create)
}

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <capture> [file]",
		Short: "Save the inventory as JSON game data",
		Long: `The save command records the inventory the way a save file would and
writes it as JSON to file, or stdout when no file is given.

Example:
  pmdmctl save pmdm.bin inventory.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(args[0])
			if err != nil {
				return fmt.Errorf("failed to load capture: %w", err)
			}
			data, err := s.mgr.Save()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return dump.WriteGameData(os.Stdout, data)
			}
			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := dump.WriteGameData(f, data); err != nil {
				return err
			}
			printVerbose("Saved %d items to %s\n", len(data), args[1])
			return f.Close()
		},
	}
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <capture> <file>",
		Short: "Replace the inventory with JSON game data",
		Long: `The load command rebuilds both item lists from scratch and adds the
saved items in order, as loading a save file does.

Example:
  pmdmctl load pmdm.bin inventory.json -o out.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			data, err := dump.ReadGameData(f)
			if err != nil {
				return err
			}
			return mutate(args[0], func(s *session) error {
				return s.mgr.Load(data)
			})
		},
	}
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <capture>",
		Short: "Write a capture of an empty, freshly constructed manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := strconv.ParseUint(newAddr, 0, 64)
			if err != nil {
				return fmt.Errorf("invalid address %q: %w", newAddr, err)
			}
			m := mem.New()
			if err := pouch.Construct(m, addr); err != nil {
				return err
			}
			data, err := m.ReadBytes(addr, uint64(pouch.ManagerSize))
			if err != nil {
				return err
			}
			return dump.WriteFile(args[0], dump.Snapshot{Addr: addr, Data: data})
		},
	}
}
