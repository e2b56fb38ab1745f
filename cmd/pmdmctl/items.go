package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/pouch"
)

func init() {
	rootCmd.AddCommand(newItemsCmd())
}

func newItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items <capture>",
		Short: "List the inventory in list order",
		Long: `The items command walks the active item list and prints every entry
with its position, which other commands accept in place of a name.

Example:
  pmdmctl items pmdm.bin -t botw_names.json
  pmdmctl items pmdm.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItems(args)
		},
	}
}

type itemRow struct {
	Index       int      `json:"index"`
	Address     string   `json:"address"`
	Name        string   `json:"name"`
	Display     string   `json:"display"`
	Type        string   `json:"type"`
	Value       int32    `json:"value"`
	Equipped    bool     `json:"equipped"`
	InInventory bool     `json:"in_inventory"`
	Ingredients []string `json:"ingredients,omitempty"`
}

func (s *session) rows() ([]itemRow, error) {
	items, err := s.mgr.Items()
	if err != nil {
		return nil, err
	}
	rows := make([]itemRow, 0, len(items))
	for i, p := range items {
		row, err := s.row(i, p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *session) row(i int, p mem.Pointer[pouch.PouchItem]) (itemRow, error) {
	it, err := s.mgr.Item(p)
	if err != nil {
		return itemRow{}, err
	}
	ings, err := s.mgr.Ingredients(p)
	if err != nil {
		return itemRow{}, err
	}
	name := it.Name.String()
	return itemRow{
		Index:       i,
		Address:     p.String(),
		Name:        name,
		Display:     s.names.Display(name),
		Type:        it.Type.String(),
		Value:       it.Value,
		Equipped:    it.Equipped.Get(),
		InInventory: it.InInventory.Get(),
		Ingredients: ings,
	}, nil
}

func runItems(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return fmt.Errorf("failed to load capture: %w", err)
	}
	rows, err := s.rows()
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(rows)
	}
	for _, r := range rows {
		flags := ""
		if r.Equipped {
			flags += " [equipped]"
		}
		if !r.InInventory {
			flags += " [dropped]"
		}
		printInfo("%3d  %-10s %-32s %6d%s\n", r.Index, r.Type, r.Display, r.Value, flags)
	}
	return nil
}
