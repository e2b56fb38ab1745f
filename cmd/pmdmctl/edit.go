package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/pouch"
)

var (
	getType     string
	getModifier string
)

func init() {
	get := newGetCmd()
	get.Flags().StringVar(&getType, "type", "", "Item type (Sword, Bow, Arrow, Shield, ArmorHead, ArmorUpper, ArmorLower, Material, Food, KeyItem)")
	get.Flags().StringVar(&getModifier, "modifier", "", "Address of a weapon modifier record in the capture")
	_ = get.MarkFlagRequired("type")

	for _, cmd := range []*cobra.Command{
		get,
		newItemCmd("remove", "Remove an item slot while unpaused", (*pouch.Manager).Remove),
		newItemCmd("drop", "Drop an item while the pause menu is open", (*pouch.Manager).Drop),
		newItemCmd("equip", "Equip or enable an item", (*pouch.Manager).Equip),
		newItemCmd("unequip", "Unequip or disable an item", (*pouch.Manager).Unequip),
		newSetValueCmd(),
		newOffsetCmd(),
	} {
		addOutputFlags(cmd)
		rootCmd.AddCommand(cmd)
	}
}

// mutate loads a capture, applies fn and writes the result.
func mutate(path string, fn func(s *session) error) error {
	s, err := openSession(path)
	if err != nil {
		return fmt.Errorf("failed to load capture: %w", err)
	}
	if err := fn(s); err != nil {
		return err
	}
	return s.write()
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <capture> <name> <value>",
		Short: "Pick up an item",
		Long: `The get command replays picking up an item: duplicate key items are
ignored, the unique sword respawns in place, and anything else takes a new
slot and the inventory is re-sorted.

Example:
  pmdmctl get pmdm.bin Weapon_Sword_001 30 --type Sword -o out.bin`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := pouch.ParseItemType(getType)
			if err != nil {
				return err
			}
			value, err := strconv.ParseInt(args[2], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[2], err)
			}
			var modifier mem.Pointer[pouch.WeaponModifierInfo]
			if getModifier != "" {
				addr, err := strconv.ParseUint(getModifier, 0, 64)
				if err != nil {
					return fmt.Errorf("invalid modifier address %q: %w", getModifier, err)
				}
				modifier = mem.Pointer[pouch.WeaponModifierInfo](addr)
			}
			return mutate(args[0], func(s *session) error {
				if err := s.mgr.AcquireItem(args[1], typ, int32(value), modifier); err != nil {
					return err
				}
				printInfo("Picked up %s\n", s.names.Display(args[1]))
				return nil
			})
		},
	}
}

func newItemCmd(use, short string, op func(*pouch.Manager, mem.Pointer[pouch.PouchItem]) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <capture> <item>",
		Short: short,
		Long: short + `.

The item is either its position in the list printed by "pmdmctl items" or
its internal name; the first match is used.

Example:
  pmdmctl ` + use + ` pmdm.bin 3 -o out.bin
  pmdmctl ` + use + ` pmdm.bin Weapon_Sword_001 --in-place`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(args[0], func(s *session) error {
				p, err := s.resolve(args[1])
				if err != nil {
					return err
				}
				if err := op(s.mgr, p); err != nil {
					return err
				}
				printInfo("%s: %s\n", use, p)
				return nil
			})
		},
	}
}

func newSetValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-value <capture> <item> <value>",
		Short: "Damage, consume or shoot an item",
		Long: `The set-value command overwrites an item's value: durability for
equipment, count for stackables.

Example:
  pmdmctl set-value pmdm.bin NormalArrow 5 -o out.bin`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseInt(args[2], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[2], err)
			}
			return mutate(args[0], func(s *session) error {
				p, err := s.resolve(args[1])
				if err != nil {
					return err
				}
				return s.mgr.SetValue(p, int32(value))
			})
		},
	}
}

func newOffsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offset <capture> <n>",
		Short: "Break n inventory slots",
		Long: `The offset command moves n units of count from the inventory list to
the graveyard list without moving any item, shrinking usable capacity.

Example:
  pmdmctl offset pmdm.bin 2 -o out.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[1], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[1], err)
			}
			return mutate(args[0], func(s *session) error {
				return s.mgr.OffsetCapacity(uint32(n))
			})
		},
	}
}
