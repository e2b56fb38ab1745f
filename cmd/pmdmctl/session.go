package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/pouchkit/dump"
	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/pouch"
)

// session is one loaded capture.
type session struct {
	path  string
	addr  uint64
	mgr   *pouch.Manager
	names dump.Translations
}

func openSession(path string) (*session, error) {
	printVerbose("Opening capture: %s\n", path)
	snap, err := dump.Open(path, pouch.ManagerSize)
	if err != nil {
		return nil, err
	}
	m, err := mem.FromSnapshot(snap.Addr, snap.Data)
	if err != nil {
		return nil, err
	}
	opts := pouch.DefaultOptions()
	if confirmDeref {
		opts.Confirmer = promptConfirmer{in: bufio.NewReader(os.Stdin), out: os.Stderr}
	}
	mgr, err := pouch.New(m, snap.Addr, opts)
	if err != nil {
		return nil, err
	}
	s := &session{path: path, addr: snap.Addr, mgr: mgr, names: dump.Translations{}}
	if translationsPath != "" {
		if s.names, err = dump.LoadTranslationsFile(translationsPath); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// write stores the manager's current bytes as a capture.
func (s *session) write() error {
	out := outPath
	if out == "" {
		if !inPlace {
			return errors.New("no output: pass --output <file> or --in-place")
		}
		out = s.path
	}
	data, err := s.mgr.Memory().ReadBytes(s.addr, uint64(pouch.ManagerSize))
	if err != nil {
		return err
	}
	if err := dump.WriteFile(out, dump.Snapshot{Addr: s.addr, Data: data}); err != nil {
		return err
	}
	printVerbose("Wrote %s\n", out)
	return nil
}

// resolve finds an item by its position in the inventory list or by name.
func (s *session) resolve(arg string) (mem.Pointer[pouch.PouchItem], error) {
	if i, err := strconv.Atoi(arg); err == nil {
		p, err := s.mgr.Active().Nth(i)
		if err != nil {
			return 0, err
		}
		if p.IsNull() {
			return 0, fmt.Errorf("no item at index %d", i)
		}
		return p, nil
	}
	found, err := s.mgr.Find(arg)
	if err != nil {
		return 0, err
	}
	if len(found) == 0 {
		msg := fmt.Sprintf("no item named %q", arg)
		if hint := s.names.Suggest(arg, 3); len(hint) > 0 {
			msg += "; did you mean " + strings.Join(hint, ", ") + "?"
		}
		return 0, errors.New(msg)
	}
	return found[0], nil
}

// promptConfirmer asks on the terminal before a pointer is followed.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (c promptConfirmer) Confirm(addr, _ uint64) bool {
	fmt.Fprintf(c.out, "Attempted to dereference 0x%x, proceed? (Y/n) ", addr)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "n")
}
