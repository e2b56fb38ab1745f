package dump

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Translations maps internal item identifiers to display names.
type Translations map[string]string

// LoadTranslations decodes a JSON object of identifier to name.
func LoadTranslations(r io.Reader) (Translations, error) {
	var t Translations
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("dump: translations: %w", err)
	}
	return t, nil
}

// LoadTranslationsFile loads the table at path.
func LoadTranslationsFile(path string) (Translations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dump: translations: %w", err)
	}
	defer f.Close()
	return LoadTranslations(f)
}

// Translate returns the display name for id, or ErrNoTranslation.
func (t Translations) Translate(id string) (string, error) {
	if name, ok := t[id]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w for %q", ErrNoTranslation, id)
}

// Display returns the display name for id, falling back to id itself.
func (t Translations) Display(id string) string {
	if name, err := t.Translate(id); err == nil {
		return name
	}
	return id
}

// Suggest returns up to n known identifiers closest to id by edit distance,
// nearest first. Ties are broken by identifier.
func (t Translations) Suggest(id string, n int) []string {
	type cand struct {
		id   string
		dist int
	}
	cands := make([]cand, 0, len(t))
	for k := range t {
		cands = append(cands, cand{k, levenshtein.ComputeDistance(id, k)})
	}
	slices.SortFunc(cands, func(a, b cand) int {
		return cmp.Or(cmp.Compare(a.dist, b.dist), strings.Compare(a.id, b.id))
	})
	out := make([]string, 0, min(n, len(cands)))
	for _, c := range cands[:min(n, len(cands))] {
		out = append(out, c.id)
	}
	return out
}
