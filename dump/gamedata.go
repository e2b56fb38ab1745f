package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joshuapare/pouchkit/pouch"
)

// WriteGameData encodes a saved inventory as indented JSON.
func WriteGameData(w io.Writer, data pouch.GameData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("dump: game data: %w", err)
	}
	return nil
}

// ReadGameData decodes a saved inventory written by WriteGameData.
func ReadGameData(r io.Reader) (pouch.GameData, error) {
	var data pouch.GameData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("dump: game data: %w", err)
	}
	return data, nil
}
