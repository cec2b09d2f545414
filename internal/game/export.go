package game

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

// WriteState dumps a game snapshot as indented JSON for external charting.
func WriteState(filePath string, state model.GameState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal game state: %w", err)
	}
	return os.WriteFile(filePath, data, 0644)
}
