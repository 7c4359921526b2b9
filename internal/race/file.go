// Package race derives per-word timings and rankings for multiplayer typing.
package race

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/cats/internal/model"
)

// Race is a recorded multiplayer round: the words typed and, per player,
// the timestamp at the start and after each word.
type Race struct {
	Players    []string    `yaml:"players"`
	Words      []string    `yaml:"words"`
	Timestamps [][]float64 `yaml:"timestamps"`
}

// LoadRace reads a race file. JSON files are accepted as well.
func LoadRace(path string) (Race, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Race{}, fmt.Errorf("failed to read race file: %w", err)
	}
	return ParseRace(data)
}

// ParseRace decodes a race document.
func ParseRace(data []byte) (Race, error) {
	var r Race
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Race{}, fmt.Errorf("failed to decode race file: %w", err)
	}
	if len(r.Words) == 0 {
		return Race{}, fmt.Errorf("race file has no words")
	}
	for i, stamps := range r.Timestamps {
		if len(stamps) != len(r.Words)+1 {
			return Race{}, fmt.Errorf("%w: player %d has %d timestamps, expected %d", ErrMalformed, i, len(stamps), len(r.Words)+1)
		}
	}
	if len(r.Players) != 0 && len(r.Players) != len(r.Timestamps) {
		return Race{}, fmt.Errorf("race file names %d players but has %d timestamp rows", len(r.Players), len(r.Timestamps))
	}
	return r, nil
}

// WordsAndTimes returns the per-word durations for the race.
func (r Race) WordsAndTimes() model.WordsAndTimes {
	return TimePerWord(r.Words, r.Timestamps)
}

// PlayerNames returns the configured names or "Player N" placeholders.
func (r Race) PlayerNames() []string {
	if len(r.Players) == len(r.Timestamps) {
		return r.Players
	}
	names := make([]string, len(r.Timestamps))
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	return names
}
