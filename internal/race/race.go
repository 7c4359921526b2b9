// Package race derives per-word timings and rankings for multiplayer typing.
package race

import (
	"context"
	"errors"
	"fmt"

	"github.com/verte-zerg/cats/internal/model"
)

// ErrMalformed reports a Words/Times structure whose rows do not match its words.
var ErrMalformed = errors.New("malformed words and times")

// Uploader sends a progress report to a multiplayer server.
type Uploader interface {
	Upload(ctx context.Context, p model.Progress) error
}

// TimePerWord converts per-player timestamps into per-word durations.
// Each timestamp row holds one more entry than there are words.
func TimePerWord(words []string, timestampsPerPlayer [][]float64) model.WordsAndTimes {
	times := make([][]float64, 0, len(timestampsPerPlayer))
	for _, stamps := range timestampsPerPlayer {
		durations := make([]float64, 0, max(len(stamps)-1, 0))
		for i := 0; i+1 < len(stamps); i++ {
			durations = append(durations, stamps[i+1]-stamps[i])
		}
		times = append(times, durations)
	}
	return model.WordsAndTimes{Words: words, Times: times}
}

// Validate checks that every row of times has one entry per word.
func Validate(wt model.WordsAndTimes) error {
	for i, row := range wt.Times {
		if len(row) != len(wt.Words) {
			return fmt.Errorf("%w: player %d has %d times for %d words", ErrMalformed, i, len(row), len(wt.Words))
		}
	}
	return nil
}

// TimeAt returns how long player took to type the word at index word.
// It panics when either index is out of range.
func TimeAt(times [][]float64, player, word int) float64 {
	if player < 0 || player >= len(times) {
		panic(fmt.Sprintf("player %d outside of 0 to %d", player, len(times)-1))
	}
	if word < 0 || word >= len(times[player]) {
		panic(fmt.Sprintf("word index %d outside of 0 to %d", word, len(times[player])-1))
	}
	return times[player][word]
}

// FastestWords returns, for each player in order, the words that player typed
// fastest. Ties go to the earlier player.
func FastestWords(wt model.WordsAndTimes) ([][]string, error) {
	if err := Validate(wt); err != nil {
		return nil, err
	}
	result := make([][]string, len(wt.Times))
	for i := range result {
		result[i] = []string{}
	}
	if len(wt.Times) == 0 {
		return result, nil
	}
	for w, word := range wt.Words {
		winner := 0
		best := TimeAt(wt.Times, 0, w)
		for p := 1; p < len(wt.Times); p++ {
			if t := TimeAt(wt.Times, p, w); t < best {
				winner = p
				best = t
			}
		}
		result[winner] = append(result[winner], word)
	}
	return result, nil
}

// ReportProgress uploads the fraction of source typed correctly before the
// first mistake and returns it. An empty source has zero progress.
func ReportProgress(ctx context.Context, typed, source string, userID int, up Uploader) (float64, error) {
	progress := Progress(typed, source)
	if err := up.Upload(ctx, model.Progress{ID: userID, Progress: progress}); err != nil {
		return progress, fmt.Errorf("failed to upload progress: %w", err)
	}
	return progress, nil
}

// Progress returns the fraction of source matched by typed up to the first mismatch.
func Progress(typed, source string) float64 {
	t, s := []rune(typed), []rune(source)
	if len(s) == 0 {
		return 0
	}
	correct := 0
	for correct < len(t) && correct < len(s) && t[correct] == s[correct] {
		correct++
	}
	return float64(correct) / float64(len(s))
}
