// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Paragraphs  string
	Dictionary  string
	Topics      []string
	Autocorrect bool
	Metric      string
	Limit       int
	UserID      int
	Report      bool
	UploadURL   string
}

// WordsAndTimes pairs a word sequence with per-player durations.
// Every row of Times holds one duration per word.
type WordsAndTimes struct {
	Words []string    `json:"words" yaml:"words"`
	Times [][]float64 `json:"times" yaml:"times"`
}

// Progress is the payload sent to a multiplayer server.
type Progress struct {
	ID       int     `json:"id"`
	Progress float64 `json:"progress"`
}

// Result captures a scored paragraph attempt.
type Result struct {
	Source   string
	Typed    string
	Elapsed  time.Duration
	WPM      float64
	Accuracy float64
}
