package main

import (
	"strconv"
	"time"

	"github.com/joshuapare/etsvibes/internal/display"
	"github.com/joshuapare/etsvibes/internal/profile"
	"github.com/joshuapare/etsvibes/pkg/save"
)

// saveSummary is what list and watch report for one save slot.
type saveSummary struct {
	Profile   string    `json:"profile"`
	Save      string    `json:"save"`
	Path      string    `json:"path"`
	Money     string    `json:"money,omitempty"`
	XP        string    `json:"xp,omitempty"`
	Encrypted bool      `json:"encrypted"`
	Modified  time.Time `json:"modified"`
	Error     string    `json:"error,omitempty"`
}

// summarize loads a save and extracts money and XP. Load failures are
// recorded in Error rather than returned.
func summarize(s profile.SaveFile) saveSummary {
	sum := saveSummary{
		Profile: s.Profile.DisplayName(),
		Save:    s.Name,
		Path:    s.GamePath(),
	}
	if mod, err := s.ModTime(); err == nil {
		sum.Modified = mod
	}

	ed := save.NewEditor(s.Sink())
	if err := ed.Load(); err != nil {
		sum.Error = err.Error()
		return sum
	}
	sum.Encrypted = ed.WasEncrypted()
	sum.Money, _ = ed.Document().Get(save.KeyMoney)
	sum.XP, _ = ed.Document().Get(save.KeyXP)
	return sum
}

// formatValue renders a raw property value with thousands grouping. Non-numeric
// values are shown verbatim, missing ones as "?".
func formatValue(raw string, money bool) string {
	if raw == "" {
		return "?"
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	if money {
		return display.Money(n)
	}
	return display.Count(n)
}
