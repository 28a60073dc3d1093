package dashboard

import (
	"fmt"
	"math"
	"time"

	"mediexplain/internal/models"
)

type Stats struct {
	Count       int              `json:"count"`
	CurrentRisk models.RiskLevel `json:"current_risk"`
	Improved    int              `json:"improved"`
	Days        int              `json:"days"`
}

// BuildStats returns nil for an empty history.
func BuildStats(entries []models.HistoryEntry, now time.Time) *Stats {
	if len(entries) == 0 {
		return nil
	}

	improved := 0
	for i := 1; i < len(entries); i++ {
		if entries[i].RiskLevel.Order() < entries[i-1].RiskLevel.Order() {
			improved++
		}
	}

	days := 1
	if first, ok := entries[0].Time(); ok {
		elapsed := int(math.Round(now.Sub(first).Hours() / 24))
		if elapsed > days {
			days = elapsed
		}
	}

	current := entries[len(entries)-1].RiskLevel
	if current == "" {
		current = models.RiskLow
	}

	return &Stats{
		Count:       len(entries),
		CurrentRisk: current,
		Improved:    improved,
		Days:        days,
	}
}

type ProgressKind string

const (
	ProgressGood ProgressKind = "good"
	ProgressWarn ProgressKind = "warn"
	ProgressInfo ProgressKind = "info"
)

type Progress struct {
	Kind ProgressKind `json:"type"`
	Text string       `json:"text"`
}

// BuildProgress compares only the first and last entries. Fewer than two
// entries produce no message. A missing or unknown endpoint risk reads as
// LOW in both the comparison and the text.
func BuildProgress(entries []models.HistoryEntry) *Progress {
	if len(entries) < 2 {
		return nil
	}
	first := entries[0].RiskLevel.OrDefault(models.RiskLow)
	last := entries[len(entries)-1].RiskLevel.OrDefault(models.RiskLow)

	switch {
	case last.Order() < first.Order():
		return &Progress{
			Kind: ProgressGood,
			Text: fmt.Sprintf("Great progress! You've gone from %s to %s risk.", first, last),
		}
	case last.Order() > first.Order():
		return &Progress{
			Kind: ProgressWarn,
			Text: fmt.Sprintf("Risk increased from %s to %s. Please consult a doctor.", first, last),
		}
	default:
		return &Progress{
			Kind: ProgressInfo,
			Text: fmt.Sprintf("Risk level has stayed at %s across %d reports.", last, len(entries)),
		}
	}
}
