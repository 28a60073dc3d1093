package dashboard

import (
	"time"

	"mediexplain/internal/content"
	"mediexplain/internal/models"
)

const trendsHint = "Value trends will appear when the same tests appear in multiple reports."

type TimelineItem struct {
	ID            string           `json:"id,omitempty"`
	Date          string           `json:"date"`
	RiskLevel     models.RiskLevel `json:"risk_level"`
	AbnormalCount int              `json:"abnormal_count"`
	Filename      string           `json:"filename"`
}

// Summary is everything the dashboard screen renders.
type Summary struct {
	Empty          bool                   `json:"empty"`
	Stats          *Stats                 `json:"stats,omitempty"`
	Progress       *Progress              `json:"progress,omitempty"`
	Timeline       []TimelineItem         `json:"timeline"`
	Trends         []TrendSeries          `json:"trends"`
	TrendsHint     string                 `json:"trends_hint,omitempty"`
	LatestAbnormal []models.AbnormalValue `json:"latest_abnormal"`
	Tips           []content.Tip          `json:"tips"`
}

func Summarize(entries []models.HistoryEntry, now time.Time) Summary {
	summary := Summary{
		Empty:          len(entries) == 0,
		Timeline:       []TimelineItem{},
		Trends:         []TrendSeries{},
		LatestAbnormal: []models.AbnormalValue{},
		Tips:           content.Tips(),
	}
	if summary.Empty {
		return summary
	}

	summary.Stats = BuildStats(entries, now)
	summary.Progress = BuildProgress(entries)
	summary.Trends = BuildTrends(entries)
	if len(summary.Trends) == 0 && len(entries) >= 2 {
		summary.TrendsHint = trendsHint
	}

	for _, e := range entries {
		summary.Timeline = append(summary.Timeline, TimelineItem{
			ID:            e.ID,
			Date:          DateLabel(e.Date),
			RiskLevel:     e.RiskLevel.OrDefault(models.RiskInfo),
			AbnormalCount: len(e.AbnormalValues),
			Filename:      e.Filename,
		})
	}
	if latest := entries[len(entries)-1].AbnormalValues; len(latest) > 0 {
		summary.LatestAbnormal = latest
	}
	return summary
}
