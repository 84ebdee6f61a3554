package view

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/campusvoice/petition/models"
)

const (
	// Goal is the signature target the progress bar measures against.
	Goal = 500

	// PageSize is how many signatures each "show more" reveals.
	PageSize = 12

	// TickerSize is how many recent signatures feed the ticker.
	TickerSize = 8
)

// UnknownLabel buckets documents missing a branch or year.
const UnknownLabel = "Unknown"

// FeedEntry is one rotating-ticker item.
type FeedEntry struct {
	Name   string `json:"name"`
	Branch string `json:"branch"`
	When   string `json:"when"`
}

// Model is the derived, read-only projection of a signature snapshot. It is
// built from a complete snapshot and replaced wholesale on every reload;
// nothing mutates it incrementally except the page cursor.
type Model struct {
	TotalCount      int            `json:"total_count"`
	Percent         int            `json:"percent"`
	ProgressWidth   float64        `json:"progress_width"`
	PillText        string         `json:"pill_text"`
	BranchHistogram map[string]int `json:"branch_histogram"`
	YearHistogram   map[string]int `json:"year_histogram"`
	RecentFeed      []FeedEntry    `json:"recent_feed"`

	sorted []models.Signature
	shown  int
}

// Build derives the full view model from a snapshot. It is a pure function
// of its inputs: no store access, no hidden state, safe to re-run for every
// re-render. The page cursor starts at zero.
func Build(snapshot []models.Signature, now time.Time) *Model {
	m := &Model{
		TotalCount:      len(snapshot),
		BranchHistogram: make(map[string]int),
		YearHistogram:   make(map[string]int),
		sorted:          make([]models.Signature, len(snapshot)),
	}

	for _, s := range snapshot {
		branch := strings.ToUpper(strings.TrimSpace(s.Branch))
		if branch == "" {
			branch = UnknownLabel
		}
		m.BranchHistogram[branch]++

		year := s.Year
		if year == "" {
			year = UnknownLabel
		}
		m.YearHistogram[year]++
	}

	copy(m.sorted, snapshot)
	// Newest first; documents without a timestamp sort as oldest.
	sort.SliceStable(m.sorted, func(i, j int) bool {
		return m.sorted[i].Timestamp > m.sorted[j].Timestamp
	})

	feedLen := min(TickerSize, len(m.sorted))
	m.RecentFeed = make([]FeedEntry, 0, feedLen)
	for _, s := range m.sorted[:feedLen] {
		name := s.Name
		if name == "" {
			name = "Someone"
		}
		m.RecentFeed = append(m.RecentFeed, FeedEntry{
			Name:   name,
			Branch: strings.ToUpper(s.Branch),
			When:   humanize.RelTime(time.UnixMilli(s.Timestamp), now, "ago", "from now"),
		})
	}

	m.Percent = Percent(m.TotalCount)
	m.ProgressWidth = ProgressWidth(m.TotalCount)
	m.PillText = Pill(m.TotalCount)

	return m
}

// Percent is the goal percentage shown in the hero counter: rounded, then
// clamped so it never exceeds 100.
func Percent(count int) int {
	return int(math.Min(100, math.Round(ratio(count))))
}

// ProgressWidth is the progress-bar width: the unrounded ratio clamped to 100.
func ProgressWidth(count int) float64 {
	return math.Min(100, ratio(count))
}

// Pill renders the signed-count pill label.
func Pill(count int) string {
	if count == 1 {
		return "1 signature"
	}
	return fmt.Sprintf("%d signatures", count)
}

func ratio(count int) float64 {
	return float64(count) / float64(Goal) * 100
}

// ShowMore reveals the next page and returns the full visible prefix, newest
// first. Successive calls expose PageSize more records each until the
// snapshot is exhausted.
func (m *Model) ShowMore() []models.Signature {
	m.shown = min(m.shown+PageSize, len(m.sorted))
	return m.Visible()
}

// Visible returns the currently revealed records.
func (m *Model) Visible() []models.Signature {
	return m.sorted[:m.shown]
}

// Shown reports how many records are currently revealed.
func (m *Model) Shown() int {
	return m.shown
}

// HasMore reports whether another ShowMore would reveal anything.
func (m *Model) HasMore() bool {
	return m.shown < len(m.sorted)
}
