// Package report renders an AnalysisResult for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trendwatch/internal/trend"
)

// Colors used in the report.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorDanger    = lipgloss.Color("203") // Red
)

// Header style for section headings.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	MarginTop(1)

// Rank style for the position column.
var Rank = lipgloss.NewStyle().
	Foreground(colorSecondary)

// Keyword style for topic keywords.
var Keyword = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// Muted style for secondary detail.
var Muted = lipgloss.NewStyle().
	Foreground(colorSecondary)

// stageStyles maps each lifecycle stage to its badge style.
var stageStyles = map[trend.Stage]lipgloss.Style{
	trend.StageEmerging:  lipgloss.NewStyle().Foreground(colorHighlight),
	trend.StageRising:    lipgloss.NewStyle().Foreground(colorSuccess),
	trend.StagePeak:      lipgloss.NewStyle().Foreground(colorPrimary),
	trend.StageDeclining: lipgloss.NewStyle().Foreground(colorWarning),
	trend.StageFading:    lipgloss.NewStyle().Foreground(colorDanger),
}

// stageOrder fixes the display order of the lifecycle distribution.
var stageOrder = []trend.Stage{
	trend.StageEmerging,
	trend.StageRising,
	trend.StagePeak,
	trend.StageDeclining,
	trend.StageFading,
}

// Render formats the result as a styled multi-section report.
func Render(res *trend.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(Header.Render("Trending Topics"))
	b.WriteString("\n")
	if len(res.Trending) == 0 {
		b.WriteString(Muted.Render("  (none)"))
		b.WriteString("\n")
	}
	for i, t := range res.Trending {
		stage := stageStyles[t.Stage].Render(string(t.Stage))
		line := fmt.Sprintf("%s %s  %s  %s %s",
			Rank.Render(fmt.Sprintf("%2d.", i+1)),
			Keyword.Render(fmt.Sprintf("%-20s", t.Keyword)),
			stage,
			Muted.Render(fmt.Sprintf("trend %.2f  velocity %.1f/h  mentions %d",
				t.Scores.Trend, t.Scores.VelocityRaw, len(t.Mentions))),
			Muted.Render(fmt.Sprintf("confidence %.2f", t.Confidence)),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(res.Clusters) > 0 {
		b.WriteString(Header.Render("Clusters"))
		b.WriteString("\n")
		for _, c := range res.Clusters {
			keywords := make([]string, len(c.Members))
			for i, m := range c.Members {
				keywords[i] = m.Keyword
			}
			b.WriteString(fmt.Sprintf("  %s %s\n",
				Keyword.Render(c.Representative),
				Muted.Render("["+strings.Join(keywords, ", ")+"]")))
		}
	}

	if len(res.Lifecycle) > 0 {
		b.WriteString(Header.Render("Lifecycle"))
		b.WriteString("\n  ")
		var parts []string
		for _, stage := range stageOrder {
			if n := res.Lifecycle[stage]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s %d", stageStyles[stage].Render(string(stage)), n))
			}
		}
		b.WriteString(strings.Join(parts, "  "))
		b.WriteString("\n")
	}

	b.WriteString(Header.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(Muted.Render(fmt.Sprintf(
		"  avg velocity %.2f/h  avg trend %.2f  articles %d  skipped %d",
		res.Summary.AvgVelocity, res.Summary.AvgTrendScore,
		res.ArticlesSeen, res.ArticlesSkipped)))
	b.WriteString("\n")

	return b.String()
}
