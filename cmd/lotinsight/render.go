package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lotcomputer/lotinsight/internal/goals"
	"github.com/lotcomputer/lotinsight/internal/insight"
	"github.com/lotcomputer/lotinsight/internal/patterns"
)

// Output formats.
const (
	formatJSON = "json"
	formatText = "text"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	highStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	midStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	lowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func validateFormat(format string) error {
	switch format {
	case formatJSON, formatText:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want json or text)", format)
	}
}

// render writes v as indented JSON, or with text for the text format.
func render[T any](w io.Writer, format string, v T, text func(io.Writer, T)) error {
	if format == formatText {
		text(w, v)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func confidenceStyle(c float64) lipgloss.Style {
	switch {
	case c >= 0.8:
		return highStyle
	case c >= 0.5:
		return midStyle
	default:
		return lowStyle
	}
}

func confidence(c float64) string {
	return confidenceStyle(c).Render(fmt.Sprintf("%3.0f%%", c*100))
}

func field(label, value string) string {
	return labelStyle.Render(label+": ") + valueStyle.Render(value)
}

func renderInsights(w io.Writer, insights []patterns.Insight) {
	fmt.Fprintln(w, headerStyle.Render("Patterns"))
	if len(insights) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No patterns detected yet."))
		return
	}
	for _, in := range insights {
		fmt.Fprintf(w, "%s  %s %s\n", confidence(in.Confidence), valueStyle.Render(in.Title), dimStyle.Render("("+string(in.Type)+")"))
		fmt.Fprintf(w, "      %s\n", in.Description)
	}
}

func renderGoals(w io.Writer, gs []goals.Goal) {
	fmt.Fprintln(w, headerStyle.Render("Goals"))
	if len(gs) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No goals surfaced yet."))
		return
	}
	for _, g := range gs {
		fmt.Fprintf(w, "%s  %s %s\n", confidence(g.Confidence), valueStyle.Render(g.Title),
			dimStyle.Render(fmt.Sprintf("[%s · %s · %s]", g.Category, g.State, g.JourneyStage)))
		fmt.Fprintf(w, "      %s\n", g.Narrative)
		fmt.Fprintf(w, "      %s\n", dimStyle.Render("evidence: "+strings.Join(g.ExtractedFrom, ", ")))
	}
}

func renderProgression(w io.Writer, p goals.Progression) {
	fmt.Fprintln(w, headerStyle.Render("Progression"))
	fmt.Fprintln(w, field("Months tracked", fmt.Sprintf("%d", p.MonthsTracked)))
	primary := "none yet"
	if p.PrimaryGoal != nil {
		primary = fmt.Sprintf("%s (%s)", p.PrimaryGoal.Title, p.PrimaryGoal.JourneyStage)
	}
	fmt.Fprintln(w, field("Primary goal", primary))
	fmt.Fprintln(w, field("Recent breakthroughs", fmt.Sprintf("%d", len(p.RecentBreakthroughs))))
	fmt.Fprintln(w, field("Next focus", p.NextFocus))

	fmt.Fprintln(w, sectionStyle.Render("Story"))
	fmt.Fprintln(w, p.Narrative.StoryArc)
	fmt.Fprintln(w, p.Narrative.CurrentChapter)
	fmt.Fprintln(w, dimStyle.Render("Next: "+p.Narrative.NextMilestone))
}

func renderContext(w io.Writer, f insight.ContextFragments) {
	fmt.Fprintln(w, headerStyle.Render("Context"))
	fmt.Fprintln(w, field("Patterns", f.PatternSummary))
	fmt.Fprintln(w, field("Goals", f.GoalSummary))
	fmt.Fprintln(w, field("Journey", f.JourneySummary))
	fmt.Fprintln(w, sectionStyle.Render("Suggestions"))
	for _, s := range f.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}

func renderReport(w io.Writer, rep insight.Report) {
	fmt.Fprintln(w, headerStyle.Render("lotinsight report"))
	fmt.Fprintln(w, field("User", rep.UserID))
	fmt.Fprintln(w, field("Generated", rep.GeneratedAt.Format("2006-01-02 15:04 MST")))
	fmt.Fprintln(w, field("Entries analysed", fmt.Sprintf("%d", rep.Entries)))
	fmt.Fprintln(w)
	renderInsights(w, rep.Insights)
	fmt.Fprintln(w)
	renderGoals(w, rep.Progression.Goals)
	fmt.Fprintln(w)
	renderProgression(w, rep.Progression)
	fmt.Fprintln(w)
	renderContext(w, rep.Context)
}
