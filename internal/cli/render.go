// Package cli renders forecasts for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/cashrunway/backend/internal/forecast"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle    = lipgloss.NewStyle().Foreground(colorText)
	negativeStyle = lipgloss.NewStyle().Foreground(colorRed)
	borderStyle   = lipgloss.NewStyle().Foreground(colorBorder)
)

var levelStyles = map[forecast.Level]lipgloss.Style{
	forecast.LevelHigh:   lipgloss.NewStyle().Foreground(colorGreen),
	forecast.LevelMedium: lipgloss.NewStyle().Foreground(colorOrange),
	forecast.LevelLow:    lipgloss.NewStyle().Foreground(colorRed),
}

// Table is a bordered text table. All columns except the first are right aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	line := func(left, middle, right string) {
		b.WriteString(borderStyle.Render(left))
		for i, w := range widths {
			b.WriteString(borderStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(borderStyle.Render(middle))
			}
		}
		b.WriteString(borderStyle.Render(right))
		b.WriteString("\n")
	}

	row := func(cells []string, style func(col int, cell string) lipgloss.Style) {
		b.WriteString(borderStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}

			padding := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			padded := " " + padding + cell + " "
			if i == 0 {
				padded = " " + cell + padding + " "
			}

			b.WriteString(style(i, cell).Render(padded))
			if i < numCols-1 {
				b.WriteString(borderStyle.Render("│"))
			}
		}
		b.WriteString(borderStyle.Render("│"))
		b.WriteString("\n")
	}

	line("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		row(t.Headers, func(int, string) lipgloss.Style { return headerStyle })
		line("├", "┼", "┤")
	}

	for _, r := range t.Rows {
		row(r, func(col int, cell string) lipgloss.Style {
			if col > 0 && strings.HasPrefix(cell, "-") {
				return negativeStyle
			}
			return valueStyle
		})
	}

	line("╰", "┴", "╯")

	return b.String()
}

// FormatAmount formats a monetary amount with two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// RenderForecast renders the weekly table and the summary of a forecast.
func RenderForecast(r forecast.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Cash forecast %s to %s (%s)", r.ForecastStartDate, r.ForecastEndDate, r.Strategy)))
	b.WriteString("\n")

	rows := make([][]string, 0, len(r.Weeks))
	for _, w := range r.Weeks {
		rows = append(rows, []string{
			fmt.Sprint(w.WeekNumber),
			w.WeekStart.String(),
			w.WeekEnd.String(),
			FormatAmount(w.CashIn),
			FormatAmount(w.CashOut),
			FormatAmount(w.NetChange),
			FormatAmount(w.EndingBalance),
		})
	}

	b.WriteString(RenderTable(Table{
		Title:   "Weeks (" + r.Currency + ")",
		Headers: []string{"Week", "Start", "End", "Cash in", "Cash out", "Net", "Balance"},
		Rows:    rows,
	}))

	b.WriteString(RenderTable(Table{
		Title: "Summary",
		Rows: [][]string{
			{"Starting cash", FormatAmount(r.StartingCash)},
			{"Total cash in", FormatAmount(r.Summary.TotalCashIn)},
			{"Total cash out", FormatAmount(r.Summary.TotalCashOut)},
			{"Lowest balance", fmt.Sprintf("%s (week %d)", FormatAmount(r.Summary.LowestCashAmount), r.Summary.LowestCashWeek)},
			{"Runway", fmt.Sprintf("%d weeks", r.Summary.RunwayWeeks)},
		},
	}))

	level := levelStyles[r.Confidence.OverallLevel]
	b.WriteString(fmt.Sprintf("  Confidence: %s\n", level.Render(fmt.Sprintf("%s (%d%%)", r.Confidence.OverallLevel, r.Confidence.OverallPercentage))))
	for _, s := range r.Confidence.ImprovementSuggestions {
		b.WriteString("  - " + s + "\n")
	}

	return b.String()
}
