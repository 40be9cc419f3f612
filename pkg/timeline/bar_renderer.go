package timeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dayline/dayline/pkg/category"
	"github.com/dayline/dayline/pkg/interval"
)

const (
	DefaultBarWidth = 72
	barBlock        = "█"
)

var (
	styleDate = lipgloss.NewStyle().Bold(true)
	styleAxis = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
)

// BarRenderer draws a timeline as a single stacked horizontal bar for the terminal.
type BarRenderer struct {
	registry *category.Registry
	width    int
}

func NewBarRenderer(registry *category.Registry, width int) *BarRenderer {
	if width < 24 {
		width = 24
	}
	return &BarRenderer{registry: registry, width: width}
}

// Render returns the date header, the bar, an hour axis and a legend with the hours per category.
func (b *BarRenderer) Render(day DayTimeline) string {
	var sb strings.Builder
	sb.WriteString(styleDate.Render(day.Date))
	sb.WriteString("\n")
	sb.WriteString(b.Bar(day.Segments))
	sb.WriteString("\n")
	sb.WriteString(styleAxis.Render(b.axis()))
	sb.WriteString("\n")
	sb.WriteString(b.Legend(day.Segments))
	return sb.String()
}

// Bar renders the segments into exactly width cells. A segment covers the cells between its
// rounded start and end columns; where segments overlap the later one wins.
func (b *BarRenderer) Bar(segments []Segment) string {
	cells := make([]category.Label, b.width)
	for i := range cells {
		cells[i] = b.registry.Uncovered()
	}
	for _, s := range segments {
		from, to := b.column(s.Start), b.column(s.End)
		for c := from; c < to; c++ {
			cells[c] = s.Category
		}
	}

	var sb strings.Builder
	for start := 0; start < len(cells); {
		end := start
		for end < len(cells) && cells[end] == cells[start] {
			end++
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(b.registry.ColorOf(cells[start])))
		sb.WriteString(style.Render(strings.Repeat(barBlock, end-start)))
		start = end
	}
	return sb.String()
}

// Legend lists each category present in segments once, in order of first appearance, with its total hours.
func (b *BarRenderer) Legend(segments []Segment) string {
	totals := make(map[category.Label]float64)
	order := make([]category.Label, 0)
	for _, s := range segments {
		if _, seen := totals[s.Category]; !seen {
			order = append(order, s.Category)
		}
		totals[s.Category] += s.Duration()
	}

	lines := make([]string, 0, len(order))
	for _, label := range order {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(b.registry.ColorOf(label))).Render(barBlock)
		lines = append(lines, fmt.Sprintf("%s %s %.1fh", swatch, b.registry.NameOf(label), totals[label]))
	}
	return strings.Join(lines, "\n")
}

func (b *BarRenderer) column(hour float64) int {
	col := int(math.Round(hour / interval.DayEnd * float64(b.width)))
	return min(max(col, 0), b.width)
}

func (b *BarRenderer) axis() string {
	axis := []rune(strings.Repeat(" ", b.width+2))
	for _, hour := range []int{0, 6, 12, 18, 24} {
		label := fmt.Sprintf("%d", hour)
		col := b.column(float64(hour))
		if col+len(label) > len(axis) {
			col = len(axis) - len(label)
		}
		copy(axis[col:], []rune(label))
	}
	return strings.TrimRight(string(axis), " ")
}
