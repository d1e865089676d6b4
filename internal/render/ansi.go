package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riverfjs/highlightify-go/internal/types"
)

// Terminal renders segments for a terminal using lipgloss styles.
type Terminal struct {
	Highlight lipgloss.Style
	Marker    lipgloss.Style
	// ShowCitations 在带引用的高亮后追加 [id]
	ShowCitations bool
}

// NewTerminal returns a Terminal with the default highlight style.
func NewTerminal() *Terminal {
	return &Terminal{
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E40AF")).
			Background(lipgloss.Color("#DBEAFE")).
			Bold(true),
		Marker: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2563EB")).
			Faint(true),
		ShowCitations: true,
	}
}

// Render writes plain segments as-is and styles highlighted ones.
func (t *Terminal) Render(segments []types.Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		if !seg.IsHighlight() {
			sb.WriteString(seg.Text)
			continue
		}
		sb.WriteString(t.Highlight.Render(seg.Text))
		if t.ShowCitations && seg.CitationID != "" {
			sb.WriteString(t.Marker.Render(fmt.Sprintf("[%s]", seg.CitationID)))
		}
	}
	return sb.String()
}
