package highlightify

import "github.com/riverfjs/highlightify-go/internal/render"

// Terminal 终端渲染器
type Terminal = render.Terminal

// NewTerminal returns a terminal renderer with the default highlight style.
func NewTerminal() *Terminal {
	return render.NewTerminal()
}

// RenderHTML 渲染片段为 HTML，高亮使用 config.HighlightClass
func RenderHTML(segments []Segment, config *RenderConfig) string {
	if config == nil {
		config = DefaultConfig()
	}
	return render.HTML(segments, config.HighlightClass)
}

// RenderANSI 使用默认终端样式渲染片段
func RenderANSI(segments []Segment) string {
	return render.NewTerminal().Render(segments)
}
