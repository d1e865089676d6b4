package render

import (
	"html"
	"strings"

	"github.com/riverfjs/highlightify-go/internal/types"
)

// HTML 渲染片段为 HTML 片段
//
// 纯文本转义输出；高亮片段包裹为
// <mark class="..." data-label="..." data-citation="...">，
// 由前端在点击时根据 data-citation 打开引用面板。
func HTML(segments []types.Segment, class string) string {
	var sb strings.Builder
	for _, seg := range segments {
		if !seg.IsHighlight() {
			sb.WriteString(html.EscapeString(seg.Text))
			continue
		}
		sb.WriteString("<mark")
		if class != "" {
			writeAttr(&sb, "class", class)
		}
		writeAttr(&sb, "data-label", seg.Label)
		if seg.CitationID != "" {
			writeAttr(&sb, "data-citation", seg.CitationID)
		}
		sb.WriteString(">")
		sb.WriteString(html.EscapeString(seg.Text))
		sb.WriteString("</mark>")
	}
	return sb.String()
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteString(`"`)
}
