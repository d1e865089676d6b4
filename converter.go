package highlightify

import (
	"go.uber.org/zap"

	"github.com/riverfjs/highlightify-go/internal/converter"
	"github.com/riverfjs/highlightify-go/internal/parser"
)

// Convert 将 Markdown 回答转换为 (正文, 高亮区间)
//
// **加粗** 和 ==标记== 的文本成为高亮（可通过 config 关闭），
// 高亮后紧跟的脚注引用 [^ref] 会写入 span 的 CitationID。
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - string: 纯文本正文
//   - []Span: 按出现顺序排列的高亮区间（UTF-16 偏移）
func Convert(markdown string, config *RenderConfig) (string, []Span) {
	if config == nil {
		config = DefaultConfig()
	}
	preprocessed := markdown
	if config.HighlightMark {
		preprocessed = converter.PreprocessMarks(preprocessed)
	}
	body, spans := parser.Parse(preprocessed, config)
	Logger.Debug("converted markdown",
		zap.Int("source_len", len(markdown)),
		zap.Int("body_utf16", UTF16Len(body)),
		zap.Int("spans", len(spans)))
	return body, spans
}

// ConvertMessage 将 Markdown 转换为指定角色的消息
func ConvertMessage(id string, role Role, markdown string, config *RenderConfig) Message {
	body, spans := Convert(markdown, config)
	return Message{ID: id, Role: role, Body: body, Spans: spans}
}
