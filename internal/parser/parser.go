package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/highlightify-go/internal/converter"
	"github.com/riverfjs/highlightify-go/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,      // tables, strikethrough, tasklists
		extension.Footnote, // [^ref] 用于关联引用
	),
}

// Parse 解析 Markdown 并遍历 AST 生成 (text, spans)
func Parse(markdown string, config *converter.RenderConfig) (string, []converter.Span) {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	source := []byte(markdown)
	node := ParseAST(source)

	walker := converter.NewEventWalker(source, config)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})
	return walker.Result()
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}
