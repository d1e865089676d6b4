package converter

import "github.com/riverfjs/highlightify-go/internal/types"

// 类型别名，便于 parser 包引用
type (
	Span         = types.Span
	RenderConfig = types.RenderConfig
)

// SpanScope 用于跟踪未闭合的高亮区间
type SpanScope struct {
	Kind        string // "strong" or "mark"
	StartOffset int    // UTF-16
	StartByte   int
}

// footnoteRef 记录紧跟在高亮后的脚注引用
type footnoteRef struct {
	span  int
	index int
}
