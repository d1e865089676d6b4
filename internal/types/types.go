package types

// Role 消息角色
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Span 表示消息正文中的一个高亮区间
//
// Start/End 是半开区间 [Start, End)，单位为 UTF-16 code units，与正文一致。
type Span struct {
	Label      string `json:"label" toml:"label"`
	Start      int    `json:"start" toml:"start"`
	End        int    `json:"end" toml:"end"`
	CitationID string `json:"citation_id,omitempty" toml:"citation_id"`
}

// SegmentKind distinguishes plain runs from highlighted runs.
type SegmentKind int

const (
	SegmentPlain SegmentKind = iota
	SegmentHighlight
)

// String returns the string representation of SegmentKind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentPlain:
		return "plain"
	case SegmentHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// Segment 是渲染用的一段连续文本，不会被持久化
//
// Start/End 是归一化后的 UTF-16 偏移，不一定等于原始 span 的偏移：
// 它们被限制在正文范围内并总是落在字符边界上，body[Start:End] 恰好是 Text。
type Segment struct {
	Kind  SegmentKind
	Start int // UTF-16 起始位置，字符对齐
	End   int // UTF-16 结束位置，字符对齐
	Text  string

	// 以下字段仅对高亮片段有效
	Label      string
	CitationID string
	SpanIndex  int // span 在输入中的原始下标，纯文本片段为 -1
}

// IsHighlight reports whether the segment is a highlighted run.
func (s Segment) IsHighlight() bool {
	return s.Kind == SegmentHighlight
}

// Message 一条对话消息，创建后不可修改
type Message struct {
	ID    string `json:"id" toml:"id"`
	Role  Role   `json:"role" toml:"role"`
	Body  string `json:"body" toml:"body"`
	Spans []Span `json:"highlights,omitempty" toml:"highlights"`
}

// Citation 引用记录：来源文档、命中内容、相似度
type Citation struct {
	ID      string  `json:"id" toml:"id"`
	Score   float64 `json:"score" toml:"score"`
	Source  string  `json:"source" toml:"source"`
	Content string  `json:"content" toml:"content"`
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// HighlightStrong 将 **strong** 视为高亮
	HighlightStrong bool
	// HighlightMark 将 ==mark== 视为高亮
	HighlightMark bool
	// ListBullet 无序列表前缀
	ListBullet string
	// Ellipsis 摘要被截断时追加的后缀
	Ellipsis string
	// HighlightClass HTML 渲染时 <mark> 的 class
	HighlightClass string
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		HighlightStrong: true,
		HighlightMark:   true,
		ListBullet:      "•",
		Ellipsis:        "...",
		HighlightClass:  "hl",
	}
}
