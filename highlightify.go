// Package highlightify 将知识库问答消息切分为可渲染的高亮片段
//
// 助手回答中的关键短语带有高亮区间（span），每个区间关联一条引用。
// 这个包负责把 (正文, 区间列表) 转换为按位置排序的片段序列，
// 渲染层只需顺序输出片段，并在用户点击高亮片段时展示对应引用。
//
// 核心功能：
//   - 按 UTF-16 偏移切分正文，拼接所有片段可还原原文
//   - 乱序、重叠、越界的区间按规则归一化，不返回错误
//   - 从 Markdown 回答中提取 **加粗** / ==标记== 作为高亮
//   - 生成对话列表预览摘要、按长度分页
//   - 渲染为 HTML 或终端 ANSI 文本
//
// 主要 API：
//   - Split(): 对任意正文和区间切分
//   - Highlight(): 按消息角色切分（默认只高亮 assistant 消息）
//   - Convert(): Markdown → (正文, 区间)
//
// 示例：
//
//	body, spans := highlightify.Convert(markdown, nil)
//	msg := highlightify.Message{Role: highlightify.RoleAssistant, Body: body, Spans: spans}
//	for _, seg := range highlightify.Highlight(msg) {
//	    if seg.IsHighlight() {
//	        // 可点击，seg.CitationID 指向引用
//	    }
//	}
package highlightify

import (
	"go.uber.org/zap"

	"github.com/riverfjs/highlightify-go/internal/segmenter"
	"github.com/riverfjs/highlightify-go/internal/types"
)

// 导出类型别名
type (
	Role        = types.Role
	Span        = types.Span
	Segment     = types.Segment
	SegmentKind = types.SegmentKind
	Message     = types.Message
	Citation    = types.Citation
	OverlapMode = segmenter.OverlapMode
)

const (
	RoleUser      = types.RoleUser
	RoleAssistant = types.RoleAssistant

	SegmentPlain     = types.SegmentPlain
	SegmentHighlight = types.SegmentHighlight

	OverlapClamp = segmenter.OverlapClamp
	OverlapRaw   = segmenter.OverlapRaw
)

// Split 将 body 按 spans 切分为有序片段
//
// 参数：
//   - body: 消息正文，可以为空
//   - spans: 高亮区间，顺序任意，允许越界、反向、重叠
//   - opts: 重叠处理模式等选项
//
// 返回：
//   - []Segment: 空正文返回空切片；没有 span 时返回一个覆盖全文的纯文本片段
func Split(body string, spans []Span, opts ...Option) []Segment {
	options := applyOptions(opts...)
	return segmenter.Split(body, spans, segmenter.Options{
		Mode:   options.Mode,
		Logger: Logger,
	})
}

// Highlight 按消息角色切分
//
// 只有可高亮角色（默认 assistant）的消息会应用 span，
// 其他角色总是返回一个覆盖全文的纯文本片段。
func Highlight(msg Message, opts ...Option) []Segment {
	options := applyOptions(opts...)
	if msg.Role != options.HighlightRole {
		if len(msg.Spans) > 0 {
			Logger.Debug("ignoring highlights on non-highlightable role",
				zap.String("message", msg.ID),
				zap.String("role", string(msg.Role)))
		}
		return Split(msg.Body, nil, opts...)
	}
	return Split(msg.Body, msg.Spans, opts...)
}

// Join concatenates the text of segments in order.
func Join(segments []Segment) string {
	return segmenter.Join(segments)
}
