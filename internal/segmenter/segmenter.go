// Package segmenter 将消息正文按高亮区间切分为纯文本片段和高亮片段
//
// 输入区间的单位是 UTF-16 code units。输出片段按位置顺序排列，
// 在 OverlapClamp 模式下拼接所有片段的 Text 恰好等于原文。
package segmenter

import (
	"cmp"
	"slices"

	"go.uber.org/zap"

	"github.com/riverfjs/highlightify-go/internal/types"
	"github.com/riverfjs/highlightify-go/internal/util"
)

// OverlapMode decides what happens when a span starts before the cursor.
type OverlapMode int

const (
	// OverlapClamp moves the start of an overlapping span up to the cursor,
	// so no character is emitted twice.
	OverlapClamp OverlapMode = iota
	// OverlapRaw emits every span as given, duplicating overlapped text and
	// letting the cursor move backwards. Output may not reconstruct the body.
	OverlapRaw
)

// String returns the string representation of OverlapMode.
func (m OverlapMode) String() string {
	switch m {
	case OverlapClamp:
		return "clamp"
	case OverlapRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Options controls a single Split call.
type Options struct {
	Mode   OverlapMode
	Logger *zap.Logger
}

type indexedSpan struct {
	types.Span
	index int
}

// Split 切分 body
//
// 空 body 返回 nil；没有 span 时返回覆盖全文的单个纯文本片段。
// 落在代理对中间的偏移向下取整到该字符起点。
func Split(body string, spans []types.Span, opts Options) []types.Segment {
	if body == "" {
		return nil
	}
	idx := util.NewIndex(body)
	if len(spans) == 0 {
		return []types.Segment{plain(idx, 0, idx.Len())}
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// 稳定排序：start 相同时保持输入顺序
	sorted := make([]indexedSpan, len(spans))
	for i, s := range spans {
		sorted[i] = indexedSpan{Span: s, index: i}
	}
	slices.SortStableFunc(sorted, func(a, b indexedSpan) int {
		return cmp.Compare(a.Start, b.Start)
	})

	total := idx.Len()
	segments := make([]types.Segment, 0, 2*len(sorted)+1)
	cursor := 0

	for _, s := range sorted {
		// 对齐到字符边界，Start/End 与 Text 保持一致
		start, end := idx.Snap(s.Start), idx.Snap(s.End)
		if start != s.Start || end != s.End {
			log.Debug("span clamped to body",
				zap.Int("span", s.index),
				zap.Int("start", s.Start),
				zap.Int("end", s.End),
				zap.Int("length", total))
		}
		if end < start {
			end = start
		}

		if opts.Mode == OverlapRaw {
			if start > cursor {
				segments = append(segments, plain(idx, cursor, start))
			}
			segments = append(segments, highlight(idx, start, end, s))
			cursor = end
			continue
		}

		if start < cursor {
			log.Debug("overlapping span clamped to cursor",
				zap.Int("span", s.index),
				zap.Int("start", start),
				zap.Int("cursor", cursor))
			start = cursor
		}
		if end <= start {
			continue
		}
		if start > cursor {
			segments = append(segments, plain(idx, cursor, start))
		}
		segments = append(segments, highlight(idx, start, end, s))
		cursor = end
	}

	if cursor < total {
		segments = append(segments, plain(idx, cursor, total))
	}
	return segments
}

func plain(idx *util.Index, start, end int) types.Segment {
	return types.Segment{
		Kind:      types.SegmentPlain,
		Start:     start,
		End:       end,
		Text:      idx.Slice(start, end),
		SpanIndex: -1,
	}
}

func highlight(idx *util.Index, start, end int, s indexedSpan) types.Segment {
	return types.Segment{
		Kind:       types.SegmentHighlight,
		Start:      start,
		End:        end,
		Text:       idx.Slice(start, end),
		Label:      s.Label,
		CitationID: s.CitationID,
		SpanIndex:  s.index,
	}
}

// Join concatenates the text of segments in order.
func Join(segments []types.Segment) string {
	n := 0
	for _, s := range segments {
		n += len(s.Text)
	}
	out := make([]byte, 0, n)
	for _, s := range segments {
		out = append(out, s.Text...)
	}
	return string(out)
}
