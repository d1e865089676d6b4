package highlightify

import (
	"strings"
	"unicode"

	"github.com/riverfjs/highlightify-go/internal/util"
)

// TextChunk represents a chunk of a message body with its spans.
// Offset is the UTF-16 position of the chunk in the original body.
type TextChunk struct {
	Text   string
	Spans  []Span
	Offset int
}

// clipSpans 提取与 [start, end) 重叠的 span，裁剪后平移到以 start 为原点
func clipSpans(spans []Span, start, end int) []Span {
	clipped := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.End <= start || s.Start >= end || s.End <= s.Start {
			continue
		}
		clipped = append(clipped, Span{
			Label:      s.Label,
			Start:      max(s.Start, start) - start,
			End:        min(s.End, end) - start,
			CitationID: s.CitationID,
		})
	}
	return clipped
}

// newlinePositions returns UTF-16 offsets right after each newline.
func newlinePositions(text string) []int {
	var points []int
	u := 0
	for _, r := range text {
		u += UTF16Len(string(r))
		if r == '\n' {
			points = append(points, u)
		}
	}
	return points
}

// SplitSpans splits (body, spans) into chunks not exceeding maxUTF16Len UTF-16 code units.
//
// Tries to split at newline boundaries. Spans that cross a split boundary
// are clipped into both chunks.
func SplitSpans(body string, spans []Span, maxUTF16Len int) []TextChunk {
	idx := util.NewIndex(body)
	total := idx.Len()
	if maxUTF16Len <= 0 || total <= maxUTF16Len {
		return []TextChunk{{Text: body, Spans: clipSpans(spans, 0, total)}}
	}

	splitPoints := newlinePositions(body)

	// Greedy packing over UTF-16 offsets
	var ranges [][2]int
	start := 0
	for start < total {
		budget := start + maxUTF16Len
		if total <= budget {
			ranges = append(ranges, [2]int{start, total})
			break
		}

		best := -1
		for _, sp := range splitPoints {
			if sp <= start {
				continue
			}
			if sp > budget {
				break
			}
			best = sp
		}

		if best == -1 {
			// No newline fits -- hard split, never inside a surrogate pair
			best = idx.Snap(budget)
			if best <= start {
				best = start + 2 // budget of 1 against a surrogate pair
			}
		}

		ranges = append(ranges, [2]int{start, best})
		start = best
	}

	chunks := make([]TextChunk, 0, len(ranges))
	for _, r := range ranges {
		chunks = append(chunks, TextChunk{
			Text:   idx.Slice(r[0], r[1]),
			Spans:  clipSpans(spans, r[0], r[1]),
			Offset: r[0],
		})
	}
	return chunks
}

// TrimSpace removes leading and trailing whitespace while adjusting spans.
func TrimSpace(body string, spans []Span) (string, []Span) {
	trimmed := strings.TrimSpace(body)
	if trimmed == body {
		return body, spans
	}
	lead := len(body) - len(strings.TrimLeftFunc(body, unicode.IsSpace))
	start := UTF16Len(body[:lead])
	return trimmed, clipSpans(spans, start, start+UTF16Len(trimmed))
}

// Excerpt 生成不超过 maxUTF16Len 的摘要，用于对话列表预览
//
// 截断时优先在空白处断开，并追加 config.Ellipsis（计入长度）。
// 与摘要重叠的 span 会被裁剪保留。
func Excerpt(body string, spans []Span, maxUTF16Len int, config *RenderConfig) (string, []Span) {
	if config == nil {
		config = DefaultConfig()
	}
	body, spans = TrimSpace(body, spans)
	idx := util.NewIndex(body)
	if maxUTF16Len <= 0 || idx.Len() <= maxUTF16Len {
		return body, clipSpans(spans, 0, idx.Len())
	}

	limit := maxUTF16Len - UTF16Len(config.Ellipsis)
	if limit <= 0 {
		return config.Ellipsis, nil
	}

	cut := idx.ByteOffset(limit)
	head := body[:cut]
	// 在后半段寻找空白作为断点
	if i := strings.LastIndexFunc(head, unicode.IsSpace); i > len(head)/2 {
		head = head[:i]
	}
	head = strings.TrimRightFunc(head, unicode.IsSpace)

	return head + config.Ellipsis, clipSpans(spans, 0, UTF16Len(head))
}
