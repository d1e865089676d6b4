package highlightify

import "github.com/riverfjs/highlightify-go/internal/util"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Span offsets are measured in UTF-16 code units, not Go string bytes or runes,
// so that they line up with offsets produced by browser front-ends.
// Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16 code units
// (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// CountText 计算文本的有效长度（UTF-16 code units）
//
// 高亮和摘要的长度限制都按这个单位计算。
func CountText(text string) int {
	return UTF16Len(text)
}

// SpanText returns the substring of body covered by span, after clamping
// the span to the body.
func SpanText(body string, span Span) string {
	return util.NewIndex(body).Slice(span.Start, span.End)
}
