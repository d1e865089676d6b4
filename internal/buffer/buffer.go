package buffer

import (
	"strings"

	"github.com/riverfjs/highlightify-go/internal/util"
)

// TextBuffer accumulates plain text and tracks the current UTF-16 offset.
type TextBuffer struct {
	sb          strings.Builder
	last        int // 最后一次 Write 的字节长度
	utf16Offset int
	lastUTF16   int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	tb.sb.WriteString(text)
	tb.last = len(text)
	tb.lastUTF16 = util.UTF16Len(text)
	tb.utf16Offset += tb.lastUTF16
}

// UTF16Offset returns the current UTF-16 offset.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.utf16Offset
}

// ByteOffset returns the current byte offset.
func (tb *TextBuffer) ByteOffset() int {
	return tb.sb.Len()
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	s := tb.sb.String()
	count := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\n'; i-- {
		count++
	}
	return count
}

// TrimTrailingNewlines drops trailing newlines, used when closing the document.
func (tb *TextBuffer) TrimTrailingNewlines() {
	n := tb.TrailingNewlineCount()
	if n == 0 {
		return
	}
	s := tb.sb.String()
	tb.sb.Reset()
	tb.sb.WriteString(s[:len(s)-n])
	tb.utf16Offset -= n
	tb.last, tb.lastUTF16 = 0, 0
}

// PopLast removes the last written part and returns it.
// Only one level of undo is kept; a second call returns "".
func (tb *TextBuffer) PopLast() string {
	if tb.last == 0 {
		return ""
	}
	s := tb.sb.String()
	cut := len(s) - tb.last
	popped := s[cut:]
	tb.sb.Reset()
	tb.sb.WriteString(s[:cut])
	tb.utf16Offset -= tb.lastUTF16
	tb.last, tb.lastUTF16 = 0, 0
	return popped
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.sb.String()
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.sb.Reset()
	tb.utf16Offset = 0
	tb.last, tb.lastUTF16 = 0, 0
}
