package util

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16 code units
// (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += runeUnits(r)
	}
	return count
}

func runeUnits(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// Index maps UTF-16 offsets of a string to byte offsets.
//
// The table is built once per string; lookups are O(1).
type Index struct {
	text  string
	bytes []int // bytes[u] = 字节位置，u 为 UTF-16 偏移
}

// NewIndex builds the offset table for text.
func NewIndex(text string) *Index {
	bytes := make([]int, 0, len(text)+1)
	for i, r := range text {
		bytes = append(bytes, i)
		if runeUnits(r) == 2 {
			// 落在代理对中间的偏移向下取整到该字符起点
			bytes = append(bytes, i)
		}
	}
	bytes = append(bytes, len(text))
	return &Index{text: text, bytes: bytes}
}

// Len returns the total UTF-16 length.
func (x *Index) Len() int {
	return len(x.bytes) - 1
}

// Clamp limits a UTF-16 offset to [0, Len()].
func (x *Index) Clamp(u int) int {
	if u < 0 {
		return 0
	}
	if n := x.Len(); u > n {
		return n
	}
	return u
}

// Snap clamps u and moves an offset that falls inside a surrogate pair
// down to the start of that rune.
func (x *Index) Snap(u int) int {
	u = x.Clamp(u)
	if u > 0 && x.bytes[u] == x.bytes[u-1] {
		return u - 1
	}
	return u
}

// ByteOffset returns the byte position for UTF-16 offset u, clamped to the text.
func (x *Index) ByteOffset(u int) int {
	return x.bytes[x.Clamp(u)]
}

// Slice returns the substring covering the UTF-16 range [start, end).
func (x *Index) Slice(start, end int) string {
	b0, b1 := x.ByteOffset(start), x.ByteOffset(end)
	if b1 <= b0 {
		return ""
	}
	return x.text[b0:b1]
}

// UTF16Offset returns the UTF-16 offset of byte position b.
// b is expected to sit on a rune boundary.
func UTF16Offset(text string, b int) int {
	if b > len(text) {
		b = len(text)
	}
	return UTF16Len(text[:b])
}
