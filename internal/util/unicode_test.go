package util

import "testing"

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"你好", 2},
		{"A📌B", 4},
		{"🇺🇸", 4},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.text); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestIndex_ByteOffset(t *testing.T) {
	x := NewIndex("A📌B")
	// A=1 byte, 📌=4 bytes (2 units), B=1 byte
	tests := []struct {
		u    int
		want int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{2, 1}, // 代理对中间，向下取整
		{3, 5},
		{4, 6},
		{99, 6},
	}
	for _, tt := range tests {
		if got := x.ByteOffset(tt.u); got != tt.want {
			t.Errorf("ByteOffset(%d) = %d, want %d", tt.u, got, tt.want)
		}
	}
	if x.Len() != 4 {
		t.Errorf("Len() = %d, want 4", x.Len())
	}
}

func TestIndex_Snap(t *testing.T) {
	x := NewIndex("📌ab📌")
	tests := []struct {
		u    int
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 0}, // 代理对中间
		{2, 2},
		{4, 4},
		{5, 4},
		{6, 6},
		{9, 6},
	}
	for _, tt := range tests {
		if got := x.Snap(tt.u); got != tt.want {
			t.Errorf("Snap(%d) = %d, want %d", tt.u, got, tt.want)
		}
	}
}

func TestIndex_Slice(t *testing.T) {
	x := NewIndex("文档处理模块")
	if got := x.Slice(2, 4); got != "处理" {
		t.Errorf("Slice(2, 4) = %q, want 处理", got)
	}
	if got := x.Slice(4, 2); got != "" {
		t.Errorf("Slice(4, 2) = %q, want empty", got)
	}
}

func TestUTF16Offset(t *testing.T) {
	text := "A📌B"
	if got := UTF16Offset(text, 5); got != 3 {
		t.Errorf("UTF16Offset(5) = %d, want 3", got)
	}
	if got := UTF16Offset(text, 100); got != 4 {
		t.Errorf("UTF16Offset(100) = %d, want 4", got)
	}
}
