package kb

import (
	"cmp"
	"fmt"
	"slices"

	hl "github.com/riverfjs/highlightify-go"
	"github.com/riverfjs/highlightify-go/internal/store"
)

// Citations 引用记录，按 id 索引
type Citations struct {
	items *store.Ordered[string, hl.Citation]
}

// NewCitations 创建空引用表
func NewCitations() *Citations {
	return &Citations{items: store.New[string, hl.Citation]()}
}

// Add 添加或替换引用
func (c *Citations) Add(citation hl.Citation) {
	c.items.Put(citation.ID, citation)
}

// Get 按 id 查找引用
func (c *Citations) Get(id string) (hl.Citation, error) {
	return c.items.Get(id)
}

// Len 返回引用数
func (c *Citations) Len() int {
	return c.items.Len()
}

// Ranked 按相似度从高到低返回，分数相同时保持添加顺序
func (c *Citations) Ranked() []hl.Citation {
	all := c.items.Values()
	slices.SortStableFunc(all, func(a, b hl.Citation) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return all
}

// Resolve 返回点击高亮片段时要展示的引用
//
// 片段带 CitationID 且能找到时只返回该条；否则返回全部引用（按相似度排序）。
// 纯文本片段没有引用。
func (c *Citations) Resolve(seg hl.Segment) []hl.Citation {
	if !seg.IsHighlight() {
		return nil
	}
	if seg.CitationID != "" {
		if citation, err := c.items.Get(seg.CitationID); err == nil {
			return []hl.Citation{citation}
		}
	}
	return c.Ranked()
}

// FormatScore 将相似度格式化为百分比，如 0.94 -> "94.0%"
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}
