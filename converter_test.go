package highlightify

import (
	"testing"
)

// findSpan 查找指定 label 的第一个 span
func findSpan(spans []Span, label string) *Span {
	for i := range spans {
		if spans[i].Label == label {
			return &spans[i]
		}
	}
	return nil
}

// TestConvert_Strong 测试加粗转为高亮
func TestConvert_Strong(t *testing.T) {
	body, spans := Convert("Answer: **alpha** and **beta**.", nil)
	if body != "Answer: alpha and beta." {
		t.Errorf("Convert() body = %q", body)
	}
	want := []Span{
		{Label: "alpha", Start: 8, End: 13},
		{Label: "beta", Start: 18, End: 22},
	}
	if len(spans) != len(want) {
		t.Fatalf("Convert() returned %d spans, want %d: %+v", len(spans), len(want), spans)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, spans[i], want[i])
		}
	}
}

// TestConvert_OrderedList 测试原型回答中的编号列表
func TestConvert_OrderedList(t *testing.T) {
	md := "1. **文档处理模块**：负责解析\n2. **向量数据库**：存储向量"
	body, spans := Convert(md, nil)
	if body != "1. 文档处理模块：负责解析\n2. 向量数据库：存储向量" {
		t.Errorf("Convert() body = %q", body)
	}
	s := findSpan(spans, "文档处理模块")
	if s == nil || s.Start != 3 || s.End != 9 {
		t.Errorf("文档处理模块 span = %+v, want [3,9)", s)
	}
	s = findSpan(spans, "向量数据库")
	if s == nil || s.Start != 18 || s.End != 23 {
		t.Errorf("向量数据库 span = %+v, want [18,23)", s)
	}
}

// TestConvert_Mark 测试 ==mark== 语法
func TestConvert_Mark(t *testing.T) {
	body, spans := Convert("Use ==Milvus== today", nil)
	if body != "Use Milvus today" {
		t.Errorf("Convert() body = %q", body)
	}
	if len(spans) != 1 || spans[0] != (Span{Label: "Milvus", Start: 4, End: 10}) {
		t.Errorf("Convert() spans = %+v", spans)
	}
}

// TestConvert_MarkInCode 代码中的 == 不处理
func TestConvert_MarkInCode(t *testing.T) {
	body, spans := Convert("`==x==` and ==y==", nil)
	if body != "==x== and y" {
		t.Errorf("Convert() body = %q", body)
	}
	if len(spans) != 1 || spans[0].Label != "y" || spans[0].Start != 10 {
		t.Errorf("Convert() spans = %+v", spans)
	}
}

// TestConvert_FootnoteCitation 脚注引用写入 CitationID
func TestConvert_FootnoteCitation(t *testing.T) {
	md := "See **Milvus**[^db] here.\n\n[^db]: Milvus docs"
	body, spans := Convert(md, nil)
	if body != "See Milvus here." {
		t.Errorf("Convert() body = %q", body)
	}
	s := findSpan(spans, "Milvus")
	if s == nil {
		t.Fatal("Convert() should have Milvus span")
	}
	if s.CitationID != "db" {
		t.Errorf("CitationID = %q, want db", s.CitationID)
	}
}

// TestConvert_Heading 测试标题与段落间距
func TestConvert_Heading(t *testing.T) {
	body, spans := Convert("# Title\n\nBody **x**", nil)
	if body != "Title\n\nBody x" {
		t.Errorf("Convert() body = %q", body)
	}
	if len(spans) != 1 || spans[0].Start != 12 || spans[0].End != 13 {
		t.Errorf("Convert() spans = %+v", spans)
	}
}

// TestConvert_DisableStrong 关闭加粗高亮
func TestConvert_DisableStrong(t *testing.T) {
	config := *DefaultConfig()
	config.HighlightStrong = false
	body, spans := Convert("**a** ==b==", &config)
	if body != "a b" {
		t.Errorf("Convert() body = %q", body)
	}
	if len(spans) != 1 || spans[0].Label != "b" {
		t.Errorf("Convert() spans = %+v, want only the mark span", spans)
	}
}

// TestConvert_RoundTrip 转换结果切分后可还原
func TestConvert_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text only",
		"**a** **b** ==c==\n\n- item **one**\n- item two",
		"> quote with **bold**\n\n```go\nfmt.Println(\"**not bold**\")\n```",
		"| h1 | h2 |\n|----|----|\n| **x** | y |",
	}
	for _, md := range inputs {
		body, spans := Convert(md, nil)
		msg := ConvertMessage("m", RoleAssistant, md, nil)
		if msg.Body != body || len(msg.Spans) != len(spans) {
			t.Errorf("ConvertMessage(%q) differs from Convert()", md)
		}
		if got := Join(Split(body, spans)); got != body {
			t.Errorf("Join(Split(Convert(%q))) = %q, want %q", md, got, body)
		}
		for _, s := range spans {
			if SpanText(body, s) != s.Label {
				t.Errorf("span %+v label does not match body text %q", s, SpanText(body, s))
			}
		}
	}
}
