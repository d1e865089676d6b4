package kb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hl "github.com/riverfjs/highlightify-go"
)

func TestDefaultSeed(t *testing.T) {
	k, err := DefaultSeed()
	require.NoError(t, err)

	assert.Equal(t, Stats{Documents: 8, Conversations: 3}, k.Stats())
	assert.Equal(t, 4, k.Citations.Len())
	assert.Len(t, k.Evaluation.Cases(), 8)
	assert.Equal(t, 0.7, k.Settings.Temperature)
	assert.Len(t, k.Settings.Templates, 2)

	doc, err := k.Documents.Get("5")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, doc.Status)
	assert.Equal(t, 2025, doc.UploadedAt.Year())
}

func TestDefaultSeed_AssistantHighlights(t *testing.T) {
	k, err := DefaultSeed()
	require.NoError(t, err)

	conv, err := k.Conversation("1")
	require.NoError(t, err)
	msgs := conv.Messages()
	require.Len(t, msgs, 2)

	answer := msgs[1]
	assert.Equal(t, hl.RoleAssistant, answer.Role)
	assert.NotContains(t, answer.Body, "**")
	assert.NotContains(t, answer.Body, "[^")

	require.Len(t, answer.Spans, 4)
	labels := []string{"文档处理模块", "向量数据库", "检索模块", "生成模块"}
	for i, s := range answer.Spans {
		assert.Equal(t, labels[i], s.Label)
		assert.Equal(t, labels[i], hl.SpanText(answer.Body, s))
		assert.Equal(t, string(rune('1'+i)), s.CitationID)
	}

	segs := hl.Highlight(answer)
	assert.Equal(t, answer.Body, hl.Join(segs))
	for _, seg := range segs {
		if !seg.IsHighlight() {
			continue
		}
		cites := k.Citations.Resolve(seg)
		require.Len(t, cites, 1)
		assert.True(t, strings.HasPrefix(cites[0].Content, seg.Label))
	}
}

func TestLoadSeed_Errors(t *testing.T) {
	_, err := LoadSeed(strings.NewReader("not = [valid"))
	assert.Error(t, err)

	_, err = LoadSeed(strings.NewReader("[settings]\ntemperature = 3.0\n"))
	assert.ErrorIs(t, err, ErrInvalidSetting)

	_, err = LoadSeed(strings.NewReader("[[documents]]\nname = \"a.exe\"\n"))
	assert.Error(t, err)

	bad := "[[conversations]]\nid = \"1\"\n[[conversations.messages]]\nid = \"1\"\nrole = \"user\"\nbody = \"x\"\nformat = \"rst\"\n"
	_, err = LoadSeed(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestLoadSeed_PlainHighlights(t *testing.T) {
	src := `
[[conversations]]
id = "c"
title = "plain"

[[conversations.messages]]
id = "m"
role = "assistant"
body = "abcdef"
highlights = [ { label = "cd", start = 2, end = 4, citation_id = "x" } ]
`
	k, err := LoadSeed(strings.NewReader(src))
	require.NoError(t, err)
	conv, err := k.Conversation("c")
	require.NoError(t, err)
	msg, err := conv.Message("m")
	require.NoError(t, err)
	require.Len(t, msg.Spans, 1)
	assert.Equal(t, hl.Span{Label: "cd", Start: 2, End: 4, CitationID: "x"}, msg.Spans[0])
	assert.Equal(t, 0.7, k.Settings.Temperature, "missing settings keep defaults")
}
