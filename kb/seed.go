package kb

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	hl "github.com/riverfjs/highlightify-go"
)

//go:embed seed.toml
var defaultSeed []byte

type seedMessage struct {
	ID         string    `toml:"id"`
	Role       hl.Role   `toml:"role"`
	Body       string    `toml:"body"`
	Format     string    `toml:"format"` // "" / "plain" / "markdown"
	Highlights []hl.Span `toml:"highlights"`
}

type seedConversation struct {
	ID       string        `toml:"id"`
	Title    string        `toml:"title"`
	Messages []seedMessage `toml:"messages"`
}

type seedFile struct {
	Settings      *Settings          `toml:"settings"`
	Documents     []Document         `toml:"documents"`
	Citations     []hl.Citation      `toml:"citations"`
	Conversations []seedConversation `toml:"conversations"`
	TestCases     []TestCase         `toml:"test_cases"`
}

// LoadSeed 从 TOML 读取知识库数据
//
// format = "markdown" 的消息会经过 Convert 提取高亮；
// 其他消息直接使用 highlights 字段。
func LoadSeed(r io.Reader) (*KnowledgeBase, error) {
	var f seedFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		hl.Logger.Warn("unknown keys in seed", zap.Strings("keys", keys))
	}

	k := New()
	if f.Settings != nil {
		if err := f.Settings.Validate(); err != nil {
			return nil, fmt.Errorf("seed settings: %w", err)
		}
		if len(f.Settings.Templates) == 0 {
			f.Settings.Templates = append([]PromptTemplate(nil), DefaultPromptTemplates...)
		}
		k.Settings = f.Settings
	}

	for _, doc := range f.Documents {
		if _, err := k.Documents.Add(doc); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	for _, c := range f.Citations {
		k.Citations.Add(c)
	}
	for _, sc := range f.Conversations {
		conv := newConversation(sc.ID, sc.Title)
		for _, sm := range sc.Messages {
			body, spans := sm.Body, sm.Highlights
			switch sm.Format {
			case "markdown":
				body, spans = hl.Convert(body, nil)
			case "", "plain":
			default:
				return nil, fmt.Errorf("seed conversation %s message %s: unknown format %q", sc.ID, sm.ID, sm.Format)
			}
			if _, err := conv.appendWithID(sm.ID, sm.Role, body, spans); err != nil {
				return nil, fmt.Errorf("seed: %w", err)
			}
		}
		k.Conversations.Put(conv.ID, conv)
	}
	for _, tc := range f.TestCases {
		k.Evaluation.Add(tc)
	}

	hl.Logger.Debug("seed loaded",
		zap.Int("documents", k.Documents.Len()),
		zap.Int("conversations", k.Conversations.Len()),
		zap.Int("citations", k.Citations.Len()))
	return k, nil
}

// DefaultSeed 加载内置的演示数据
func DefaultSeed() (*KnowledgeBase, error) {
	return LoadSeed(bytes.NewReader(defaultSeed))
}
