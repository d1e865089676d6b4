package kb

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	hl "github.com/riverfjs/highlightify-go"
	"github.com/riverfjs/highlightify-go/internal/store"
)

// DefaultPreviewLength 对话列表中最后一条消息的预览长度（UTF-16）
const DefaultPreviewLength = 40

// Conversation 一个对话及其有序消息
type Conversation struct {
	ID       string
	Title    string
	messages *store.Ordered[string, hl.Message]
}

// NewConversation 创建空对话
func NewConversation(title string) *Conversation {
	return newConversation(uuid.NewString(), title)
}

func newConversation(id, title string) *Conversation {
	return &Conversation{
		ID:       id,
		Title:    title,
		messages: store.New[string, hl.Message](),
	}
}

// Append 追加一条消息，spans 会被复制，调用方之后的修改不影响消息
func (c *Conversation) Append(role hl.Role, body string, spans []hl.Span) (hl.Message, error) {
	return c.appendWithID(uuid.NewString(), role, body, spans)
}

func (c *Conversation) appendWithID(id string, role hl.Role, body string, spans []hl.Span) (hl.Message, error) {
	if strings.TrimSpace(body) == "" {
		return hl.Message{}, fmt.Errorf("conversation %s: %w", c.ID, ErrEmptyMessage)
	}
	msg := hl.Message{
		ID:    id,
		Role:  role,
		Body:  body,
		Spans: slices.Clone(spans),
	}
	c.messages.Put(msg.ID, msg)
	hl.Logger.Debug("message appended",
		zap.String("conversation", c.ID),
		zap.String("message", msg.ID),
		zap.String("role", string(role)),
		zap.Int("spans", len(spans)))
	return cloneMessage(msg), nil
}

// cloneMessage 复制 spans，调用方拿到的消息与存储的记录不共享底层数组
func cloneMessage(m hl.Message) hl.Message {
	m.Spans = slices.Clone(m.Spans)
	return m
}

// AppendMarkdown 将 Markdown 回答转换后追加
func (c *Conversation) AppendMarkdown(role hl.Role, markdown string, config *hl.RenderConfig) (hl.Message, error) {
	body, spans := hl.Convert(markdown, config)
	return c.Append(role, body, spans)
}

// Message 按 id 查找消息
func (c *Conversation) Message(id string) (hl.Message, error) {
	m, err := c.messages.Get(id)
	if err != nil {
		return hl.Message{}, err
	}
	return cloneMessage(m), nil
}

// Messages 按时间顺序返回所有消息
func (c *Conversation) Messages() []hl.Message {
	msgs := c.messages.Values()
	for i := range msgs {
		msgs[i] = cloneMessage(msgs[i])
	}
	return msgs
}

// Len 返回消息数
func (c *Conversation) Len() int {
	return c.messages.Len()
}

// LastMessage 返回最后一条消息
func (c *Conversation) LastMessage() (hl.Message, bool) {
	msgs := c.messages.Values()
	if len(msgs) == 0 {
		return hl.Message{}, false
	}
	return cloneMessage(msgs[len(msgs)-1]), true
}

// Preview 返回最后一条消息的单行摘要
func (c *Conversation) Preview(maxUTF16Len int) string {
	last, ok := c.LastMessage()
	if !ok {
		return ""
	}
	body := strings.Join(strings.Fields(last.Body), " ")
	text, _ := hl.Excerpt(body, nil, maxUTF16Len, nil)
	return text
}

// Render 按消息切分，只有 assistant 消息带高亮
func (c *Conversation) Render(opts ...hl.Option) [][]hl.Segment {
	msgs := c.messages.Values()
	out := make([][]hl.Segment, len(msgs))
	for i, m := range msgs {
		out[i] = hl.Highlight(m, opts...)
	}
	return out
}
