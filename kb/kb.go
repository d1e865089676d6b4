// Package kb 知识库问答的内存数据模型
//
// 对话、文档、引用、模型参数和评测用例都保存在有序键值存储中，
// 新增和删除不依赖任何渲染框架。数据可从 TOML 种子文件加载。
package kb

import (
	"errors"

	"github.com/riverfjs/highlightify-go/internal/store"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = store.ErrNotFound
	// ErrEmptyMessage 消息正文为空
	ErrEmptyMessage = errors.New("empty message")
	// ErrInvalidSetting 参数超出范围
	ErrInvalidSetting = errors.New("invalid setting")
	// ErrInvalidStatus 未知的评测用例状态
	ErrInvalidStatus = errors.New("invalid status")
)

// KnowledgeBase 聚合所有数据
type KnowledgeBase struct {
	Conversations *store.Ordered[string, *Conversation]
	Documents     *Documents
	Citations     *Citations
	Settings      *Settings
	Evaluation    *Evaluation
}

// New 创建空知识库
func New() *KnowledgeBase {
	return &KnowledgeBase{
		Conversations: store.New[string, *Conversation](),
		Documents:     NewDocuments(),
		Citations:     NewCitations(),
		Settings:      DefaultSettings(),
		Evaluation:    NewEvaluation(),
	}
}

// StartConversation 新建对话并加入列表
func (k *KnowledgeBase) StartConversation(title string) *Conversation {
	c := NewConversation(title)
	k.Conversations.Put(c.ID, c)
	return c
}

// Conversation 按 id 查找对话
func (k *KnowledgeBase) Conversation(id string) (*Conversation, error) {
	return k.Conversations.Get(id)
}

// Stats 首页概览数据
type Stats struct {
	Documents     int
	Conversations int
}

// Stats 返回文档数和对话数
func (k *KnowledgeBase) Stats() Stats {
	return Stats{
		Documents:     k.Documents.Len(),
		Conversations: k.Conversations.Len(),
	}
}
