package kb

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	hl "github.com/riverfjs/highlightify-go"
	"github.com/riverfjs/highlightify-go/internal/store"
)

// DefaultPerPage 文档列表每页条数
const DefaultPerPage = 5

// Status 文档处理状态
type Status string

const (
	StatusDone   Status = "done"
	StatusFailed Status = "failed"
)

// Document 已上传文档
type Document struct {
	ID         string    `toml:"id"`
	Name       string    `toml:"name"`
	Size       uint64    `toml:"size"`
	UploadedAt time.Time `toml:"uploaded_at"`
	Status     Status    `toml:"status"`
}

// HumanSize 返回可读的文件大小，如 "2.4 MB"
func (d Document) HumanSize() string {
	return humanize.Bytes(d.Size)
}

// Documents 文档目录
type Documents struct {
	items *store.Ordered[string, Document]
}

// NewDocuments 创建空目录
func NewDocuments() *Documents {
	return &Documents{
		items: store.New[string, Document](),
	}
}

// Add 添加文档，ID 为空时自动生成；不支持的格式返回错误
func (d *Documents) Add(doc Document) (Document, error) {
	if !Supported(doc.Name) {
		return Document{}, fmt.Errorf("document %q: unsupported format %q", doc.Name, GetExt(doc.Name))
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.Status == "" {
		doc.Status = StatusDone
	}
	d.items.Put(doc.ID, doc)
	hl.Logger.Debug("document added", zap.String("id", doc.ID), zap.String("name", doc.Name))
	return doc, nil
}

// Get 按 id 查找文档
func (d *Documents) Get(id string) (Document, error) {
	return d.items.Get(id)
}

// Delete 删除文档
func (d *Documents) Delete(id string) error {
	if err := d.items.Delete(id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// Len 返回文档数
func (d *Documents) Len() int {
	return d.items.Len()
}

// All 按添加顺序返回所有文档
func (d *Documents) All() []Document {
	return d.items.Values()
}

// Search 按名称做大小写不敏感的子串匹配，空查询返回全部
func (d *Documents) Search(query string) []Document {
	// Caser 不能并发使用，每次搜索单独创建
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return d.items.Values()
	}
	return d.items.Filter(func(doc Document) bool {
		return strings.Contains(fold.String(doc.Name), q)
	})
}

// Page 一页搜索结果
type Page struct {
	Items      []Document
	Page       int
	TotalPages int
	Total      int
}

// Page 搜索并分页，page 从 1 开始，超出范围时取最近的有效页
func (d *Documents) Page(query string, page, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	matched := d.Search(query)
	items, totalPages := store.Page(matched, page, perPage)
	page = min(max(page, 1), max(totalPages, 1))
	return Page{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      len(matched),
	}
}
