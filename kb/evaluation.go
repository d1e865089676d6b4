package kb

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/riverfjs/highlightify-go/internal/store"
)

// CaseStatus 评测用例状态
type CaseStatus string

const (
	CasePending CaseStatus = "pending"
	CaseSuccess CaseStatus = "success"
	CaseFailed  CaseStatus = "failed"
)

// TestCase 一条评测问题
type TestCase struct {
	ID       string     `toml:"id"`
	Question string     `toml:"question"`
	Status   CaseStatus `toml:"status"`
}

// Summary 评测统计
type Summary struct {
	Total   int
	Success int
	Failed  int
	Pending int
}

// Complete reports whether no case is pending.
func (s Summary) Complete() bool {
	return s.Total > 0 && s.Pending == 0
}

// Evaluation 评测用例集合
//
// 只记录调用方给出的结果，不做任何打分。
type Evaluation struct {
	cases *store.Ordered[string, TestCase]
}

// NewEvaluation 创建空用例集
func NewEvaluation() *Evaluation {
	return &Evaluation{cases: store.New[string, TestCase]()}
}

// Add 添加用例，状态置为 pending；ID 为空时自动生成
func (e *Evaluation) Add(tc TestCase) TestCase {
	if tc.ID == "" {
		tc.ID = uuid.NewString()
	}
	tc.Status = CasePending
	e.cases.Put(tc.ID, tc)
	return tc
}

// Cases 按添加顺序返回用例
func (e *Evaluation) Cases() []TestCase {
	return e.cases.Values()
}

// Record 记录一条用例的结果
func (e *Evaluation) Record(id string, status CaseStatus) error {
	switch status {
	case CasePending, CaseSuccess, CaseFailed:
	default:
		return fmt.Errorf("case %s: status %q: %w", id, status, ErrInvalidStatus)
	}
	return e.cases.Update(id, func(tc TestCase) TestCase {
		tc.Status = status
		return tc
	})
}

// Reset 将所有用例恢复为 pending
func (e *Evaluation) Reset() {
	for _, id := range e.cases.Keys() {
		_ = e.Record(id, CasePending)
	}
}

// Summary 统计各状态数量
func (e *Evaluation) Summary() Summary {
	var s Summary
	for _, tc := range e.cases.Values() {
		s.Total++
		switch tc.Status {
		case CaseSuccess:
			s.Success++
		case CaseFailed:
			s.Failed++
		default:
			s.Pending++
		}
	}
	return s
}
