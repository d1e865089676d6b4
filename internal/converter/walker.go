package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/highlightify-go/internal/buffer"
)

// EventWalker 遍历 goldmark AST 并生成 (text, spans)
type EventWalker struct {
	buf    *buffer.TextBuffer
	source []byte
	config *RenderConfig

	scopes    []SpanScope
	spans     []Span
	footnotes []footnoteRef
	refs      map[int]string // footnote index -> ref label

	// Block-level state
	blockCount int
	listStack  []*int // nil=unordered, *int=ordered(next_number)
	itemIndent string

	// Table state
	tableRows   [][]string
	currentRow  []string
	cellParts   []string
	inTableCell bool
}

// NewEventWalker 创建新的 EventWalker
func NewEventWalker(source []byte, config *RenderConfig) *EventWalker {
	return &EventWalker{
		buf:    buffer.New(),
		source: source,
		config: config,
		spans:  make([]Span, 0),
		refs:   make(map[int]string),
	}
}

// Walk 遍历 AST 节点
func (w *EventWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Document:
		if !entering {
			w.onEndDocument()
		}

	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n.Segment, n.SoftLineBreak(), n.HardLineBreak())
		}

	case *ast.String:
		if entering {
			w.write(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.write(extractCodeSpanText(n, w.source))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		if n.Level == 2 && w.config.HighlightStrong {
			if entering {
				w.pushScope("strong")
			} else {
				w.popScope("strong")
			}
		}

	case *ast.AutoLink:
		if entering {
			w.write(string(n.URL(w.source)))
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML:
		if entering {
			w.onInlineHTML(n)
		}

	case *east.FootnoteLink:
		if entering {
			w.onFootnoteLink(n)
		}

	case *east.FootnoteList:
		if entering {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if fn, ok := c.(*east.Footnote); ok {
					w.refs[fn.Index] = string(fn.Ref)
				}
			}
		}
		return ast.WalkSkipChildren, nil

	// --- Block elements ---
	case *ast.Paragraph:
		if entering {
			if len(w.listStack) == 0 {
				w.ensureBlockSpacing()
			}
		} else {
			w.onEndParagraph()
		}

	case *ast.Heading:
		if entering {
			w.ensureBlockSpacing()
		} else {
			w.blockCount++
		}

	case *ast.Blockquote:
		if entering {
			w.ensureBlockSpacing()
		} else {
			w.blockCount++
		}

	case *ast.List:
		if entering {
			w.onStartList(n)
		} else {
			w.onEndList()
		}

	case *ast.ListItem:
		if entering {
			w.onStartItem()
		} else if w.buf.TrailingNewlineCount() == 0 {
			w.buf.Write("\n")
		}

	case *east.TaskCheckBox:
		if entering {
			w.onTaskCheckBox(n.IsChecked)
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.ensureBlockSpacing()
			w.buf.Write("————————")
			w.blockCount++
		}

	case *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil

	// --- Table ---
	case *east.Table:
		if entering {
			w.ensureBlockSpacing()
			w.tableRows = make([][]string, 0)
		} else {
			w.buf.Write(formatTable(w.tableRows))
			w.tableRows = nil
			w.blockCount++
		}

	case *east.TableHeader, *east.TableRow:
		if entering {
			w.currentRow = make([]string, 0)
		} else {
			w.tableRows = append(w.tableRows, w.currentRow)
			w.currentRow = nil
		}

	case *east.TableCell:
		if entering {
			w.cellParts = make([]string, 0)
			w.inTableCell = true
		} else {
			w.currentRow = append(w.currentRow, strings.Join(w.cellParts, ""))
			w.cellParts = nil
			w.inTableCell = false
		}
	}

	return ast.WalkContinue, nil
}

// Result 返回转换结果
func (w *EventWalker) Result() (string, []Span) {
	return w.buf.String(), w.spans
}

// --- Text handling ---

func (w *EventWalker) write(s string) {
	if w.inTableCell {
		w.cellParts = append(w.cellParts, s)
		return
	}
	w.buf.Write(s)
}

func (w *EventWalker) onText(seg text.Segment, softBreak bool, hardBreak bool) {
	content := string(seg.Value(w.source))
	if w.inTableCell {
		if softBreak {
			content += " "
		}
		w.cellParts = append(w.cellParts, content)
		return
	}
	if softBreak || hardBreak {
		content += "\n"
	}
	w.buf.Write(content)
}

func (w *EventWalker) onInlineHTML(n *ast.RawHTML) {
	tag := strings.TrimSpace(strings.ToLower(string(n.Segments.Value(w.source))))
	switch tag {
	case "<mark>":
		if w.config.HighlightMark {
			w.pushScope("mark")
		}
	case "</mark>":
		if w.config.HighlightMark {
			w.popScope("mark")
		}
	}
	// Other inline HTML is ignored
}

func (w *EventWalker) onFootnoteLink(n *east.FootnoteLink) {
	if len(w.spans) == 0 {
		return
	}
	last := len(w.spans) - 1
	if w.spans[last].End != w.buf.UTF16Offset() {
		return
	}
	w.footnotes = append(w.footnotes, footnoteRef{span: last, index: n.Index})
}

func (w *EventWalker) onEndDocument() {
	w.buf.TrimTrailingNewlines()
	for _, fr := range w.footnotes {
		ref, ok := w.refs[fr.index]
		if !ok {
			ref = strconv.Itoa(fr.index)
		}
		w.spans[fr.span].CitationID = ref
	}
}

func (w *EventWalker) onEndParagraph() {
	if len(w.listStack) == 0 {
		w.blockCount++
	} else if w.buf.TrailingNewlineCount() == 0 {
		// loose list 中段落结束时写入换行，避免多段落粘连
		w.buf.Write("\n")
	}
}

// --- Code block ---

func (w *EventWalker) onCodeBlock(n ast.Node) {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(w.source))
	}
	code := strings.TrimSuffix(sb.String(), "\n")

	w.ensureBlockSpacing()
	w.buf.Write(code)
	w.blockCount++
}

// --- Lists ---

func (w *EventWalker) onStartList(n *ast.List) {
	if len(w.listStack) == 0 {
		w.ensureBlockSpacing()
	}
	if n.IsOrdered() {
		start := n.Start
		w.listStack = append(w.listStack, &start)
	} else {
		w.listStack = append(w.listStack, nil)
	}
}

func (w *EventWalker) onStartItem() {
	depth := len(w.listStack)
	indent := strings.Repeat("  ", depth-1)

	// 嵌套列表：父项文本后没有换行时，插入换行确保子项独占一行
	if w.buf.ByteOffset() > 0 && w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}
	w.itemIndent = indent

	current := w.listStack[depth-1]
	if current != nil {
		w.buf.Write(fmt.Sprintf("%s%d. ", indent, *current))
		*current++
	} else {
		w.buf.Write(fmt.Sprintf("%s%s ", indent, w.config.ListBullet))
	}
}

// onTaskCheckBox 用任务标记替换刚写入的 bullet
func (w *EventWalker) onTaskCheckBox(checked bool) {
	w.buf.PopLast()
	mark := "[ ]"
	if checked {
		mark = "[x]"
	}
	w.buf.Write(fmt.Sprintf("%s%s ", w.itemIndent, mark))
}

func (w *EventWalker) onEndList() {
	if len(w.listStack) > 0 {
		w.listStack = w.listStack[:len(w.listStack)-1]
	}
	if len(w.listStack) == 0 {
		w.blockCount++
	}
}

// --- Span helpers ---

func (w *EventWalker) pushScope(kind string) {
	if w.inTableCell {
		return
	}
	w.scopes = append(w.scopes, SpanScope{
		Kind:        kind,
		StartOffset: w.buf.UTF16Offset(),
		StartByte:   w.buf.ByteOffset(),
	})
}

func (w *EventWalker) popScope(kind string) {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if w.scopes[i].Kind == kind {
			scope := w.scopes[i]
			w.scopes = append(w.scopes[:i], w.scopes[i+1:]...)
			w.finalizeSpan(scope)
			return
		}
	}
}

func (w *EventWalker) finalizeSpan(scope SpanScope) {
	end := w.buf.UTF16Offset()
	if end <= scope.StartOffset {
		return
	}
	label := w.buf.String()[scope.StartByte:]
	w.spans = append(w.spans, Span{
		Label: label,
		Start: scope.StartOffset,
		End:   end,
	})
}

func (w *EventWalker) ensureBlockSpacing() {
	// Ensure a blank line (\n\n) between blocks, avoiding excess newlines
	if w.blockCount > 0 {
		if needed := 2 - w.buf.TrailingNewlineCount(); needed > 0 {
			w.buf.Write(strings.Repeat("\n", needed))
		}
	}
}

// --- Utilities ---

func formatTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	lines := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		lines = append(lines, strings.Join(row, " | "))
		if i == 0 && len(rows) > 1 {
			lines = append(lines, strings.Repeat("-", 3))
		}
	}
	return strings.Join(lines, "\n")
}

func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			_, _ = buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
