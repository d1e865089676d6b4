package converter

import (
	"regexp"
	"strings"
)

var (
	// markRe 匹配 ==...== (非转义的 ==)
	markRe = regexp.MustCompile(`(^|[^\\=])==([^=\n]+?)==`)

	// codeRegionRe 匹配代码块和行内代码
	codeRegionRe = regexp.MustCompile("(```[\\s\\S]*?```|`[^`\\n]+`)")
)

// PreprocessMarks 将 ==text== 替换为 <mark>text</mark>
// 跳过代码块和行内代码中的内容
func PreprocessMarks(text string) string {
	if !strings.Contains(text, "==") {
		return text
	}
	parts := codeRegionRe.Split(text, -1)
	matches := codeRegionRe.FindAllString(text, -1)

	var result strings.Builder
	for i, part := range parts {
		result.WriteString(markRe.ReplaceAllString(part, "${1}<mark>${2}</mark>"))
		if i < len(matches) {
			result.WriteString(matches[i])
		}
	}
	return result.String()
}
