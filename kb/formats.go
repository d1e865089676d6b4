package kb

import (
	"path/filepath"
	"strings"
)

// FormatGroup 上传对话框中的格式分组
type FormatGroup string

const (
	FormatDocument FormatGroup = "document"
	FormatCode     FormatGroup = "code"
	FormatData     FormatGroup = "data"
)

// SupportedFormats maps lower-case file extensions to their group.
var SupportedFormats = map[string]FormatGroup{
	"pdf": FormatDocument, "docx": FormatDocument, "doc": FormatDocument,
	"pptx": FormatDocument, "xlsx": FormatDocument, "txt": FormatDocument,
	"md": FormatDocument, "rtf": FormatDocument, "odt": FormatDocument,
	"epub": FormatDocument, "html": FormatDocument, "htm": FormatDocument,
	"tex": FormatDocument,

	"py": FormatCode, "java": FormatCode, "js": FormatCode, "ts": FormatCode,
	"cpp": FormatCode, "c": FormatCode, "go": FormatCode, "rb": FormatCode,
	"php": FormatCode, "swift": FormatCode, "sql": FormatCode, "css": FormatCode,
	"scss": FormatCode, "less": FormatCode, "sh": FormatCode, "bat": FormatCode,

	"json": FormatData, "xml": FormatData, "yaml": FormatData, "yml": FormatData,
	"csv": FormatData, "log": FormatData, "conf": FormatData, "ini": FormatData,
	"properties": FormatData,
}

// GetExt returns the lower-case extension of name without the dot.
func GetExt(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// Classify returns the format group for a file name.
func Classify(name string) (FormatGroup, bool) {
	g, ok := SupportedFormats[GetExt(name)]
	return g, ok
}

// Supported reports whether a file can be uploaded.
func Supported(name string) bool {
	_, ok := Classify(name)
	return ok
}
