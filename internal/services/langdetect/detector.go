// Package langdetect resolves a language label for a piece of code from an
// explicit hint, a filename extension or content heuristics, in that order.
package langdetect

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultLabel is returned when nothing else matches.
const DefaultLabel = "text"

// extensionLabels maps filename extensions to language labels.
var extensionLabels = map[string]string{
	"py":    "python",
	"js":    "javascript",
	"ts":    "typescript",
	"jsx":   "jsx",
	"tsx":   "tsx",
	"html":  "html",
	"css":   "css",
	"java":  "java",
	"cpp":   "cpp",
	"cc":    "cpp",
	"c":     "c",
	"h":     "c",
	"cs":    "csharp",
	"go":    "go",
	"rb":    "ruby",
	"php":   "php",
	"swift": "swift",
	"kt":    "kotlin",
	"rs":    "rust",
	"scala": "scala",
	"pl":    "perl",
	"sh":    "shell",
	"sql":   "sql",
	"md":    "markdown",
	"json":  "json",
	"xml":   "xml",
	"yaml":  "yaml",
	"yml":   "yaml",
	"toml":  "toml",
}

var (
	htmlTagPattern      = regexp.MustCompile(`<[a-zA-Z][a-zA-Z0-9-]*[\s>/]`)
	cssRulePattern      = regexp.MustCompile(`\{[^{}]*:[^{}]*\}`)
	reactMarkerPattern  = regexp.MustCompile(`\buseState\b|\buseEffect\b|\bReact\b|return\s*\(\s*<`)
	tsDeclarationUnique = regexp.MustCompile(`\binterface\s+[A-Za-z_]|\btype\s+[A-Za-z_]+\s*=`)
)

// Detect resolves a language label. An explicit hint wins outright, then a
// known filename extension, then content heuristics over the snippet. The
// result is always a non-empty label.
func Detect(explicit, filename, snippet string) string {
	if lang := strings.TrimSpace(explicit); lang != "" {
		return strings.ToLower(lang)
	}

	if label, ok := labelForFilename(filename); ok {
		return label
	}

	if label, ok := labelForSnippet(snippet); ok {
		return label
	}

	return DefaultLabel
}

// FromFilename resolves a label from the extension alone, for callers that
// only have a filename (project analysis summaries).
func FromFilename(filename string) string {
	if label, ok := labelForFilename(filename); ok {
		return label
	}
	return DefaultLabel
}

func labelForFilename(filename string) (string, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "", false
	}
	label, ok := extensionLabels[ext]
	return label, ok
}

// labelForSnippet applies ordered pattern checks. Order matters: python
// before javascript (both can contain colons), typescript after javascript
// (a jsx file can declare types through props objects).
func labelForSnippet(snippet string) (string, bool) {
	if snippet == "" {
		return "", false
	}

	if strings.Contains(snippet, "def ") && strings.Contains(snippet, ":") {
		return "python", true
	}

	if strings.Contains(snippet, "function") && strings.Contains(snippet, "{") {
		if reactMarkerPattern.MatchString(snippet) {
			return "jsx", true
		}
		return "javascript", true
	}

	if tsDeclarationUnique.MatchString(snippet) {
		return "typescript", true
	}

	if htmlTagPattern.MatchString(snippet) {
		return "html", true
	}

	if strings.Contains(snippet, "@media") || cssRulePattern.MatchString(snippet) {
		return "css", true
	}

	return "", false
}
