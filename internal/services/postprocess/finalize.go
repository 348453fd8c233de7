package postprocess

import (
	"strings"
)

const (
	// Prose answers under this length wrapped in a fence are treated as
	// simple explanations mistakenly fenced.
	maxSimpleAnswerChars = 300
)

// codeTokens are cheap hints that untagged text is code rather than prose.
var codeTokens = []string{";", "def ", "function"}

// FinalizeCode shapes a cleaned completion for the code-oriented
// operations. An existing first fence gets the resolved language tag; bare
// code-like text is wrapped in a single tagged fence; prose without code
// hints passes through.
func FinalizeCode(text, language string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	if language == "" {
		language = "text"
	}

	if strings.Contains(text, fence) {
		return tagFirstFence(text, language)
	}

	if looksLikeCode(text) {
		return fence + language + "\n" + strings.TrimSpace(text) + "\n" + fence
	}

	return text
}

// FinalizeProse shapes a cleaned completion for the question-answering
// operations. A short fenced answer to a definitional question is unwrapped
// and stray bare language tokens are dropped.
func FinalizeProse(text, query string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}

	if !isDefinitionalQuery(query) || len(trimmed) >= maxSimpleAnswerChars {
		return text
	}
	if !strings.HasPrefix(trimmed, fence) || !strings.HasSuffix(trimmed, fence) {
		return text
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, fence), fence)
	lines := strings.Split(strings.TrimSpace(inner), "\n")
	kept := lines[:0]
	for _, line := range lines {
		token := strings.ToLower(strings.TrimSpace(line))
		if _, stray := bareLanguageTokens[token]; stray {
			continue
		}
		kept = append(kept, line)
	}

	result := strings.TrimSpace(strings.Join(kept, "\n"))
	if result == "" {
		return text
	}
	return result
}

// tagFirstFence injects or rewrites the language tag of the first fence
// only; later fences keep whatever tag the model chose.
func tagFirstFence(text, language string) string {
	idx := strings.Index(text, fence)
	if idx < 0 {
		return text
	}

	rest := text[idx+len(fence):]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		// Fence with no line break after it; leave the text alone.
		return text
	}

	tag := strings.TrimSpace(rest[:nl])
	if tag == language {
		return text
	}
	if tag != "" && !isBareWord(tag) {
		// Not a language tag (code on the fence line); do not touch it.
		return text
	}

	return text[:idx] + fence + language + rest[nl:]
}

func looksLikeCode(text string) bool {
	for _, token := range codeTokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	if strings.Contains(text, "(") && strings.Contains(text, ")") {
		return true
	}
	if strings.Contains(text, "{") && strings.Contains(text, "}") {
		return true
	}
	return false
}

func isDefinitionalQuery(query string) bool {
	lower := strings.ToLower(query)
	for _, marker := range definitionalMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func isBareWord(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '#' || r == '-') {
			return false
		}
	}
	return true
}
