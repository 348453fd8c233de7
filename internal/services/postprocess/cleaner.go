// Package postprocess turns raw model completions into presentable text:
// conversational preambles and follow-ups are stripped, code fences are
// normalized, and bare code gets fenced. Every transform is total; on any
// unexpected shape the input passes through unchanged.
package postprocess

import (
	"regexp"
	"strings"
)

const (
	fence = "```"

	// Text before the first fence shorter than this is treated as a
	// preamble even when no opener phrase matched.
	maxPreFenceChars = 100
)

var (
	thinkBlockPattern = regexp.MustCompile(`(?s)^.*</think>`)
	blankRunPattern   = regexp.MustCompile(`\n{3,}`)
)

// Clean strips conversational framing from a raw completion. Applied rules,
// in order: reasoning-block removal, leading acknowledgement lines, trailing
// follow-up sentences, short pre-fence preamble removal, blank-line
// collapsing. Clean is idempotent.
func Clean(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	// Some reasoning models leak their scratchpad; everything up to the
	// closing think tag is never part of the answer.
	text = strings.TrimSpace(thinkBlockPattern.ReplaceAllString(text, ""))

	text = stripOpenerLines(text)
	text = stripTrailingCloser(text)
	text = dropShortPreFenceText(text)

	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	if text == "" {
		// Degrade to identity rather than swallowing the whole answer.
		return strings.TrimSpace(raw)
	}
	return text
}

// stripOpenerLines removes leading lines that start with an acknowledgement
// phrase, each through its line break. A single-line text is left alone:
// there is nothing left to return once the only line goes.
func stripOpenerLines(text string) string {
	for {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			return text
		}
		if !startsWithPhrase(text, OpenerPhrases) {
			return text
		}
		text = strings.TrimSpace(text[nl+1:])
		if text == "" {
			return text
		}
	}
}

// stripTrailingCloser cuts a trailing follow-up sentence through end of
// text. The phrase must sit at a sentence or line boundary so "let me know"
// quoted mid-answer survives.
func stripTrailingCloser(text string) string {
	lower := strings.ToLower(text)

	cut := -1
	for _, phrase := range CloserPhrases {
		idx := strings.LastIndex(lower, phrase)
		if idx <= 0 || idx <= cut {
			continue
		}
		if atBoundary(text, idx) {
			cut = idx
		}
	}

	if cut <= 0 {
		return text
	}
	trimmed := strings.TrimSpace(text[:cut])
	trimmed = strings.TrimRight(trimmed, "-* ")
	if trimmed == "" {
		return text
	}
	return strings.TrimSpace(trimmed)
}

// dropShortPreFenceText removes everything before the first fence when the
// preceding text is short enough to be a dropped preamble.
func dropShortPreFenceText(text string) string {
	idx := strings.Index(text, fence)
	if idx <= 0 {
		return text
	}
	pre := strings.TrimSpace(text[:idx])
	if pre == "" || len(pre) >= maxPreFenceChars {
		return text
	}
	return text[idx:]
}

func startsWithPhrase(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range phrases {
		if strings.HasPrefix(lower, phrase) {
			return true
		}
	}
	return false
}

// atBoundary reports whether text[idx:] begins a new line or sentence.
func atBoundary(text string, idx int) bool {
	for i := idx - 1; i >= 0; i-- {
		switch text[i] {
		case ' ', '\t':
			continue
		case '\n', '.', '!', '?':
			return true
		default:
			return false
		}
	}
	return true
}
