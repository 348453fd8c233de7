package postprocess

// Phrase lists are data, not control flow: extending what counts as a
// preamble or follow-up must not touch the cleaning logic. Matching is
// case-insensitive against the start of the line or sentence.

// OpenerPhrases mark acknowledgement lines the model prepends before the
// substantive answer.
var OpenerPhrases = []string{
	"here's",
	"here is",
	"sure",
	"let me",
	"okay",
	"certainly",
	"of course",
	"great question",
}

// CloserPhrases mark trailing follow-up sentences appended after the
// substantive answer.
var CloserPhrases = []string{
	"let me know",
	"hope this helps",
	"hope that helps",
	"would you",
	"feel free to",
	"if you have any",
}

// bareLanguageTokens are fence tags that survive as stray standalone words
// once a mistakenly fenced prose answer is unwrapped.
var bareLanguageTokens = map[string]struct{}{
	"python":     {},
	"javascript": {},
	"typescript": {},
	"jsx":        {},
	"tsx":        {},
	"go":         {},
	"rust":       {},
	"java":       {},
	"html":       {},
	"css":        {},
	"text":       {},
	"plaintext":  {},
}

// definitionalMarkers identify queries asking for an explanation rather
// than code.
var definitionalMarkers = []string{
	"what is",
	"what are",
	"how does",
	"explain",
	"define",
}
