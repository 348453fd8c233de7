package postprocess

import (
	"strings"
	"testing"
)

func TestFinalizeCodeWrapsBareCode(t *testing.T) {
	got := FinalizeCode("def foo():\n    return 1", "python")
	want := "```python\ndef foo():\n    return 1\n```"

	if got != want {
		t.Errorf("FinalizeCode = %q, want %q", got, want)
	}
}

func TestFinalizeCodeDefaultsLanguageTag(t *testing.T) {
	got := FinalizeCode("x = 1;", "")
	if !strings.HasPrefix(got, "```text\n") {
		t.Errorf("FinalizeCode with empty language = %q, want a text-tagged fence", got)
	}
}

func TestFinalizeCodeTagsUntaggedFence(t *testing.T) {
	got := FinalizeCode("```\nx = 1\n```", "python")
	want := "```python\nx = 1\n```"

	if got != want {
		t.Errorf("FinalizeCode = %q, want %q", got, want)
	}
}

func TestFinalizeCodeRetagsMislabeledFence(t *testing.T) {
	got := FinalizeCode("```js\nx = 1\n```", "python")
	want := "```python\nx = 1\n```"

	if got != want {
		t.Errorf("FinalizeCode = %q, want %q", got, want)
	}
}

func TestFinalizeCodeKeepsMatchingTag(t *testing.T) {
	in := "```python\nx = 1\n```"
	if got := FinalizeCode(in, "python"); got != in {
		t.Errorf("FinalizeCode = %q, want unchanged", got)
	}
}

func TestFinalizeCodeTagsFirstFenceOnly(t *testing.T) {
	in := "```\na = 1\n```\n\nAnd then:\n\n```\nb = 2\n```"
	got := FinalizeCode(in, "python")

	if !strings.HasPrefix(got, "```python\na = 1") {
		t.Errorf("first fence not tagged: %q", got)
	}
	if !strings.HasSuffix(got, "```\nb = 2\n```") {
		t.Errorf("second fence was rewritten: %q", got)
	}
}

func TestFinalizeCodeLeavesInlineFenceMention(t *testing.T) {
	in := "Use ``` to fence code blocks"
	if got := FinalizeCode(in, "python"); got != in {
		t.Errorf("FinalizeCode = %q, want unchanged", got)
	}
}

func TestFinalizeCodePassesProseThrough(t *testing.T) {
	in := "Just prose with no code hints at all"
	if got := FinalizeCode(in, "python"); got != in {
		t.Errorf("FinalizeCode = %q, want unchanged", got)
	}
}

func TestFinalizeProseUnwrapsShortDefinitionalAnswer(t *testing.T) {
	in := "```python\nA mutex is a lock that serializes access.\n```"
	got := FinalizeProse(in, "What is a mutex?")
	want := "A mutex is a lock that serializes access."

	if got != want {
		t.Errorf("FinalizeProse = %q, want %q", got, want)
	}
}

func TestFinalizeProseKeepsFenceForCodeQueries(t *testing.T) {
	in := "```python\nx = 1\n```"
	if got := FinalizeProse(in, "fix my loop"); got != in {
		t.Errorf("FinalizeProse = %q, want unchanged", got)
	}
}

func TestFinalizeProseKeepsLongFencedAnswers(t *testing.T) {
	in := "```\n" + strings.Repeat("long explanation ", 30) + "\n```"
	if got := FinalizeProse(in, "what is a goroutine"); got != in {
		t.Error("long fenced answer was unwrapped")
	}
}

func TestFinalizeProseKeepsUnfencedAnswers(t *testing.T) {
	in := "A mutex is a lock."
	if got := FinalizeProse(in, "what is a mutex"); got != in {
		t.Errorf("FinalizeProse = %q, want unchanged", got)
	}
}

func TestFinalizeProseDegradesWhenUnwrapEmpties(t *testing.T) {
	in := "```\npython\n```"
	if got := FinalizeProse(in, "what is python"); got != in {
		t.Errorf("FinalizeProse = %q, want original when unwrap leaves nothing", got)
	}
}
