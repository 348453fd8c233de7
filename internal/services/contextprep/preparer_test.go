package contextprep

import (
	"strings"
	"testing"

	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/models"
)

func TestPrepareShortInputUnchanged(t *testing.T) {
	for _, in := range []string{"", "x", "def f():"} {
		if got := Prepare(in); got != in {
			t.Errorf("Prepare(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestPrepareWithinLimitUnchanged(t *testing.T) {
	in := strings.Repeat("a", 8000)
	if got := Prepare(in); got != in {
		t.Errorf("Prepare of 8000-char input changed (len %d)", len(got))
	}
}

func TestPrepareTruncatesHeadAndTail(t *testing.T) {
	head := strings.Repeat("h", 4000)
	middle := strings.Repeat("m", 13000)
	tail := strings.Repeat("t", 3000)
	in := head + middle + tail

	got := Prepare(in)

	wantLen := 4000 + len(Marker) + 3000
	if len(got) != wantLen {
		t.Fatalf("truncated length = %d, want %d", len(got), wantLen)
	}
	if !strings.HasPrefix(got, head) {
		t.Error("truncated output does not begin with the original first 4000 characters")
	}
	if !strings.HasSuffix(got, tail) {
		t.Error("truncated output does not end with the original last 3000 characters")
	}
	if !strings.Contains(got, Marker) {
		t.Error("truncated output missing the truncation marker")
	}
}

func TestBuildProjectContextFormat(t *testing.T) {
	files := []models.ProjectFile{
		{Filename: "a.py", Content: "def f(): pass"},
		{Filename: "b.js", Content: "function g() {}"},
	}

	got := BuildProjectContext(files)

	if !strings.Contains(got, "File: a.py (Language: python)\ndef f(): pass") {
		t.Errorf("missing python file block in %q", got)
	}
	if !strings.Contains(got, "File: b.js (Language: javascript)\nfunction g() {}") {
		t.Errorf("missing javascript file block in %q", got)
	}
	if !strings.Contains(got, "\n\n") {
		t.Error("file blocks not separated by a blank line")
	}
}

func TestBuildProjectContextCapsFiles(t *testing.T) {
	var files []models.ProjectFile
	for i := 0; i < 30; i++ {
		files = append(files, models.ProjectFile{Filename: "f.go", Content: "x"})
	}

	got := BuildProjectContext(files)

	if n := strings.Count(got, "File: "); n != 15 {
		t.Errorf("included %d files, want 15", n)
	}
}

func TestBuildProjectContextCapsPerFileContent(t *testing.T) {
	files := []models.ProjectFile{
		{Filename: "big.py", Content: strings.Repeat("a", 5000)},
	}

	got := BuildProjectContext(files)

	if n := strings.Count(got, "a"); n > 2001 { // header "Language" contains one 'a'
		t.Errorf("per-file content not capped: %d content chars", n)
	}
}

func TestBuildProjectContextCapsTotal(t *testing.T) {
	var files []models.ProjectFile
	for i := 0; i < 10; i++ {
		files = append(files, models.ProjectFile{Filename: "f.py", Content: strings.Repeat("b", 2000)})
	}

	got := BuildProjectContext(files)

	// Headers can push slightly past the cap on the block that crosses it,
	// but content stops being added once the budget is spent.
	if len(got) > maxProjectChars+200 {
		t.Errorf("combined context length %d exceeds the total cap", len(got))
	}

	if strings.Count(got, "File: ") >= 10 {
		t.Error("total cap did not stop file inclusion")
	}
}

func TestBuildProjectContextSkipsNamelessFiles(t *testing.T) {
	files := []models.ProjectFile{
		{Filename: "", Content: "ignored"},
		{Filename: "ok.py", Content: "def f(): pass"},
	}

	got := BuildProjectContext(files)

	if strings.Contains(got, "ignored") {
		t.Error("nameless file content leaked into the context")
	}
	if !strings.Contains(got, "ok.py") {
		t.Error("named file missing from the context")
	}
}
