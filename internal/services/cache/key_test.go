package cache

import (
	"strings"
	"testing"
)

func TestKeyDeterministic(t *testing.T) {
	a := Key("explain_error", "def f(): pass", "NameError", "python")
	b := Key("explain_error", "def f(): pass", "NameError", "python")

	if a != b {
		t.Error("identical inputs produced different keys")
	}
	if len(a) != 64 {
		t.Errorf("key length = %d, want 64 hex characters", len(a))
	}
}

func TestKeyVariesWithFields(t *testing.T) {
	base := Key("explain_error", "ctx", "q", "python")

	if Key("answer_question", "ctx", "q", "python") == base {
		t.Error("operation does not affect the key")
	}
	if Key("explain_error", "other", "q", "python") == base {
		t.Error("context does not affect the key")
	}
	if Key("explain_error", "ctx", "other", "python") == base {
		t.Error("query does not affect the key")
	}
	if Key("explain_error", "ctx", "q", "go") == base {
		t.Error("language does not affect the key")
	}
}

func TestKeyNormalizesLanguage(t *testing.T) {
	if Key("op", "ctx", "q", " Python ") != Key("op", "ctx", "q", "python") {
		t.Error("language not normalized before hashing")
	}
}

// Long inputs sharing a 500-character prefix hash to the same key. That
// collision is an accepted tolerance, and this test pins the bounding so a
// change to it is deliberate.
func TestKeyBoundsLongContext(t *testing.T) {
	prefix := strings.Repeat("x", 500)
	a := Key("op", prefix+"tail-one", "q", "go")
	b := Key("op", prefix+"tail-two", "q", "go")

	if a != b {
		t.Error("context beyond the 500-character prefix changed the key")
	}

	c := Key("op", strings.Repeat("y", 10)+prefix[10:], "q", "go")
	if c == a {
		t.Error("difference inside the bounded prefix did not change the key")
	}
}
