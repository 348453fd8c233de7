package langdetect

import "testing"

func TestDetectPriorities(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		filename string
		snippet  string
		want     string
	}{
		{"explicit wins over extension", "Go", "foo.rs", "", "go"},
		{"explicit is lowercased", "Python", "", "", "python"},
		{"explicit is trimmed", "  Rust  ", "", "", "rust"},
		{"extension rust", "", "foo.rs", "", "rust"},
		{"extension python", "", "main.py", "", "python"},
		{"extension typescript", "", "app.ts", "", "typescript"},
		{"extension yaml alias", "", "deploy.yml", "", "yaml"},
		{"extension case-insensitive", "", "Main.GO", "", "go"},
		{"unknown extension falls through to heuristics", "", "script.xyz", "def f():", "python"},
		{"no extension falls through", "", "noext", "def f():", "python"},
		{"nothing matches", "", "", "", "text"},
		{"plain prose", "", "", "just some words", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.explicit, tt.filename, tt.snippet); got != tt.want {
				t.Errorf("Detect(%q, %q, %q) = %q, want %q", tt.explicit, tt.filename, tt.snippet, got, tt.want)
			}
		})
	}
}

func TestDetectHeuristics(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		want    string
	}{
		{"python def", "def handler(event):\n    return event", "python"},
		{"javascript function", "function add(a, b) { return a + b }", "javascript"},
		{"jsx react marker", "function App() { const [n, setN] = useState(0); return (<div/>) }", "jsx"},
		{"typescript interface", "interface User {\n  name: string\n}", "typescript"},
		{"typescript type alias", "type ID = string", "typescript"},
		{"html tag", "<html>\n<body>hello</body>\n</html>", "html"},
		{"css media query", "@media (max-width: 600px) { body { color: red } }", "css"},
		{"css rule", ".box { margin: 0 }", "css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect("", "", tt.snippet); got != tt.want {
				t.Errorf("Detect snippet %q = %q, want %q", tt.snippet, got, tt.want)
			}
		})
	}
}

func TestFromFilename(t *testing.T) {
	if got := FromFilename("a.py"); got != "python" {
		t.Errorf("FromFilename(a.py) = %q, want python", got)
	}
	if got := FromFilename("README"); got != DefaultLabel {
		t.Errorf("FromFilename(README) = %q, want %q", got, DefaultLabel)
	}
}
