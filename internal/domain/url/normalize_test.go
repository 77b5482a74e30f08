package url

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "http scheme unchanged", input: "http://example.com", want: "http://example.com"},
		{name: "https scheme unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "file scheme unchanged", input: "file:///tmp/a.html", want: "file:///tmp/a.html"},
		{name: "about scheme unchanged", input: "about:blank", want: "about:blank"},
		{name: "domain gets https", input: "example.com", want: "https://example.com"},
		{name: "domain with path gets https", input: "example.com/path", want: "https://example.com/path"},
		{name: "surrounding space trimmed", input: "  example.com ", want: "https://example.com"},
		{name: "search query unchanged", input: "hello world", want: "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "https://www.youtube.com/watch?v=1", want: "youtube.com"},
		{input: "https://YouTube.com", want: "youtube.com"},
		{input: "http://localhost:8080/x", want: "localhost"},
		{input: "about:blank", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := ExtractDomain(tt.input); got != tt.want {
			t.Errorf("ExtractDomain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsWeb(t *testing.T) {
	tests := map[string]bool{
		"https://example.com": true,
		"HTTP://example.com":  true,
		"file:///etc/hosts":   false,
		"about:blank":         false,
		"example.com":         false,
	}
	for input, want := range tests {
		if got := IsWeb(input); got != want {
			t.Errorf("IsWeb(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{name: "www and case", a: "https://WWW.Example.com/docs", b: "https://example.com/docs", same: true},
		{name: "trailing slash", a: "https://example.com/docs/", b: "https://example.com/docs", same: true},
		{name: "fragment", a: "https://example.com/a#top", b: "https://example.com/a", same: true},
		{name: "default port", a: "https://example.com:443/a", b: "https://example.com/a", same: true},
		{name: "tracking params", a: "https://example.com/a?utm_source=x&id=2", b: "https://example.com/a?id=2", same: true},
		{name: "query order", a: "https://example.com/a?b=2&a=1", b: "https://example.com/a?a=1&b=2", same: true},
		{name: "different path", a: "https://example.com/a", b: "https://example.com/b", same: false},
		{name: "different query", a: "https://example.com/a?id=1", b: "https://example.com/a?id=2", same: false},
		{name: "scheme matters", a: "http://example.com/a", b: "https://example.com/a", same: false},
		{name: "non web kept", a: "about:blank", b: "about:blank", same: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ca, cb := Canonical(tt.a), Canonical(tt.b)
			if (ca == cb) != tt.same {
				t.Errorf("Canonical(%q)=%q Canonical(%q)=%q, same=%v want %v", tt.a, ca, tt.b, cb, ca == cb, tt.same)
			}
		})
	}
}
