package effaudit

import (
	"strings"
	"testing"
)

func TestExtractFirstJSONObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "bare object",
			in:   `{"class": "binary-search"}`,
			want: `{"class": "binary-search"}`,
			ok:   true,
		},
		{
			name: "markdown fence",
			in:   "```json\n{\"class\": \"graph-bfs\"}\n```",
			want: `{"class": "graph-bfs"}`,
			ok:   true,
		},
		{
			name: "surrounding prose",
			in:   `Sure! Here is the classification: {"class": "linear-search", "confidence": 0.8} Hope that helps.`,
			want: `{"class": "linear-search", "confidence": 0.8}`,
			ok:   true,
		},
		{
			name: "nested object",
			in:   `{"class": "comparison-sort", "alternative_classes": [{"class": "binary-search", "confidence": 0.3}]}`,
			want: `{"class": "comparison-sort", "alternative_classes": [{"class": "binary-search", "confidence": 0.3}]}`,
			ok:   true,
		},
		{
			name: "braces inside strings",
			in:   `{"reasoning": "loops like for { } over a slice", "class": "linear-search"}`,
			want: `{"reasoning": "loops like for { } over a slice", "class": "linear-search"}`,
			ok:   true,
		},
		{
			name: "invalid candidate then valid object",
			in:   `{broken json} then {"class": "hash-lookup"}`,
			want: `{"class": "hash-lookup"}`,
			ok:   true,
		},
		{
			name: "no object at all",
			in:   "I could not classify that fragment.",
			ok:   false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := extractFirstJSONObject(c.in)
			if ok != c.ok {
				t.Fatalf("ok=%v want %v (got %q)", ok, c.ok, got)
			}
			if ok && got != c.want {
				t.Fatalf("got %q want %q", got, c.want)
			}
		})
	}
}

func TestParseOracleResponse(t *testing.T) {
	response := "The fragment is a sorting routine.\n" +
		"```json\n" +
		`{"class": "comparison-sort", "confidence": 0.91, "reasoning": "nested loops with adjacent swaps", "alternative_classes": [{"class": "binary-search", "confidence": 0.2}]}` +
		"\n```"
	got, err := parseOracleResponse(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Class != ClassComparisonSort || got.Confidence != 0.91 {
		t.Fatalf("bad class/confidence: %s/%f", got.Class, got.Confidence)
	}
	if got.Reasoning != "nested loops with adjacent swaps" {
		t.Fatalf("bad reasoning: %q", got.Reasoning)
	}
	if len(got.Alternatives) != 1 || got.Alternatives[0].Class != ClassBinarySearch {
		t.Fatalf("bad alternatives: %+v", got.Alternatives)
	}
}

func TestParseOracleResponseMissingClass(t *testing.T) {
	if _, err := parseOracleResponse(`{"confidence": 0.5}`); err == nil {
		t.Fatalf("expected error for missing class field")
	}
	if _, err := parseOracleResponse("plain prose, no JSON"); err == nil {
		t.Fatalf("expected error for missing JSON object")
	}
}

func TestBuildOraclePromptsListsAllClasses(t *testing.T) {
	system, user := buildOraclePrompts("func f() {}")
	for _, class := range KnownClasses {
		if !strings.Contains(system, string(class)) {
			t.Fatalf("system prompt missing class %s", class)
		}
	}
	if !strings.Contains(user, "func f() {}") {
		t.Fatalf("user prompt missing the code fragment")
	}
}

func TestBuildOraclePromptsTruncatesLongCode(t *testing.T) {
	long := strings.Repeat("x", maxOracleCodeChars+500)
	_, user := buildOraclePrompts(long)
	if !strings.Contains(user, "(truncated)") {
		t.Fatalf("oversized fragment not truncated")
	}
	if len(user) > maxOracleCodeChars+200 {
		t.Fatalf("user prompt still oversized: %d", len(user))
	}
}
