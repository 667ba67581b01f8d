//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import "testing"

func TestMatcher_FindBest(t *testing.T) {
	matcher := NewMatcher(2)

	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   string
	}{
		{
			name:       "exact match excluded",
			input:      "verbose",
			candidates: []string{"verbose", "version", "output"},
			expected:   "", // Exact matches are excluded from fuzzy matching
		},
		{
			name:       "simple typo",
			input:      "verbos",
			candidates: []string{"verbose", "version", "output"},
			expected:   "verbose",
		},
		{
			name:       "single character difference",
			input:      "instal",
			candidates: []string{"install", "uninstall", "info"},
			expected:   "install",
		},
		{
			name:       "no good match",
			input:      "xyz",
			candidates: []string{"verbose", "version", "output"},
			expected:   "", // Distance too high
		},
		{
			name:       "too short input",
			input:      "v",
			candidates: []string{"verbose", "version"},
			expected:   "", // Below the minimum length
		},
		{
			name:       "case insensitive",
			input:      "VERbos",
			candidates: []string{"verbose", "version"},
			expected:   "verbose",
		},
		{
			name:       "no candidates",
			input:      "verbos",
			candidates: nil,
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matcher.FindBest(tt.input, tt.candidates)
			if result != tt.expected {
				t.Errorf("FindBest(%q, %v) = %q, want %q", tt.input, tt.candidates, result, tt.expected)
			}
		})
	}
}

func TestMatcher_FindMatches(t *testing.T) {
	matcher := NewMatcher(2)

	matches := matcher.FindMatches("remot", []string{"remote", "remove", "status"})
	if len(matches) < 2 {
		t.Fatalf("Expected at least 2 matches, got %d", len(matches))
	}
	// Best match first.
	if matches[0].Value != "remote" {
		t.Errorf("Expected 'remote' ranked first, got %q", matches[0].Value)
	}
	for _, m := range matches {
		if m.Distance > 2 {
			t.Errorf("Match %q exceeds the distance limit: %d", m.Value, m.Distance)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	matcher := NewMatcher(5)

	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "acb", 2},
		{"install", "instal", 1},
		{"remote", "remove", 1},
	}

	for _, tt := range tests {
		if got := matcher.levenshteinDistance(tt.a, tt.b); got != tt.expected {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestFindBestCall(t *testing.T) {
	if got := FindBestCall("verbos", []string{"verbose", "output"}, 2); got != "verbose" {
		t.Errorf("Expected 'verbose', got %q", got)
	}
	if got := FindBestCall("zz", []string{"verbose", "output"}, 2); got != "" {
		t.Errorf("Expected no suggestion, got %q", got)
	}
}

func TestFindBestSubcommand(t *testing.T) {
	if got := FindBestSubcommand("instal", []string{"install", "remove"}, 2); got != "install" {
		t.Errorf("Expected 'install', got %q", got)
	}
	if got := FindBestSubcommand("instal", nil, 2); got != "" {
		t.Errorf("Expected no suggestion with no candidates, got %q", got)
	}
}
