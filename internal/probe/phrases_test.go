package probe

import "testing"

func TestMatchChangeIndicator(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantPhrase string
		wantFound  bool
	}{
		{name: "joined", text: "Jane Doe joined Acme Corp last week", wantPhrase: "joined", wantFound: true},
		{name: "case insensitive", text: "EXCITED TO ANNOUNCE my next chapter", wantPhrase: "excited to announce", wantFound: true},
		{name: "now at", text: "Reporter, now at The Ledger", wantPhrase: "now at", wantFound: true},
		{name: "new position", text: "Starting a new position next month", wantPhrase: "new position", wantFound: true},
		{name: "no indicator", text: "Jane Doe covers climate policy", wantFound: false},
		{name: "empty", text: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrase, found := matchChangeIndicator(tt.text)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && phrase != tt.wantPhrase {
				t.Errorf("phrase = %q, want %q", phrase, tt.wantPhrase)
			}
		})
	}
}

func TestExtractNewValue(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		want   string
	}{
		{name: "short remainder", text: "Jane joined Acme Corp.", phrase: "joined", want: "Acme Corp"},
		{name: "capped at four words", text: "Jane joined Acme Corp as senior climate editor", phrase: "joined", want: "Acme Corp as senior"},
		{name: "case insensitive match", text: "Jane JOINED Acme", phrase: "joined", want: "Acme"},
		{name: "trailing punctuation trimmed", text: "now at The Ledger!", phrase: "now at", want: "The Ledger"},
		{name: "phrase absent", text: "Jane covers policy", phrase: "joined", want: ""},
		{name: "phrase at end", text: "Jane joined", phrase: "joined", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractNewValue(tt.text, tt.phrase); got != tt.want {
				t.Errorf("extractNewValue(%q, %q) = %q, want %q", tt.text, tt.phrase, got, tt.want)
			}
		})
	}
}

func TestCountRecencyMentions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "mixed recency phrases", text: "posted 5 minutes ago. shared 2 hours ago. updated today.", want: 3},
		{name: "singular forms", text: "1 minute ago and 1 hour ago", want: 2},
		{name: "no recent posts", text: "last post: 3 weeks ago", want: 0},
		{name: "case insensitive", text: "Posted TODAY", want: 1},
		{name: "empty", text: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countRecencyMentions(tt.text); got != tt.want {
				t.Errorf("countRecencyMentions(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple markup", in: "<p>Jane joined Acme</p>", want: " Jane joined Acme "},
		{name: "attributes", in: `<a href="/x">now at</a>`, want: " now at "},
		{name: "no markup", in: "plain text", want: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripTags(tt.in); got != tt.want {
				t.Errorf("stripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
