package probe

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/pkg/doh"
	pkgLog "mediawatch-srv/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelError,
		Mode:     pkgLog.ModeDevelopment,
		Encoding: pkgLog.EncodingConsole,
	})
}

type fakeWebClient struct {
	text    string
	jsonRaw string
	err     error
	lastURL string
}

func (f *fakeWebClient) GetText(_ context.Context, url string) (string, error) {
	f.lastURL = url
	return f.text, f.err
}

func (f *fakeWebClient) GetJSON(_ context.Context, url string, out any) error {
	f.lastURL = url
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.jsonRaw), out)
}

type fakeResolver struct {
	records []doh.MXRecord
	err     error
	calls   int
}

func (f *fakeResolver) LookupMX(_ context.Context, _ string) ([]doh.MXRecord, error) {
	f.calls++
	return f.records, f.err
}

func TestProfileProbe(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		pageErr  error
		wantErr  bool
		want     model.Finding
	}{
		{
			name: "indicator in markup",
			page: `<html><p>Jane Doe has <b>joined</b> Acme Corp as editor.</p></html>`,
			want: model.Finding{
				Changed:    true,
				NewValue:   "Acme Corp as editor",
				Confidence: 75,
				Source:     model.SourceProfilePage,
			},
		},
		{
			name: "no indicator",
			page: `<html><p>Jane Doe covers climate policy.</p></html>`,
			want: model.Finding{Source: model.SourceProfilePage},
		},
		{
			name:    "fetch failure propagates",
			pageErr: errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeWebClient{text: tt.page, err: tt.pageErr}
			p := NewProfileProbe(testLogger(), client)

			contact := model.Contact{ID: "c-1", Name: "Jane Doe", ProfileURL: "https://news.example.com/staff/jane"}
			got, err := p.Probe(context.Background(), contact)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Probe: %v", err)
			}
			if client.lastURL != contact.ProfileURL {
				t.Errorf("fetched %q, want %q", client.lastURL, contact.ProfileURL)
			}
			if got != tt.want {
				t.Errorf("finding = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBioProbe_URLFromHandle(t *testing.T) {
	client := &fakeWebClient{text: "Jane is now at The Ledger"}
	p := NewBioProbe(testLogger(), client, "https://social.example.com/%s/about")

	got, err := p.Probe(context.Background(), model.Contact{ID: "c-1", SocialHandle: "jane doe"})
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if client.lastURL != "https://social.example.com/jane%20doe/about" {
		t.Errorf("fetched %q, handle not path-escaped", client.lastURL)
	}
	if !got.Changed || got.Confidence != 65 || got.Source != model.SourceBioText {
		t.Errorf("finding = %+v, want changed bio_text at confidence 65", got)
	}
	if got.NewValue != "The Ledger" {
		t.Errorf("NewValue = %q, want %q", got.NewValue, "The Ledger")
	}
}

func TestReachabilityProbe(t *testing.T) {
	invalid := model.Finding{
		Changed:    true,
		NewValue:   "invalid",
		Confidence: 80,
		Source:     model.SourceEmailVerification,
	}

	tests := []struct {
		name      string
		email     string
		resolver  *fakeResolver
		want      model.Finding
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "domain resolves",
			email:     "jane@ok.example",
			resolver:  &fakeResolver{records: []doh.MXRecord{{Host: "mx.ok.example.", Preference: 10}}},
			want:      model.Finding{Source: model.SourceEmailVerification},
			wantCalls: 1,
		},
		{
			name:      "clean no records means invalid",
			email:     "jane@gone.example",
			resolver:  &fakeResolver{err: doh.ErrNoRecords},
			want:      invalid,
			wantCalls: 1,
		},
		{
			name:      "lookup failure is returned not swallowed",
			email:     "jane@slow.example",
			resolver:  &fakeResolver{err: errors.New("lookup timed out")},
			wantErr:   true,
			wantCalls: 1,
		},
		{
			name:      "malformed address is invalid without a lookup",
			email:     "not-an-address",
			resolver:  &fakeResolver{},
			want:      invalid,
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewReachabilityProbe(testLogger(), tt.resolver)

			got, err := p.Probe(context.Background(), model.Contact{ID: "c-1", Email: tt.email})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
			} else {
				if err != nil {
					t.Fatalf("Probe: %v", err)
				}
				if got != tt.want {
					t.Errorf("finding = %+v, want %+v", got, tt.want)
				}
			}
			if tt.resolver.calls != tt.wantCalls {
				t.Errorf("resolver called %d times, want %d", tt.resolver.calls, tt.wantCalls)
			}
		})
	}
}

func TestActivityProbe(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		wantCount int
	}{
		{
			name:      "recent posts counted",
			page:      `<li>posted 5 minutes ago</li><li>posted 2 hours ago</li><li>posted today</li>`,
			wantCount: 3,
		},
		{
			name:      "stale feed",
			page:      `<li>posted 3 weeks ago</li>`,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeWebClient{text: tt.page}
			p := NewActivityProbe(testLogger(), client, "https://social.example.com/%s/feed")

			got, err := p.Probe(context.Background(), model.Contact{ID: "c-1", SocialHandle: "janedoe"})
			if err != nil {
				t.Fatalf("Probe: %v", err)
			}
			if client.lastURL != "https://social.example.com/janedoe/feed" {
				t.Errorf("fetched %q", client.lastURL)
			}
			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if tt.wantCount == 0 {
				if got.Changed {
					t.Error("Changed = true for a stale feed")
				}
				return
			}
			if !got.Changed || got.Confidence != 90 || got.Source != model.SourceSocialFeed {
				t.Errorf("finding = %+v, want changed social_feed at confidence 90", got)
			}
		})
	}
}

func TestPublicationProbe(t *testing.T) {
	client := &fakeWebClient{jsonRaw: `{
		"items": [
			{"title": "Breaking: Acme IPO", "url": "https://news.example.com/1", "published_at": "2026-08-27"},
			{"title": "Acme fallout", "url": "https://news.example.com/2", "published_at": "2026-08-26"}
		]
	}`}
	p := NewPublicationProbe(testLogger(), client, "https://index.example.com")

	got, err := p.Probe(context.Background(), model.Contact{ID: "c-1", Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if client.lastURL != "https://index.example.com/articles?author=Jane+Doe&days=7" {
		t.Errorf("queried %q, author not query-escaped or window wrong", client.lastURL)
	}
	if !got.Changed || got.Confidence != 85 || got.Source != model.SourceContentIndex {
		t.Errorf("finding = %+v, want changed content_index at confidence 85", got)
	}
	if got.Count != 2 || got.NewValue != "Breaking: Acme IPO" {
		t.Errorf("Count = %d NewValue = %q, want 2 and the newest title", got.Count, got.NewValue)
	}
}

func TestPublicationProbe_NoItems(t *testing.T) {
	client := &fakeWebClient{jsonRaw: `{"items": []}`}
	p := NewPublicationProbe(testLogger(), client, "https://index.example.com")

	got, err := p.Probe(context.Background(), model.Contact{ID: "c-1", Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if got.Changed {
		t.Error("Changed = true with no indexed items")
	}
}

func TestDiscoveryProbe(t *testing.T) {
	client := &fakeWebClient{jsonRaw: `{
		"outlets": [
			{"name": "The Ledger"},
			{"name": "  "},
			{"name": "Daily Bugle"}
		]
	}`}
	p := NewDiscoveryProbe(testLogger(), client, "https://directory.example.com/outlets")

	names, err := p.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(names) != 2 || names[0] != "The Ledger" || names[1] != "Daily Bugle" {
		t.Errorf("names = %v, want blank entries dropped", names)
	}
}
