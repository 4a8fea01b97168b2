package doh

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"mediawatch-srv/pkg/log"
	"mediawatch-srv/pkg/webclient"
)

const (
	// DefaultEndpoint is the Google public DNS-over-HTTPS JSON API.
	DefaultEndpoint = "https://dns.google/resolve"

	// typeMX is the DNS record type code for MX records.
	typeMX = 15

	// statusNXDomain is the DNS RCODE for a non-existent domain.
	statusNXDomain = 3
)

// ErrNoRecords indicates a clean answer with zero MX records, as opposed to
// a lookup failure. Callers that fail open must distinguish the two.
var ErrNoRecords = errors.New("no MX records found")

//go:generate mockery --name IResolver
type IResolver interface {
	LookupMX(ctx context.Context, domain string) ([]MXRecord, error)
}

// MXRecord is a single mail exchanger answer.
type MXRecord struct {
	Host       string
	Preference int
}

type dohAnswer struct {
	Name string `json:"name"`
	Type int    `json:"type"`
	TTL  int    `json:"TTL"`
	Data string `json:"data"`
}

type dohResponse struct {
	Status int         `json:"Status"`
	Answer []dohAnswer `json:"Answer"`
}

type resolver struct {
	endpoint string
	client   webclient.IWebClient
	l        log.Logger
}

// New creates a DNS-over-HTTPS resolver against the given JSON API endpoint.
func New(l log.Logger, client webclient.IWebClient, endpoint string) IResolver {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &resolver{
		endpoint: endpoint,
		client:   client,
		l:        l,
	}
}

// LookupMX resolves the MX records for a domain. A clean empty answer or an
// NXDOMAIN status returns ErrNoRecords; transport failures return their own
// error so callers can tell "no records" apart from "could not look up".
func (r *resolver) LookupMX(ctx context.Context, domain string) ([]MXRecord, error) {
	lookupURL := fmt.Sprintf("%s?name=%s&type=MX", r.endpoint, url.QueryEscape(domain))

	var resp dohResponse
	if err := r.client.GetJSON(ctx, lookupURL, &resp); err != nil {
		return nil, fmt.Errorf("doh lookup for %s: %w", domain, err)
	}

	if resp.Status == statusNXDomain {
		return nil, ErrNoRecords
	}
	if resp.Status != 0 {
		return nil, fmt.Errorf("doh lookup for %s: server status %d", domain, resp.Status)
	}

	records := make([]MXRecord, 0, len(resp.Answer))
	for _, ans := range resp.Answer {
		if ans.Type != typeMX {
			continue
		}
		var pref int
		var host string
		if _, err := fmt.Sscanf(ans.Data, "%d %s", &pref, &host); err != nil {
			r.l.Debugf(ctx, "pkg.doh.LookupMX: skipping malformed answer %q: %v", ans.Data, err)
			continue
		}
		records = append(records, MXRecord{Host: host, Preference: pref})
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}
