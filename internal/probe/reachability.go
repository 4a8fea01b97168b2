package probe

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/pkg/doh"
	"mediawatch-srv/pkg/log"
)

// invalidAddressConfidence applies when the domain cleanly reports no mail
// exchanger. Absence of MX is a strong signal the address stopped working.
const invalidAddressConfidence = 80

type reachabilityProbe struct {
	resolver doh.IResolver
	l        log.Logger
}

// NewReachabilityProbe verifies that a contact's email address still has a
// resolvable mail domain. A lookup failure is returned as an error so the
// detector can fail open; only a clean "no records" answer counts as invalid.
func NewReachabilityProbe(l log.Logger, resolver doh.IResolver) Prober {
	return &reachabilityProbe{resolver: resolver, l: l}
}

func (p *reachabilityProbe) Name() string {
	return model.SourceEmailVerification
}

func (p *reachabilityProbe) Probe(ctx context.Context, contact model.Contact) (model.Finding, error) {
	addr, err := mail.ParseAddress(contact.Email)
	if err != nil {
		// Syntactically broken addresses are invalid without a lookup.
		return model.Finding{
			Changed:    true,
			NewValue:   "invalid",
			Confidence: invalidAddressConfidence,
			Source:     model.SourceEmailVerification,
		}, nil
	}

	at := strings.LastIndex(addr.Address, "@")
	domain := addr.Address[at+1:]

	if _, err := p.resolver.LookupMX(ctx, domain); err != nil {
		if errors.Is(err, doh.ErrNoRecords) {
			return model.Finding{
				Changed:    true,
				NewValue:   "invalid",
				Confidence: invalidAddressConfidence,
				Source:     model.SourceEmailVerification,
			}, nil
		}
		return model.Finding{}, err
	}

	return model.Finding{Source: model.SourceEmailVerification}, nil
}
