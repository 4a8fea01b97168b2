package probe

import (
	"context"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/pkg/log"
	"mediawatch-srv/pkg/webclient"
)

// profileConfidence is fixed: the profile page is the strongest public
// signal of an affiliation change we can read without a real classifier.
const profileConfidence = 75

type profileProbe struct {
	client webclient.IWebClient
	l      log.Logger
}

// NewProfileProbe scans a contact's profile page for change-indicator phrases.
func NewProfileProbe(l log.Logger, client webclient.IWebClient) Prober {
	return &profileProbe{client: client, l: l}
}

func (p *profileProbe) Name() string {
	return model.SourceProfilePage
}

func (p *profileProbe) Probe(ctx context.Context, contact model.Contact) (model.Finding, error) {
	page, err := p.client.GetText(ctx, contact.ProfileURL)
	if err != nil {
		return model.Finding{}, err
	}

	text := stripTags(page)
	phrase, found := matchChangeIndicator(text)
	if !found {
		return model.Finding{Source: model.SourceProfilePage}, nil
	}

	return model.Finding{
		Changed:    true,
		NewValue:   extractNewValue(text, phrase),
		Confidence: profileConfidence,
		Source:     model.SourceProfilePage,
	}, nil
}
