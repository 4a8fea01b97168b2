package probe

import (
	"context"
	"fmt"
	"net/url"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/pkg/log"
	"mediawatch-srv/pkg/webclient"
)

// bioConfidence is lower than the profile probe's: bio text is freeform and
// the phrase heuristic misfires more often there.
const bioConfidence = 65

type bioProbe struct {
	client      webclient.IWebClient
	urlTemplate string
	l           log.Logger
}

// NewBioProbe scans the bio page behind a contact's social handle for
// change-indicator phrases.
func NewBioProbe(l log.Logger, client webclient.IWebClient, urlTemplate string) Prober {
	return &bioProbe{client: client, urlTemplate: urlTemplate, l: l}
}

func (p *bioProbe) Name() string {
	return model.SourceBioText
}

func (p *bioProbe) Probe(ctx context.Context, contact model.Contact) (model.Finding, error) {
	bioURL := fmt.Sprintf(p.urlTemplate, url.PathEscape(contact.SocialHandle))

	page, err := p.client.GetText(ctx, bioURL)
	if err != nil {
		return model.Finding{}, err
	}

	text := stripTags(page)
	phrase, found := matchChangeIndicator(text)
	if !found {
		return model.Finding{Source: model.SourceBioText}, nil
	}

	return model.Finding{
		Changed:    true,
		NewValue:   extractNewValue(text, phrase),
		Confidence: bioConfidence,
		Source:     model.SourceBioText,
	}, nil
}
