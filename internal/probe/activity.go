package probe

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/pkg/log"
	"mediawatch-srv/pkg/webclient"
)

// activityConfidence is fixed at a high value: the signal is a direct count
// of recent posts, not an inference.
const activityConfidence = 90

type activityProbe struct {
	client      webclient.IWebClient
	urlTemplate string
	l           log.Logger
}

// NewActivityProbe counts posts published within roughly the last day on a
// contact's public feed, by a simple recency phrase match.
func NewActivityProbe(l log.Logger, client webclient.IWebClient, urlTemplate string) Prober {
	return &activityProbe{client: client, urlTemplate: urlTemplate, l: l}
}

func (p *activityProbe) Name() string {
	return model.SourceSocialFeed
}

func (p *activityProbe) Probe(ctx context.Context, contact model.Contact) (model.Finding, error) {
	feedURL := fmt.Sprintf(p.urlTemplate, url.PathEscape(contact.SocialHandle))

	page, err := p.client.GetText(ctx, feedURL)
	if err != nil {
		return model.Finding{}, err
	}

	count := countRecencyMentions(stripTags(page))
	if count == 0 {
		return model.Finding{Source: model.SourceSocialFeed}, nil
	}

	return model.Finding{
		Changed:    true,
		NewValue:   strconv.Itoa(count),
		Confidence: activityConfidence,
		Source:     model.SourceSocialFeed,
		Count:      count,
	}, nil
}
