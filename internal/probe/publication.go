package probe

import (
	"context"
	"fmt"
	"net/url"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/pkg/log"
	"mediawatch-srv/pkg/webclient"
)

// publicationConfidence applies when the content index attributes at least
// one recent item to the contact.
const publicationConfidence = 85

// publicationWindowDays bounds how far back the content index is asked to look.
const publicationWindowDays = 7

type contentIndexItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

type contentIndexResponse struct {
	Items []contentIndexItem `json:"items"`
}

type publicationProbe struct {
	client  webclient.IWebClient
	baseURL string
	l       log.Logger
}

// NewPublicationProbe queries an external content index for items recently
// attributed to the contact.
func NewPublicationProbe(l log.Logger, client webclient.IWebClient, baseURL string) Prober {
	return &publicationProbe{client: client, baseURL: baseURL, l: l}
}

func (p *publicationProbe) Name() string {
	return model.SourceContentIndex
}

func (p *publicationProbe) Probe(ctx context.Context, contact model.Contact) (model.Finding, error) {
	queryURL := fmt.Sprintf("%s/articles?author=%s&days=%d",
		p.baseURL, url.QueryEscape(contact.Name), publicationWindowDays)

	var resp contentIndexResponse
	if err := p.client.GetJSON(ctx, queryURL, &resp); err != nil {
		return model.Finding{}, err
	}

	if len(resp.Items) == 0 {
		return model.Finding{Source: model.SourceContentIndex}, nil
	}

	return model.Finding{
		Changed:    true,
		NewValue:   resp.Items[0].Title,
		Confidence: publicationConfidence,
		Source:     model.SourceContentIndex,
		Count:      len(resp.Items),
	}, nil
}
