package probe

import (
	"context"
	"strings"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/pkg/log"
	"mediawatch-srv/pkg/webclient"
)

type directoryResponse struct {
	Outlets []struct {
		Name string `json:"name"`
	} `json:"outlets"`
}

type discoveryProbe struct {
	client webclient.IWebClient
	url    string
	l      log.Logger
}

// NewDiscoveryProbe lists publishing organizations from an external outlet
// directory. Entity-independent: which of them are actually new to a tenant
// is decided by the caller against the known-outlet registry.
func NewDiscoveryProbe(l log.Logger, client webclient.IWebClient, url string) Discoverer {
	return &discoveryProbe{client: client, url: url, l: l}
}

func (p *discoveryProbe) Name() string {
	return model.SourceOutletDirectory
}

func (p *discoveryProbe) Discover(ctx context.Context) ([]string, error) {
	var resp directoryResponse
	if err := p.client.GetJSON(ctx, p.url, &resp); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resp.Outlets))
	for _, outlet := range resp.Outlets {
		name := strings.TrimSpace(outlet.Name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
