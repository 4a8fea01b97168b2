package redisrepo

import (
	"context"

	"mediawatch-srv/internal/monitor/repository"
	pkgLog "mediawatch-srv/pkg/log"

	"github.com/friendsofgo/errors"
	"github.com/redis/go-redis/v9"
)

const outletKeyPrefix = "mediawatch:outlets:"

type implOutletRepository struct {
	l      pkgLog.Logger
	client *redis.Client
}

// NewOutletRepository tracks the publishing organizations already known to a
// tenant as a redis set, one key per tenant.
func NewOutletRepository(l pkgLog.Logger, client *redis.Client) repository.OutletRepository {
	return &implOutletRepository{l: l, client: client}
}

func outletKey(tenantID string) string {
	return outletKeyPrefix + tenantID
}

func (r *implOutletRepository) FilterUnknown(ctx context.Context, tenantID string, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	members := make([]interface{}, len(names))
	for i, name := range names {
		members[i] = name
	}

	known, err := r.client.SMIsMember(ctx, outletKey(tenantID), members...).Result()
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.redisrepo.FilterUnknown: %v", err)
		return nil, errors.Wrap(err, "check known outlets")
	}

	var unknown []string
	for i, isKnown := range known {
		if !isKnown {
			unknown = append(unknown, names[i])
		}
	}
	return unknown, nil
}

func (r *implOutletRepository) MarkKnown(ctx context.Context, tenantID string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	members := make([]interface{}, len(names))
	for i, name := range names {
		members[i] = name
	}

	if err := r.client.SAdd(ctx, outletKey(tenantID), members...).Err(); err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.redisrepo.MarkKnown: %v", err)
		return errors.Wrap(err, "mark outlets known")
	}
	return nil
}
