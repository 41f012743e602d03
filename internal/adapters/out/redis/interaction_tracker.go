// Package redis records buyer purchase interactions in Redis for the
// recommendation subsystem. Counters are best effort: a failed increment is
// reported to the caller, who logs and moves on.
package redis

import (
	"context"

	"printshop/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const purchaseWeight = 3

// InteractionTracker increments per-buyer interaction counters keyed by
// variant. Recommendation jobs read the counters offline.
type InteractionTracker struct {
	client *redis.Client
}

// NewInteractionTracker creates a tracker on top of an existing Redis client.
func NewInteractionTracker(client *redis.Client) *InteractionTracker {
	return &InteractionTracker{client: client}
}

// TrackPurchase bumps the buyer's counter for every purchased variant.
// Purchases weigh more than views, so each increment adds purchaseWeight.
func (t *InteractionTracker) TrackPurchase(ctx context.Context, buyerID kernel.UUID, variantIDs []kernel.UUID) error {
	pipe := t.client.Pipeline()

	key := "interactions:" + buyerID.String()
	for _, variantID := range variantIDs {
		pipe.HIncrBy(ctx, key, variantID.String(), purchaseWeight)
	}

	_, err := pipe.Exec(ctx)
	return err
}
