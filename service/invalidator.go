package service

import (
	"context"
	"time"

	"go-finance-api/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ViewInvalidator is told which derived views became stale after a mutation.
// Failures are the implementation's concern; a committed mutation is never
// undone because a view could not be refreshed.
type ViewInvalidator interface {
	InvalidateViews(ctx context.Context, userID uuid.UUID, accountIDs ...uuid.UUID)
}

// ChartRanges lists the date ranges the chart view can be requested for.
var ChartRanges = []string{"7D", "1M", "3M", "6M", "ALL"}

// invalidationTimeout bounds a notification once it is detached from the
// request that caused it.
const invalidationTimeout = 5 * time.Second

// CacheInvalidator drops the cached dashboard and account views.
type CacheInvalidator struct {
	cache ICacheClient
	now   func() time.Time
}

func NewCacheInvalidator(cache ICacheClient) *CacheInvalidator {
	return &CacheInvalidator{cache: cache, now: time.Now}
}

func (c *CacheInvalidator) InvalidateViews(ctx context.Context, userID uuid.UUID, accountIDs ...uuid.UUID) {
	if c.cache == nil {
		return
	}
	// Chart keys carry their day; yesterday's are dropped too so a request
	// racing midnight cannot keep a stale entry alive.
	today := c.now().UTC()
	days := []time.Time{today, today.AddDate(0, 0, -1)}

	keys := []string{accountsCacheKey(userID), expensesCacheKey(userID)}
	for _, id := range accountIDs {
		keys = append(keys, summaryCacheKey(id))
		for _, r := range ChartRanges {
			for _, day := range days {
				keys = append(keys, chartCacheKey(id, r, day))
			}
		}
	}
	if err := c.cache.Del(ctx, keys...).Err(); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"user_id": userID,
			"keys":    len(keys),
		}).WithError(err).Warn("Failed to invalidate cached views")
	}
}

// MultiInvalidator fans a notification out to several invalidators.
type MultiInvalidator []ViewInvalidator

func (m MultiInvalidator) InvalidateViews(ctx context.Context, userID uuid.UUID, accountIDs ...uuid.UUID) {
	for _, inv := range m {
		inv.InvalidateViews(ctx, userID, accountIDs...)
	}
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateViews(context.Context, uuid.UUID, ...uuid.UUID) {}

// detachedInvalidator runs notifications on a context that survives the
// request. Invalidation happens after commit, so a client hanging up must
// not leave stale views behind.
type detachedInvalidator struct {
	next ViewInvalidator
}

func (d detachedInvalidator) InvalidateViews(ctx context.Context, userID uuid.UUID, accountIDs ...uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidationTimeout)
	defer cancel()
	d.next.InvalidateViews(ctx, userID, accountIDs...)
}

// afterCommit adapts inv for use once a unit of work has committed.
func afterCommit(inv ViewInvalidator) ViewInvalidator {
	if inv == nil {
		return noopInvalidator{}
	}
	return detachedInvalidator{next: inv}
}
