// Package cache puts a Redis read-through layer in front of an aggregates.Provider.
// Redis failures never fail a lookup: the breaker opens and lookups go straight
// to the wrapped provider until Redis recovers.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"wot/internal/domain/aggregates"
	"wot/internal/metrics"
)

const keyPrefix = "wot:agg:"

// Key sources.
const (
	sourceRatings        = "ratings"
	sourceToiletComments = "toilet_comments"
	sourceUserComments   = "user_comments"
	sourceReactions      = "reactions"
)

// entry also caches absence so ids without aggregates do not miss forever.
type entry[V any] struct {
	Present bool `json:"p"`
	Value   V    `json:"v,omitempty"`
}

type Provider struct {
	next    aggregates.Provider
	client  *redis.Client
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker[[]any]
	group   singleflight.Group
	logger  *zap.SugaredLogger
}

func New(next aggregates.Provider, client *redis.Client, ttl time.Duration, logger *zap.SugaredLogger) *Provider {
	settings := gobreaker.Settings{
		Name:        "aggregate-cache",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// a caller giving up says nothing about redis health
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnw("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
	return &Provider{
		next:    next,
		client:  client,
		ttl:     ttl,
		breaker: gobreaker.NewCircuitBreaker[[]any](settings),
		logger:  logger,
	}
}

func (p *Provider) RatingsFor(ctx context.Context, toiletIDs []int64) (map[int64]aggregates.Rating, error) {
	return lookup(ctx, p, sourceRatings, toiletIDs, p.next.RatingsFor)
}

func (p *Provider) ToiletCommentCountsFor(ctx context.Context, toiletIDs []int64) (map[int64]int, error) {
	return lookup(ctx, p, sourceToiletComments, toiletIDs, p.next.ToiletCommentCountsFor)
}

func (p *Provider) UserCommentCountsFor(ctx context.Context, userIDs []int64) (map[int64]int, error) {
	return lookup(ctx, p, sourceUserComments, userIDs, p.next.UserCommentCountsFor)
}

func (p *Provider) ReactionCountsFor(ctx context.Context, commentIDs []int64) (map[int64]aggregates.ReactionCount, error) {
	return lookup(ctx, p, sourceReactions, commentIDs, p.next.ReactionCountsFor)
}

func lookup[V any](
	ctx context.Context,
	p *Provider,
	source string,
	ids []int64,
	load func(context.Context, []int64) (map[int64]V, error),
) (map[int64]V, error) {
	out := make(map[int64]V, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cached, err := p.breaker.Execute(func() ([]any, error) {
		return p.client.MGet(ctx, keys(source, ids)...).Result()
	})
	if err != nil {
		metrics.CountCache(source, metrics.CacheError, len(ids))
		p.logger.Warnw("aggregate cache read failed, using store", "source", source, "error", err)
		return load(ctx, ids)
	}

	var misses []int64
	for i, raw := range cached {
		s, ok := raw.(string)
		if !ok {
			misses = append(misses, ids[i])
			continue
		}
		var e entry[V]
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			misses = append(misses, ids[i])
			continue
		}
		if e.Present {
			out[ids[i]] = e.Value
		}
	}
	metrics.CountCache(source, metrics.CacheHit, len(ids)-len(misses))
	metrics.CountCache(source, metrics.CacheMiss, len(misses))
	if len(misses) == 0 {
		return out, nil
	}

	// Waiters share the flight, so it does not inherit the caller's cancellation.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := p.group.Do(flightKey(source, misses), func() (any, error) {
		loaded, err := load(flightCtx, misses)
		if err != nil {
			return nil, err
		}
		store(flightCtx, p, source, misses, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	for id, value := range v.(map[int64]V) {
		out[id] = value
	}
	return out, nil
}

func store[V any](ctx context.Context, p *Provider, source string, ids []int64, loaded map[int64]V) {
	_, err := p.breaker.Execute(func() ([]any, error) {
		pipe := p.client.Pipeline()
		for _, id := range ids {
			value, ok := loaded[id]
			data, err := json.Marshal(entry[V]{Present: ok, Value: value})
			if err != nil {
				return nil, fmt.Errorf("marshal %s entry: %w", source, err)
			}
			pipe.Set(ctx, key(source, id), data, p.ttl)
		}
		_, err := pipe.Exec(ctx)
		return nil, err
	})
	if err != nil {
		p.logger.Warnw("aggregate cache write failed", "source", source, "error", err)
	}
}

func key(source string, id int64) string {
	return keyPrefix + source + ":" + strconv.FormatInt(id, 10)
}

func keys(source string, ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = key(source, id)
	}
	return out
}

func flightKey(source string, ids []int64) string {
	var b strings.Builder
	b.WriteString(source)
	for _, id := range ids {
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return b.String()
}
