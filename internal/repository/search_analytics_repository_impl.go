package repository

import (
	"context"
	"fmt"

	"docrech/internal/domain/entity"
	domainRepo "docrech/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// RedisSearchTermKeyPrefix prefixes the per-listing sorted set of search terms
const RedisSearchTermKeyPrefix = "search:terms:"

type searchAnalyticsRepository struct {
	redisClient *redis.Client
}

func NewSearchAnalyticsRepository(redisClient *redis.Client) domainRepo.SearchAnalyticsRepository {
	return &searchAnalyticsRepository{redisClient: redisClient}
}

func searchTermKey(listing string) string {
	return RedisSearchTermKeyPrefix + listing
}

func (r *searchAnalyticsRepository) Record(ctx context.Context, listing, term string) error {
	if err := r.redisClient.ZIncrBy(ctx, searchTermKey(listing), 1, term).Err(); err != nil {
		return fmt.Errorf("record search term: %w", err)
	}
	return nil
}

func (r *searchAnalyticsRepository) Popular(ctx context.Context, listing string, limit int) ([]entity.SearchTerm, error) {
	results, err := r.redisClient.ZRevRangeWithScores(ctx, searchTermKey(listing), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read popular search terms: %w", err)
	}

	terms := make([]entity.SearchTerm, 0, len(results))
	for _, z := range results {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		terms = append(terms, entity.SearchTerm{Term: member, Count: int64(z.Score)})
	}
	return terms, nil
}
