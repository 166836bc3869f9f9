package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/digitalimprov/footybets-ai/internal/ingest"
)

const (
	seasonStream = "footybets.ingest.seasons"
	runStream    = "footybets.ingest.runs"
)

// RedisPublisher announces ingestion progress on Redis streams so
// downstream consumers (model refresh, cache invalidation) know when
// new season data has landed.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher connects to Redis and verifies the connection.
func NewRedisPublisher(redisURL string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &RedisPublisher{client: client}, nil
}

// Close closes the Redis connection
func (rp *RedisPublisher) Close() error {
	return rp.client.Close()
}

// PublishSeasonResult announces one committed or failed season.
func (rp *RedisPublisher) PublishSeasonResult(ctx context.Context, runID string, result ingest.SeasonResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling season result: %w", err)
	}

	return rp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: seasonStream,
		Values: map[string]interface{}{
			"run_id":    runID,
			"season":    result.Season,
			"committed": result.Committed,
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}

// PublishRunSummary announces a finished run.
func (rp *RedisPublisher) PublishRunSummary(ctx context.Context, summary *ingest.Summary) error {
	return rp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: runStream,
		Values: map[string]interface{}{
			"run_id":            summary.RunID.String(),
			"dry_run":           summary.DryRun,
			"seasons":           len(summary.Seasons),
			"committed_seasons": summary.CommittedSeasons(),
			"games":             summary.TotalGames(),
			"stat_rows":         summary.TotalStatRows(),
			"page_errors":       len(summary.PageErrors),
			"timestamp":         time.Now().Unix(),
		},
	}).Err()
}
