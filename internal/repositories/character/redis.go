package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	indexKey           = "character:index"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func characterKey(id string) string {
	return characterKeyPrefix + id
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID).
				WithMeta("character_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var ch dnd5e.Character
	if err := json.Unmarshal(result, &ch); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}

	return &LoadOutput{Character: &ch}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	id := input.Character.ID

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	summary, err := json.Marshal(input.Character.Summary())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character summary")
	}

	// Start transaction
	pipe := r.client.TxPipeline()

	// No TTL for characters
	pipe.Set(ctx, characterKey(id), data, 0)
	indexed := pipe.HSet(ctx, indexKey, id, summary)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}

	// HSet reports how many fields were added, so 1 means the ID was new
	created := indexed.Val() == 1
	slog.DebugContext(ctx, "saved character",
		"character_id", id,
		"created", created,
		"bytes", len(data))

	return &SaveOutput{Character: input.Character, Created: created}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Start transaction
	pipe := r.client.TxPipeline()
	deleted := pipe.Del(ctx, characterKey(input.ID))
	pipe.HDel(ctx, indexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	if deleted.Val() == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID).
			WithMeta("character_id", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := r.client.HGetAll(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read character index",
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	summaries := make([]dnd5e.CharacterSummary, 0, len(entries))
	for id, raw := range entries {
		var summary dnd5e.CharacterSummary
		if err := json.Unmarshal([]byte(raw), &summary); err != nil {
			slog.WarnContext(ctx, "skipping unreadable character summary",
				"character_id", id,
				"error", err.Error())
			continue
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Name != summaries[j].Name {
			return summaries[i].Name < summaries[j].Name
		}
		return summaries[i].ID < summaries[j].ID
	})

	slog.DebugContext(ctx, "listed characters", "count", len(summaries))

	return &ListOutput{Characters: summaries}, nil
}

func (r *redisRepository) Reindex(ctx context.Context, _ ReindexInput) (*ReindexOutput, error) {
	summaries := make(map[string]any)
	corrupt := []string{}

	iter := r.client.Scan(ctx, 0, characterKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == indexKey {
			continue
		}
		id := strings.TrimPrefix(key, characterKeyPrefix)

		data, err := r.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var ch dnd5e.Character
		if err := json.Unmarshal(data, &ch); err != nil || ch.ID != id {
			slog.WarnContext(ctx, "found unreadable character",
				"key", key,
				"bytes", len(data))
			corrupt = append(corrupt, id)
			continue
		}

		summary, err := json.Marshal(ch.Summary())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal summary for %s", id)
		}
		summaries[id] = summary
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan characters")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, indexKey)
	if len(summaries) > 0 {
		pipe.HSet(ctx, indexKey, summaries)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to rebuild character index")
	}

	sort.Strings(corrupt)
	slog.InfoContext(ctx, "rebuilt character index",
		"indexed", len(summaries),
		"corrupt", len(corrupt))

	return &ReindexOutput{Indexed: len(summaries), Corrupt: corrupt}, nil
}
