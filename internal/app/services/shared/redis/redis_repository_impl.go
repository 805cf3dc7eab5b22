package redis

import (
	"context"
	"labportal-service/internal/app/contracts"
	"labportal-service/internal/app/models"
	"labportal-service/internal/pkg/constvars"
	"labportal-service/internal/pkg/exceptions"

	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}

	return data, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) SaveWorkflowHandoff(ctx context.Context, handoff *models.WorkflowHandoff, exp time.Duration) error {
	return r.Set(ctx, constvars.WorkflowHandoffKeyPrefix+handoff.OrderCode, handoff, exp)
}

func (r *redisRepository) GetWorkflowHandoff(ctx context.Context, orderCode string) (*models.WorkflowHandoff, error) {
	data, err := r.Get(ctx, constvars.WorkflowHandoffKeyPrefix+orderCode)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	handoff := new(models.WorkflowHandoff)
	err = json.Unmarshal([]byte(data), handoff)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return handoff, nil
}

func (r *redisRepository) DeleteWorkflowHandoff(ctx context.Context, orderCode string) error {
	return r.Delete(ctx, constvars.WorkflowHandoffKeyPrefix+orderCode)
}
