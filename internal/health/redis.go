package health

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/45h1f/learn-docker/internal/constants"
)

// RedisDependency probes the Redis client. Liveness is a PING; metadata is
// the server version and memory usage from INFO plus the key count from
// DBSIZE.
type RedisDependency struct {
	client *redis.Client
}

func NewRedisDependency(client *redis.Client) *RedisDependency {
	return &RedisDependency{client: client}
}

func (r *RedisDependency) Name() string {
	return string(constants.ServiceRedis)
}

func (r *RedisDependency) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisDependency) Metadata(ctx context.Context) (map[string]string, error) {
	info, err := r.client.Info(ctx).Result()
	if err != nil {
		return nil, err
	}

	version := infoField(info, "redis_version")
	if version == "" {
		return nil, fmt.Errorf("INFO reply missing redis_version")
	}

	keyCount, err := r.client.DBSize(ctx).Result()
	if err != nil {
		return nil, err
	}

	detail := map[string]string{
		DetailVersion:  version,
		DetailKeyCount: strconv.FormatInt(keyCount, 10),
	}
	if memory := infoField(info, "used_memory_human"); memory != "" {
		detail[DetailMemoryUsed] = memory
	}
	return detail, nil
}

// infoField extracts one "field:value" line from a Redis INFO reply.
func infoField(info, field string) string {
	for _, line := range strings.Split(info, "\n") {
		if strings.HasPrefix(line, field+":") {
			return strings.TrimSpace(strings.TrimPrefix(line, field+":"))
		}
	}
	return ""
}
