package anglecache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/planets/internal/domain/orbit"
)

const defaultPrefix = "planets:angle"

// ValkeyStore shares computed angles between replicas through a
// Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetAngle(ctx context.Context, target string, day time.Time) (float64, bool, error) {
	cmd := s.client.B().Get().Key(s.key(target, day)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	angle, err := strconv.ParseFloat(payload, 64)
	if err != nil {
		return 0, false, fmt.Errorf("decode cached angle: %w", err)
	}
	return angle, true, nil
}

func (s *ValkeyStore) SaveAngle(ctx context.Context, target string, day time.Time, angle float64, ttl time.Duration) error {
	// 'g' with -1 precision round-trips the exact float64.
	value := strconv.FormatFloat(angle, 'g', -1, 64)
	builder := s.client.B().Set().Key(s.key(target, day)).Value(value)
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) key(target string, day time.Time) string {
	return s.prefix + ":" + entryKey(target, day)
}

// entryKey is "<target>:<YYYY-MM-DD>" with spaces in the target folded to
// underscores.
func entryKey(target string, day time.Time) string {
	return strings.ReplaceAll(target, " ", "_") + ":" + day.UTC().Format(time.DateOnly)
}

var _ orbit.AngleCache = (*ValkeyStore)(nil)
