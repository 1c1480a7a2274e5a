package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Namespace gom các key public của một entity (vd "public:artists").
// Key thật mang generation của namespace; Invalidate tăng generation, nên một
// load đọc generation trước thao tác ghi chỉ ghi vào key cũ không ai đọc nữa.
type Namespace string

func (ns Namespace) generationKey() string {
	return "cachegen:" + string(ns)
}

func (ns Namespace) key(generation int64, suffix string) string {
	return fmt.Sprintf("%s:g%d:%s", ns, generation, suffix)
}

func (ns Namespace) generation(ctx context.Context, c Cache) (int64, error) {
	var generation int64
	if _, err := c.Get(ctx, ns.generationKey(), &generation); err != nil {
		return 0, err
	}
	return generation, nil
}

// ReadThrough đọc key từ cache, miss thì gọi load rồi ghi lại.
// Lỗi cache chỉ được log; dữ liệu luôn lấy được từ load.
func ReadThrough[T any](ctx context.Context, c Cache, ns Namespace, suffix string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	// Generation phải đọc trước load
	generation, err := ns.generation(ctx, c)
	if err != nil {
		log.Warn().Err(err).Str("namespace", string(ns)).Msg("cache generation read failed")
		return load(ctx)
	}
	key := ns.key(generation, suffix)

	var cached T
	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed")
	} else if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
	return value, nil
}

// Invalidate tăng generation rồi dọn key của các generation cũ; lỗi chỉ được log
func Invalidate(ctx context.Context, c Cache, namespaces ...Namespace) {
	for _, ns := range namespaces {
		if _, err := c.Increment(ctx, ns.generationKey()); err != nil {
			log.Warn().Err(err).Str("namespace", string(ns)).Msg("cache generation bump failed")
		}
		if err := c.DeletePattern(ctx, string(ns)+":*"); err != nil {
			log.Warn().Err(err).Str("namespace", string(ns)).Msg("cache invalidation failed")
		}
	}
}
