package testioc

import (
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

var (
	cache ecache.Cache
	rdb   redis.Cmdable
)

func InitCache() ecache.Cache {
	if cache != nil {
		return cache
	}
	cache = &ecache.NamespaceCache{
		C:         eredis.NewCache(InitRedisClient()),
		Namespace: "campus:",
	}
	return cache
}

func InitRedisClient() redis.Cmdable {
	if rdb != nil {
		return rdb
	}
	rdb = redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
	return rdb
}
