// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rlock

import (
	"context"
	"errors"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrLockNotAcquired 在等待时间内没抢到锁,属于瞬时错误,调用方可以重试
	ErrLockNotAcquired = errors.New("获取分布式锁超时")
)

// 只有持有者才能释放锁
var luaUnlock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`)

const retryInterval = 50 * time.Millisecond

// Client 基于Redis SETNX实现的按key互斥锁,带租约,
// 持有者异常退出后锁会随租约过期自动释放
type Client struct {
	rdb    redis.Cmdable
	logger *elog.Component
}

func NewClient(rdb redis.Cmdable) *Client {
	return &Client{
		rdb:    rdb,
		logger: elog.DefaultLogger,
	}
}

// Lock 在waitTime内反复尝试抢锁,抢到后租约为leaseTime
func (c *Client) Lock(ctx context.Context, key string, waitTime, leaseTime time.Duration) (*Lock, error) {
	token := shortuuid.New()
	deadline := time.Now().Add(waitTime)
	for {
		ok, err := c.rdb.SetNX(ctx, key, token, leaseTime).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return &Lock{rdb: c.rdb, key: key, token: token}, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, ErrLockNotAcquired
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

type Lock struct {
	rdb   redis.Cmdable
	key   string
	token string
}

func (l *Lock) Unlock(ctx context.Context) error {
	return luaUnlock.Run(ctx, l.rdb, []string{l.key}, l.token).Err()
}

// ExecuteWithLock 持有key对应的锁执行body。
// 抢锁失败返回ErrLockNotAcquired,body的结果原样透传
func ExecuteWithLock[T any](ctx context.Context, client *Client, key string,
	waitTime, leaseTime time.Duration, body func() (T, error)) (T, error) {
	var zero T
	lock, err := client.Lock(ctx, key, waitTime, leaseTime)
	if err != nil {
		return zero, err
	}
	defer func() {
		if er := lock.Unlock(ctx); er != nil {
			client.logger.Warn("释放分布式锁失败",
				elog.FieldErr(er),
				elog.String("key", key))
		}
	}()
	return body()
}
