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

//go:build e2e

package rlock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	require.NoError(t, rdb.Ping(context.Background()).Err())
	return NewClient(rdb)
}

func TestLock_MutualExclusion(t *testing.T) {
	client := newTestClient(t)
	key := "test:rlock:" + shortuuid.New()

	lock, err := client.Lock(context.Background(), key, 100*time.Millisecond, 3*time.Second)
	require.NoError(t, err)
	defer func() { _ = lock.Unlock(context.Background()) }()

	_, err = client.Lock(context.Background(), key, 200*time.Millisecond, 3*time.Second)
	assert.ErrorIs(t, err, ErrLockNotAcquired)
}

func TestLock_ReacquireAfterUnlock(t *testing.T) {
	client := newTestClient(t)
	key := "test:rlock:" + shortuuid.New()

	lock, err := client.Lock(context.Background(), key, 100*time.Millisecond, 3*time.Second)
	require.NoError(t, err)
	require.NoError(t, lock.Unlock(context.Background()))

	lock2, err := client.Lock(context.Background(), key, 100*time.Millisecond, 3*time.Second)
	require.NoError(t, err)
	_ = lock2.Unlock(context.Background())
}

func TestLock_UnlockOnlyOwnToken(t *testing.T) {
	client := newTestClient(t)
	key := "test:rlock:" + shortuuid.New()

	lock1, err := client.Lock(context.Background(), key, 100*time.Millisecond, 3*time.Second)
	require.NoError(t, err)

	// 伪造一个同key不同token的锁,释放不应影响lock1
	fake := &Lock{rdb: client.rdb, key: key, token: "not-the-owner"}
	require.NoError(t, fake.Unlock(context.Background()))

	_, err = client.Lock(context.Background(), key, 100*time.Millisecond, 3*time.Second)
	assert.ErrorIs(t, err, ErrLockNotAcquired)
	_ = lock1.Unlock(context.Background())
}

func TestExecuteWithLock_Serializes(t *testing.T) {
	client := newTestClient(t)
	key := "test:rlock:" + shortuuid.New()

	var inBody atomic.Int32
	var wg sync.WaitGroup
	const n = 10
	var acquired atomic.Int32
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ExecuteWithLock(context.Background(), client, key,
				time.Second, 3*time.Second, func() (any, error) {
					require.Equal(t, int32(1), inBody.Add(1))
					defer inBody.Add(-1)
					time.Sleep(10 * time.Millisecond)
					return nil, nil
				})
			if err == nil {
				acquired.Add(1)
			}
		}()
	}
	wg.Wait()
	// 等待1s足够10个10ms的临界区依次执行完
	assert.Equal(t, int32(n), acquired.Load())
}
