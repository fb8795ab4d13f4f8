package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/campus/internal/cdk/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const cdkExpiration = 10 * time.Minute

var ErrCDKNotCached = errors.New("兑换码缓存未命中")

type CDKCache interface {
	SetCDK(ctx context.Context, c domain.CDK) error
	GetCDK(ctx context.Context, code string) (domain.CDK, error)
	DelCDK(ctx context.Context, code string) error
}

type cdkCache struct {
	ec ecache.Cache
}

func NewCDKCache(ec ecache.Cache) CDKCache {
	return &cdkCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "cdk:",
		},
	}
}

func (c *cdkCache) SetCDK(ctx context.Context, cdk domain.CDK) error {
	data, err := json.Marshal(cdk)
	if err != nil {
		return errors.Wrap(err, "序列化兑换码失败")
	}
	return c.ec.Set(ctx, c.codeKey(cdk.Code), string(data), cdkExpiration)
}

func (c *cdkCache) GetCDK(ctx context.Context, code string) (domain.CDK, error) {
	val := c.ec.Get(ctx, c.codeKey(code))
	if val.KeyNotFound() {
		return domain.CDK{}, ErrCDKNotCached
	}
	if val.Err != nil {
		return domain.CDK{}, errors.Wrap(val.Err, "查询兑换码缓存出错")
	}
	var cdk domain.CDK
	err := json.Unmarshal([]byte(val.Val.(string)), &cdk)
	if err != nil {
		return domain.CDK{}, errors.Wrap(err, "反序列化兑换码失败")
	}
	return cdk, nil
}

func (c *cdkCache) DelCDK(ctx context.Context, code string) error {
	_, err := c.ec.Delete(ctx, c.codeKey(code))
	return err
}

func (c *cdkCache) codeKey(code string) string {
	return fmt.Sprintf("code:%s", code)
}
