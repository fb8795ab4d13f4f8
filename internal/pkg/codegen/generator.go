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

package codegen

import (
	"crypto/rand"
	"fmt"
)

const (
	// CodeLength 兑换码固定长度
	CodeLength = 16
	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator 生成定长的大写字母+数字兑换码。
// 码空间为 36^16,随机碰撞概率可以忽略不计,
// 真正的唯一性由存储层的唯一索引兜底。
type Generator struct {
	length int
	// randomFunc 填充随机字节,可注入方便测试
	randomFunc func(p []byte) error
}

func NewGenerator() *Generator {
	return NewGeneratorWith(CodeLength, func(p []byte) error {
		_, err := rand.Read(p)
		return err
	})
}

func NewGeneratorWith(length int, randomFunc func(p []byte) error) *Generator {
	return &Generator{length: length, randomFunc: randomFunc}
}

// Generate 生成一个候选兑换码,调用方需要在插入时校验唯一性
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, g.length)
	if err := g.randomFunc(buf); err != nil {
		return "", fmt.Errorf("生成随机字节失败: %w", err)
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(buf), nil
}
