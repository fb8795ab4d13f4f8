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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator()
	code, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, code, CodeLength)
	for _, c := range code {
		assert.True(t, (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'),
			"非法字符: %c", c)
	}
}

func TestGenerator_GenerateDistinct(t *testing.T) {
	g := NewGenerator()
	const n = 1000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		_, ok := seen[code]
		require.False(t, ok, "生成了重复的兑换码: %s", code)
		seen[code] = struct{}{}
	}
}

func TestGenerator_GenerateWith(t *testing.T) {
	testCases := []struct {
		name       string
		length     int
		randomFunc func(p []byte) error
		wantCode   string
		assertErr  assert.ErrorAssertionFunc
	}{
		{
			name:   "全零字节映射到字母表首位",
			length: 4,
			randomFunc: func(p []byte) error {
				return nil
			},
			wantCode:  "AAAA",
			assertErr: assert.NoError,
		},
		{
			name:   "字节按字母表长度取模",
			length: 3,
			randomFunc: func(p []byte) error {
				p[0], p[1], p[2] = 25, 26, 36
				return nil
			},
			wantCode:  "Z0A",
			assertErr: assert.NoError,
		},
		{
			name:   "随机源失败",
			length: 8,
			randomFunc: func(p []byte) error {
				return errors.New("entropy exhausted")
			},
			assertErr: assert.Error,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGeneratorWith(tc.length, tc.randomFunc)
			code, err := g.Generate()
			tc.assertErr(t, err)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}
