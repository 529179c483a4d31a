// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package generator_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaguarX024/Ship-Tracker/fault"
	"github.com/jaguarX024/Ship-Tracker/generator"
)

func TestRange(t *testing.T) {
	g, err := generator.New(10, 20, generator.DefaultSeed)
	assert.Nil(t, err, "new generator")

	for i := 0; i < 1000; i += 1 {
		n := g.Int()
		if n < 10 || n > 20 {
			t.Fatalf("value: %d out of range", n)
		}
		n = g.Normal(15, 5)
		if n < 10 || n > 20 {
			t.Fatalf("normal value: %d out of range", n)
		}
	}
}

func TestReproducible(t *testing.T) {
	g1, _ := generator.New(10000, 99999, generator.DefaultSeed)
	g2, _ := generator.New(10000, 99999, generator.DefaultSeed)
	for i := 0; i < 100; i += 1 {
		assert.Equal(t, g1.Int(), g2.Int(), "sequence differs at: %d", i)
	}
}

func TestShuffle(t *testing.T) {
	g, _ := generator.New(1, 50, 99)
	values := g.Shuffle()
	assert.Equal(t, 50, len(values), "shuffle length")

	sort.Ints(values)
	for i, v := range values {
		assert.Equal(t, i+1, v, "missing value")
	}
}

func TestDistinct(t *testing.T) {
	g, _ := generator.New(1, 10, 7)

	values, err := g.Distinct(10)
	assert.Nil(t, err, "distinct")
	seen := make(map[int]struct{})
	for _, v := range values {
		_, ok := seen[v]
		assert.False(t, ok, "duplicate value: %d", v)
		seen[v] = struct{}{}
	}

	_, err = g.Distinct(11)
	assert.Equal(t, fault.ErrInvalidCount, err, "too many values")
}

func TestInvalidRange(t *testing.T) {
	_, err := generator.New(5, 4, 1)
	assert.True(t, fault.IsErrInvalid(err), "reversed range accepted")
}
