// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package generator - range bounded pseudo random numbers for building
// test and demonstration fleets
//
// a fixed seed gives the same sequence on every run, a zero seed
// selects a time based seed
package generator

import (
	"math/rand"
	"time"

	"github.com/jaguarX024/Ship-Tracker/fault"
)

// DefaultSeed - fixed seed for reproducible sequences
const DefaultSeed = 10

// Generator - produces integers in [min, max]
type Generator struct {
	min int
	max int
	rnd *rand.Rand
}

// New - create a generator for [min, max]
func New(min int, max int, seed int64) (*Generator, error) {
	if max < min {
		return nil, fault.ErrInvalidCount
	}
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		min: min,
		max: max,
		rnd: rand.New(rand.NewSource(seed)),
	}, nil
}

// Min - lowest value that can be returned
func (g *Generator) Min() int {
	return g.min
}

// Max - highest value that can be returned
func (g *Generator) Max() int {
	return g.max
}

// Int - uniformly distributed value
func (g *Generator) Int() int {
	return g.min + g.rnd.Intn(g.max-g.min+1)
}

// Normal - normally distributed value, redrawn until inside the range
func (g *Generator) Normal(mean float64, stdDev float64) int {
	for {
		n := int(g.rnd.NormFloat64()*stdDev + mean)
		if n >= g.min && n <= g.max {
			return n
		}
	}
}

// Shuffle - every value of the range exactly once in random order
func (g *Generator) Shuffle() []int {
	values := make([]int, 0, g.max-g.min+1)
	for i := g.min; i <= g.max; i += 1 {
		values = append(values, i)
	}
	g.rnd.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}

// Distinct - n different values in random order
func (g *Generator) Distinct(n int) ([]int, error) {
	if n < 0 || n > g.max-g.min+1 {
		return nil, fault.ErrInvalidCount
	}
	seen := make(map[int]struct{}, n)
	values := make([]int, 0, n)
	for len(values) < n {
		v := g.Int()
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values, nil
}
