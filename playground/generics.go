// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package playground

import (
	"cmp"
	"fmt"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ava-labs/playgrounds/box"
	"github.com/ava-labs/playgrounds/generics"
	"github.com/ava-labs/playgrounds/queue"
	"github.com/ava-labs/playgrounds/reward"
)

// dequeued formats the result of [queue.FIFO.Dequeue] along with the remaining
// elements.
func dequeued[T any](q *queue.FIFO[T]) string {
	x, ok := q.Dequeue()
	if !ok {
		return fmt.Sprintf("<empty>, elements %v", slices.Collect(q.All()))
	}
	return fmt.Sprintf("%v, elements %v", x, slices.Collect(q.All()))
}

// Generics returns the generics playground.
func Generics() Playground {
	var q queue.FIFO[int]

	return Playground{
		Name: GenericsName,
		Examples: []Example{
			{
				Name: "enqueue 4, 2",
				Run: value(func() []int {
					q.Enqueue(4)
					q.Enqueue(2)
					return slices.Collect(q.All())
				}),
			},
			{Name: "dequeue", Run: value(func() string { return dequeued(&q) })},
			{Name: "dequeue", Run: value(func() string { return dequeued(&q) })},
			{Name: "dequeue", Run: value(func() string { return dequeued(&q) })},
			{
				Name: "enqueue 5, 3 then peek",
				Run: value(func() int {
					q.Enqueue(5)
					q.Enqueue(3)
					x, _ := q.Peek()
					return x
				}),
			},
			{
				Name: "pairs (sorted for display)",
				Run: value(func() []generics.Pair[string, int] {
					ps := generics.Pairs(map[string]int{"minimum": 199, "maximum": 299})
					slices.SortFunc(ps, func(a, b generics.Pair[string, int]) int {
						return cmp.Compare(a.Key, b.Key)
					})
					return ps
				}),
			},
			{
				Name: "ordered pairs",
				Run: value(func() []generics.Pair[int, string] {
					m := orderedmap.New[int, string]()
					m.Set(1, "Swift")
					m.Set(2, "Generics")
					m.Set(3, "Rule")
					return generics.OrderedPairs(m)
				}),
			},
			{
				Name: "mid [3 5 1 2 4]",
				Run: value(func() int {
					m, _ := generics.Mid([]int{3, 5, 1, 2, 4})
					return m
				}),
			},
			{
				Name: "add 1 + 2.9",
				Run:  value(func() float64 { return generics.Add[float64](1, 2.9) }),
			},
			{
				Name: "add strings",
				Run:  value(func() string { return generics.Add("Generics", " are Awesome!!! :]") }),
			},
			{
				Name: "add tokens",
				Run: func() (any, error) {
					// 2^64 doesn't fit in a uint64, let alone an int.
					x, err := generics.ParseTokens("18446744073709551616")
					if err != nil {
						return nil, err
					}
					return generics.AddWith(x, generics.NewTokens(1)), nil
				},
			},
			{
				Name: "wrap gift",
				Run:  value(func() string { return new(box.Gift[box.Rose]).Wrap() }),
			},
			{
				Name: "wrap valentines",
				Run:  value(func() string { return new(box.ValentinesBox).Wrap() }),
			},
			{
				Name: "reward",
				Run:  value(func() string { return reward.TreasureChest("💰").Message() }),
			},
		},
	}
}
