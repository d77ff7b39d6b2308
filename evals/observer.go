/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"fmt"
	"maps"
	"path"
	"slices"
	"sync"
)

// Observer receives the outcome of metric evaluations.
type Observer interface {
	// Fail records that an evaluation did not pass.
	Fail(string)
	// Log records an informational message.
	Log(string)
	// Grade records a score (usually 0.0-1.0) with its reasoning.
	Grade(score float64, reasoning string)
	// Increment is called once per observed evaluation.
	Increment()
	// Total returns the number of observed evaluations.
	Total() int64
}

// Record reports a single measured metric to obs: it always increments, grades
// when a score is present and fails when the metric does not pass.
func Record(obs Observer, m Metric) {
	obs.Increment()

	score, hasScore := m.Score()
	reason, _ := m.Reason()
	if hasScore {
		obs.Grade(score, reason)
	}
	if !Passed(m) {
		threshold, hasThreshold := m.Threshold()
		obs.Fail(fmt.Sprintf("%s: score=%s threshold=%s",
			NameOf(m), FormatScore(score, hasScore), FormatScore(threshold, hasThreshold)))
	}
}

// NamespacedObserver arranges Observers in a tree addressed by slash separated paths.
type NamespacedObserver[T Observer] struct {
	name     string
	inner    T
	factory  func(string) T
	children map[string]*NamespacedObserver[T]
	mu       sync.Mutex
}

// NewNamespacedObserver creates the root ("/") of an observer tree.
// factory is called once per node with the node's full path.
func NewNamespacedObserver[T Observer](factory func(string) T) *NamespacedObserver[T] {
	return newNode("/", factory)
}

func newNode[T Observer](name string, factory func(string) T) *NamespacedObserver[T] {
	return &NamespacedObserver[T]{
		name:     name,
		inner:    factory(name),
		factory:  factory,
		children: make(map[string]*NamespacedObserver[T]),
	}
}

// Path returns the full path of this node.
func (n *NamespacedObserver[T]) Path() string { return n.name }

// Inner returns the Observer backing this node.
func (n *NamespacedObserver[T]) Inner() T { return n.inner }

// Fail delegates to the inner Observer.
func (n *NamespacedObserver[T]) Fail(msg string) { n.inner.Fail(msg) }

// Log delegates to the inner Observer.
func (n *NamespacedObserver[T]) Log(msg string) { n.inner.Log(msg) }

// Grade delegates to the inner Observer.
func (n *NamespacedObserver[T]) Grade(score float64, reasoning string) {
	n.inner.Grade(score, reasoning)
}

// Increment delegates to the inner Observer.
func (n *NamespacedObserver[T]) Increment() { n.inner.Increment() }

// Total delegates to the inner Observer.
func (n *NamespacedObserver[T]) Total() int64 { return n.inner.Total() }

// Child returns the named child node, creating it on first use.
func (n *NamespacedObserver[T]) Child(name string) *NamespacedObserver[T] {
	n.mu.Lock()
	defer n.mu.Unlock()

	if child, ok := n.children[name]; ok {
		return child
	}
	child := newNode(path.Join(n.name, name), n.factory)
	n.children[name] = child
	return child
}

// Walk visits this node and then every descendant depth first, children in name order.
func (n *NamespacedObserver[T]) Walk(visitor func(string, T)) {
	visitor(n.name, n.inner)

	n.mu.Lock()
	names := slices.Sorted(maps.Keys(n.children))
	children := make([]*NamespacedObserver[T], 0, len(names))
	for _, name := range names {
		children = append(children, n.children[name])
	}
	n.mu.Unlock()

	for _, child := range children {
		child.Walk(visitor)
	}
}
