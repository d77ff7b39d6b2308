/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals_test

import (
	"fmt"
	"sync"
	"testing"

	"chainguard.dev/evalreport/evals"
	"github.com/google/go-cmp/cmp"
)

// testObserver records every call it receives.
type testObserver struct {
	name     string
	failures []string
	logs     []string
	count    int64
}

func (o *testObserver) Fail(msg string) { o.failures = append(o.failures, msg) }
func (o *testObserver) Log(msg string)  { o.logs = append(o.logs, msg) }
func (o *testObserver) Grade(score float64, reasoning string) {
	o.logs = append(o.logs, fmt.Sprintf("Grade: %.2f - %s", score, reasoning))
}
func (o *testObserver) Increment()   { o.count++ }
func (o *testObserver) Total() int64 { return o.count }

func TestRecord(t *testing.T) {
	tests := []struct {
		name         string
		metric       evals.Metric
		wantFailures []string
		wantLogs     []string
	}{{
		name:     "passing",
		metric:   evals.NewMetric("Correctness").WithScore(0.9).WithThreshold(0.7).WithReason("right"),
		wantLogs: []string{"Grade: 0.90 - right"},
	}, {
		name:         "failing",
		metric:       evals.NewMetric("Relevancy").WithScore(0.4).WithThreshold(0.5),
		wantFailures: []string{"Relevancy: score=0.4 threshold=0.5"},
		wantLogs:     []string{"Grade: 0.40 - "},
	}, {
		name:         "unscored",
		metric:       evals.NewMetric("Toxicity").WithThreshold(1),
		wantFailures: []string{"Toxicity: score=n/a threshold=1.0"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &testObserver{}
			evals.Record(obs, tt.metric)

			if obs.count != 1 {
				t.Errorf("count: got = %d, wanted = 1", obs.count)
			}
			if diff := cmp.Diff(tt.wantFailures, obs.failures); diff != "" {
				t.Errorf("failures mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantLogs, obs.logs); diff != "" {
				t.Errorf("logs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNamespacedObserver(t *testing.T) {
	created := map[string]*testObserver{}
	root := evals.NewNamespacedObserver(func(name string) *testObserver {
		o := &testObserver{name: name}
		created[name] = o
		return o
	})

	if got := root.Path(); got != "/" {
		t.Errorf("root path: got = %q, wanted = /", got)
	}

	test := root.Child("TestCapital")
	metric := test.Child("Correctness")
	if got := metric.Path(); got != "/TestCapital/Correctness" {
		t.Errorf("child path: got = %q, wanted = /TestCapital/Correctness", got)
	}
	if root.Child("TestCapital") != test {
		t.Error("Child: got a new node, wanted the existing one")
	}

	metric.Increment()
	metric.Fail("below threshold")
	metric.Log("note")
	metric.Grade(0.5, "half")

	inner := metric.Inner()
	if inner != created["/TestCapital/Correctness"] {
		t.Error("Inner: got a different observer than the factory produced")
	}
	if got := metric.Total(); got != 1 {
		t.Errorf("Total: got = %d, wanted = 1", got)
	}
	if diff := cmp.Diff([]string{"below threshold"}, inner.failures); diff != "" {
		t.Errorf("failures mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"note", "Grade: 0.50 - half"}, inner.logs); diff != "" {
		t.Errorf("logs mismatch (-want +got):\n%s", diff)
	}
	if got := root.Total(); got != 0 {
		t.Errorf("root Total: got = %d, wanted = 0", got)
	}
}

func TestNamespacedObserverWalk(t *testing.T) {
	root := evals.NewNamespacedObserver(func(name string) *testObserver {
		return &testObserver{name: name}
	})
	root.Child("b").Child("y")
	root.Child("a")
	root.Child("b").Child("x")

	var got []string
	root.Walk(func(name string, o *testObserver) {
		if name != o.name {
			t.Errorf("Walk: visitor name %q, observer name %q", name, o.name)
		}
		got = append(got, name)
	})
	if diff := cmp.Diff([]string{"/", "/a", "/b", "/b/x", "/b/y"}, got); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestNamespacedObserverConcurrentChild(t *testing.T) {
	root := evals.NewNamespacedObserver(func(string) *evals.ResultCollector {
		return evals.NewResultCollector(nil)
	})

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			evals.Record(root.Child("TestCapital").Child("Correctness"), evals.NewMetric("Correctness").WithScore(1))
		}()
	}
	wg.Wait()

	if got := root.Child("TestCapital").Child("Correctness").Total(); got != 20 {
		t.Errorf("Total: got = %d, wanted = 20", got)
	}
}
