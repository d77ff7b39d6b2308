/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"fmt"
	"strings"

	"chainguard.dev/evalreport/evals"
	"chainguard.dev/sdk/pathtree"
)

// Generator summarizes an observer tree, returning the summary and whether anything failed.
type Generator func(obs *evals.NamespacedObserver[*evals.ResultCollector]) (string, bool)

var _ Generator = Tree

const maxReasonWidth = 60

// Table renders metrics as a markdown table. It returns "" when there are no metrics.
func Table(metrics []evals.Metric) string {
	if len(metrics) == 0 {
		return ""
	}

	var buf bytes.Buffer
	table := createStandardTable([]string{"Metric", "Score", "Threshold", "Pass", "Reason"}, &buf)
	for _, m := range metrics {
		score, hasScore := m.Score()
		threshold, hasThreshold := m.Threshold()
		reason, _ := m.Reason()

		pass := "✅"
		if !evals.Passed(m) {
			pass = "❌"
		}
		_ = table.Append([]string{
			evals.NameOf(m),
			evals.FormatScore(score, hasScore),
			evals.FormatScore(threshold, hasThreshold),
			pass,
			shorten(reason, maxReasonWidth),
		})
	}
	_ = table.Render()
	return buf.String()
}

// shorten flattens s to one line and cuts it to n characters, marking the cut.
func shorten(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// Tree renders every node of obs that observed at least one evaluation, with its
// pass count, average grade and failure messages. It reports whether any node failed.
func Tree(obs *evals.NamespacedObserver[*evals.ResultCollector]) (string, bool) {
	tree := pathtree.New()
	tree.PrintOption = pathtree.KeyValueLabel
	failed := false

	obs.Walk(func(name string, c *evals.ResultCollector) {
		total := c.Total()
		if total == 0 {
			return
		}
		failures := c.Failures()
		passed := max(total-int64(len(failures)), 0)

		value := fmt.Sprintf("%d/%d passed", passed, total)
		if avg, ok := c.AverageGrade(); ok {
			value = fmt.Sprintf("%s, %.2f avg", value, avg)
		}
		if len(failures) > 0 {
			failed = true
			value = "❌ " + value
		}

		label := "(1 run)"
		if total != 1 {
			label = fmt.Sprintf("(%d runs)", total)
		}
		if err := tree.Add(name, value, label); err != nil {
			_ = tree.Update(name, value, label)
		}
		for i, failure := range failures {
			_ = tree.Add(fmt.Sprintf("%s/%d", name, i+1), "FAIL", failure)
		}
	})

	return tree.String(), failed
}
