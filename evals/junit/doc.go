/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package junit writes evaluation runs as JUnit XML reports.

Each report holds exactly one test suite with one test case:

	<?xml version="1.0" encoding="UTF-8"?>
	<testsuites>
	  <testsuite name="TestAnswer" tests="1" failures="0" errors="0" skipped="0" time="1.204" timestamp="2025-06-01T12:00:00">
	    <properties>
	      <property name="input" value="..."></property>
	      <property name="actual_output" value="..."></property>
	      <property name="expected_output" value="..."></property>
	    </properties>
	    <testcase name="TestAnswer" classname="TestAnswer" time="1.204">
	      <system-out><![CDATA[[Correctness] score=0.9 threshold=0.7
	ok]]></system-out>
	    </testcase>
	  </testsuite>
	</testsuites>

Property values and the failure message attribute are cut to 500 characters;
the failure body keeps the full error text. Metric lines are separated by a line
holding "---". The system-out element is omitted when there are no metrics.

# Usage

	path, err := junit.Write("test-results/answer.xml", evals.Run{
		TestName: "TestAnswer",
		Duration: elapsed,
		TestCase: tc,
		Metrics:  metrics,
		Failure:  assertErr,
	})
*/
package junit
