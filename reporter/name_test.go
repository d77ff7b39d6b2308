/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reporter

import "testing"

func TestShortFuncName(t *testing.T) {
	tests := []struct {
		full string
		want string
	}{
		{"chainguard.dev/evalreport/reporter_test.TestAnswer", "TestAnswer"},
		{"chainguard.dev/evalreport/reporter_test.TestAnswer.func1", "TestAnswer"},
		{"chainguard.dev/evalreport/reporter_test.TestAnswer.func1.2", "TestAnswer"},
		{"chainguard.dev/evalreport/reporter_test.TestAnswer.gowrap1", "TestAnswer"},
		{"example.com/pkg.(*Suite).TestAnswer", "TestAnswer"},
		{"example.com/pkg.(*Suite).TestAnswer.func3", "TestAnswer"},
		{"example.com/pkg.evaluate[...]", "evaluate"},
		{"gopkg.in/yaml%2ev3.handle", "handle"},
		{"main.main", "main"},
		{"main.func1", DefaultTestName},
		{"", DefaultTestName},
	}
	for _, tt := range tests {
		if got := shortFuncName(tt.full); got != tt.want {
			t.Errorf("shortFuncName(%q): got = %q, wanted = %q", tt.full, got, tt.want)
		}
	}
}

func TestCallerName(t *testing.T) {
	if got, want := callerName(0), "TestCallerName"; got != want {
		t.Errorf("callerName(0): got = %q, wanted = %q", got, want)
	}

	func() {
		if got, want := callerName(0), "TestCallerName"; got != want {
			t.Errorf("callerName(0) in closure: got = %q, wanted = %q", got, want)
		}
	}()

	if got := callerName(1000); got != DefaultTestName {
		t.Errorf("callerName(1000): got = %q, wanted = %q", got, DefaultTestName)
	}
}
