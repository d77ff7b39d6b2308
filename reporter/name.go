/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reporter

import (
	"runtime"
	"strings"
)

// DefaultTestName is used when no test name is given and none can be inferred.
const DefaultTestName = "test"

// callerName returns the short name of the function skip frames above the caller
// of callerName.
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return DefaultTestName
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return DefaultTestName
	}
	return shortFuncName(fn.Name())
}

// shortFuncName strips the package path, receiver and closure suffixes from a
// runtime function name:
//
//	chainguard.dev/evalreport/reporter_test.TestAnswer.func1 -> TestAnswer
//	example.com/pkg.(*Suite).TestAnswer                      -> TestAnswer
func shortFuncName(full string) string {
	name := strings.ReplaceAll(full, "[...]", "")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	// The last path element has its dots escaped, so the first dot ends the package.
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	var last string
	for _, part := range strings.Split(name, ".") {
		if isClosurePart(part) {
			break
		}
		last = part
	}
	if last == "" || strings.HasPrefix(last, "(") {
		return DefaultTestName
	}
	return last
}

// isClosurePart matches the compiler generated name segments of closures
// ("func1", "1") and go statement wrappers ("gowrap1").
func isClosurePart(part string) bool {
	for _, prefix := range []string{"func", "gowrap", ""} {
		rest, ok := strings.CutPrefix(part, prefix)
		if ok && rest != "" && strings.Trim(rest, "0123456789") == "" {
			return true
		}
	}
	return false
}
