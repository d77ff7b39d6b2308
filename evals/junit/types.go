/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package junit

import "encoding/xml"

// Testsuites is the document root.
type Testsuites struct {
	XMLName xml.Name    `xml:"testsuites"`
	Suites  []Testsuite `xml:"testsuite"`
}

// Testsuite is a suite of test cases. Reports written by this package hold one test case.
type Testsuite struct {
	Name       string     `xml:"name,attr"`
	Tests      int        `xml:"tests,attr"`
	Failures   int        `xml:"failures,attr"`
	Errors     int        `xml:"errors,attr"`
	Skipped    int        `xml:"skipped,attr"`
	Time       string     `xml:"time,attr"`
	Timestamp  string     `xml:"timestamp,attr"`
	Properties []Property `xml:"properties>property"`
	Testcases  []Testcase `xml:"testcase"`
}

// Property is a name/value pair attached to a suite.
type Property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Testcase is a single test execution.
type Testcase struct {
	Name      string  `xml:"name,attr"`
	Classname string  `xml:"classname,attr"`
	Time      string  `xml:"time,attr"`
	Failure   *Result `xml:"failure,omitempty"`
	SystemOut *Output `xml:"system-out,omitempty"`
}

// Result describes a failed test case.
type Result struct {
	Message string `xml:"message,attr"`
	Data    string `xml:",cdata"`
}

// Output is captured free text.
type Output struct {
	Data string `xml:",cdata"`
}

// Property returns the value of the named suite property.
func (s Testsuite) Property(name string) (string, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
