/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package jsonreport

import "github.com/invopop/jsonschema"

// Schema returns the JSON Schema describing Document.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		DoNotReference:             true,
	}
	s := r.Reflect(&Document{})
	s.Title = "Evaluation report"
	return s
}
