// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/phaetonhq/phaeton-transactions/fault"
)

const rootField = "(root)"

// Violation - one failed schema rule
type Violation struct {
	DataPath string                 // e.g. ".asset.votes.0"
	Message  string                 // human readable description
	Keyword  string                 // rule that failed e.g. "format", "required"
	Params   map[string]interface{} // rule parameters
	Value    interface{}            // the offending value
}

// Schema - a compiled schema document
type Schema struct {
	compiled *gojsonschema.Schema
}

// Compile - compile a schema held as nested maps
func Compile(document map[string]interface{}) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(document))
	if nil != err {
		return nil, err
	}
	return &Schema{compiled: s}, nil
}

// MustCompile - compile or panic, for package level schemas
func MustCompile(document map[string]interface{}) *Schema {
	s, err := Compile(document)
	if nil != err {
		fault.PanicWithError("schema compile", err)
	}
	return s
}

// Validate - evaluate the schema against value
//
// value is anything that encodes to JSON; the result is sorted by data
// path so that reports are stable
func (s *Schema) Validate(value interface{}) []Violation {
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(value))
	if nil != err {
		return []Violation{
			{
				Message: fmt.Sprintf("cannot evaluate: %s", err),
				Keyword: "document",
			},
		}
	}
	if result.Valid() {
		return nil
	}

	violations := make([]Violation, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		path := dataPath(e.Field())
		details := e.Details()
		if "required" == e.Type() {
			if property, ok := details["property"].(string); ok {
				path += "." + property
			}
		}
		violations = append(violations, Violation{
			DataPath: path,
			Message:  e.Description(),
			Keyword:  e.Type(),
			Params:   details,
			Value:    e.Value(),
		})
	}

	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].DataPath == violations[j].DataPath {
			return violations[i].Keyword < violations[j].Keyword
		}
		return violations[i].DataPath < violations[j].DataPath
	})
	return violations
}

// convert a dotted field name to a path with a leading dot
func dataPath(field string) string {
	if rootField == field || "" == field {
		return ""
	}
	return "." + field
}
