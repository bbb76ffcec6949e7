// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package search

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"animdocs/internal/models"
)

// genRecord draws titles and snippets from a tiny alphabet so that random
// queries actually hit something.
func genRecord() gopter.Gen {
	return gopter.CombineGens(
		gen.RegexMatch(`[abAB ]{0,8}`), // Title
		gen.RegexMatch(`[abcC ]{0,12}`), // Snippet
		gen.Bool(),                      // has member
		gen.RegexMatch(`[aBc]{1,6}`),    // member name
	).Map(func(values []interface{}) models.Record {
		r := models.Record{
			Type:    models.RecordTypeGuide,
			Title:   values[0].(string),
			Snippet: values[1].(string),
		}
		if values[2].(bool) {
			r.Type = models.RecordTypeAPIMember
			r.Member = &models.APIMember{Name: values[3].(string)}
		}
		return r
	})
}

func genQuery() gopter.Gen {
	return gen.RegexMatch(`[ aAbBcC]{0,3}`)
}

func TestFilterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	// Property: filtering the filtered set by the same query changes nothing.
	properties.Property("filter is idempotent", prop.ForAll(
		func(recs []models.Record, q string) bool {
			once := Filter(recs, q)
			twice := Filter(once, q)
			return reflect.DeepEqual(once, twice)
		},
		gen.SliceOf(genRecord()),
		genQuery(),
	))

	// Property: an empty query never returns anything, whatever the records.
	properties.Property("empty query yields empty result", prop.ForAll(
		func(recs []models.Record) bool {
			return len(Filter(recs, "")) == 0
		},
		gen.SliceOf(genRecord()),
	))

	// Property: the result is exactly the in-order subsequence of matching records.
	properties.Property("result equals matching subsequence", prop.ForAll(
		func(recs []models.Record, q string) bool {
			nq := Normalize(q)
			var want []models.Record
			for _, r := range recs {
				if Match(r, nq) {
					want = append(want, r)
				}
			}
			return reflect.DeepEqual(want, Filter(recs, q))
		},
		gen.SliceOf(genRecord()),
		genQuery(),
	))

	// Property: the result never grows beyond the input.
	properties.Property("result is bounded by input", prop.ForAll(
		func(recs []models.Record, q string) bool {
			return len(Filter(recs, q)) <= len(recs)
		},
		gen.SliceOf(genRecord()),
		genQuery(),
	))

	properties.TestingRun(t)
}
