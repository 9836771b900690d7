// Package search implements the filter query engine: a stateless pure
// transformation that reduces a player slice to the subset satisfying
// every active predicate. Predicates combine with logical AND and a nil
// predicate means "no constraint" -- there is no magic "all" value
// inside the engine, only at the query-string boundary where the UI
// sends one.
package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/salihsuliman/queue-up/internal/model"
)

// AgeRange is a closed integer interval [Min, Max]
type AgeRange struct {
	Min int
	Max int
}

// Contains reports whether age falls inside the interval
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// String renders the interval in the "21-25" wire form
func (r AgeRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// ParseAgeRange parses a "min-max" string. Malformed input (wrong
// shape, non-numeric bounds, min > max) is rejected with an error
// wrapping model.ErrInvalidFilter rather than silently producing an
// always-false predicate; filter values come from untrusted query
// strings and the caller needs to tell a typo apart from an empty
// result.
func ParseAgeRange(s string) (AgeRange, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return AgeRange{}, fmt.Errorf("%w: age range %q is not of the form min-max", model.ErrInvalidFilter, s)
	}

	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return AgeRange{}, fmt.Errorf("%w: age range %q has a non-numeric minimum", model.ErrInvalidFilter, s)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return AgeRange{}, fmt.Errorf("%w: age range %q has a non-numeric maximum", model.ErrInvalidFilter, s)
	}
	if min > max {
		return AgeRange{}, fmt.Errorf("%w: age range %q has min greater than max", model.ErrInvalidFilter, s)
	}

	return AgeRange{Min: min, Max: max}, nil
}

// Filter holds one optional predicate per dimension. A nil field means
// the dimension is unconstrained. String predicates are exact and
// case-sensitive.
type Filter struct {
	Age        *AgeRange
	Profession *string
	Location   *string
	Rank       *string
}

// Active reports whether any predicate is set
func (f Filter) Active() bool {
	return f.Age != nil || f.Profession != nil || f.Location != nil || f.Rank != nil
}

// Matches reports whether p satisfies every active predicate.
// Evaluation short-circuits on the first failing predicate.
func (f Filter) Matches(p *model.Player) bool {
	if f.Age != nil && !f.Age.Contains(p.Age) {
		return false
	}
	if f.Profession != nil && p.Profession != *f.Profession {
		return false
	}
	if f.Location != nil && p.Location != *f.Location {
		return false
	}
	// An unranked player never matches a rank predicate
	if f.Rank != nil && (p.Rank == "" || p.Rank != *f.Rank) {
		return false
	}
	return true
}

// Apply returns the players satisfying every active predicate,
// preserving input order. The input is never mutated; an empty result
// is a normal outcome.
func Apply(players []model.Player, f Filter) []model.Player {
	if !f.Active() {
		out := make([]model.Player, len(players))
		copy(out, players)
		return out
	}

	out := make([]model.Player, 0, len(players))
	for i := range players {
		if f.Matches(&players[i]) {
			out = append(out, players[i])
		}
	}
	return out
}

// noConstraint is the sentinel the browser UI sends for an unselected
// filter dropdown. Accepted at the boundary only; it never reaches
// Filter itself.
const noConstraint = "all"

// Query parameter names recognized by ParseQuery
const (
	ParamAge        = "age"
	ParamProfession = "profession"
	ParamLocation   = "location"
	ParamRank       = "rank"
)

// ParseQuery builds a Filter from URL query parameters. Absent, empty,
// and "all" values all mean "no constraint". A malformed age range is
// reported as a model.ErrInvalidFilter error.
func ParseQuery(q url.Values) (Filter, error) {
	var f Filter

	if v := q.Get(ParamAge); v != "" && v != noConstraint {
		r, err := ParseAgeRange(v)
		if err != nil {
			return Filter{}, err
		}
		f.Age = &r
	}
	if v := q.Get(ParamProfession); v != "" && v != noConstraint {
		f.Profession = &v
	}
	if v := q.Get(ParamLocation); v != "" && v != noConstraint {
		f.Location = &v
	}
	if v := q.Get(ParamRank); v != "" && v != noConstraint {
		f.Rank = &v
	}

	return f, nil
}
