// Package score turns per-keyword match presence into a weighted
// relevance score with a mandatory-skill-miss penalty.
package score

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrNoKeywords rejects an analysis request whose keyword union is empty.
// Ratios are undefined without at least one classified keyword, so this
// is a precondition violation, not a zero score.
var ErrNoKeywords = errors.New("no keywords configured")

// Keywords classifies the pattern list for scoring. Mandatory membership
// takes priority: a keyword listed as both mandatory and preferred scores
// as mandatory. Other keywords (tools and frameworks outside both sets)
// are matched and reported but carry no score weight.
type Keywords struct {
	Mandatory map[string]bool
	Preferred map[string]bool
	Other     map[string]bool
}

// NewKeywords builds a classification from the three raw lists,
// deduplicating across sets with mandatory-first priority.
func NewKeywords(required, preferred, tools []string) Keywords {
	k := Keywords{
		Mandatory: make(map[string]bool),
		Preferred: make(map[string]bool),
		Other:     make(map[string]bool),
	}
	for _, s := range required {
		if s != "" {
			k.Mandatory[s] = true
		}
	}
	for _, s := range preferred {
		if s != "" && !k.Mandatory[s] {
			k.Preferred[s] = true
		}
	}
	for _, s := range tools {
		if s != "" && !k.Mandatory[s] && !k.Preferred[s] {
			k.Other[s] = true
		}
	}
	return k
}

// All returns the deduplicated keyword union in sorted order. This is the
// pattern list handed to the matchers.
func (k Keywords) All() []string {
	all := make([]string, 0, len(k.Mandatory)+len(k.Preferred)+len(k.Other))
	for s := range k.Mandatory {
		all = append(all, s)
	}
	for s := range k.Preferred {
		all = append(all, s)
	}
	for s := range k.Other {
		all = append(all, s)
	}
	sort.Strings(all)
	return all
}

// Empty reports whether no keywords are configured at all.
func (k Keywords) Empty() bool {
	return len(k.Mandatory)+len(k.Preferred)+len(k.Other) == 0
}

// Split partitions the keyword union into matched and missing lists,
// both sorted, for reporting.
func (k Keywords) Split(matched map[string]bool) (found, missing []string) {
	for _, s := range k.All() {
		if matched[s] {
			found = append(found, s)
		} else {
			missing = append(missing, s)
		}
	}
	return found, missing
}

// Config holds the scoring parameters.
type Config struct {
	MandatoryWeight float64
	PreferredWeight float64
	PenaltyPercent  float64
	CaseSensitive   bool
}

// DefaultConfig returns the documented defaults: 0.70/0.30 weights, a 20%
// mandatory-miss penalty, case-insensitive matching.
func DefaultConfig() Config {
	return Config{MandatoryWeight: 0.7, PreferredWeight: 0.3, PenaltyPercent: 20}
}

// Validate checks the weight and penalty constraints.
func (c Config) Validate() error {
	if math.Abs(c.MandatoryWeight+c.PreferredWeight-1.0) > 1e-9 {
		return fmt.Errorf("mandatory and preferred weights must sum to 1.0, got %.3f",
			c.MandatoryWeight+c.PreferredWeight)
	}
	if c.PenaltyPercent < 0 || c.PenaltyPercent > 100 {
		return fmt.Errorf("penalty percent must be in [0,100], got %.1f", c.PenaltyPercent)
	}
	return nil
}

// Document is the scored result for one document.
type Document struct {
	MandatoryRatio float64 // percent of mandatory keywords matched
	PreferredRatio float64 // percent of preferred keywords matched
	Weighted       float64 // final score in [0,100]
	PenaltyApplied bool
}

// Compute scores one document from its per-keyword presence map.
//
// mandatory_ratio and preferred_ratio are percentages of their sets;
// the weighted score blends them by the configured weights, then the
// penalty multiplier fires when any mandatory keyword is missing.
// Empty mandatory and preferred sets score 100 before any penalty: with
// nothing demanded, the document vacuously satisfies the position.
func Compute(matched map[string]bool, kw Keywords, cfg Config) Document {
	matchedMandatory := 0
	for s := range kw.Mandatory {
		if matched[s] {
			matchedMandatory++
		}
	}
	matchedPreferred := 0
	for s := range kw.Preferred {
		if matched[s] {
			matchedPreferred++
		}
	}

	d := Document{MandatoryRatio: 100, PreferredRatio: 100}
	if len(kw.Mandatory) > 0 {
		d.MandatoryRatio = float64(matchedMandatory) / float64(len(kw.Mandatory)) * 100
	}
	if len(kw.Preferred) > 0 {
		d.PreferredRatio = float64(matchedPreferred) / float64(len(kw.Preferred)) * 100
	}

	d.Weighted = d.MandatoryRatio*cfg.MandatoryWeight + d.PreferredRatio*cfg.PreferredWeight
	if matchedMandatory < len(kw.Mandatory) {
		d.Weighted *= 1 - cfg.PenaltyPercent/100
		d.PenaltyApplied = true
	}
	return d
}
