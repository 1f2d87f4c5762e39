// Package report runs batches of WCAG contrast validations over named color
// combinations and summarizes the outcome.
package report

import (
	"math"

	"github.com/b/theme-audit/pkg/wcag"
)

// Combination names one foreground/background pair to validate, with the
// text-size context the thresholds depend on.
type Combination struct {
	Label      string
	Foreground string
	Background string
	Options    wcag.Options
}

// Entry is the validated result for one combination, annotated with the
// original inputs for traceability. Err is set when a color failed to parse;
// such entries count as failures but never abort the batch.
type Entry struct {
	Combination
	Result wcag.Result
	Err    error
}

// Failed reports whether the entry should appear in the failure section.
func (e Entry) Failed() bool {
	return e.Err != nil || e.Result.Level == wcag.LevelFail
}

// Warning reports whether the entry passes its accessibility bar but still
// falls short of AAA.
func (e Entry) Warning() bool {
	return e.Err == nil && e.Result.Accessible && e.Result.Level != wcag.LevelAAA
}

// ValidateCombinations validates each combination in order. Output order
// matches input order, one entry per combination, no deduplication.
func ValidateCombinations(combos []Combination) []Entry {
	entries := make([]Entry, 0, len(combos))
	for _, c := range combos {
		res, err := wcag.Validate(c.Foreground, c.Background, c.Options)
		entries = append(entries, Entry{Combination: c, Result: res, Err: err})
	}
	return entries
}

// Report summarizes a validated batch.
type Report struct {
	Theme    string
	Entries  []Entry
	Score    int // accessible combinations as a rounded percentage
	Failed   []Entry
	Warnings []Entry
}

// Build assembles a report from validated entries. Score is
// accessible/total*100 rounded to the nearest integer; an empty batch
// scores 100.
func Build(themeName string, entries []Entry) Report {
	r := Report{Theme: themeName, Entries: entries}

	accessible := 0
	for _, e := range entries {
		if e.Err == nil && e.Result.Accessible {
			accessible++
		}
		if e.Failed() {
			r.Failed = append(r.Failed, e)
		} else if e.Warning() {
			r.Warnings = append(r.Warnings, e)
		}
	}

	if len(entries) == 0 {
		r.Score = 100
	} else {
		r.Score = int(math.Round(float64(accessible) / float64(len(entries)) * 100))
	}
	return r
}

// Run validates a combination list and builds its report in one step.
func Run(themeName string, combos []Combination) Report {
	return Build(themeName, ValidateCombinations(combos))
}
