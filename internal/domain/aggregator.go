package domain

import "fmt"

// Aggregator folds check outcomes into per-category tallies and, at
// finalize time, a weighted overall score and grade. It is written to by
// one evaluator at a time; there are no concurrent writers.
type Aggregator struct {
	rules   *Rules
	tallies map[string]*CategoryTally
	order   []string // category insertion order
	report  *ValidationReport
}

// NewAggregator creates an aggregator bound to a validated rule set.
func NewAggregator(rules *Rules) *Aggregator {
	return &Aggregator{
		rules:   rules,
		tallies: make(map[string]*CategoryTally),
	}
}

// Record appends an outcome to its category tally. It fails only on a
// malformed outcome (unknown severity or a category without a configured
// weight) — that signals a programming or configuration error, not a
// project defect.
func (a *Aggregator) Record(o CheckOutcome) error {
	if !o.Severity.Valid() {
		return fmt.Errorf("check %s/%s has unknown severity %q", o.Category, o.Check, o.Severity)
	}
	weight, ok := a.rules.Categories[o.Category]
	if !ok {
		return fmt.Errorf("no weight configured for category %q", o.Category)
	}

	t := a.tallies[o.Category]
	if t == nil {
		t = &CategoryTally{Name: o.Category, Weight: weight}
		a.tallies[o.Category] = t
		a.order = append(a.order, o.Category)
	}
	t.Results = append(t.Results, o)

	// A non-passing info outcome lands in the warned bucket together
	// with warnings: advisory signals never block a grade but still cost
	// half credit. This two-way split is intentional.
	switch {
	case o.Passed:
		t.ChecksPassed++
	case o.Severity == SeverityCritical:
		t.ChecksFailed++
	default:
		t.ChecksWarned++
	}

	a.report = nil
	return nil
}

// Finalize computes all category scores, the weighted overall score and
// the grade. Calling it again without new outcomes returns the same
// report.
func (a *Aggregator) Finalize() *ValidationReport {
	if a.report != nil {
		return a.report
	}

	categories := make(map[string]*CategoryTally, len(a.tallies))
	var weightedSum float64
	var weightTotal int

	// Only categories with at least one recorded outcome exist in
	// a.tallies; disabled or inapplicable categories therefore
	// contribute neither score nor weight.
	for _, name := range a.order {
		t := a.tallies[name]
		total := t.Total()
		t.Score = (float64(t.ChecksPassed) + 0.5*float64(t.ChecksWarned)) / float64(total) * 100
		categories[name] = t

		weightedSum += t.Score * float64(t.Weight)
		weightTotal += t.Weight
	}

	overall := 0.0
	if weightTotal > 0 {
		overall = weightedSum / float64(weightTotal)
	}

	band := a.rules.Grading.GradeFor(overall)
	a.report = &ValidationReport{
		OverallScore:     overall,
		Grade:            band.Grade,
		GradeDescription: band.Description,
		Categories:       categories,
	}
	return a.report
}

// ExitStatus maps the overall score to the tri-state process outcome
// using the configured exit thresholds. These are independent of the
// grade-band table.
func (a *Aggregator) ExitStatus() ExitStatus {
	return a.rules.ExitThresholds.StatusFor(a.Finalize().OverallScore)
}
