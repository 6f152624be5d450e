package models

// CheckResult represents the validation outcome for a single commit
type CheckResult struct {
	// Commit is the commit that was validated
	Commit CommitInfo
	// Violations found in the commit message (empty = passed)
	Violations []Violation
}

// Passed returns true if the commit message matched the template
func (r CheckResult) Passed() bool {
	return len(r.Violations) == 0
}

// CountFailed returns the number of failing commits in a set of results
func CountFailed(results []CheckResult) int {
	failed := 0
	for _, r := range results {
		if !r.Passed() {
			failed++
		}
	}
	return failed
}

// CountViolations returns the total number of violations across all results
func CountViolations(results []CheckResult) int {
	total := 0
	for _, r := range results {
		total += len(r.Violations)
	}
	return total
}
