// Package recommend turns a completed scent finder quiz into a ranked,
// catalog-grounded recommendation list. Model output is reconciled against
// the live catalog; names that cannot be resolved are dropped rather than
// fabricated, and a deterministic fallback guarantees the caller always
// receives exactly three results.
package recommend

import (
	"errors"
	"fmt"
)

// ResultCount is the fixed size of every recommendation list.
const ResultCount = 3

// Quiz question identifiers. A submission must contain exactly one answer
// per identifier.
const (
	QuestionMood        = "mood"
	QuestionSpace       = "space"
	QuestionScentFamily = "scent_family"
	QuestionIntensity   = "intensity"
)

// QuestionIDs lists the fixed quiz schema in presentation order.
var QuestionIDs = []string{QuestionMood, QuestionSpace, QuestionScentFamily, QuestionIntensity}

// Answer is one quiz response.
type Answer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// Candidate is a raw model suggestion before catalog reconciliation.
type Candidate struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	MatchScore int     `json:"match_score"`
	Reason     string  `json:"reason"`
}

// Recommendation is a catalog-validated result. ProductID and Price come
// from the catalog, never from the model.
type Recommendation struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	MatchScore int     `json:"match_score"`
	Reason     string  `json:"reason"`
}

// ErrIncompleteQuiz is returned when a submission does not contain exactly
// one answer per expected question.
var ErrIncompleteQuiz = errors.New("quiz submission incomplete")

// validateAnswers checks the fixed quiz schema: every expected question
// answered exactly once, no unknown questions, no empty answers.
func validateAnswers(answers []Answer) error {
	seen := make(map[string]bool, len(QuestionIDs))
	expected := make(map[string]bool, len(QuestionIDs))
	for _, id := range QuestionIDs {
		expected[id] = true
	}
	for _, a := range answers {
		if !expected[a.QuestionID] {
			return fmt.Errorf("%w: unknown question %q", ErrIncompleteQuiz, a.QuestionID)
		}
		if seen[a.QuestionID] {
			return fmt.Errorf("%w: duplicate answer for %q", ErrIncompleteQuiz, a.QuestionID)
		}
		if a.Answer == "" {
			return fmt.Errorf("%w: empty answer for %q", ErrIncompleteQuiz, a.QuestionID)
		}
		seen[a.QuestionID] = true
	}
	if len(seen) != len(QuestionIDs) {
		return fmt.Errorf("%w: expected %d answers, got %d", ErrIncompleteQuiz, len(QuestionIDs), len(seen))
	}
	return nil
}
