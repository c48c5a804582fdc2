package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"fleur-api/ai/catalog"
	"fleur-api/ai/completion"
	"fleur-api/logger"
	"fleur-api/trace"
)

const matcherPreamble = `You are an expert fragrance matcher for Fleur Fragrances. Based on the user's quiz answers, recommend exactly %d perfect fragrances from the collection below. Choose ONLY from this collection.

%s
Return JSON in this exact format, ordered by descending match_score:
{
  "recommendations": [
    {"name": "Product Name", "price": 0, "match_score": 95, "reason": "Why this matches"}
  ]
}`

// Engine produces validated recommendations from quiz submissions.
type Engine struct {
	completer  completion.Completer
	catalog    catalog.Service
	fuzzyRatio float64
}

// NewEngine builds an Engine. fuzzyRatio tunes the catalog name matcher;
// 0 or less keeps the default.
func NewEngine(c completion.Completer, cat catalog.Service, fuzzyRatio float64) *Engine {
	return &Engine{completer: c, catalog: cat, fuzzyRatio: fuzzyRatio}
}

// Recommend turns a complete quiz submission into exactly ResultCount
// catalog-grounded recommendations. Model failures and unresolvable model
// output degrade to a deterministic catalog heuristic; only an invalid
// submission or an unreadable catalog is returned as an error.
func (e *Engine) Recommend(ctx context.Context, answers []Answer) ([]Recommendation, error) {
	if err := validateAnswers(answers); err != nil {
		return nil, err
	}

	products, err := e.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	result := e.completer.Complete(ctx, completion.Request{
		System: fmt.Sprintf(matcherPreamble, ResultCount, enumerateCatalog(products)),
		Turns: []completion.Turn{{
			Role: completion.RoleUser,
			Text: answersPrompt(answers),
		}},
		Format: completion.FormatJSON,
	})

	var validated []Recommendation
	if result.OK() {
		validated = e.reconcile(ctx, result.Text, products)
	} else {
		logger.ErrorWithFields("scent finder completion failed", logger.Fields{
			"reason":     string(result.Reason),
			"request_id": trace.RequestIDFromContext(ctx),
		})
	}

	return backfill(validated, products, answers), nil
}

// reconcile parses the model output and validates every candidate against
// the catalog. Unresolvable names are dropped, and price and product id
// always come from the catalog entry, never from the model.
func (e *Engine) reconcile(ctx context.Context, raw string, products []catalog.Product) []Recommendation {
	candidates, err := parseCandidates(raw)
	if err != nil {
		logger.ErrorWithFields("scent finder response unparseable", logger.Fields{
			"error":      err.Error(),
			"request_id": trace.RequestIDFromContext(ctx),
		})
		return nil
	}

	var validated []Recommendation
	seen := make(map[string]bool)
	for _, c := range candidates {
		p := matchCatalog(c.Name, products, e.fuzzyRatio)
		if p == nil {
			logger.WarnWithFields("dropping recommendation not in catalog", logger.Fields{
				"name":       c.Name,
				"request_id": trace.RequestIDFromContext(ctx),
			})
			continue
		}
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		validated = append(validated, Recommendation{
			ProductID:  p.ID,
			Name:       p.Name,
			Price:      p.Price,
			MatchScore: c.MatchScore,
			Reason:     c.Reason,
		})
	}

	// keep the model's descending score order among retained candidates
	sort.SliceStable(validated, func(i, j int) bool {
		return validated[i].MatchScore > validated[j].MatchScore
	})
	if len(validated) > ResultCount {
		validated = validated[:ResultCount]
	}
	return validated
}

// parseCandidates accepts either the documented wrapper object or a bare
// array, which some model revisions emit.
func parseCandidates(raw string) ([]Candidate, error) {
	var wrapper struct {
		Recommendations []Candidate `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err == nil && len(wrapper.Recommendations) > 0 {
		return wrapper.Recommendations, nil
	}
	var bare []Candidate
	if err := json.Unmarshal([]byte(raw), &bare); err == nil && len(bare) > 0 {
		return bare, nil
	}
	return nil, fmt.Errorf("no recommendations found in model output")
}

func enumerateCatalog(products []catalog.Product) string {
	var b strings.Builder
	for i, p := range products {
		fmt.Fprintf(&b, "%d. %s (₹%.0f) - %s", i+1, p.Name, p.Price, p.ScentFamily)
		if len(p.Notes) > 0 {
			fmt.Fprintf(&b, ", %s", strings.Join(p.Notes, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func answersPrompt(answers []Answer) string {
	var b strings.Builder
	b.WriteString("Based on these quiz answers, recommend fragrances:\n")
	for _, a := range answers {
		fmt.Fprintf(&b, "- %s: %s\n", a.QuestionID, a.Answer)
	}
	b.WriteString("\nReturn only valid JSON.")
	return b.String()
}
