package recommend

import (
	"sort"
	"strings"

	"fleur-api/ai/catalog"
)

// fallbackScores are the synthetic match scores assigned to heuristic
// picks, descending.
var fallbackScores = []int{90, 85, 80}

// backfill tops up a validated list to exactly ResultCount entries using a
// deterministic catalog heuristic: products are ranked by rating with a
// boost when their scent family or notes appear in the quiz answers.
// Products already in the validated list are skipped.
func backfill(validated []Recommendation, products []catalog.Product, answers []Answer) []Recommendation {
	if len(validated) >= ResultCount {
		return validated[:ResultCount]
	}

	taken := make(map[string]bool, len(validated))
	for _, r := range validated {
		taken[r.ProductID] = true
	}

	answerText := strings.ToLower(answersText(answers))

	type scored struct {
		product catalog.Product
		score   float64
	}
	ranked := make([]scored, 0, len(products))
	for _, p := range products {
		if taken[p.ID] || !p.InStock {
			continue
		}
		s := p.Rating
		if p.ScentFamily != "" && strings.Contains(answerText, strings.ToLower(p.ScentFamily)) {
			s += 2
		}
		for _, note := range p.Notes {
			if note != "" && strings.Contains(answerText, strings.ToLower(note)) {
				s += 0.5
			}
		}
		ranked = append(ranked, scored{product: p, score: s})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].product.Name < ranked[j].product.Name
	})

	for _, r := range ranked {
		if len(validated) >= ResultCount {
			break
		}
		score := fallbackScores[len(fallbackScores)-1]
		if len(validated) < len(fallbackScores) {
			score = fallbackScores[len(validated)]
		}
		// never rank a heuristic pick above a model-validated one
		if n := len(validated); n > 0 && validated[n-1].MatchScore < score {
			score = validated[n-1].MatchScore
		}
		validated = append(validated, Recommendation{
			ProductID:  r.product.ID,
			Name:       r.product.Name,
			Price:      r.product.Price,
			MatchScore: score,
			Reason:     fallbackReason(r.product),
		})
	}
	return validated
}

func fallbackReason(p catalog.Product) string {
	var b strings.Builder
	b.WriteString("A ")
	if p.ScentFamily != "" {
		b.WriteString(strings.ToLower(p.ScentFamily))
		b.WriteString(" ")
	}
	b.WriteString("favorite loved across our collection")
	if len(p.Notes) > 0 {
		b.WriteString(", with notes of ")
		b.WriteString(strings.Join(p.Notes, ", "))
	}
	b.WriteString(".")
	return b.String()
}

func answersText(answers []Answer) string {
	parts := make([]string, 0, len(answers))
	for _, a := range answers {
		parts = append(parts, a.Answer)
	}
	return strings.Join(parts, " ")
}
