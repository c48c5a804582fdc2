package recommend

import (
	"strings"

	"fleur-api/ai/catalog"
)

const defaultFuzzyRatio = 0.6

// matchCatalog resolves a model-suggested product name to a catalog entry.
// Exact match (case-insensitive, trimmed) is tried first, then a token
// overlap fuzzy match at the given ratio. A nil return means the candidate
// should be dropped.
func matchCatalog(name string, products []catalog.Product, fuzzyRatio float64) *catalog.Product {
	if fuzzyRatio <= 0 {
		fuzzyRatio = defaultFuzzyRatio
	}
	needle := normalizeName(name)
	if needle == "" {
		return nil
	}

	for i := range products {
		if normalizeName(products[i].Name) == needle {
			return &products[i]
		}
	}

	var best *catalog.Product
	var bestScore float64
	needleTokens := strings.Fields(needle)
	for i := range products {
		score := tokenOverlap(needleTokens, strings.Fields(normalizeName(products[i].Name)))
		if score > bestScore {
			bestScore = score
			best = &products[i]
		}
	}
	if bestScore >= fuzzyRatio {
		return best
	}
	return nil
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// tokenOverlap scores two token sets by shared-token ratio. Partial tokens
// count when one token is a prefix of the other, which resolves singular
// and plural drift like "secret" against "secrets".
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matched := 0
	used := make([]bool, len(b))
	for _, ta := range a {
		for j, tb := range b {
			if used[j] {
				continue
			}
			if ta == tb || strings.HasPrefix(tb, ta) || strings.HasPrefix(ta, tb) {
				used[j] = true
				matched++
				break
			}
		}
	}
	denom := len(a)
	if len(b) > denom {
		denom = len(b)
	}
	return float64(matched) / float64(denom)
}
