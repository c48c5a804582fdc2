package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleur-api/ai/catalog"
	"fleur-api/ai/completion"
)

type fakeCompleter struct {
	result   completion.Result
	requests []completion.Request
}

func (f *fakeCompleter) Complete(ctx context.Context, req completion.Request) completion.Result {
	f.requests = append(f.requests, req)
	return f.result
}

type fakeCatalog struct {
	products []catalog.Product
	err      error
}

func (f *fakeCatalog) ListAll(ctx context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

func quizProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "prod_ocean_secrets", Name: "Ocean Secrets", Price: 300, ScentFamily: "Fresh", Notes: []string{"Sea Breeze", "Citrus"}, Rating: 4.7, InStock: true},
		{ID: "prod_lavender_bliss", Name: "Lavender Bliss", Price: 280, ScentFamily: "Floral", Notes: []string{"Lavender", "Chamomile"}, Rating: 4.8, InStock: true},
		{ID: "prod_musk_oudh", Name: "Musk Oudh", Price: 350, ScentFamily: "Woody", Notes: []string{"Oudh", "Musk"}, Rating: 4.9, InStock: true},
		{ID: "prod_citrus_burst", Name: "Citrus Burst", Price: 260, ScentFamily: "Citrus", Notes: []string{"Orange", "Lemon"}, Rating: 4.5, InStock: true},
		{ID: "prod_out_of_stock", Name: "Retired Blend", Price: 200, ScentFamily: "Oriental", Rating: 5.0, InStock: false},
	}
}

func fullQuiz() []Answer {
	return []Answer{
		{QuestionID: QuestionMood, Answer: "relaxed"},
		{QuestionID: QuestionSpace, Answer: "bedroom"},
		{QuestionID: QuestionScentFamily, Answer: "floral"},
		{QuestionID: QuestionIntensity, Answer: "subtle"},
	}
}

func TestRecommendValidatesQuiz(t *testing.T) {
	e := NewEngine(&fakeCompleter{}, &fakeCatalog{products: quizProducts()}, 0)

	_, err := e.Recommend(context.Background(), []Answer{{QuestionID: QuestionMood, Answer: "calm"}})
	assert.ErrorIs(t, err, ErrIncompleteQuiz)

	dup := fullQuiz()
	dup[1] = Answer{QuestionID: QuestionMood, Answer: "again"}
	_, err = e.Recommend(context.Background(), dup)
	assert.ErrorIs(t, err, ErrIncompleteQuiz)

	unknown := fullQuiz()
	unknown[3].QuestionID = "favorite_color"
	_, err = e.Recommend(context.Background(), unknown)
	assert.ErrorIs(t, err, ErrIncompleteQuiz)
}

func TestRecommendReconcilesFuzzyNamesAgainstCatalog(t *testing.T) {
	completer := &fakeCompleter{result: completion.Ok(`{"recommendations":[
		{"name": "Ocean Secret", "price": 9999, "match_score": 95, "reason": "fresh and calm"},
		{"name": "Lavender Bliss", "price": 1, "match_score": 90, "reason": "soothing"},
		{"name": "Midnight Phantom", "price": 500, "match_score": 85, "reason": "made up"}
	]}`)}
	e := NewEngine(completer, &fakeCatalog{products: quizProducts()}, 0)

	recs, err := e.Recommend(context.Background(), fullQuiz())
	require.NoError(t, err)
	require.Len(t, recs, ResultCount)

	// fuzzy match resolved and repriced from the catalog
	assert.Equal(t, "prod_ocean_secrets", recs[0].ProductID)
	assert.Equal(t, "Ocean Secrets", recs[0].Name)
	assert.Equal(t, 300.0, recs[0].Price)
	assert.Equal(t, 95, recs[0].MatchScore)

	assert.Equal(t, "prod_lavender_bliss", recs[1].ProductID)
	assert.Equal(t, 280.0, recs[1].Price)

	// the fictitious product was dropped and backfilled from the catalog
	assert.NotEqual(t, "Midnight Phantom", recs[2].Name)
	assert.LessOrEqual(t, recs[2].MatchScore, recs[1].MatchScore)
}

func TestRecommendFallsBackWhenModelFails(t *testing.T) {
	completer := &fakeCompleter{result: completion.Failed(completion.FailUpstream)}
	e := NewEngine(completer, &fakeCatalog{products: quizProducts()}, 0)

	recs, err := e.Recommend(context.Background(), fullQuiz())
	require.NoError(t, err)
	require.Len(t, recs, ResultCount)

	for i, r := range recs {
		assert.NotEmpty(t, r.ProductID)
		assert.NotEmpty(t, r.Reason)
		assert.NotEqual(t, "prod_out_of_stock", r.ProductID)
		if i > 0 {
			assert.LessOrEqual(t, recs[i].MatchScore, recs[i-1].MatchScore)
		}
	}
}

func TestRecommendFallbackPrefersAnswerAffinity(t *testing.T) {
	completer := &fakeCompleter{result: completion.Failed(completion.FailUpstream)}
	e := NewEngine(completer, &fakeCatalog{products: quizProducts()}, 0)

	recs, err := e.Recommend(context.Background(), fullQuiz())
	require.NoError(t, err)

	// the floral answer boosts Lavender Bliss past higher-rated products
	assert.Equal(t, "prod_lavender_bliss", recs[0].ProductID)
}

func TestRecommendUnparseableOutputDegrades(t *testing.T) {
	completer := &fakeCompleter{result: completion.Ok(`{"recommendations":[]}`)}
	e := NewEngine(completer, &fakeCatalog{products: quizProducts()}, 0)

	recs, err := e.Recommend(context.Background(), fullQuiz())
	require.NoError(t, err)
	assert.Len(t, recs, ResultCount)
}

func TestRecommendCatalogErrorIsFatal(t *testing.T) {
	e := NewEngine(&fakeCompleter{}, &fakeCatalog{err: context.DeadlineExceeded}, 0)

	_, err := e.Recommend(context.Background(), fullQuiz())
	assert.Error(t, err)
}

func TestRecommendAcceptsBareArray(t *testing.T) {
	completer := &fakeCompleter{result: completion.Ok(`[
		{"name": "Musk Oudh", "match_score": 92, "reason": "deep and warm"}
	]`)}
	e := NewEngine(completer, &fakeCatalog{products: quizProducts()}, 0)

	recs, err := e.Recommend(context.Background(), fullQuiz())
	require.NoError(t, err)
	require.Len(t, recs, ResultCount)
	assert.Equal(t, "prod_musk_oudh", recs[0].ProductID)
	assert.Equal(t, 92, recs[0].MatchScore)
}

func TestRecommendDeduplicatesCandidates(t *testing.T) {
	completer := &fakeCompleter{result: completion.Ok(`{"recommendations":[
		{"name": "Musk Oudh", "match_score": 92, "reason": "first"},
		{"name": "musk oudh", "match_score": 88, "reason": "again"}
	]}`)}
	e := NewEngine(completer, &fakeCatalog{products: quizProducts()}, 0)

	recs, err := e.Recommend(context.Background(), fullQuiz())
	require.NoError(t, err)

	count := 0
	for _, r := range recs {
		if r.ProductID == "prod_musk_oudh" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRecommendRequestUsesJSONFormat(t *testing.T) {
	completer := &fakeCompleter{result: completion.Failed(completion.FailUpstream)}
	e := NewEngine(completer, &fakeCatalog{products: quizProducts()}, 0)

	_, err := e.Recommend(context.Background(), fullQuiz())
	require.NoError(t, err)

	require.Len(t, completer.requests, 1)
	req := completer.requests[0]
	assert.Equal(t, completion.FormatJSON, req.Format)
	assert.Contains(t, req.System, "Ocean Secrets")
	assert.Contains(t, req.Turns[0].Text, "relaxed")
}
