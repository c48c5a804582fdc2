package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleur-api/ai/catalog"
	"fleur-api/ai/completion"
	"fleur-api/ai/conversation"
	"fleur-api/ai/recommend"
	"fleur-api/auth"
	"fleur-api/dto"
	"fleur-api/kafka"
	"fleur-api/services"
)

type stubCompleter struct {
	result completion.Result
}

func (s stubCompleter) Complete(ctx context.Context, req completion.Request) completion.Result {
	return s.result
}

type stubCatalog struct{}

func (stubCatalog) ListAll(ctx context.Context) ([]catalog.Product, error) {
	return []catalog.Product{
		{ID: "prod_lavender_bliss", Name: "Lavender Bliss", Price: 280, ScentFamily: "Floral", Notes: []string{"Lavender"}, Rating: 4.8, InStock: true},
		{ID: "prod_ocean_secrets", Name: "Ocean Secrets", Price: 300, ScentFamily: "Fresh", Notes: []string{"Citrus"}, Rating: 4.7, InStock: true},
		{ID: "prod_musk_oudh", Name: "Musk Oudh", Price: 350, ScentFamily: "Woody", Notes: []string{"Oudh"}, Rating: 4.9, InStock: true},
	}, nil
}

func testAIRouter(t *testing.T, completer completion.Completer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "")
	t.Setenv("JWT_SECRET", "handler-test-secret")

	producer, err := kafka.NewFromEnv()
	require.NoError(t, err)
	jwtManager, err := auth.NewJWTManagerFromEnv()
	require.NoError(t, err)

	manager := conversation.NewManager(completer, conversation.NewInMemoryStore(), stubCatalog{}, 0)
	engine := recommend.NewEngine(completer, stubCatalog{}, 0)
	aiSvc := services.NewAIService(manager, engine, completion.DisabledAnalyzer(), producer)

	r := gin.New()
	r.POST("/api/ai/chat", ChatHandler(aiSvc, jwtManager))
	r.POST("/api/ai/scent-finder", ScentFinderHandler(aiSvc))
	r.POST("/api/ai/identify-perfume", IdentifyPerfumeHandler(aiSvc, jwtManager))
	return r
}

func TestChatHandlerReturnsReplyAndSession(t *testing.T) {
	r := testAIRouter(t, stubCompleter{result: completion.Ok("Lavender Bliss would suit a calm evening.")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(`{"message":"something calming"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ChatResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Lavender Bliss would suit a calm evening.", resp.Response)
	assert.NotEmpty(t, resp.SessionID)
}

func TestChatHandlerFallbackStillOK(t *testing.T) {
	r := testAIRouter(t, stubCompleter{result: completion.Failed(completion.FailUpstream)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ChatResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, conversation.FallbackReply, resp.Response)
}

func TestChatHandlerRejectsMissingMessage(t *testing.T) {
	r := testAIRouter(t, stubCompleter{result: completion.Ok("ok")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(`{"session_id":"s"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandlerRejectsInvalidToken(t *testing.T) {
	r := testAIRouter(t, stubCompleter{result: completion.Ok("ok")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScentFinderHandlerReturnsThreeRecommendations(t *testing.T) {
	r := testAIRouter(t, stubCompleter{result: completion.Ok(`{"recommendations":[
		{"name":"Lavender Bliss","match_score":95,"reason":"calming floral"}
	]}`)})

	body := `{"answers":[
		{"question_id":"mood","answer":"relaxed"},
		{"question_id":"space","answer":"bedroom"},
		{"question_id":"scent_family","answer":"floral"},
		{"question_id":"intensity","answer":"subtle"}
	]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/scent-finder", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ScentFinderResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 3)
	assert.Equal(t, "prod_lavender_bliss", resp.Recommendations[0].ProductID)
	assert.Equal(t, 280.0, resp.Recommendations[0].Price)
}

func TestScentFinderHandlerRejectsIncompleteQuiz(t *testing.T) {
	r := testAIRouter(t, stubCompleter{result: completion.Ok("{}")})

	body := `{"answers":[{"question_id":"mood","answer":"relaxed"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/scent-finder", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "incomplete_quiz", resp.Error)
}

func TestIdentifyPerfumeHandlerRequiresImage(t *testing.T) {
	r := testAIRouter(t, stubCompleter{result: completion.Ok("ok")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/identify-perfume", strings.NewReader(`{"question":"what is this"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "image_required", resp.Error)
}

func TestIdentifyPerfumeHandlerUnavailableWithoutModel(t *testing.T) {
	r := testAIRouter(t, stubCompleter{result: completion.Ok("ok")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/identify-perfume", strings.NewReader(`{"image_url":"https://example.com/bottle.jpg"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
