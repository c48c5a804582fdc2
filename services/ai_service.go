package services

import (
	"context"

	"github.com/google/uuid"

	"fleur-api/ai/completion"
	"fleur-api/ai/conversation"
	"fleur-api/ai/recommend"
	"fleur-api/dto"
	"fleur-api/events"
	"fleur-api/kafka"
	"fleur-api/logger"
)

const identifyPreamble = `You are an expert perfume identifier and fragrance analyst. When shown an image:
1. Identify the perfume brand and name if recognizable
2. Describe the bottle design and visual elements
3. Suggest what scent family it likely belongs to based on branding/design
4. Recommend similar fragrances from Fleur Fragrances collection

If the image shows flowers, ingredients, or ambiance, describe what scent profile they represent.`

// AIService fronts the chat assistant, the scent finder, and the perfume
// identifier, emitting an event per completed interaction.
type AIService struct {
	chat     *conversation.Manager
	engine   *recommend.Engine
	analyzer completion.ImageAnalyzer
	producer kafka.Producer
}

func NewAIService(chat *conversation.Manager, engine *recommend.Engine, analyzer completion.ImageAnalyzer, producer kafka.Producer) *AIService {
	return &AIService{chat: chat, engine: engine, analyzer: analyzer, producer: producer}
}

// Chat handles one assistant round trip. userID may be empty; the chat is
// open to guests.
func (s *AIService) Chat(ctx context.Context, userID string, req dto.ChatRequestDTO) (*dto.ChatResponseDTO, error) {
	reply, err := s.chat.SendMessage(ctx, userID, req.SessionID, req.Message)
	if err != nil {
		return nil, err
	}

	event := events.AIChatCompletedEvent{
		BaseEvent: events.NewBase(events.AIChatCompleted),
		SessionID: reply.SessionID,
		UserID:    userID,
		Fallback:  reply.Response == conversation.FallbackReply,
	}
	if err := s.producer.PublishEvent(kafka.TopicAIEvents, event); err != nil {
		logger.Log.Errorf("failed to publish ai.chat_completed: %v", err)
	}

	return &dto.ChatResponseDTO{Response: reply.Response, SessionID: reply.SessionID}, nil
}

// IdentifyPerfume runs a one-shot image analysis. Each call is its own
// session; nothing is persisted beyond the request log.
func (s *AIService) IdentifyPerfume(ctx context.Context, req dto.ImageAnalysisRequestDTO) (*dto.ImageAnalysisResponseDTO, error) {
	if req.ImageURL == "" && req.ImageBase64 == "" {
		return nil, ErrNoImage
	}

	question := req.Question
	if question == "" {
		question = "Identify this perfume or fragrance"
	}

	result := s.analyzer.AnalyzeImage(ctx, completion.VisionRequest{
		System: identifyPreamble,
		Prompt: question,
		Image:  completion.Image{URL: req.ImageURL, Base64: req.ImageBase64},
	})
	if !result.OK() {
		logger.ErrorWithFields("image analysis failed", logger.Fields{
			"reason": string(result.Reason),
		})
		return nil, ErrAIUnavailable
	}

	return &dto.ImageAnalysisResponseDTO{
		Analysis:  result.Text,
		SessionID: uuid.NewString(),
	}, nil
}

// ScentFinder runs the quiz through the recommendation engine.
func (s *AIService) ScentFinder(ctx context.Context, req dto.ScentFinderRequestDTO) (*dto.ScentFinderResponseDTO, error) {
	recs, err := s.engine.Recommend(ctx, req.ToAnswers())
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ProductID)
	}
	event := events.AIScentFinderCompletedEvent{
		BaseEvent:   events.NewBase(events.AIScentFinderCompleted),
		ResultCount: len(recs),
		ProductIDs:  ids,
	}
	if err := s.producer.PublishEvent(kafka.TopicAIEvents, event); err != nil {
		logger.Log.Errorf("failed to publish ai.scent_finder_completed: %v", err)
	}

	resp := dto.NewScentFinderResponseDTO(recs)
	return &resp, nil
}
