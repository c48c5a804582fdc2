package dto

import "fleur-api/ai/recommend"

// ChatRequestDTO carries one user chat message. SessionID is optional; a
// missing or unknown id starts a fresh conversation.
type ChatRequestDTO struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

type ChatResponseDTO struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// ImageAnalysisRequestDTO identifies a perfume from a photo. Exactly one
// of ImageURL or ImageBase64 must be set.
type ImageAnalysisRequestDTO struct {
	ImageURL    string `json:"image_url"`
	ImageBase64 string `json:"image_base64"`
	Question    string `json:"question"`
}

type ImageAnalysisResponseDTO struct {
	Analysis  string `json:"analysis"`
	SessionID string `json:"session_id"`
}

type ScentFinderAnswerDTO struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type ScentFinderRequestDTO struct {
	Answers []ScentFinderAnswerDTO `json:"answers" binding:"required,dive"`
}

type RecommendationDTO struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	MatchScore int     `json:"match_score"`
	Reason     string  `json:"reason"`
}

type ScentFinderResponseDTO struct {
	Recommendations []RecommendationDTO `json:"recommendations"`
}

func NewScentFinderResponseDTO(recs []recommend.Recommendation) ScentFinderResponseDTO {
	out := make([]RecommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationDTO{
			ProductID:  r.ProductID,
			Name:       r.Name,
			Price:      r.Price,
			MatchScore: r.MatchScore,
			Reason:     r.Reason,
		})
	}
	return ScentFinderResponseDTO{Recommendations: out}
}

func (d ScentFinderRequestDTO) ToAnswers() []recommend.Answer {
	answers := make([]recommend.Answer, 0, len(d.Answers))
	for _, a := range d.Answers {
		answers = append(answers, recommend.Answer{QuestionID: a.QuestionID, Answer: a.Answer})
	}
	return answers
}
