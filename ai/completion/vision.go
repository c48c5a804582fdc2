package completion

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"google.golang.org/genai"

	"fleur-api/logger"
	"fleur-api/trace"
)

// Image is one image input, referenced by URL or supplied inline as
// base64 data. MIME defaults to image/jpeg when empty.
type Image struct {
	URL    string
	Base64 string
	MIME   string
}

// VisionRequest asks the model to describe a single image.
type VisionRequest struct {
	System string
	Prompt string
	Image  Image
}

// ImageAnalyzer runs one image analysis call.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, req VisionRequest) Result
}

// AnalyzeImage sends the image and prompt to the model, with the same
// single-retry policy as Complete.
func (g *Gateway) AnalyzeImage(ctx context.Context, req VisionRequest) Result {
	result := g.visionAttempt(ctx, req)
	if !result.OK() && transient(result.Reason) {
		logger.WarnWithFields("image analysis retry after transient failure", logger.Fields{
			"reason":     string(result.Reason),
			"model":      g.model,
			"request_id": trace.RequestIDFromContext(ctx),
		})
		result = g.visionAttempt(ctx, req)
	}
	return result
}

func (g *Gateway) visionAttempt(ctx context.Context, req VisionRequest) Result {
	requestedAt := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, usage, err := g.generateImage(callCtx, req)
	completedAt := time.Now()

	log := RequestLog{
		ModelName:   g.model,
		InputPrompt: fmt.Sprintf("%s\n\n%s", req.System, req.Prompt),
		Output:      text,
		RequestedAt: requestedAt,
		CompletedAt: completedAt,
	}
	if usage != nil {
		log.Usage = *usage
	}

	result := g.classify(text, usage, err, FormatText)
	if !result.OK() {
		log.ErrorMessage = string(result.Reason)
		if err != nil {
			log.ErrorMessage = fmt.Sprintf("%s: %v", result.Reason, err)
		}
	}
	if g.recorder != nil {
		g.recorder.Record(ctx, log)
	}
	return result
}

func (g *Gateway) generateImage(ctx context.Context, req VisionRequest) (string, *Usage, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return "", nil, err
	}

	mime := req.Image.MIME
	if mime == "" {
		mime = "image/jpeg"
	}

	parts := []*genai.Part{{Text: req.Prompt}}
	if req.Image.URL != "" {
		parts = append(parts, genai.NewPartFromURI(req.Image.URL, mime))
	} else {
		data, err := base64.StdEncoding.DecodeString(req.Image.Base64)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, genai.NewPartFromBytes(data, mime))
	}

	result, err := client.Models.GenerateContent(
		ctx,
		g.model,
		[]*genai.Content{{Role: genai.RoleUser, Parts: parts}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: req.System}}},
		},
	)
	if err != nil {
		return "", nil, err
	}

	var usage *Usage
	if result.UsageMetadata != nil {
		usage = &Usage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}
	return result.Text(), usage, nil
}

// DisabledAnalyzer returns an ImageAnalyzer used when no API key is
// configured.
func DisabledAnalyzer() ImageAnalyzer {
	return disabled{}
}

func (disabled) AnalyzeImage(ctx context.Context, req VisionRequest) Result {
	return Failed(FailUpstream)
}
