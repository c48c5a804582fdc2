// Package conversation implements the storefront chat assistant. It owns
// transcript persistence and degrades to a canned reply whenever the model
// is unavailable, so the chat endpoint never returns an error-shaped body
// for an internal failure.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"fleur-api/ai/catalog"
	"fleur-api/ai/completion"
	"fleur-api/logger"
	"fleur-api/trace"
)

// ErrEmptyMessage is returned when the user text is empty after trimming.
var ErrEmptyMessage = errors.New("message must not be empty")

// FallbackReply is returned whenever the model call fails. It must never
// be empty.
const FallbackReply = "I'm terribly sorry — I seem to be having a moment away from my fragrance library. " +
	"Please ask me again shortly, or browse our collection in the meantime; the bestsellers are a lovely place to start."

const personaPreamble = `You are Fleur, the premium AI fragrance consultant for Fleur Fragrances, a luxury aroma oils brand based in Mumbai, India. You embody sophistication, warmth, and deep expertise in the world of fragrances.

## YOUR PERSONA
- Speak elegantly but warmly, like a knowledgeable friend at a luxury boutique
- Use sensory-rich language to describe scents
- Be concise yet evocative

## YOUR EXPERTISE
1. Fragrance profiling: what scents suit different personalities, moods, and spaces
2. Scent families: Floral, Woody, Fresh, Citrus, Fruity, Oriental, Luxury
3. Space recommendations: match fragrances to bedrooms, living rooms, offices, spas
4. Layering and pairing: suggest complementary fragrances
5. Aromatherapy benefits of each scent

## RESPONSE STYLE
- Keep responses 2-4 sentences unless detail is requested
- Include product recommendations when relevant
- Stay within fragrance and home ambiance topics
- End with a subtle prompt to explore or ask more`

// Reply is the result of a successful (or degraded) chat round trip.
type Reply struct {
	SessionID string
	Response  string
}

// Manager coordinates the session store, the catalog, and the completion
// gateway for the chat assistant.
type Manager struct {
	completer completion.Completer
	store     SessionStore
	catalog   catalog.Service
	maxTurns  int
}

// NewManager builds a Manager. maxTurns caps how many trailing transcript
// turns are sent to the model; 0 or less means no cap.
func NewManager(c completion.Completer, store SessionStore, cat catalog.Service, maxTurns int) *Manager {
	return &Manager{completer: c, store: store, catalog: cat, maxTurns: maxTurns}
}

// SendMessage handles one chat turn. The user turn is persisted before the
// model call, so a failed completion still preserves conversational
// context for a later retry; in that case the assistant turn is not
// written and the caller receives the fallback reply.
func (m *Manager) SendMessage(ctx context.Context, userID, sessionID, text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, ErrEmptyMessage
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	transcript, err := m.store.Get(ctx, sessionID)
	if err != nil {
		logger.ErrorWithFields("failed to load chat transcript", logger.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
			"request_id": trace.RequestIDFromContext(ctx),
		})
		transcript = nil
	}

	userTurn := completion.Turn{Role: completion.RoleUser, Text: text}
	if err := m.store.Append(ctx, sessionID, userID, userTurn); err != nil {
		logger.ErrorWithFields("failed to persist user turn", logger.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
			"request_id": trace.RequestIDFromContext(ctx),
		})
	}
	transcript = append(transcript, userTurn)

	result := m.completer.Complete(ctx, completion.Request{
		System: m.systemPreamble(ctx),
		Turns:  m.capTurns(transcript),
		Format: completion.FormatText,
	})
	if !result.OK() {
		logger.ErrorWithFields("chat completion failed", logger.Fields{
			"session_id": sessionID,
			"reason":     string(result.Reason),
			"request_id": trace.RequestIDFromContext(ctx),
		})
		return Reply{SessionID: sessionID, Response: FallbackReply}, nil
	}

	assistantTurn := completion.Turn{Role: completion.RoleAssistant, Text: result.Text}
	if err := m.store.Append(ctx, sessionID, userID, assistantTurn); err != nil {
		logger.ErrorWithFields("failed to persist assistant turn", logger.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
			"request_id": trace.RequestIDFromContext(ctx),
		})
	}

	return Reply{SessionID: sessionID, Response: result.Text}, nil
}

// systemPreamble renders the persona plus the live catalog table. Catalog
// errors degrade to the persona without the table rather than failing the
// chat.
func (m *Manager) systemPreamble(ctx context.Context) string {
	products, err := m.catalog.ListAll(ctx)
	if err != nil || len(products) == 0 {
		return personaPreamble
	}

	var b strings.Builder
	b.WriteString(personaPreamble)
	b.WriteString("\n\n## OUR COLLECTION (All 100ml)\n")
	b.WriteString("| Product | Price | Family | Notes |\n")
	b.WriteString("|---------|-------|--------|-------|\n")
	for _, p := range products {
		fmt.Fprintf(&b, "| %s | ₹%.0f | %s | %s |\n", p.Name, p.Price, p.ScentFamily, strings.Join(p.Notes, ", "))
	}
	b.WriteString("\nOnly recommend products from this collection.")
	return b.String()
}

func (m *Manager) capTurns(turns []completion.Turn) []completion.Turn {
	if m.maxTurns <= 0 || len(turns) <= m.maxTurns {
		return turns
	}
	return turns[len(turns)-m.maxTurns:]
}
