package conversation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleur-api/ai/catalog"
	"fleur-api/ai/completion"
	"fleur-api/ai/conversation"
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

func testCatalog() *fakeCatalog {
	return &fakeCatalog{products: []catalog.Product{
		{ID: "prod_lavender_bliss", Name: "Lavender Bliss", Price: 280, ScentFamily: "Floral", Notes: []string{"Lavender", "Chamomile"}, InStock: true},
		{ID: "prod_ocean_secrets", Name: "Ocean Secrets", Price: 300, ScentFamily: "Fresh", Notes: []string{"Sea Breeze", "Citrus"}, InStock: true},
	}}
}

func TestSendMessagePersistsBothTurnsOnSuccess(t *testing.T) {
	completer := &fakeCompleter{result: completion.Ok("Try Lavender Bliss for your bedroom.")}
	store := conversation.NewInMemoryStore()
	m := conversation.NewManager(completer, store, testCatalog(), 0)

	reply, err := m.SendMessage(context.Background(), "user-1", "session-1", "something calming?")
	require.NoError(t, err)

	assert.Equal(t, "session-1", reply.SessionID)
	assert.Equal(t, "Try Lavender Bliss for your bedroom.", reply.Response)

	transcript, err := store.Get(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, completion.RoleUser, transcript[0].Role)
	assert.Equal(t, "something calming?", transcript[0].Text)
	assert.Equal(t, completion.RoleAssistant, transcript[1].Role)
}

func TestSendMessageFallbackKeepsUserTurnOnly(t *testing.T) {
	completer := &fakeCompleter{result: completion.Failed(completion.FailTimeout)}
	store := conversation.NewInMemoryStore()
	m := conversation.NewManager(completer, store, testCatalog(), 0)

	reply, err := m.SendMessage(context.Background(), "", "session-1", "hello")
	require.NoError(t, err)

	assert.Equal(t, conversation.FallbackReply, reply.Response)
	assert.NotEmpty(t, reply.Response)

	transcript, _ := store.Get(context.Background(), "session-1")
	require.Len(t, transcript, 1)
	assert.Equal(t, completion.RoleUser, transcript[0].Role)
}

func TestSendMessageGeneratesSessionID(t *testing.T) {
	completer := &fakeCompleter{result: completion.Ok("welcome")}
	m := conversation.NewManager(completer, conversation.NewInMemoryStore(), testCatalog(), 0)

	reply, err := m.SendMessage(context.Background(), "", "", "hi")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.SessionID)

	again, err := m.SendMessage(context.Background(), "", "", "hi again")
	require.NoError(t, err)
	assert.NotEqual(t, reply.SessionID, again.SessionID)
}

func TestSendMessageRejectsEmptyMessage(t *testing.T) {
	m := conversation.NewManager(&fakeCompleter{}, conversation.NewInMemoryStore(), testCatalog(), 0)

	_, err := m.SendMessage(context.Background(), "", "s", "   ")
	assert.ErrorIs(t, err, conversation.ErrEmptyMessage)
}

func TestSendMessageIncludesCatalogInSystemPrompt(t *testing.T) {
	completer := &fakeCompleter{result: completion.Ok("ok")}
	m := conversation.NewManager(completer, conversation.NewInMemoryStore(), testCatalog(), 0)

	_, err := m.SendMessage(context.Background(), "", "s", "hi")
	require.NoError(t, err)

	require.Len(t, completer.requests, 1)
	system := completer.requests[0].System
	assert.Contains(t, system, "Lavender Bliss")
	assert.Contains(t, system, "Ocean Secrets")
	assert.Contains(t, system, "₹280")
}

func TestSendMessageDegradesWhenCatalogFails(t *testing.T) {
	completer := &fakeCompleter{result: completion.Ok("ok")}
	m := conversation.NewManager(completer, conversation.NewInMemoryStore(), &fakeCatalog{err: context.DeadlineExceeded}, 0)

	reply, err := m.SendMessage(context.Background(), "", "s", "hi")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply.Response)

	system := completer.requests[0].System
	assert.NotContains(t, system, "| Product |")
}

func TestSendMessageCapsTranscript(t *testing.T) {
	completer := &fakeCompleter{result: completion.Ok("ok")}
	store := conversation.NewInMemoryStore()
	m := conversation.NewManager(completer, store, testCatalog(), 4)

	for i := 0; i < 5; i++ {
		_, err := m.SendMessage(context.Background(), "", "s", strings.Repeat("x", i+1))
		require.NoError(t, err)
	}

	last := completer.requests[len(completer.requests)-1]
	assert.Len(t, last.Turns, 4)
}
