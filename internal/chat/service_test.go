package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashionshop-ai-gateway/internal/ai"
	"fashionshop-ai-gateway/internal/intent"
	"fashionshop-ai-gateway/internal/pkg/models"
)

type fakeFetcher struct {
	calls     int
	lastQuery string
	result    []models.ProductSuggestion
}

func (f *fakeFetcher) Suggest(_ context.Context, query string, _ int) []models.ProductSuggestion {
	f.calls++
	f.lastQuery = query
	return f.result
}

type fakeInvoker struct {
	calls      int
	lastSystem string
	reply      string
	err        error
}

func (f *fakeInvoker) Invoke(_ context.Context, systemPrompt, _ string) (string, error) {
	f.calls++
	f.lastSystem = systemPrompt
	return f.reply, f.err
}

func newTestService(fetcher *fakeFetcher, invoker *fakeInvoker) *Service {
	return NewService(
		intent.NewDetector(intent.DefaultTriggers()),
		intent.NewExtractor(intent.DefaultStopWords(), intent.DefaultStylePhrases()),
		fetcher,
		invoker,
	)
}

func TestReply_EmptyMessage(t *testing.T) {
	fetcher := &fakeFetcher{}
	invoker := &fakeInvoker{reply: "hi"}
	s := newTestService(fetcher, invoker)

	_, err := s.Reply(context.Background(), models.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Zero(t, fetcher.calls)
	assert.Zero(t, invoker.calls)
}

func TestReply_TooLongMakesNoOutboundCalls(t *testing.T) {
	fetcher := &fakeFetcher{}
	invoker := &fakeInvoker{reply: "hi"}
	s := newTestService(fetcher, invoker)

	msg := strings.Repeat("a", 501)
	_, err := s.Reply(context.Background(), models.ChatRequest{Message: msg})
	assert.ErrorIs(t, err, ErrMessageTooLong)
	assert.Zero(t, fetcher.calls)
	assert.Zero(t, invoker.calls)
}

func TestReply_ExactlyMaxLengthAccepted(t *testing.T) {
	invoker := &fakeInvoker{reply: "ok"}
	s := newTestService(&fakeFetcher{}, invoker)

	msg := strings.Repeat("a", 500)
	got, err := s.Reply(context.Background(), models.ChatRequest{Message: msg})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestReply_LengthCountsRunes(t *testing.T) {
	invoker := &fakeInvoker{reply: "ok"}
	s := newTestService(&fakeFetcher{}, invoker)

	// 500 multi-byte runes must pass the length check.
	msg := strings.Repeat("ă", 500)
	_, err := s.Reply(context.Background(), models.ChatRequest{Message: msg})
	require.NoError(t, err)
}

func TestReply_ProductIntentEnrichesPrompt(t *testing.T) {
	fetcher := &fakeFetcher{result: []models.ProductSuggestion{
		{ProductID: "SP001", Name: "Áo thun The Trainer", Price: 297000},
	}}
	invoker := &fakeInvoker{reply: "Chào bạn!"}
	s := newTestService(fetcher, invoker)

	got, err := s.Reply(context.Background(), models.ChatRequest{Message: "I want to buy a casual chic t-shirt"})
	require.NoError(t, err)
	assert.Equal(t, "Chào bạn!", got)

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, "casual chic t-shirt", fetcher.lastQuery)
	assert.Contains(t, invoker.lastSystem, "Áo thun The Trainer")
	assert.Contains(t, invoker.lastSystem, "297.000đ")
}

func TestReply_NeutralMessageSkipsFetcher(t *testing.T) {
	fetcher := &fakeFetcher{}
	invoker := &fakeInvoker{reply: "Fashion Shop xin chào!"}
	s := newTestService(fetcher, invoker)

	_, err := s.Reply(context.Background(), models.ChatRequest{Message: "What is your name?"})
	require.NoError(t, err)
	assert.Zero(t, fetcher.calls)
	assert.Equal(t, ai.ShopSystemPrompt, invoker.lastSystem)
}

func TestReply_FetcherFailureStillSucceeds(t *testing.T) {
	// A fetcher that degraded to empty (timeout, non-200, bad body) must
	// leave the template untouched and the request successful.
	fetcher := &fakeFetcher{result: nil}
	invoker := &fakeInvoker{reply: "Chào bạn!"}
	s := newTestService(fetcher, invoker)

	got, err := s.Reply(context.Background(), models.ChatRequest{Message: "I want to buy a hoodie"})
	require.NoError(t, err)
	assert.Equal(t, "Chào bạn!", got)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, ai.ShopSystemPrompt, invoker.lastSystem)
}

func TestReply_ModelFailureWrapped(t *testing.T) {
	invoker := &fakeInvoker{err: errors.New("throttled")}
	s := newTestService(&fakeFetcher{}, invoker)

	_, err := s.Reply(context.Background(), models.ChatRequest{Message: "What time do you open?"})
	assert.ErrorIs(t, err, ErrModelInvocation)
	assert.Contains(t, err.Error(), "throttled")
}
