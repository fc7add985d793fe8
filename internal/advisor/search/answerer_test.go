package search

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	seen []*schema.Message
	resp string
	err  error
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	f.seen = input
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.resp, nil), nil
}

func (f *fakeChatModel) Stream(_ context.Context, input []*schema.Message, _ ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	f.seen = input
	return schema.StreamReaderFromArray([]*schema.Message{schema.AssistantMessage(f.resp, nil)}), nil
}

func TestChainAnswerer(t *testing.T) {
	fake := &fakeChatModel{resp: "  Use drip irrigation.\n"}
	a, err := NewChainAnswerer(context.Background(), fake, "gemini-2.5-flash")
	require.NoError(t, err)

	got, err := a.Answer(context.Background(), "how to save water for tomato")
	require.NoError(t, err)
	assert.Equal(t, "Use drip irrigation.", got)

	require.Len(t, fake.seen, 1)
	assert.Equal(t, schema.User, fake.seen[0].Role)
	assert.Equal(t, "You are an agriculture expert. Answer this:\nhow to save water for tomato", fake.seen[0].Content)
}

func TestChainAnswererError(t *testing.T) {
	a, err := NewChainAnswerer(context.Background(), &fakeChatModel{err: errors.New("503 from model")}, "gemini-2.5-flash")
	require.NoError(t, err)

	_, err = a.Answer(context.Background(), "rice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503 from model")

	res := NewService(a).Search(context.Background(), "rice")
	require.Len(t, res.Results, 1)
	assert.Contains(t, res.Results[0], "AI error: ")
}

func TestNewChainAnswererNilModel(t *testing.T) {
	_, err := NewChainAnswerer(context.Background(), nil, "x")
	assert.Error(t, err)
}
