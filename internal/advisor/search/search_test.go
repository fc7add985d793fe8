package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubAnswerer struct {
	got    string
	answer string
	err    error
}

func (s *stubAnswerer) Answer(_ context.Context, query string) (string, error) {
	s.got = query
	return s.answer, s.err
}

func TestKeywordSearchRice(t *testing.T) {
	svc := NewService(nil)
	for _, q := range []string{"rice", "RICE", "  Rice prices today "} {
		res := svc.Search(context.Background(), q)
		assert.Equal(t, []string{
			"Rice grows best in clay soil with high water retention.",
			"Current market price: ₹1900/quintal.",
		}, res.Results, q)
		assert.False(t, res.AI)
	}
}

func TestKeywordSearchOrder(t *testing.T) {
	svc := NewService(nil)

	res := svc.Search(context.Background(), "wheat or tomato")
	assert.Equal(t, "Wheat prefers loamy soil with moderate moisture.", res.Results[0])

	res = svc.Search(context.Background(), "tomato after rice")
	assert.Equal(t, "Rice grows best in clay soil with high water retention.", res.Results[0])

	res = svc.Search(context.Background(), "Tomato")
	assert.Equal(t, []string{
		"Tomato grows well in sandy loam soil with good drainage.",
		"Current market price: ₹2500/quintal.",
	}, res.Results)
}

func TestKeywordSearchUnknown(t *testing.T) {
	res := NewService(nil).Search(context.Background(), "Millet")
	assert.Equal(t, []string{"Sorry, I don’t have data for 'millet' yet."}, res.Results)
	assert.Equal(t, "Millet", res.Query)
}

func TestEmptyQuery(t *testing.T) {
	stub := &stubAnswerer{answer: "unused"}
	res := NewService(stub).Search(context.Background(), "   ")
	assert.Empty(t, res.Results)
	assert.Empty(t, stub.got)
}

func TestAnswererPath(t *testing.T) {
	stub := &stubAnswerer{answer: "Sow mustard in October."}
	svc := NewService(stub)
	assert.True(t, svc.AIEnabled())

	res := svc.Search(context.Background(), " When to sow Mustard? ")
	assert.Equal(t, "When to sow Mustard?", stub.got)
	assert.Equal(t, []string{"Sow mustard in October."}, res.Results)
	assert.True(t, res.AI)
}

func TestAnswererErrorIsDisplayed(t *testing.T) {
	svc := NewService(&stubAnswerer{err: errors.New("quota exceeded")})
	res := svc.Search(context.Background(), "rice")
	assert.Equal(t, []string{"AI error: quota exceeded"}, res.Results)
}
