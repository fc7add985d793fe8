package search

import (
	"context"
	"fmt"
	"strings"

	logx "github.com/agrosmart-advisor/server/pkg/logger"
)

// Answerer turns a farmer's question into free text, typically via an LLM.
type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

type Result struct {
	Query   string
	Results []string
	// AI is set when the results came from the Answerer.
	AI bool
}

type topic struct {
	keyword string
	answers [2]string
}

// Checked in order; the first keyword contained in the query wins.
var topics = []topic{
	{"rice", [2]string{
		"Rice grows best in clay soil with high water retention.",
		"Current market price: ₹1900/quintal.",
	}},
	{"wheat", [2]string{
		"Wheat prefers loamy soil with moderate moisture.",
		"Current market price: ₹2200/quintal.",
	}},
	{"tomato", [2]string{
		"Tomato grows well in sandy loam soil with good drainage.",
		"Current market price: ₹2500/quintal.",
	}},
}

type Service struct {
	answerer Answerer
}

// NewService builds the search service. A nil answerer selects keyword search.
func NewService(answerer Answerer) *Service {
	return &Service{answerer: answerer}
}

func (s *Service) AIEnabled() bool {
	return s.answerer != nil
}

func (s *Service) Search(ctx context.Context, raw string) Result {
	query := strings.TrimSpace(raw)
	res := Result{Query: query}
	if query == "" {
		return res
	}

	if s.answerer != nil {
		res.AI = true
		answer, err := s.answerer.Answer(ctx, query)
		if err != nil {
			logx.Ctx(ctx).Error().Err(err).Str("query", query).Msg("advisor model call failed")
			res.Results = []string{fmt.Sprintf("AI error: %s", err.Error())}
			return res
		}
		res.Results = []string{answer}
		return res
	}

	res.Results = keywordAnswers(strings.ToLower(query))
	return res
}

func keywordAnswers(lowered string) []string {
	for _, t := range topics {
		if strings.Contains(lowered, t.keyword) {
			return []string{t.answers[0], t.answers[1]}
		}
	}
	return []string{fmt.Sprintf("Sorry, I don’t have data for '%s' yet.", lowered)}
}
