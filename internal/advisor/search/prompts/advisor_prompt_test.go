package prompts

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisorTemplateRendersQuery(t *testing.T) {
	msgs, err := NewAdvisorTemplate().Format(context.Background(), Vars("When should I sow {{mustard}}?"))
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	assert.Equal(t, schema.User, msgs[0].Role)
	assert.Equal(t, "You are an agriculture expert. Answer this:\nWhen should I sow {{mustard}}?", msgs[0].Content)
}
