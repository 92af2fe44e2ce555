package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned reply and records the prompts it received
type stubClient struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func (s *stubClient) Model() string { return "stub" }

func (s *stubClient) Close() error { return nil }

func TestDescribeSkills_KeepsModelOrder(t *testing.T) {
	client := &stubClient{reply: `{"skills": [
		{"lang": "Python", "line": "Data pipelines"},
		{"lang": "Go", "line": "Network services"}
	]}`}

	got, err := DescribeSkills(context.Background(), client, []string{"Go", "Python"})
	require.NoError(t, err)
	assert.Equal(t, []types.SkillDescription{
		{Name: "Python", Line: "Data pipelines"},
		{Name: "Go", Line: "Network services"},
	}, got)
}

func TestDescribeSkills_Prompt(t *testing.T) {
	client := &stubClient{reply: `{"skills": []}`}

	_, err := DescribeSkills(context.Background(), client, []string{"Go", "SQL"})
	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "given skills: Go, SQL.")
	assert.Contains(t, client.prompts[0], `{"skills": [{"lang": "langName", "line": "line"}]}`)
}

func TestDescribeSkills_EmptyInputSkipsModel(t *testing.T) {
	client := &stubClient{}

	got, err := DescribeSkills(context.Background(), client, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, client.prompts)
}

func TestDescribeSkills_CodeFencedReply(t *testing.T) {
	client := &stubClient{reply: "```json\n{\"skills\": [{\"lang\": \"Go\", \"line\": \"x\"}]}\n```"}

	got, err := DescribeSkills(context.Background(), client, []string{"Go"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Go", got[0].Name)
}

func TestDescribeSkills_BadReplies(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		message string
	}{
		{"not json", "sorry, I cannot help", "not valid JSON"},
		{"truncated", `{"skills": [{"lang": "Go"`, "not valid JSON"},
		{"missing skills", `{"items": []}`, "unexpected shape"},
		{"skills not array", `{"skills": "Go"}`, "unexpected shape"},
		{"item missing line", `{"skills": [{"lang": "Go"}]}`, "unexpected shape"},
		{"trailing prose", `{"skills": [{"lang": "Go", "line": "x"}]} trailing text`, "not valid JSON"},
		{"leading prose", `Sure! Here it is: {"skills": [{"lang": "Go", "line": "x"}]}`, "not valid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DescribeSkills(context.Background(), &stubClient{reply: tt.reply}, []string{"Go"})
			require.Error(t, err)

			var enrichErr *EnrichmentError
			require.True(t, errors.As(err, &enrichErr))
			assert.Contains(t, enrichErr.Message, tt.message)
			assert.Equal(t, tt.reply, enrichErr.Reply)
		})
	}
}

func TestDescribeSkills_ClientError(t *testing.T) {
	cause := errors.New("rate limited")

	_, err := DescribeSkills(context.Background(), &stubClient{err: cause}, []string{"Go"})
	require.Error(t, err)

	var enrichErr *EnrichmentError
	require.True(t, errors.As(err, &enrichErr))
	assert.ErrorIs(t, err, cause)
}

func TestFixText_BypassMakesNoCall(t *testing.T) {
	client := &stubClient{}

	got, err := FixText(context.Background(), client, "teh text", true)
	require.NoError(t, err)
	assert.Equal(t, "teh text", got)
	assert.Empty(t, client.prompts)
}

func TestFixText(t *testing.T) {
	client := &stubClient{reply: `{"fixed_text": "the text"}`}

	got, err := FixText(context.Background(), client, "teh text", false)
	require.NoError(t, err)
	assert.Equal(t, "the text", got)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], `{"fixed_text": str}`)
	assert.Contains(t, client.prompts[0], "Fix the following text:\n    teh text")
}

func TestFixText_BadShape(t *testing.T) {
	_, err := FixText(context.Background(), &stubClient{reply: `{"text": "x"}`}, "x", false)

	var enrichErr *EnrichmentError
	require.True(t, errors.As(err, &enrichErr))
}
