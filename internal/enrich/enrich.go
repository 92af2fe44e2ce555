// Package enrich turns profile text into presentation text through a language model.
package enrich

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// skillsExample is the reply shape shown to the model inside the prompt
const skillsExample = `{"skills": [{"lang": "langName", "line": "line"}]}`

// fixedTextSchema is the reply shape shown to the model by FixText
const fixedTextSchema = `{"fixed_text": str}`

// DescribeSkills asks the model for a one-line description of each skill.
// The model also picks the display order; the result is returned in reply order.
func DescribeSkills(ctx context.Context, client llm.Client, skills []string) ([]types.SkillDescription, error) {
	if len(skills) == 0 {
		return []types.SkillDescription{}, nil
	}

	prompt, err := prompts.Render(prompts.EnrichmentFile, "describe-skills", map[string]string{
		"Skills":  strings.Join(skills, ", "),
		"Example": skillsExample,
	})
	if err != nil {
		return nil, &EnrichmentError{Message: "failed to build prompt", Cause: err}
	}

	reply, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &EnrichmentError{Message: "completion request failed", Cause: err}
	}

	var out types.SkillDescriptions
	if err := decodeReply(reply, schemas.SkillDescriptions, &out); err != nil {
		return nil, err
	}
	return out.Skills, nil
}

type fixedText struct {
	FixedText string `json:"fixed_text"`
}

// FixText asks the model for a grammar-corrected version of text.
// When bypass is set the text is returned unchanged and no request is made.
func FixText(ctx context.Context, client llm.Client, text string, bypass bool) (string, error) {
	if bypass {
		return text, nil
	}

	prompt, err := prompts.Render(prompts.EnrichmentFile, "fix-text", map[string]string{
		"Schema": fixedTextSchema,
		"Text":   text,
	})
	if err != nil {
		return "", &EnrichmentError{Message: "failed to build prompt", Cause: err}
	}

	reply, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return "", &EnrichmentError{Message: "completion request failed", Cause: err}
	}

	var out fixedText
	if err := decodeReply(reply, schemas.FixedText, &out); err != nil {
		return "", err
	}
	return out.FixedText, nil
}

// decodeReply validates a reply against a named schema and decodes it into out
func decodeReply(reply, schema string, out any) error {
	cleaned := llm.CleanJSONBlock(reply)
	if !json.Valid([]byte(cleaned)) {
		return &EnrichmentError{Message: "reply is not valid JSON", Reply: reply}
	}
	if err := schemas.Validate(schema, cleaned); err != nil {
		return &EnrichmentError{Message: "reply has unexpected shape", Reply: reply, Cause: err}
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &EnrichmentError{Message: "failed to decode reply", Reply: reply, Cause: err}
	}
	return nil
}
