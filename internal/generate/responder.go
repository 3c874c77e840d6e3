// ABOUTME: Responder strategies for producing answer text from an assembled prompt
// ABOUTME: ModelResponder calls the LLM; RuleBasedResponder stitches retrieved text
package generate

import (
	"fmt"
	"strings"

	"github.com/nyaya-ai/nyaya/internal/models"
)

// CompletionClient generates a completion for a prompt, bounded to
// maxTokens. Satisfied by llm.Client.
type CompletionClient interface {
	Complete(prompt string, maxTokens int) (string, error)
}

// Responder produces the response text for a query from the assembled
// prompt and the retrieved documents.
type Responder interface {
	Respond(prompt string, docs []models.RetrievalResult) (string, error)
}

// generationMargin is the token allowance beyond the prompt length.
const generationMargin = 150

// ModelResponder answers with a generative model.
type ModelResponder struct {
	client CompletionClient
}

// NewModelResponder creates a Responder backed by a completion client.
func NewModelResponder(client CompletionClient) *ModelResponder {
	return &ModelResponder{client: client}
}

// Respond invokes the model with a token bound proportional to prompt
// length and strips any echoed prompt prefix from the output.
func (r *ModelResponder) Respond(prompt string, docs []models.RetrievalResult) (string, error) {
	maxTokens := len(strings.Fields(prompt)) + generationMargin

	out, err := r.client.Complete(prompt, maxTokens)
	if err != nil {
		return "", fmt.Errorf("model generation failed: %w", err)
	}

	response := strings.TrimSpace(strings.TrimPrefix(out, prompt))
	if response == "" {
		return "", fmt.Errorf("model returned an empty response")
	}
	return response, nil
}

// Rule-based responder messages. Fixed strings, part of the contract.
const (
	noInfoResponse = "I couldn't find relevant legal information for your query. " +
		"Please consult with a legal professional for accurate advice."

	ruleBasedPreamble = "Based on available legal documents, here's what I found regarding your query:\n\n"

	ruleBasedDisclaimer = "Please note: This information is for educational purposes only. " +
		"For specific legal advice, consult with a qualified legal professional."
)

const (
	ruleBasedDocs      = 2
	ruleBasedCharLimit = 300
)

// RuleBasedResponder assembles an answer directly from retrieved text.
// It never fails, which makes it the terminal fallback.
type RuleBasedResponder struct{}

// NewRuleBasedResponder creates the fallback Responder.
func NewRuleBasedResponder() *RuleBasedResponder {
	return &RuleBasedResponder{}
}

// Respond concatenates the top documents with numbered prefixes and an
// educational-use disclaimer, or returns a fixed no-information message
// when nothing was retrieved.
func (r *RuleBasedResponder) Respond(prompt string, docs []models.RetrievalResult) (string, error) {
	if len(docs) == 0 {
		return noInfoResponse, nil
	}

	var b strings.Builder
	b.WriteString(ruleBasedPreamble)

	limit := ruleBasedDocs
	if len(docs) < limit {
		limit = len(docs)
	}
	for i := 0; i < limit; i++ {
		fmt.Fprintf(&b, "%d. %s...\n\n", i+1, truncate(docs[i].Content, ruleBasedCharLimit))
	}

	b.WriteString(ruleBasedDisclaimer)
	return b.String(), nil
}

// truncate bounds s to at most limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
