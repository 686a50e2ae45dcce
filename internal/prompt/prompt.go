// Package prompt builds the system instruction sent to the completion service.
// The leading markers and fallback strings are part of the external contract
// and must not change.
package prompt

import (
	"fmt"

	"github.com/krishna7838/AI-chatbot/internal/models"
)

// Contract literals shared with existing API consumers.
const (
	LocalMarker    = "(From local source)"
	GlobalMarker   = "(From Global source)"
	LocalFallback  = "Not available in the document."
	GlobalFallback = "I don't have information on that."

	// EmptyDocumentAnswer is returned by the orchestrator for Local sessions
	// with no document text, without calling the completion service.
	EmptyDocumentAnswer = "Document is empty."

	// NoResponseAnswer substitutes for a completion response with no usable text.
	NoResponseAnswer = "No response from AI."
)

// Build constructs the system instruction for the given mode. In Local mode
// accumulatedText is embedded verbatim as the only permitted knowledge source;
// the caller is responsible for short-circuiting when it is empty.
func Build(mode models.Mode, accumulatedText string) string {
	if mode == models.ModeLocal {
		return fmt.Sprintf(
			"You are an assistant that must only answer using the following document. "+
				"Do not use any external knowledge.\n\n"+
				"%s\n\n"+
				"Formatting rules (must follow strictly):\n"+
				"- Only use plain text.\n"+
				"- Start your answer with '%s'.\n"+
				"- Each bullet must be on its own separate line, beginning with '- '.\n"+
				"- Never combine two bullet points on the same line.\n"+
				"- Never use bold, italics, or any markdown symbols (** or * or # or `).\n"+
				"- Always respond in clear, concise bullet points, each starting with '- '.\n"+
				"- Do not leave empty bullets.\n"+
				"- Do not write paragraphs.\n"+
				"- If the answer is not found in the document, reply exactly: '%s'\n"+
				"- If the document is empty, respond with '%s'",
			accumulatedText, LocalMarker, LocalFallback, EmptyDocumentAnswer)
	}

	return fmt.Sprintf(
		"You are an AI assistant that answers questions using general world knowledge.\n"+
			"Formatting rules (must follow strictly):\n"+
			"- Start your answer with '%s'.\n"+
			"- Only use plain text.\n"+
			"- Each bullet must be on its own separate line, beginning with '- '.\n"+
			"- Never combine two bullet points on the same line.\n"+
			"- Never use bold, italics, or any markdown symbols (** or * or # or `).\n"+
			"- Respond using clear, concise bullet points starting each line with '- '.\n"+
			"- Do not write paragraphs.\n"+
			"- If you don't know the answer, say '%s'",
		GlobalMarker, GlobalFallback)
}
