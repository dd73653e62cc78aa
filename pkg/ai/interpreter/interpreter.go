package interpreter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/pkg/apperrors"
)

// Mode selects how the raw model output is turned into a Reply.
type Mode string

const (
	// ModeStructured expects a JSON object with response,
	// is_need_time_off and reasoning fields somewhere in the text.
	ModeStructured Mode = "structured"

	// ModeHeuristic treats the text as prose and infers the time-off flag
	// from leave-related keywords.
	ModeHeuristic Mode = "heuristic"
)

const fallbackReasoning = "No reasoning provided"

// Reply is the normalized form of one model answer, tagged with the mode
// that produced it.
type Reply struct {
	Response      string
	IsNeedTimeOff bool
	Reasoning     string
	Mode          Mode
}

// structuredReply mirrors the JSON contract of the HR system prompt.
type structuredReply struct {
	Response      string `json:"response"`
	IsNeedTimeOff bool   `json:"is_need_time_off"`
	Reasoning     string `json:"reasoning"`
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSONObject returns the first {...} span in text, so a JSON reply
// wrapped in prose or code fences can still be parsed.
func ExtractJSONObject(text string) (string, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return "", fmt.Errorf("no JSON object in model output: %w", apperrors.ErrParse)
	}
	return match, nil
}

// Interpret normalizes raw model output. Structured mode never fails the
// turn: when no valid object is found it falls back to the raw text with
// the time-off flag cleared. Both modes strip markdown artifacts from the
// display text.
func Interpret(raw string, mode Mode) Reply {
	switch mode {
	case ModeHeuristic:
		return Reply{
			Response:      StripMarkdown(raw),
			IsNeedTimeOff: ContainsLeaveKeyword(raw),
			Reasoning:     fallbackReasoning,
			Mode:          ModeHeuristic,
		}
	default:
		parsed, err := parseStructured(raw)
		if err != nil {
			return Reply{
				Response:      StripMarkdown(raw),
				IsNeedTimeOff: false,
				Reasoning:     fallbackReasoning,
				Mode:          ModeStructured,
			}
		}
		reasoning := parsed.Reasoning
		if strings.TrimSpace(reasoning) == "" {
			reasoning = fallbackReasoning
		}
		return Reply{
			Response:      StripMarkdown(parsed.Response),
			IsNeedTimeOff: parsed.IsNeedTimeOff,
			Reasoning:     reasoning,
			Mode:          ModeStructured,
		}
	}
}

func parseStructured(raw string) (*structuredReply, error) {
	span, err := ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}
	var parsed structuredReply
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return nil, fmt.Errorf("decode model output: %v: %w", err, apperrors.ErrParse)
	}
	if parsed.Response == "" {
		return nil, fmt.Errorf("model output missing response field: %w", apperrors.ErrParse)
	}
	return &parsed, nil
}

// ContainsLeaveKeyword reports whether the text mentions any of the known
// Vietnamese time-off phrases, case-insensitively.
func ContainsLeaveKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range constant.LeaveKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

var (
	boldPattern         = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern       = regexp.MustCompile(`\*(.*?)\*`)
	headingPattern      = regexp.MustCompile(`(?m)^#+\s+`)
	numberedListPattern = regexp.MustCompile(`(?m)^\d+\.\s+`)
	dashBulletPattern   = regexp.MustCompile(`(?m)^-\s+`)
	starBulletPattern   = regexp.MustCompile(`(?m)^\*\s+`)
)

// StripMarkdown removes common markup artifacts from display text while
// preserving newlines. Escaped newline sequences become real line breaks.
func StripMarkdown(text string) string {
	cleaned := strings.ReplaceAll(text, `\n`, "\n")
	cleaned = boldPattern.ReplaceAllString(cleaned, "$1")
	cleaned = italicPattern.ReplaceAllString(cleaned, "$1")
	cleaned = headingPattern.ReplaceAllString(cleaned, "")
	cleaned = numberedListPattern.ReplaceAllString(cleaned, "")
	cleaned = dashBulletPattern.ReplaceAllString(cleaned, "")
	cleaned = starBulletPattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
