package interpreter

import (
	"testing"
)

func TestInterpretStructured(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantResponse  string
		wantTimeOff   bool
		wantReasoning string
	}{
		{
			name:          "clean JSON object",
			raw:           `{"response": "Bạn còn 12 ngày phép.", "is_need_time_off": false, "reasoning": "Câu hỏi về số ngày phép"}`,
			wantResponse:  "Bạn còn 12 ngày phép.",
			wantTimeOff:   false,
			wantReasoning: "Câu hỏi về số ngày phép",
		},
		{
			name:          "JSON wrapped in prose",
			raw:           "Here is the answer:\n```json\n{\"response\": \"Đã ghi nhận\", \"is_need_time_off\": true, \"reasoning\": \"Yêu cầu nghỉ phép\"}\n```",
			wantResponse:  "Đã ghi nhận",
			wantTimeOff:   true,
			wantReasoning: "Yêu cầu nghỉ phép",
		},
		{
			name:          "no JSON falls back to raw text",
			raw:           "Tôi muốn xin nghỉ phép ngày mai",
			wantResponse:  "Tôi muốn xin nghỉ phép ngày mai",
			wantTimeOff:   false,
			wantReasoning: "No reasoning provided",
		},
		{
			name:          "malformed JSON falls back",
			raw:           `{"response": "truncated`,
			wantResponse:  `{"response": "truncated`,
			wantTimeOff:   false,
			wantReasoning: "No reasoning provided",
		},
		{
			name:          "empty response field falls back",
			raw:           `{"is_need_time_off": true, "reasoning": "x"}`,
			wantResponse:  `{"is_need_time_off": true, "reasoning": "x"}`,
			wantTimeOff:   false,
			wantReasoning: "No reasoning provided",
		},
		{
			name:          "blank reasoning gets placeholder",
			raw:           `{"response": "OK", "is_need_time_off": false, "reasoning": "  "}`,
			wantResponse:  "OK",
			wantTimeOff:   false,
			wantReasoning: "No reasoning provided",
		},
		{
			name:          "markdown stripped from response",
			raw:           `{"response": "**Chào bạn!**\n- mục một", "is_need_time_off": false, "reasoning": "chào hỏi"}`,
			wantResponse:  "Chào bạn!\nmục một",
			wantTimeOff:   false,
			wantReasoning: "chào hỏi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.raw, ModeStructured)

			if got.Response != tt.wantResponse {
				t.Errorf("Response = %q, want %q", got.Response, tt.wantResponse)
			}
			if got.IsNeedTimeOff != tt.wantTimeOff {
				t.Errorf("IsNeedTimeOff = %v, want %v", got.IsNeedTimeOff, tt.wantTimeOff)
			}
			if got.Reasoning != tt.wantReasoning {
				t.Errorf("Reasoning = %q, want %q", got.Reasoning, tt.wantReasoning)
			}
			if got.Mode != ModeStructured {
				t.Errorf("Mode = %q, want %q", got.Mode, ModeStructured)
			}
		})
	}
}

func TestInterpretHeuristic(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantTimeOff bool
	}{
		{
			name:        "leave keyword detected",
			raw:         "Tôi muốn xin nghỉ từ thứ hai tuần sau",
			wantTimeOff: true,
		},
		{
			name:        "keyword case-insensitive",
			raw:         "XIN NGHỈ 3 ngày",
			wantTimeOff: true,
		},
		{
			name:        "plain question",
			raw:         "Công ty có bao nhiêu phòng ban?",
			wantTimeOff: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.raw, ModeHeuristic)
			if got.IsNeedTimeOff != tt.wantTimeOff {
				t.Errorf("IsNeedTimeOff = %v, want %v", got.IsNeedTimeOff, tt.wantTimeOff)
			}
			if got.Mode != ModeHeuristic {
				t.Errorf("Mode = %q, want %q", got.Mode, ModeHeuristic)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	got, err := ExtractJSONObject("prefix {\"a\": 1} suffix")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"a": 1}` {
		t.Errorf("got %q", got)
	}

	if _, err := ExtractJSONObject("no object here"); err == nil {
		t.Error("expected error for text without JSON object")
	}
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "**quan trọng**", "quan trọng"},
		{"italic", "*nhấn mạnh*", "nhấn mạnh"},
		{"heading", "## Tiêu đề\nnội dung", "Tiêu đề\nnội dung"},
		{"numbered list", "1. một\n2. hai", "một\nhai"},
		{"dash bullets", "- một\n- hai", "một\nhai"},
		{"escaped newlines", `dòng một\ndòng hai`, "dòng một\ndòng hai"},
		{"surrounding whitespace", "  chào  ", "chào"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkdown(tt.in); got != tt.want {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
