package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dondeestakoko/easemyday/internal/extraction/parser"
	"github.com/dondeestakoko/easemyday/internal/model"
)

func TestParseMessageAndItems(t *testing.T) {
	raw := "Voici le résumé.\n[{\"category\":\"note\",\"text\":\"x\"}]"

	message, items, err := parser.Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if message != "Voici le résumé." {
		t.Errorf("message = %q, want %q", message, "Voici le résumé.")
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Category != model.CategoryNote || items[0].Text != "x" {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestParseMessageWithFencedItems(t *testing.T) {
	raw := "Voici le résumé.\n```json\n[{\"category\":\"note\",\"text\":\"x\"}]\n```"

	message, items, err := parser.Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if message != "Voici le résumé." {
		t.Errorf("message = %q, want %q", message, "Voici le résumé.")
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Category != model.CategoryNote || items[0].Text != "x" {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestParseWholeResponseJSON(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantItems int
	}{
		{
			name:      "bare array",
			raw:       `[{"category":"to_do","text":"acheter du pain","priority":1}]`,
			wantItems: 1,
		},
		{
			name:      "single object promoted to one-element list",
			raw:       `{"category":"agenda","text":"Réunion","datetime_raw":"lundi à 15h"}`,
			wantItems: 1,
		},
		{
			name: "fenced payload",
			raw: "```json\n" +
				`[{"category":"note","text":"a"},{"category":"note","text":"b"}]` +
				"\n```",
			wantItems: 2,
		},
		{
			name:      "explicit empty array is a valid zero-item result",
			raw:       "Rien à extraire.\n[]",
			wantItems: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, items, err := parser.Parse(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(items) != tc.wantItems {
				t.Errorf("got %d items, want %d", len(items), tc.wantItems)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no brackets at all", raw: "Je n'ai rien trouvé dans ce texte."},
		{name: "unbalanced payload", raw: "[{bad json"},
		{name: "brackets around garbage", raw: "Voici : [ceci n'est pas du JSON]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parser.Parse(tc.raw)
			if err == nil {
				t.Fatalf("expected error for %q", tc.raw)
			}
			var perr *parser.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error is %T, want *parser.ParseError", err)
			}
			if perr.Payload == "" {
				t.Errorf("ParseError.Payload is empty, want offending text")
			}
		})
	}
}

func TestParseKeepsCandidateOrder(t *testing.T) {
	raw := `D'accord.
[{"category":"to_do","text":"un"},{"category":"note","text":"deux"},{"category":"agenda","text":"trois"}]`

	_, items, err := parser.Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make([]string, 0, len(items))
	for _, it := range items {
		got = append(got, it.Text)
	}
	if strings.Join(got, ",") != "un,deux,trois" {
		t.Errorf("order not preserved: %v", got)
	}
}
