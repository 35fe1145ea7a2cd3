package messages

import (
	"reflect"
	"strings"
	"testing"

	"github.com/LavenderBridge/vocab/internal/models"
)

func TestCatalogComplete(t *testing.T) {
	for _, l := range models.Locales() {
		m, ok := catalog[l]
		if !ok {
			t.Fatalf("no catalog for %q", l)
		}
		v := reflect.ValueOf(m)
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				t.Errorf("%s: %s is empty", l, v.Type().Field(i).Name)
			}
		}
	}
}

func TestPlaceholders(t *testing.T) {
	for _, l := range models.Locales() {
		m := For(l)
		if !strings.Contains(m.QuizPrompt, WordPlaceholder) {
			t.Errorf("%s: QuizPrompt lacks %s", l, WordPlaceholder)
		}
		if !strings.Contains(m.DeleteSuccess, WordPlaceholder) {
			t.Errorf("%s: DeleteSuccess lacks %s", l, WordPlaceholder)
		}
		if !strings.Contains(m.QuizWrong, MeaningPlaceholder) {
			t.Errorf("%s: QuizWrong lacks %s", l, MeaningPlaceholder)
		}
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		name  string
		tmpl  string
		value string
		want  string
	}{
		{"simple", `Word "{word}" deleted.`, "cat", `Word "cat" deleted.`},
		{"first occurrence only", "{word} and {word}", "x", "x and {word}"},
		{"value with placeholder is not expanded", "<{word}>", "{word}", "<{word}>"},
		{"no placeholder", "Correct!", "x", "Correct!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fill(tt.tmpl, WordPlaceholder, tt.value); got != tt.want {
				t.Errorf("Fill() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderHelpers(t *testing.T) {
	en := For(models.English)
	if got := en.Prompt("sun"); got != `What is the meaning of "sun"?` {
		t.Errorf("Prompt = %q", got)
	}
	if got := en.Wrong("sun"); got != "Wrong! The correct meaning is: sun" {
		t.Errorf("Wrong = %q", got)
	}

	vi := For(models.Vietnamese)
	if got := vi.Deleted("mèo"); got != `Từ "mèo" đã được xóa.` {
		t.Errorf("Deleted = %q", got)
	}
}

func TestForUnknownFallsBackToEnglish(t *testing.T) {
	if For("fr") != For(models.English) {
		t.Error("unknown locale did not fall back to English")
	}
}
