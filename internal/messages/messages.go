// Package messages holds the fixed bilingual message catalog.
package messages

import (
	"strings"

	"github.com/LavenderBridge/vocab/internal/models"
)

// Placeholders substituted into templates.
const (
	WordPlaceholder    = "{word}"
	MeaningPlaceholder = "{meaning}"
)

// Messages is the set of user-facing templates for one locale.
type Messages struct {
	AddSuccess    string
	NoWords       string
	ListTitle     string
	QuizPrompt    string // {word}
	QuizCorrect   string
	QuizWrong     string // {meaning}
	DeleteSuccess string // {word}
	NoWordFound   string
}

var catalog = map[models.Locale]Messages{
	models.English: {
		AddSuccess:    "Word added successfully!",
		NoWords:       "No words found in the vocabulary.",
		ListTitle:     "Vocabulary List:",
		QuizPrompt:    `What is the meaning of "{word}"?`,
		QuizCorrect:   "Correct!",
		QuizWrong:     "Wrong! The correct meaning is: {meaning}",
		DeleteSuccess: `Word "{word}" deleted.`,
		NoWordFound:   "Word not found.",
	},
	models.Vietnamese: {
		AddSuccess:    "Từ đã được thêm thành công!",
		NoWords:       "Không tìm thấy từ nào trong danh sách.",
		ListTitle:     "Danh sách từ vựng:",
		QuizPrompt:    `Nghĩa của từ "{word}" là gì?`,
		QuizCorrect:   "Đúng!",
		QuizWrong:     "Sai! Nghĩa đúng là: {meaning}",
		DeleteSuccess: `Từ "{word}" đã được xóa.`,
		NoWordFound:   "Không tìm thấy từ.",
	},
}

// For returns the catalog for l. Unknown locales fall back to English.
func For(l models.Locale) Messages {
	if m, ok := catalog[l]; ok {
		return m
	}
	return catalog[models.English]
}

// Fill replaces the first occurrence of placeholder in tmpl with value.
// The substituted value is not scanned again.
func Fill(tmpl, placeholder, value string) string {
	return strings.Replace(tmpl, placeholder, value, 1)
}

func (m Messages) Prompt(word string) string {
	return Fill(m.QuizPrompt, WordPlaceholder, word)
}

func (m Messages) Wrong(meaning string) string {
	return Fill(m.QuizWrong, MeaningPlaceholder, meaning)
}

func (m Messages) Deleted(word string) string {
	return Fill(m.DeleteSuccess, WordPlaceholder, word)
}
