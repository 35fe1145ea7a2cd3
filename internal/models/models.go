package models

import (
	"errors"
	"fmt"
	"strings"
)

// Locale selects which meaning is shown and which messages are printed.
type Locale string

const (
	English    Locale = "en"
	Vietnamese Locale = "vi"
)

// ErrUnknownLocale is returned by ParseLocale for anything but "en" or "vi".
var ErrUnknownLocale = errors.New("unknown locale")

// Locales lists the supported locales in display order.
func Locales() []Locale {
	return []Locale{English, Vietnamese}
}

// ParseLocale accepts exactly "en" or "vi".
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(s); l {
	case English, Vietnamese:
		return l, nil
	}
	return "", fmt.Errorf("%w %q (use en or vi)", ErrUnknownLocale, s)
}

// Entry is a single word with its meaning in each locale.
type Entry struct {
	Word string `json:"word"`
	VI   string `json:"vi"`
	EN   string `json:"en"`
}

// Meaning returns the meaning shown and quizzed for the given locale.
func (e Entry) Meaning(l Locale) string {
	if l == Vietnamese {
		return e.VI
	}
	return e.EN
}

// Matches reports whether the entry's word equals w, ignoring case.
func (e Entry) Matches(w string) bool {
	return strings.ToLower(e.Word) == strings.ToLower(w)
}

// Vocabulary is the full ordered list of entries, in insertion order.
type Vocabulary []Entry

// Without returns the entries whose word does not match w, plus the number
// removed. The receiver is left untouched.
func (v Vocabulary) Without(w string) (Vocabulary, int) {
	kept := make(Vocabulary, 0, len(v))
	for _, e := range v {
		if !e.Matches(w) {
			kept = append(kept, e)
		}
	}
	return kept, len(v) - len(kept)
}
