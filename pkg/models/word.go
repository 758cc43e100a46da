package models

import (
	"strings"
	"time"
)

// Direction is the translation direction a word is asked in
type Direction int

const (
	// ForeignToNative asks the foreign text and expects a native form
	ForeignToNative Direction = iota
	// NativeToForeign asks a native form and expects the foreign text
	NativeToForeign
)

func (d Direction) String() string {
	if d == NativeToForeign {
		return "native_to_foreign"
	}
	return "foreign_to_native"
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if d == NativeToForeign {
		return ForeignToNative
	}
	return NativeToForeign
}

// PartOfSpeech classifies a vocabulary entry
type PartOfSpeech string

const (
	PartOfSpeechQuestionWord PartOfSpeech = "question_word"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechPretext      PartOfSpeech = "pretext"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechOther        PartOfSpeech = "other"
)

// ParsePartOfSpeech maps free text to a known part of speech, falling back to noun
func ParsePartOfSpeech(s string) PartOfSpeech {
	switch p := PartOfSpeech(strings.ToLower(strings.TrimSpace(s))); p {
	case PartOfSpeechQuestionWord, PartOfSpeechAdjective, PartOfSpeechPretext,
		PartOfSpeechVerb, PartOfSpeechNoun, PartOfSpeechOther:
		return p
	}
	return PartOfSpeechNoun
}

// Word is a vocabulary entry. Foreign is unique within a collection.
type Word struct {
	Foreign         string        `json:"foreign"`
	Native          []string      `json:"native"`
	Transcription   string        `json:"transcription"`
	PartOfSpeech    PartOfSpeech  `json:"part_of_speech"`
	FToNRemark      string        `json:"f_to_n_remark,omitempty"`
	NToFRemark      string        `json:"n_to_f_remark,omitempty"`
	ForeignToNative WordStatistic `json:"foreign_to_native"`
	NativeToForeign WordStatistic `json:"native_to_foreign"`
}

// NewWord creates an entry with fresh statistics in both directions
func NewWord(foreign string, native []string, transcription string, now time.Time) Word {
	return Word{
		Foreign:         foreign,
		Native:          native,
		Transcription:   transcription,
		PartOfSpeech:    PartOfSpeechVerb,
		ForeignToNative: NewWordStatistic(now),
		NativeToForeign: NewWordStatistic(now),
	}
}

// Statistic returns the statistic for the direction. The pointer aliases the word.
func (w *Word) Statistic(direction Direction) *WordStatistic {
	if direction == NativeToForeign {
		return &w.NativeToForeign
	}
	return &w.ForeignToNative
}

// Remark returns the hint shown when the word is asked in the direction
func (w *Word) Remark(direction Direction) string {
	if direction == NativeToForeign {
		return w.NToFRemark
	}
	return w.FToNRemark
}

// PureNativeForms returns the native forms without any parenthesised explanation,
// e.g. "идти (пешком)" becomes "идти".
func (w *Word) PureNativeForms() []string {
	forms := make([]string, 0, len(w.Native))
	for _, form := range w.Native {
		if i := strings.Index(form, "("); i >= 0 {
			form = form[:i]
		}
		forms = append(forms, strings.TrimSpace(form))
	}
	return forms
}

// AcceptedAnswers returns the answers counted as correct for the direction
func (w *Word) AcceptedAnswers(direction Direction) []string {
	if direction == NativeToForeign {
		return []string{w.Foreign}
	}
	return w.PureNativeForms()
}

// NativeDescription renders the native forms for messages: "a", "b" или "c"
func (w *Word) NativeDescription() string {
	var sb strings.Builder
	for i, form := range w.Native {
		switch {
		case i == 0:
		case i == len(w.Native)-1:
			sb.WriteString(" или ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(`"`)
		sb.WriteString(strings.ToLower(form))
		sb.WriteString(`"`)
	}
	return sb.String()
}

// WordEdit carries the user editable parts of a word
type WordEdit struct {
	Foreign       string
	Native        []string
	Transcription string
	FToNRemark    string
	NToFRemark    string
}

// Apply replaces the editable parts, keeping statistics and part of speech
func (w *Word) Apply(edit WordEdit) {
	w.Foreign = edit.Foreign
	w.Native = edit.Native
	w.Transcription = edit.Transcription
	w.FToNRemark = edit.FToNRemark
	w.NToFRemark = edit.NToFRemark
}
