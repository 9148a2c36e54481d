package domain

// WordDefinition is the normalized lookup result returned to clients.
// Meanings is never nil: a lookup with no structured data still carries one
// group with an empty definition list.
type WordDefinition struct {
	Word     string    `json:"word"`
	Phonetic *string   `json:"phonetic,omitempty"`
	Meanings []Meaning `json:"meanings"`
	Extra    *Extra    `json:"extra,omitempty"`
}

// Meaning groups definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a single gloss with an optional usage example.
type Definition struct {
	Definition string  `json:"definition"`
	Example    *string `json:"example,omitempty"`
}

// Extra holds provider data that does not fit the meanings list.
type Extra struct {
	WebTranslation []WebTranslation `json:"webTranslation,omitempty"`
	Pronunciation  *Pronunciation   `json:"pronunciation,omitempty"`
}

// WebTranslation is a phrase seen on the web together with its translations.
type WebTranslation struct {
	Key   string   `json:"key"`
	Value []string `json:"value"`
}

// Pronunciation holds audio URLs per accent.
type Pronunciation struct {
	UK *string `json:"uk,omitempty"`
	US *string `json:"us,omitempty"`
}

// IsEmpty reports whether e carries nothing worth serializing.
func (e *Extra) IsEmpty() bool {
	return e == nil || (len(e.WebTranslation) == 0 && e.Pronunciation == nil)
}
