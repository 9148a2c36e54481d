package domain

// Direction identifies a supported lookup direction as sent by clients.
type Direction string

const (
	DirectionEnZh Direction = "en-zh"
	DirectionZhEn Direction = "zh-en"
)

// Provider language codes.
const (
	LangEnglish           = "en"
	LangSimplifiedChinese = "zh-CHS"
)

// LanguagePair is the provider-side source/target language pair.
type LanguagePair struct {
	From string
	To   string
}

var directions = map[Direction]LanguagePair{
	DirectionEnZh: {From: LangEnglish, To: LangSimplifiedChinese},
	DirectionZhEn: {From: LangSimplifiedChinese, To: LangEnglish},
}

func (d Direction) String() string { return string(d) }

// IsValid returns true if the direction is a known value.
func (d Direction) IsValid() bool {
	_, ok := directions[d]
	return ok
}

// Pair returns the provider language pair for d.
// The second result is false for unsupported directions.
func (d Direction) Pair() (LanguagePair, bool) {
	p, ok := directions[d]
	return p, ok
}

// TranslationQuery is a single request to the translation provider.
type TranslationQuery struct {
	Text string
	From string
	To   string
}

// NewTranslationQuery builds a query for text in direction d.
func NewTranslationQuery(text string, d Direction) (TranslationQuery, error) {
	pair, ok := d.Pair()
	if !ok {
		return TranslationQuery{}, NewValidationError("lang", "unsupported")
	}
	return TranslationQuery{Text: text, From: pair.From, To: pair.To}, nil
}
