package youdao

import "github.com/heartmarshall/dictlookup/internal/domain"

// Normalize maps a provider payload onto a WordDefinition. It never fails:
// anything missing from p is left out of the result, except Meanings which
// always holds exactly one group.
//
// Word is query verbatim, not the provider's echo of it. Definitions list
// translations first, then basic explanations, each in provider order.
func Normalize(p *Payload, query string) domain.WordDefinition {
	def := domain.WordDefinition{
		Word: query,
		Meanings: []domain.Meaning{{
			PartOfSpeech: "",
			Definitions:  []domain.Definition{},
		}},
	}
	if p == nil {
		return def
	}

	basic := p.Basic()

	if ph, ok := basic.Phonetic(); ok {
		def.Phonetic = &ph
	}

	defs := def.Meanings[0].Definitions
	for _, t := range p.Translations() {
		defs = append(defs, domain.Definition{Definition: t})
	}
	for _, e := range basic.Explains() {
		defs = append(defs, domain.Definition{Definition: e})
	}
	def.Meanings[0].Definitions = defs

	extra := &domain.Extra{}

	if web := p.Web(); len(web) > 0 {
		extra.WebTranslation = make([]domain.WebTranslation, 0, len(web))
		for _, w := range web {
			extra.WebTranslation = append(extra.WebTranslation, domain.WebTranslation{
				Key:   w.Key,
				Value: w.Value,
			})
		}
	}

	uk, hasUK := basic.UKSpeech()
	us, hasUS := basic.USSpeech()
	if hasUK || hasUS {
		pron := &domain.Pronunciation{}
		if hasUK {
			pron.UK = &uk
		}
		if hasUS {
			pron.US = &us
		}
		extra.Pronunciation = pron
	}

	if !extra.IsEmpty() {
		def.Extra = extra
	}

	return def
}
