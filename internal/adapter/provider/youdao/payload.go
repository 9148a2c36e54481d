package youdao

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Payload is a decoded provider response. The provider's shape varies by
// query type and is not trusted: every field is kept raw and read through
// accessors that treat a missing, null or wrong-typed value as absent.
type Payload struct {
	ErrorCodeRaw   json.RawMessage `json:"errorCode"`
	MsgRaw         json.RawMessage `json:"msg"`
	QueryRaw       json.RawMessage `json:"query"`
	TranslationRaw json.RawMessage `json:"translation"`
	BasicRaw       json.RawMessage `json:"basic"`
	WebRaw         json.RawMessage `json:"web"`
	SpeakURLRaw    json.RawMessage `json:"speakUrl"`
	TSpeakURLRaw   json.RawMessage `json:"tSpeakUrl"`
}

var errNotObject = errors.New("payload is not a JSON object")

// DecodePayload parses body as a provider response. Only a body that is not a
// JSON object is an error; field-level problems surface as absent values.
func DecodePayload(body []byte) (*Payload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotObject
	}
	var p Payload
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &p, nil
}

// ErrorCode returns the provider status code. It accepts both the documented
// string form and a bare number; an absent code is "".
func (p *Payload) ErrorCode() string {
	if s, ok := rawString(p.ErrorCodeRaw); ok {
		return s
	}
	var n json.Number
	if !isAbsent(p.ErrorCodeRaw) && json.Unmarshal(p.ErrorCodeRaw, &n) == nil {
		return n.String()
	}
	return ""
}

// Message returns the provider's error message, if any.
func (p *Payload) Message() string {
	s, _ := rawString(p.MsgRaw)
	return s
}

// Translations returns the plain translation entries in provider order.
func (p *Payload) Translations() []string {
	return rawStrings(p.TranslationRaw)
}

// Basic returns the dictionary section of the response. The zero value is
// returned when the section is missing or malformed.
func (p *Payload) Basic() Basic {
	var fields map[string]json.RawMessage
	if isAbsent(p.BasicRaw) || json.Unmarshal(p.BasicRaw, &fields) != nil {
		return Basic{}
	}
	return Basic{fields: fields}
}

// WebEntry is a web-sourced phrase translation.
type WebEntry struct {
	Key   string
	Value []string
}

// Web returns the web translation entries. Entries without a string key are
// skipped; a missing value list becomes an empty one.
func (p *Payload) Web() []WebEntry {
	var items []json.RawMessage
	if isAbsent(p.WebRaw) || json.Unmarshal(p.WebRaw, &items) != nil {
		return nil
	}

	out := make([]WebEntry, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if json.Unmarshal(item, &fields) != nil {
			continue
		}
		key, ok := rawString(fields["key"])
		if !ok {
			continue
		}
		value := rawStrings(fields["value"])
		if value == nil {
			value = []string{}
		}
		out = append(out, WebEntry{Key: key, Value: value})
	}
	return out
}

// Basic is the provider's dictionary section: phonetics, short explanations
// and speech URLs.
type Basic struct {
	fields map[string]json.RawMessage
}

// Phonetic returns the general phonetic transcription.
func (b Basic) Phonetic() (string, bool) { return b.nonEmpty("phonetic") }

// UKSpeech returns the British pronunciation audio URL.
func (b Basic) UKSpeech() (string, bool) { return b.nonEmpty("uk-speech") }

// USSpeech returns the American pronunciation audio URL.
func (b Basic) USSpeech() (string, bool) { return b.nonEmpty("us-speech") }

// Explains returns the short explanations in provider order.
func (b Basic) Explains() []string {
	return rawStrings(b.fields["explains"])
}

func (b Basic) nonEmpty(key string) (string, bool) {
	s, ok := rawString(b.fields[key])
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

func rawString(raw json.RawMessage) (string, bool) {
	if isAbsent(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// rawStrings decodes a JSON array and keeps its string elements in order.
// Anything other than an array yields nil.
func rawStrings(raw json.RawMessage) []string {
	var items []json.RawMessage
	if isAbsent(raw) || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := rawString(item); ok {
			out = append(out, s)
		}
	}
	return out
}
