package inference

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Hosted endpoints answer in several shapes depending on model family:
// an array of objects carrying generated_text or summary_text, a bare
// object with the same fields, or a bare JSON string. Each shape gets
// its own decode function; probing stops at the first that fits and
// yields text.

type generatedObject struct {
	GeneratedText string `json:"generated_text"`
	SummaryText   string `json:"summary_text"`
}

func (o generatedObject) text() string {
	if o.GeneratedText != "" {
		return o.GeneratedText
	}
	return o.SummaryText
}

func decodeGenerated(raw []byte) (string, error) {
	decoders := []func([]byte) (string, bool){
		decodeObjectArray,
		decodeObject,
		decodeString,
	}
	for _, decode := range decoders {
		if text, ok := decode(raw); ok {
			return text, nil
		}
	}
	return "", errors.Errorf("unrecognized response shape: %.80s", string(raw))
}

func decodeObjectArray(raw []byte) (string, bool) {
	var arr []generatedObject
	if err := json.Unmarshal(raw, &arr); err != nil || len(arr) == 0 {
		return "", false
	}
	text := arr[0].text()
	return text, text != ""
}

func decodeObject(raw []byte) (string, bool) {
	var obj generatedObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}
	text := obj.text()
	return text, text != ""
}

func decodeString(raw []byte) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, s != ""
}
