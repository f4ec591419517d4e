package phonetic

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// Annotator derives a human-readable pronunciation guide from Chinese
// text: tone-marked pinyin for simplified script, zhuyin symbols for
// traditional script.
type Annotator struct{}

func NewAnnotator() *Annotator {
	return &Annotator{}
}

// Annotate transcribes text one Han character at a time, joining units
// with single spaces. Consecutive non-Han runes pass through unchanged
// as a single unit so mixed input keeps its order.
func (a *Annotator) Annotate(text string, traditional bool) string {
	if text == "" {
		return ""
	}

	args := pinyin.NewArgs()
	if traditional {
		args.Style = pinyin.Tone3
	} else {
		args.Style = pinyin.Tone
	}

	var units []string
	var passthrough strings.Builder

	flush := func() {
		if passthrough.Len() == 0 {
			return
		}
		if unit := strings.TrimSpace(passthrough.String()); unit != "" {
			units = append(units, unit)
		}
		passthrough.Reset()
	}

	for _, r := range text {
		syllables := pinyin.SinglePinyin(r, args)
		if len(syllables) == 0 {
			passthrough.WriteRune(r)
			continue
		}
		flush()
		unit := syllables[0]
		if traditional {
			unit = toZhuyin(unit)
		}
		units = append(units, unit)
	}
	flush()

	return strings.Join(units, " ")
}
