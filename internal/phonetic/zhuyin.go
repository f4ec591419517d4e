package phonetic

import "strings"

// Conversion from numbered pinyin syllables (pinyin.Tone3 output) to
// zhuyin. The tables cover the full standard syllabary; a syllable that
// somehow falls outside it is returned in its pinyin form.

// Syllables written without an initial, or where the pinyin spelling
// hides the real final (zhi, yi, wu, yu and friends).
var wholeSyllables = map[string]string{
	"zhi": "ㄓ", "chi": "ㄔ", "shi": "ㄕ", "ri": "ㄖ",
	"zi": "ㄗ", "ci": "ㄘ", "si": "ㄙ",
	"yi": "ㄧ", "ya": "ㄧㄚ", "yo": "ㄧㄛ", "ye": "ㄧㄝ", "yao": "ㄧㄠ",
	"you": "ㄧㄡ", "yan": "ㄧㄢ", "yin": "ㄧㄣ", "yang": "ㄧㄤ",
	"ying": "ㄧㄥ", "yong": "ㄩㄥ",
	"wu": "ㄨ", "wa": "ㄨㄚ", "wo": "ㄨㄛ", "wai": "ㄨㄞ", "wei": "ㄨㄟ",
	"wan": "ㄨㄢ", "wen": "ㄨㄣ", "wang": "ㄨㄤ", "weng": "ㄨㄥ",
	"yu": "ㄩ", "yue": "ㄩㄝ", "yuan": "ㄩㄢ", "yun": "ㄩㄣ",
	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "ai": "ㄞ", "ei": "ㄟ",
	"ao": "ㄠ", "ou": "ㄡ", "an": "ㄢ", "en": "ㄣ", "ang": "ㄤ",
	"eng": "ㄥ", "er": "ㄦ",
}

var initials = map[string]string{
	"zh": "ㄓ", "ch": "ㄔ", "sh": "ㄕ",
	"b": "ㄅ", "p": "ㄆ", "m": "ㄇ", "f": "ㄈ",
	"d": "ㄉ", "t": "ㄊ", "n": "ㄋ", "l": "ㄌ",
	"g": "ㄍ", "k": "ㄎ", "h": "ㄏ",
	"j": "ㄐ", "q": "ㄑ", "x": "ㄒ",
	"r": "ㄖ", "z": "ㄗ", "c": "ㄘ", "s": "ㄙ",
}

var finals = map[string]string{
	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "ai": "ㄞ", "ei": "ㄟ",
	"ao": "ㄠ", "ou": "ㄡ", "an": "ㄢ", "en": "ㄣ", "ang": "ㄤ",
	"eng": "ㄥ", "er": "ㄦ", "ong": "ㄨㄥ",
	"i": "ㄧ", "ia": "ㄧㄚ", "io": "ㄧㄛ", "ie": "ㄧㄝ", "iao": "ㄧㄠ",
	"iu": "ㄧㄡ", "ian": "ㄧㄢ", "in": "ㄧㄣ", "iang": "ㄧㄤ",
	"ing": "ㄧㄥ", "iong": "ㄩㄥ",
	"u": "ㄨ", "ua": "ㄨㄚ", "uo": "ㄨㄛ", "uai": "ㄨㄞ", "ui": "ㄨㄟ",
	"uan": "ㄨㄢ", "un": "ㄨㄣ", "uang": "ㄨㄤ",
	"ü": "ㄩ", "üe": "ㄩㄝ", "üan": "ㄩㄢ", "ün": "ㄩㄣ",
}

var toneMarks = map[byte]string{
	'1': "", '2': "ˊ", '3': "ˇ", '4': "ˋ", '5': "˙",
}

// toZhuyin converts one numbered pinyin syllable, e.g. "hao3" -> "ㄏㄠˇ".
func toZhuyin(syllable string) string {
	s := strings.ToLower(syllable)

	tone := "˙" // Tone3 omits the number on neutral-tone syllables
	if n := len(s); n > 0 {
		if mark, ok := toneMarks[s[n-1]]; ok {
			tone = mark
			s = s[:n-1]
		}
	}
	s = strings.ReplaceAll(s, "v", "ü")

	if zy, ok := wholeSyllables[s]; ok {
		return zy + tone
	}

	initial, rest := splitInitial(s)
	if initial == "" {
		return syllable
	}

	// After j/q/x the pinyin "u" spelling stands for ü.
	if initial == "j" || initial == "q" || initial == "x" {
		if strings.HasPrefix(rest, "u") {
			rest = "ü" + rest[len("u"):]
		}
	}

	zyFinal, ok := finals[rest]
	if !ok {
		return syllable
	}
	return initials[initial] + zyFinal + tone
}

func splitInitial(s string) (initial, rest string) {
	if len(s) >= 2 {
		if _, ok := initials[s[:2]]; ok {
			return s[:2], s[2:]
		}
	}
	if len(s) >= 1 {
		if _, ok := initials[s[:1]]; ok {
			return s[:1], s[1:]
		}
	}
	return "", s
}
