package services

import (
	"net/http"
	"regexp"
	"strings"
	"unicode"
)

// Canonical phrases that mark a post as needing a supportive-resources notice.
// Posts are never blocked; detection only attaches support info to the response.
var selfHarmPhrases = []string{
	"suicide",
	"kill myself",
	"end my life",
	"take my life",
	"end it all",
	"self harm",
	"cut myself",
	"hurt myself",
	"harm myself",
	"want to die",
	"wish i was dead",
	"not worth living",
	"better off dead",
	"end myself",
	"unalive",
}

var spaceRegex = regexp.MustCompile(`\s+`)

// CleanText normalizes post text to canonical form before dictionary matching:
// lowercase, de-obfuscate common substitutions, strip non-letters, collapse
// repeated letters.
func CleanText(text string) string {
	cleaned := strings.ToLower(text)

	replacements := map[string]string{
		"@": "a",
		"4": "a",
		"3": "e",
		"!": "i",
		"1": "i",
		"0": "o",
		"$": "s",
		"5": "s",
		"7": "t",
		"+": "t",
	}
	for old, repl := range replacements {
		cleaned = strings.ReplaceAll(cleaned, old, repl)
	}

	var builder strings.Builder
	for _, r := range cleaned {
		if unicode.IsLetter(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteRune(' ')
		}
	}
	cleaned = collapseRepeats(builder.String())

	cleaned = spaceRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// collapseRepeats reduces repeated letters to a single character so
// "hurrrt myselffff" matches "hurt myself". Spaces are preserved.
func collapseRepeats(text string) string {
	if len(text) == 0 {
		return text
	}

	var result strings.Builder
	lastChar := rune(0)
	lastWasLetter := false

	for _, char := range text {
		isLetter := unicode.IsLetter(char)
		if isLetter && lastWasLetter && char == lastChar {
			continue
		}
		result.WriteRune(char)
		lastChar = char
		lastWasLetter = isLetter
	}

	return result.String()
}

// ContainsSelfHarmLanguage reports whether the post text contains self-harm
// phrasing after normalization. The dictionary goes through the same cleaner
// as the input so repeated-letter collapsing applies to both sides. Single
// words must match a whole word ("skill" never matches "kill"); multi-word
// phrases match on containment.
func ContainsSelfHarmLanguage(text string) bool {
	cleaned := CleanText(text)
	if cleaned == "" {
		return false
	}
	words := strings.Fields(cleaned)

	for _, raw := range selfHarmPhrases {
		phrase := CleanText(raw)
		if len(strings.Fields(phrase)) == 1 {
			for _, w := range words {
				if w == phrase {
					return true
				}
			}
			continue
		}
		if strings.Contains(cleaned, phrase) {
			return true
		}
	}
	return false
}

// GetIPAddress returns the client IP, preferring proxy headers when present.
func GetIPAddress(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
