package pagemeta

import "strings"

// DefaultDescriptionLength is the description bound used when none is
// configured. Search engines typically display about 150-160 characters.
const DefaultDescriptionLength = 150

// truncationMarker is appended when an excerpt is cut mid-sentence.
const truncationMarker = "..."

// Describe derives a length-bounded description string from an excerpt.
//
// If the excerpt's first sentence ends within the bound (a ". " sequence at
// rune index i with 0 < i <= bound), the description is the excerpt through
// that delimiter, trimmed. Otherwise the excerpt is returned unchanged when
// it fits, or cut to bound-3 runes with a "..." marker when it does not.
// Should the marker itself not fit, the excerpt is hard-cut at the bound.
//
// All lengths are character (rune) counts, not bytes. Empty input is
// returned unchanged.
func Describe(text string, bound int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if i := sentenceEnd(runes); i > 0 && i <= bound {
		return strings.TrimSpace(string(runes[:i+2]))
	}
	return truncate(runes, bound)
}

// sentenceEnd returns the rune index of the first period-plus-space
// delimiter, or -1 if the text contains none.
func sentenceEnd(runes []rune) int {
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] == '.' && runes[i+1] == ' ' {
			return i
		}
	}
	return -1
}

// truncate bounds text to at most bound runes, marking the cut with an
// ellipsis when the marker fits.
func truncate(runes []rune, bound int) string {
	if len(runes) <= bound {
		return string(runes)
	}
	if len(truncationMarker) > bound {
		return string(runes[:bound])
	}
	return string(runes[:bound-len(truncationMarker)]) + truncationMarker
}
