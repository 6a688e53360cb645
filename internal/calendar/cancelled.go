package calendar

import "strings"

var cancelPhrases = map[string]bool{
	"cancel":            true,
	"cancelled":         true,
	"canceled":          true,
	"cancellation":      true,
	"event cancelled":   true,
	"event canceled":    true,
	"session cancelled": true,
	"session canceled":  true,
}

var cancelWords = map[string]bool{
	"cancel":       true,
	"cancelled":    true,
	"canceled":     true,
	"cancellation": true,
}

// IsCancelled decides from the event description whether the event was
// called off. The rules are deliberately loose: an exact phrase match, a
// description starting with "cancel", or any whole word from the cancel
// family. Unrelated text containing "cancel" as a standalone word will
// false-positive; coaches write short descriptions so this has been good
// enough in practice.
func IsCancelled(description string) bool {
	if description == "" {
		return false
	}

	desc := strings.ToLower(strings.TrimSpace(description))
	if cancelPhrases[desc] {
		return true
	}
	if strings.HasPrefix(desc, "cancel") {
		return true
	}
	for _, word := range strings.Fields(desc) {
		if cancelWords[word] {
			return true
		}
	}
	return false
}
