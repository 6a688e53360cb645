package calendar

import "strings"

// TypeRule maps a title substring to a category id. Rules are matched in
// order, so more specific substrings must come before generic ones.
type TypeRule struct {
	Substring string
	ID        string
}

// DefaultTypeRules returns the ordered title-matching rules. "next star x
// nike evening" must be tested before "evening group training": both
// titles contain "evening", and the co-branded session would otherwise be
// swallowed by the generic rule.
func DefaultTypeRules() []TypeRule {
	return []TypeRule{
		{"morning group training", "morning-training"},
		{"next star x nike evening", "next-star-x-nike-evening"},
		{"evening group training", "evening-training"},
		{"youth group", "youth-group-camp"},
		{"college/pro group", "college-pro-group-camp"},
		{"camp morning", "camp-morning"},
		{"camp afternoon", "camp-afternoon"},
		{"clinic", "clinic"},
		{"showcase", "showcase"},
	}
}

// TypeClassifier maps free-text event titles to category ids.
type TypeClassifier struct {
	rules []TypeRule
}

func NewTypeClassifier(rules []TypeRule) *TypeClassifier {
	return &TypeClassifier{rules: rules}
}

// Classify returns the category id for a title; first matching rule wins,
// no match or an empty title falls back to "other".
func (tc *TypeClassifier) Classify(title string) string {
	if title == "" {
		return "other"
	}
	lower := strings.ToLower(title)
	for _, rule := range tc.rules {
		if strings.Contains(lower, rule.Substring) {
			return rule.ID
		}
	}
	return "other"
}

// Color returns the display color for a title, looked up through the given
// filter options. Unrecognized categories get the neutral default.
func (tc *TypeClassifier) Color(title string, options []FilterOption) string {
	id := tc.Classify(title)
	for _, opt := range options {
		if opt.ID == id {
			return opt.Color
		}
	}
	return DefaultColor
}
