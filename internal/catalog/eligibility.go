package catalog

import (
	"strings"
	"unicode"

	"github.com/avolkov/washconv/internal/model"
)

const (
	GenderFemale = "female"
	GenderMale   = "male"
)

// DefaultSets derives the default gender restrictions from item names:
// a "skirt" or "female" token marks an item female-only, a "male" token
// marks it male-only. Token matching is word-based so "female" never
// counts as a "male" token.
func DefaultSets(names []string) model.EligibilitySets {
	sets := model.EligibilitySets{
		FemaleOnly: make(map[string]struct{}),
		MaleOnly:   make(map[string]struct{}),
	}
	for _, name := range names {
		female := hasToken(name, "skirt") || hasToken(name, "female")
		male := hasToken(name, "male")
		switch {
		case female && !male:
			sets.FemaleOnly[name] = struct{}{}
		case male && !female:
			sets.MaleOnly[name] = struct{}{}
		}
	}
	return sets
}

// SetsFromNames builds eligibility sets from explicit name lists.
func SetsFromNames(femaleOnly, maleOnly []string) model.EligibilitySets {
	sets := model.EligibilitySets{
		FemaleOnly: make(map[string]struct{}),
		MaleOnly:   make(map[string]struct{}),
	}
	for _, name := range femaleOnly {
		sets.FemaleOnly[name] = struct{}{}
	}
	for _, name := range maleOnly {
		sets.MaleOnly[name] = struct{}{}
	}
	return sets
}

// Filter drops items restricted to the opposite gender. Any gender value
// other than "female"/"male" passes every item through. An empty result
// is the caller's terminal failure for that order, not an error here.
func Filter(items []model.CatalogItem, gender string, sets model.EligibilitySets) []model.CatalogItem {
	var drop map[string]struct{}
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case GenderFemale:
		drop = sets.MaleOnly
	case GenderMale:
		drop = sets.FemaleOnly
	default:
		return items
	}

	var out []model.CatalogItem
	for _, item := range items {
		if _, restricted := drop[item.Name]; restricted {
			continue
		}
		out = append(out, item)
	}
	return out
}

func hasToken(name, token string) bool {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, f := range fields {
		if f == token {
			return true
		}
	}
	return false
}
