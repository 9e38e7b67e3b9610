package lingo

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// CLDR cardinal category names, as they appear as sub-keys of a plural
// template in catalog files. Every plural template must define at least
// CategoryOther.
const (
	CategoryZero  = "zero"
	CategoryOne   = "one"
	CategoryTwo   = "two"
	CategoryFew   = "few"
	CategoryMany  = "many"
	CategoryOther = "other"
)

var categoryNames = map[plural.Form]string{
	plural.Zero:  CategoryZero,
	plural.One:   CategoryOne,
	plural.Two:   CategoryTwo,
	plural.Few:   CategoryFew,
	plural.Many:  CategoryMany,
	plural.Other: CategoryOther,
}

var knownCategories = map[string]struct{}{
	CategoryZero:  {},
	CategoryOne:   {},
	CategoryTwo:   {},
	CategoryFew:   {},
	CategoryMany:  {},
	CategoryOther: {},
}

// pluralCategory selects the cardinal category for count under the locale's
// plural rules. CLDR operates on |n|.
func pluralCategory(tag language.Tag, count int) string {
	if count < 0 {
		count = -count
	}
	form := plural.Cardinal.MatchPlural(tag, count, 0, 0, 0, 0)
	if name, ok := categoryNames[form]; ok {
		return name
	}
	return CategoryOther
}
