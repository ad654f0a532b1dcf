// Package collation pins how category names are matched and ordered. The
// in-memory search and the sqlite functions registered by pkg/db both go
// through it, so the two backends agree on every page.
package collation

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Names are ordered with a Portuguese collation that ignores case, so
// "Abacaxi" < "abelha" < "Acerola" and accented letters sort next to their
// base letter.
var collators = sync.Pool{
	New: func() any {
		return collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	},
}

func Compare(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// Fold case folds s for case-insensitive matching.
func Fold(s string) string {
	return cases.Fold().String(s)
}
