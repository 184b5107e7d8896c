package predicate

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collate.Collator keeps per-call buffers and must not be shared across goroutines.
var collators = sync.Pool{
	New: func() any { return collate.New(language.English) },
}

// CompareLocale orders two strings the way a human-facing listing would
// (English collation). Returns -1, 0 or +1.
func CompareLocale(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}
