// Package ledger records which product codes have been sold.
package ledger

import "sort"

// Ledger is a set of sold product codes. It records membership only.
type Ledger struct {
	codes map[string]struct{}
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{codes: make(map[string]struct{})}
}

// MarkSold records code as sold. Marking a code again has no effect.
func (l *Ledger) MarkSold(code string) {
	l.codes[code] = struct{}{}
}

// IsSold reports whether code has been marked sold.
func (l *Ledger) IsSold(code string) bool {
	_, ok := l.codes[code]
	return ok
}

// Len returns the number of distinct sold codes.
func (l *Ledger) Len() int {
	return len(l.codes)
}

// Codes returns the sorted sold codes.
func (l *Ledger) Codes() []string {
	r := make([]string, 0, len(l.codes))
	for code := range l.codes {
		r = append(r, code)
	}
	sort.Strings(r)
	return r
}
