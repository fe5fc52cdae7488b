package registry

// Entry is anything registered under a name.
type Entry interface {
	EntryName() string
}

// List is an ordered collection of entries, looked up by ASCII
// case-insensitive name.
//
// Registering does not check for duplicate names: the newest entry comes
// first, masking any earlier entry of the same name.
type List[E Entry] struct {
	entries []E
}

// Register adds e to the front of the list.
func (l *List[E]) Register(e E) {
	l.entries = append(l.entries, e)
	copy(l.entries[1:], l.entries)
	l.entries[0] = e
}

// Find returns the first entry named name.
func (l *List[E]) Find(name string) (e E, ok bool) {
	for _, e := range l.entries {
		if FoldEqual(e.EntryName(), name) {
			return e, true
		}
	}
	return e, false
}

// Len returns how many entries are registered, masked ones included.
func (l *List[E]) Len() int { return len(l.entries) }

// Entries returns all entries, newest first.
func (l *List[E]) Entries() []E {
	return append([]E(nil), l.entries...)
}

// Names returns the names of all entries, newest first.
func (l *List[E]) Names() []string {
	names := make([]string, len(l.entries))
	for i, e := range l.entries {
		names[i] = e.EntryName()
	}
	return names
}

// FoldEqual reports whether a and b are equal under ASCII case folding.
func FoldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

// FoldLess orders a before b under ASCII case folding.
func FoldLess(a, b string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if ca, cb := lower(a[i]), lower(b[i]); ca != cb {
			return ca < cb
		}
	}
	return len(a) < len(b)
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
