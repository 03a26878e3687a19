package textedit

// Selection is a half-open range [Start, End) with Start <= End.
type Selection struct {
	Start int
	End   int
}

// NewSelection orders a and b into a Selection.
func NewSelection(a, b int) Selection {
	if a > b {
		a, b = b, a
	}
	return Selection{Start: a, End: b}
}

// IsEmpty reports whether the range selects nothing.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Contains reports whether i lies in [Start, End).
func (s Selection) Contains(i int) bool {
	return i >= s.Start && i < s.End
}
