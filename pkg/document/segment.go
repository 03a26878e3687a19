package document

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// segment is a word or grapheme cluster boundary pair in rune offsets.
type segment struct {
	start int
	end   int
	space bool
}

// words splits the text into Unicode word segments.
func (d *Document) words() []segment {
	var segs []segment
	rest := d.Text()
	state := -1
	pos := 0
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := utf8.RuneCountInString(word)
		segs = append(segs, segment{start: pos, end: pos + n, space: isSpace(word)})
		pos += n
	}
	return segs
}

// WordBoundsAt returns the word segment enclosing i. At the end of the text
// the last segment is returned; an empty document yields (0, 0).
func (d *Document) WordBoundsAt(i int) (int, int) {
	i = d.Clamp(i)
	segs := d.words()
	if len(segs) == 0 {
		return 0, 0
	}
	for _, s := range segs {
		if i >= s.start && i < s.end {
			return s.start, s.end
		}
	}
	last := segs[len(segs)-1]
	return last.start, last.end
}

// ParagraphBoundsAt returns the newline-delimited paragraph enclosing i,
// excluding the newline itself.
func (d *Document) ParagraphBoundsAt(i int) (int, int) {
	i = d.Clamp(i)
	start := i
	for start > 0 && d.runes[start-1] != '\n' {
		start--
	}
	end := i
	for end < len(d.runes) && d.runes[end] != '\n' {
		end++
	}
	return start, end
}

// NextWord returns the start of the first word after i, or Len() when there
// is none.
func (d *Document) NextWord(i int) int {
	i = d.Clamp(i)
	for _, s := range d.words() {
		if s.start > i && !s.space {
			return s.start
		}
	}
	return len(d.runes)
}

// PreviousWord returns the start of the last word beginning before i, or 0.
func (d *Document) PreviousWord(i int) int {
	i = d.Clamp(i)
	prev := 0
	for _, s := range d.words() {
		if s.start >= i {
			break
		}
		if !s.space {
			prev = s.start
		}
	}
	return prev
}

// NextGrapheme returns the index after the grapheme cluster starting at i.
func (d *Document) NextGrapheme(i int) int {
	i = d.Clamp(i)
	for _, b := range d.graphemeBounds() {
		if b > i {
			return b
		}
	}
	return len(d.runes)
}

// PrevGrapheme returns the start of the grapheme cluster ending at i.
func (d *Document) PrevGrapheme(i int) int {
	i = d.Clamp(i)
	prev := 0
	for _, b := range d.graphemeBounds() {
		if b >= i {
			break
		}
		prev = b
	}
	return prev
}

// graphemeBounds lists the rune offsets at which grapheme clusters start,
// plus Len().
func (d *Document) graphemeBounds() []int {
	bounds := []int{0}
	rest := d.Text()
	state := -1
	pos := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += utf8.RuneCountInString(cluster)
		bounds = append(bounds, pos)
	}
	return bounds
}

func isSpace(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
