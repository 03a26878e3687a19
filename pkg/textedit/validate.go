package textedit

import "regexp"

// Validator decides whether a candidate full text may be committed.
type Validator interface {
	Accept(candidate string) bool
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(candidate string) bool

// Accept calls f.
func (f ValidatorFunc) Accept(candidate string) bool {
	return f(candidate)
}

// Pattern accepts text matched by a regular expression. Patterns are used
// as compiled, so anchor them to constrain the whole text.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr into a Pattern.
func NewPattern(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Pattern{re: re}, nil
}

// MustPattern is like NewPattern but panics on a bad expression.
func MustPattern(expr string) *Pattern {
	return &Pattern{re: regexp.MustCompile(expr)}
}

// Accept reports whether candidate matches.
func (p *Pattern) Accept(candidate string) bool {
	return p.re.MatchString(candidate)
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.re.String()
}

// Predefined validators. They accept every prefix of a valid value so they
// can gate typing one character at a time.
var (
	ValidateLowercase = MustPattern(`^[a-z0-9_\-]*$`)
	ValidateUppercase = MustPattern(`^[A-Z]*$`)
	ValidateLetters   = MustPattern(`^[A-Za-z]*$`)
	ValidateDigits    = MustPattern(`^[0-9]*$`)
	ValidateEmail     = MustPattern(`^[\w.%+\-]*(@[\w.\-]*)?$`)
	ValidateNumber    = MustPattern(`^-?(0|[1-9][0-9]*)?(\.[0-9]*)?([eE][+\-]?[0-9]*)?$`)
)
