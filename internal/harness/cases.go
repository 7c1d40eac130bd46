package harness

import "wttrloc/internal/location"

// Case is one regression check: the full prompt and the token it should produce.
type Case struct {
	Input    string
	Expected string
}

// NewCase composes question with the location prompt template.
func NewCase(question, expected string) Case {
	return Case{Input: location.Compose(question), Expected: expected}
}

// DefaultCases returns the built-in wttr.in regression set in run order.
func DefaultCases() []Case {
	return []Case{
		NewCase("How cold is it at the Charlotte Douglas International Airport this week?", "clt"),
		NewCase("What is the temperature near Stonehenge right now?", "~Stonehenge"),
		NewCase("How warm will it be in Portland?", "Portland"),
		NewCase("How cold is it at the John F. Kennedy International Airport this week?", "jfk"),
		NewCase("What is the temperature near the Taj Mahal right now?", "~Taj+Mahal"),
		NewCase("How warm will it be in Saint Louis?", "Saint+Louis"),
	}
}
