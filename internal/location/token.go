package location

import "strings"

// Kind is the shape a location token appears to have.
type Kind string

const (
	// KindCity is a bare city name with '+' for spaces, e.g. "Saint+Louis".
	KindCity Kind = "city"
	// KindAirport is a lowercase three-letter IATA code, e.g. "clt".
	KindAirport Kind = "airport"
	// KindPlace is a '~'-prefixed generic place, e.g. "~Taj+Mahal".
	KindPlace Kind = "place"
	// KindUnknown matches none of the shapes above.
	KindUnknown Kind = "unknown"
)

// Classify reports which token shape s matches. It looks at shape only and is
// never used to reject model output.
//
//	clt           airport (three lowercase letters)
//	~Taj+Mahal    place
//	Saint+Louis   city
func Classify(s string) Kind {
	if s == "" || strings.HasSuffix(s, "+") || strings.ContainsAny(s, " \t\r\n") {
		return KindUnknown
	}

	if rest, ok := strings.CutPrefix(s, "~"); ok {
		if rest == "" || strings.HasPrefix(rest, "+") || strings.Contains(rest, "~") {
			return KindUnknown
		}
		return KindPlace
	}
	if strings.Contains(s, "~") || strings.HasPrefix(s, "+") {
		return KindUnknown
	}

	if isAirportCode(s) {
		return KindAirport
	}
	return KindCity
}

func isAirportCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
