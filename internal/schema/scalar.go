package schema

import (
	"net/url"
	"strings"

	"github.com/boddenberg/zapay-go/internal/domain"
)

// ParsePlate canonicalizes a license plate to uppercase and validates it
// against the Brazilian layout (old and Mercosul).
func ParsePlate(raw string) (domain.Plate, error) {
	upper := strings.ToUpper(raw)
	if !plateRegexp.MatchString(upper) {
		return "", failScalar("plate", "brplate", raw)
	}
	return domain.Plate(upper), nil
}

// SerializePlate is the inverse of ParsePlate.
func SerializePlate(p domain.Plate) string {
	return string(p)
}

// ParseToken validates the shape of a bearer credential: two or three
// dot-separated base64url-ish segments.
func ParseToken(raw string) (domain.Token, error) {
	if !tokenRegexp.MatchString(raw) {
		return "", failScalar("token", "jwtshape", raw)
	}
	return domain.Token(raw), nil
}

// SerializeToken is the inverse of ParseToken.
func SerializeToken(t domain.Token) string {
	return string(t)
}

// ParseState resolves a case-insensitive state abbreviation against the
// registry. Unknown abbreviations and states the remote API does not
// currently serve are both rejected.
func ParseState(raw string) (domain.State, error) {
	s, ok := domain.LookupState(strings.ToUpper(raw))
	if !ok || !s.Available {
		return domain.State{}, failScalar("state", "oneof", raw)
	}
	return s, nil
}

// SerializeState is the inverse of ParseState.
func SerializeState(s domain.State) string {
	return s.Abbreviation
}

// ParseWebhookURL validates a webhook callback address: an absolute http or
// https URL with a host.
func ParseWebhookURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", failScalar("url", "url", raw)
	}
	return raw, nil
}
