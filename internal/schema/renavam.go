package schema

import "github.com/boddenberg/zapay-go/internal/domain"

// renavamWeights multiply the first ten digits, left to right.
var renavamWeights = [10]int{3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// ValidRenavam reports whether value is a well-formed vehicle registry
// number: exactly 11 decimal digits, not a degenerate run of one repeated
// digit, and the 11th digit matches the weighted mod-11 checksum of the
// first ten. The check digit is (sum*10) mod 11, with 10 wrapping to 0.
func ValidRenavam(value string) bool {
	if len(value) != 11 {
		return false
	}

	allSame := true
	sum := 0
	for i := 0; i < 11; i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return false
		}
		if c != value[0] {
			allSame = false
		}
		if i < 10 {
			sum += int(c-'0') * renavamWeights[i]
		}
	}
	if allSame {
		return false
	}

	check := (sum * 10) % 11
	if check == 10 {
		check = 0
	}
	return value[10] == byte('0'+check)
}

// ParseRenavam validates a raw registry number.
func ParseRenavam(raw string) (domain.Renavam, error) {
	if !ValidRenavam(raw) {
		return "", failScalar("renavam", "renavam", raw)
	}
	return domain.Renavam(raw), nil
}

// SerializeRenavam is the inverse of ParseRenavam.
func SerializeRenavam(r domain.Renavam) string {
	return string(r)
}
