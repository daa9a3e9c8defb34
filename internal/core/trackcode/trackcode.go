// Package trackcode generates and validates human-shareable tracking codes
// of the form SE-XXXX-XXXX-XXXX.
package trackcode

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"
)

// alphabet excludes easily confused characters (0/O, 1/I). Its length is a
// power of two so a random byte maps onto it without modulo bias.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const prefix = "SE"

// pattern accepts the full uppercase alphanumeric class rather than the
// generation alphabet, so codes issued by older systems keep validating.
var pattern = regexp.MustCompile(`^SE-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

// Generate returns a new tracking code: 12 characters drawn uniformly from
// the alphabet, in 3 dash-separated groups of 4. No uniqueness check is
// performed here; collisions are handled by the unique index at the
// persistence layer.
func Generate() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from current nanoseconds
		seed := uint64(time.Now().UnixNano())
		for i := range b {
			b[i] = byte(seed >> (uint(i%8) * 8))
		}
	}

	code := make([]byte, 0, 14)
	for i, v := range b {
		if i > 0 && i%4 == 0 {
			code = append(code, '-')
		}
		code = append(code, alphabet[int(v)%len(alphabet)])
	}
	return fmt.Sprintf("%s-%s", prefix, code)
}

// IsValid reports whether code matches the exact tracking code format:
// prefix, dashes, character classes and grouping.
func IsValid(code string) bool {
	return pattern.MatchString(code)
}
