package uuid

import "fmt"

// groupLens are the hex digit counts of the dash-separated groups, in order.
var groupLens = [...]int{8, 4, 4, 4, 12}

// Parse parses a UUID from its canonical form
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx) or its URN form
// (urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx). Hex digits may be of
// either case. The URN prefix is matched case-insensitively.
//
// Exactly five groups of 8, 4, 4, 4 and 12 digits are accepted, in that
// order. Any other input yields ErrInvalidFormat.
func Parse(s string) (UUID, error) {
	return parse(s)
}

// ParseBytes is like Parse, but parses a byte slice.
func ParseBytes(b []byte) (UUID, error) {
	return parse(b)
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuid: Parse(%q): %v", s, err))
	}
	return uuid
}

func parse[T string | []byte](s T) (UUID, error) {
	var uuid UUID

	if len(s) == URNLen {
		if !hasURNPrefix(s) {
			return Nil, ErrInvalidFormat
		}
		s = s[len(URNPrefix):]
	}
	if len(s) != StringLen {
		return Nil, ErrInvalidFormat
	}

	// The group lengths plus four dashes add up to StringLen, so every
	// index below is in range.
	dst := uuid[:]
	for i, n := range groupLens {
		if i > 0 {
			if s[0] != '-' {
				return Nil, ErrInvalidFormat
			}
			s = s[1:]
		}
		if !decodeHex(dst[:n/2], s[:n]) {
			return Nil, ErrInvalidFormat
		}
		dst = dst[n/2:]
		s = s[n:]
	}
	return uuid, nil
}

func hasURNPrefix[T string | []byte](s T) bool {
	for i := 0; i < len(URNPrefix); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != URNPrefix[i] {
			return false
		}
	}
	return true
}

// decodeHex decodes the hex digits in src into dst, which must be half as
// long. It reports false on any character outside [0-9a-fA-F].
func decodeHex[T string | []byte](dst []byte, src T) bool {
	for i := range dst {
		hi, ok1 := fromHexChar(src[2*i])
		lo, ok2 := fromHexChar(src[2*i+1])
		if !ok1 || !ok2 {
			return false
		}
		dst[i] = hi<<4 | lo
	}
	return true
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
