package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	kitrand "github.com/vistrack/kit/random"
)

// New returns a new globally unique identifier as string. It is implemented
// as a thin wrapper so tests can stub it.

var NewFunc = func() string { return uuid.New().String() }

func New() string { return NewFunc() }

// randRead fills b with cryptographically strong bytes. Override in tests
// for determinism; a failed read leaves the buffer zeroed rather than
// surfacing an error, so generation degrades instead of failing.
var randRead = rand.Read

const (
	uuidTemplate = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"
	hexDigits    = "0123456789abcdef"
	buvidPrefix  = "XY"
)

// uuidEntropySize counts the templated positions of uuidTemplate; the fixed
// version nibble and the hyphens consume no randomness.
var uuidEntropySize = strings.Count(uuidTemplate, "x") + strings.Count(uuidTemplate, "y")

// UUID returns a 36-character identifier in the canonical 8-4-4-4-12
// hyphenated v4 layout.  Each templated position consumes one strong-random
// byte: 'x' positions take the byte mod 16, the 'y' position keeps the low
// nibble with its top two bits forced to 10, yielding the 8/9/a/b variant.
func UUID() string {
	entropy := make([]byte, uuidEntropySize)
	_, _ = randRead(entropy)

	out := make([]byte, len(uuidTemplate))
	next := 0
	for i := 0; i < len(uuidTemplate); i++ {
		switch uuidTemplate[i] {
		case 'x':
			out[i] = hexDigits[entropy[next]%16]
			next++
		case 'y':
			out[i] = hexDigits[entropy[next]&0x3|0x8]
			next++
		default:
			out[i] = uuidTemplate[i]
		}
	}
	return string(out)
}

// VisitID returns a 12-character visit identifier: a leading digit in [1,9],
// ten lowercase alphanumeric characters and a literal trailing zero.  It is
// built on the general-purpose generator, not the strong source.
func VisitID() string {
	return fmt.Sprintf("%d%s0", int(kitrand.Number(1, 9)), kitrand.String(10, true))
}

// Buvid returns a device identifier: prefix followed by the uppercase hex
// encoding of 16 strong-random bytes.  An empty prefix defaults to "XY".
func Buvid(prefix string) string {
	if prefix == "" {
		prefix = buvidPrefix
	}
	entropy := make([]byte, 16)
	_, _ = randRead(entropy)
	return prefix + strings.ToUpper(hex.EncodeToString(entropy))
}
