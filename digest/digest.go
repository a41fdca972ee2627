// Package digest provides the hashing and encoding helpers used when signing
// tracking requests: md5 hex digests and standard base64.
package digest

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// MD5 returns the 32-character hex md5 digest of s, uppercased when
// uppercase is set.
func MD5(s string, uppercase bool) string {
	sum := md5.Sum([]byte(s))
	out := hex.EncodeToString(sum[:])
	if uppercase {
		return strings.ToUpper(out)
	}
	return out
}

// Base64 returns the standard base64 encoding of s.
func Base64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
