// Package idgen generates the opaque client-identifier formats used for
// visitor tracking: canonical v4 UUIDs, 12-character visit ids and
// hex-encoded device ids (buvids).  Formats that identify devices draw from
// a cryptographically strong source; the visit id uses the general-purpose
// generator from package random.  Callers should treat every identifier as
// an opaque string - no semantic validation is performed here.
package idgen
