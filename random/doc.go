// Package random provides the general-purpose pseudo-random helpers used by
// the tracking identifiers: range sampling with permissive argument
// resolution, alphanumeric string sampling and uniform item picking.  It
// deliberately uses math/rand/v2, not a cryptographically strong source;
// identifiers that need strong randomness live in package idgen.
package random
