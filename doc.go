// Package kit is a collection of small, stateless helpers shared by the
// vistrack client applications.  Every helper is an independent, pure (or
// near-pure) transformation of its inputs; the module owns no state, no
// transport and no configuration.
//
// The helpers are grouped by concern into sub-packages:
//
//   - transform – cloning and merging of dynamic decoded values
//   - random    – general-purpose range, string and item sampling
//   - idgen     – tracking identifier formats (UUID, visit id, buvid)
//   - digest    – md5 and base64 helpers
//   - web       – query-string, header and JSONP envelope helpers
//   - conv      – lenient numeric coercion and paging arithmetic
//   - timeutil  – stubbable clock and calendar-day checks
//   - sliceutil – generic slice helpers
//
// All functions are safe for concurrent use; the single caller-side hazard
// is transform.Merge, which mutates its target argument.
package kit
