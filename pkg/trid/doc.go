// Package trid validates and constructs Turkish national identity numbers.
//
// A Turkish ID number is an 11-digit decimal string whose last two digits
// are checksums derived from the first nine:
//
//	digit 9  = (7·oddSum − evenSum) mod 10
//	digit 10 = (sum of digits 0..9) mod 10
//
// where oddSum is the sum of the digits at positions 0, 2, 4, 6, 8 and
// evenSum the sum of the digits at positions 1, 3, 5, 7. The first digit
// is never zero.
//
// # TurkishID
//
// TurkishID is an opaque value type: the only ways to obtain one are
// Parse (validate a candidate string) and FromSeq (derive the checksum
// digits from a nine-digit sequence number), so every live TurkishID is
// checksum-valid. Values are immutable, comparable with ==, and usable as
// map keys.
//
// # Domain Purity
//
// This package contains only pure functions over its inputs:
//
//	✓ No I/O, no logging, no retries
//	✓ No context.Context in function signatures
//	✓ No time.Now() or rand.* calls
//	✓ Safe for concurrent use without synchronization
//
// IsValid is allocation-free; Parse allocates only when reporting a
// non-digit character. Callers decide whether a validation failure is user
// error, corrupt data, or a programming error.
//
// Note that passing the checksum rule does not mean a number is assigned
// to a real person; this package is a structural validator, not a registry
// authority.
package trid
