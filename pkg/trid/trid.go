package trid

import "unicode/utf8"

// Length is the number of digits in a Turkish ID number.
const Length = 11

// SeqMin and SeqMax bound the sequence numbers accepted by FromSeq: the
// numeric values of the first nine digits of an ID number. SeqMin keeps the
// leading digit non-zero.
const (
	SeqMin uint32 = 100_000_000
	SeqMax uint32 = 999_999_999
)

// TurkishID holds a validated Turkish national identity number. The digits
// are stored as ASCII '0'..'9' in a fixed-size buffer that is never exposed
// by reference; the only view of the value is String.
//
// The zero value is not a valid ID number. Obtain instances through Parse,
// MustParse, or FromSeq; every TurkishID produced by those satisfies the
// checksum rule and is immutable thereafter. TurkishID is comparable, so ==
// is structural equality and values work as map keys.
type TurkishID struct {
	digits [Length]byte
}

// IsValid reports whether s is a valid Turkish ID number. It runs the same
// checks as Parse, collapsed to a boolean: length, digit class, leading
// zero, then both checksum digits. It never panics and does not allocate.
func IsValid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < Length; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	if s[0] == '0' {
		return false
	}
	oddSum, evenSum := digitSums(s)
	d9 := int(s[9] - '0')
	if d9 != initialChecksum(oddSum, evenSum) {
		return false
	}
	return int(s[10]-'0') == finalChecksum(oddSum, evenSum, d9)
}

// Parse validates s and returns it as a TurkishID. It runs the checks in a
// fixed order and returns a typed error naming the first check that failed:
// ErrInvalidLength, *InvalidCharacterError, ErrFirstDigitZero,
// ErrInvalidInitialChecksum, or ErrInvalidFinalChecksum. Parse succeeds
// exactly on the inputs IsValid accepts.
func Parse(s string) (TurkishID, error) {
	if len(s) != Length {
		return TurkishID{}, ErrInvalidLength
	}
	var id TurkishID
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			// Decode from the byte offset so a multi-byte character is
			// reported as the actual rune, not its first byte.
			r, _ := utf8.DecodeRuneInString(s[i:])
			return TurkishID{}, &InvalidCharacterError{Char: r, Position: i}
		}
		id.digits[i] = c
	}
	if s[0] == '0' {
		return TurkishID{}, ErrFirstDigitZero
	}
	oddSum, evenSum := digitSums(s)
	d9 := int(s[9] - '0')
	if d9 != initialChecksum(oddSum, evenSum) {
		return TurkishID{}, ErrInvalidInitialChecksum
	}
	if int(s[10]-'0') != finalChecksum(oddSum, evenSum, d9) {
		return TurkishID{}, ErrInvalidFinalChecksum
	}
	return id, nil
}

// MustParse is Parse that panics on invalid input. Use only in tests or
// when the value is known to be valid.
func MustParse(s string) TurkishID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromSeq derives a TurkishID from a sequence number: seq becomes digits
// 0-8 and the two checksum digits are computed from them. seq must lie in
// [SeqMin, SeqMax], otherwise ErrSequenceOutOfRange is returned; the lower
// bound guarantees the leading digit is non-zero. Once the range check
// passes the checksum digits are derived, not verified, so construction
// cannot fail.
func FromSeq(seq uint32) (TurkishID, error) {
	if seq < SeqMin || seq > SeqMax {
		return TurkishID{}, ErrSequenceOutOfRange
	}
	var id TurkishID
	oddSum, evenSum := 0, 0
	divisor := SeqMin
	for i := 0; i < Length-2; i++ {
		d := int(seq / divisor % 10)
		if i%2 == 0 {
			oddSum += d
		} else {
			evenSum += d
		}
		id.digits[i] = byte('0' + d)
		divisor /= 10
	}
	d9 := initialChecksum(oddSum, evenSum)
	id.digits[9] = byte('0' + d9)
	id.digits[10] = byte('0' + finalChecksum(oddSum, evenSum, d9))
	return id, nil
}

// String returns the eleven digits with no separators or formatting.
func (id TurkishID) String() string {
	return string(id.digits[:])
}

// IsZero reports whether id is the zero value (uninitialized).
func (id TurkishID) IsZero() bool {
	return id == TurkishID{}
}

// digitSums sums the digits of the first nine positions of s, split into
// the even-indexed (odd ordinal) and odd-indexed (even ordinal) groups the
// checksum rule operates on. s must already be digit-checked.
func digitSums(s string) (oddSum, evenSum int) {
	for i := 0; i < Length-2; i++ {
		d := int(s[i] - '0')
		if i%2 == 0 {
			oddSum += d
		} else {
			evenSum += d
		}
	}
	return oddSum, evenSum
}

// initialChecksum derives digit 9. The subtraction can go negative, so the
// remainder is taken Euclidean-style to stay in 0..9. The multiplier 7 is a
// constant of the national scheme, not a tunable parameter.
func initialChecksum(oddSum, evenSum int) int {
	return ((7*oddSum-evenSum)%10 + 10) % 10
}

// finalChecksum derives digit 10 as the sum of digits 0-9 mod 10.
func finalChecksum(oddSum, evenSum, d9 int) int {
	return (oddSum + evenSum + d9) % 10
}
