package trid

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Parse and FromSeq. Each one names the single
// check that failed; the pipeline short-circuits on the first failure.
var (
	// ErrInvalidLength indicates the candidate is not exactly 11 characters.
	ErrInvalidLength = errors.New("length must be exactly 11 digits")

	// ErrInvalidCharacter indicates a non-digit character in the candidate.
	// Match with errors.Is; the concrete *InvalidCharacterError carries the
	// offending character and its position.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrFirstDigitZero indicates the candidate starts with '0'. No issued
	// ID number has a leading zero.
	ErrFirstDigitZero = errors.New("first digit cannot be zero")

	// ErrInvalidInitialChecksum indicates digit 9 does not match the value
	// derived from digits 0-8.
	ErrInvalidInitialChecksum = errors.New("initial checksum mismatch")

	// ErrInvalidFinalChecksum indicates digit 10 does not match the value
	// derived from digits 0-9.
	ErrInvalidFinalChecksum = errors.New("final checksum mismatch")

	// ErrSequenceOutOfRange indicates the sequence number passed to FromSeq
	// falls outside [SeqMin, SeqMax].
	ErrSequenceOutOfRange = fmt.Errorf("sequence must be between %d and %d", SeqMin, SeqMax)
)

// InvalidCharacterError reports the first non-digit character found in a
// candidate, together with its 0-indexed position.
type InvalidCharacterError struct {
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Position)
}

// Unwrap makes the error match ErrInvalidCharacter under errors.Is.
func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
