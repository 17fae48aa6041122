//go:build go1.18

package trid

import "testing"

// FuzzParse tests that parsing never panics on arbitrary input and that the
// boolean and typed validation paths stay consistent.
func FuzzParse(f *testing.F) {
	f.Add("76558242278")
	f.Add("10000000146")
	f.Add("04948892948")
	f.Add("7655824227")
	f.Add("1234567890a")
	f.Add("")
	f.Add(" 7655824227")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("٥٥٨٢٤٢٢٧٨١٠")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := Parse(input)

		// IsValid and Parse must agree on every input.
		if IsValid(input) != (err == nil) {
			t.Errorf("IsValid and Parse disagree on %q", input)
		}

		if err == nil {
			// A parsed ID must render back to its input and round-trip.
			if id.String() != input {
				t.Errorf("render changed %q to %q", input, id.String())
			}
			roundTrip, err2 := Parse(id.String())
			if err2 != nil {
				t.Errorf("valid ID failed round-trip: %v", err2)
			}
			if roundTrip != id {
				t.Error("round-trip changed ID value")
			}
		} else if !id.IsZero() {
			t.Error("failed parse leaked a partial ID")
		}
	})
}

// FuzzFromSeq tests that generation succeeds exactly on the documented
// range and that every generated ID validates.
func FuzzFromSeq(f *testing.F) {
	f.Add(uint32(0))
	f.Add(SeqMin - 1)
	f.Add(SeqMin)
	f.Add(SeqMax)
	f.Add(SeqMax + 1)
	f.Add(uint32(765582422))

	f.Fuzz(func(t *testing.T, seq uint32) {
		id, err := FromSeq(seq)
		if seq < SeqMin || seq > SeqMax {
			if err == nil {
				t.Errorf("out-of-range seq %d was accepted", seq)
			}
			return
		}
		if err != nil {
			t.Errorf("in-range seq %d rejected: %v", seq, err)
			return
		}
		if !IsValid(id.String()) {
			t.Errorf("seq %d produced invalid ID %q", seq, id)
		}
	})
}
