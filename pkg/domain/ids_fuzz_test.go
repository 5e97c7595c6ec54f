package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParsePersonID checks that parsing never panics on arbitrary input and
// that an accepted ID round-trips through its string form.
func FuzzParsePersonID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE people;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParsePersonID(input)

		if err == nil {
			roundTrip, err2 := ParsePersonID(id.String())
			if err2 != nil {
				t.Errorf("valid ID failed round-trip: %v", err2)
			}
			if roundTrip != id {
				t.Error("round-trip changed ID value")
			}
		}

		if !utf8.ValidString(input) && err == nil {
			t.Error("non-UTF8 input was accepted")
		}
	})
}

// FuzzParseAllIDs ensures the ID types accept and reject identically.
func FuzzParseAllIDs(f *testing.F) {
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("")
	f.Add("invalid")

	f.Fuzz(func(t *testing.T, input string) {
		_, errPerson := ParsePersonID(input)
		_, errAccusation := ParseAccusationID(input)
		_, errConsequence := ParseConsequenceID(input)

		if errPerson == nil {
			if errAccusation != nil || errConsequence != nil {
				t.Error("inconsistent parsing across ID types")
			}
		}
		if errPerson != nil {
			if errAccusation == nil || errConsequence == nil {
				t.Error("inconsistent rejection across ID types")
			}
		}
	})
}
