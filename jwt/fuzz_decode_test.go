package jwt

import "testing"

// FuzzDecodePayload feeds arbitrary strings to the decoder.
// Goal: no panics; every failure is the single sentinel error.
func FuzzDecodePayload(f *testing.F) {
	f.Add("")
	f.Add("a.b")
	f.Add("not.a.jwt")
	f.Add("h.e30.s")
	f.Add("h.e30=.s")
	f.Add("h.eyJ1c2VyX3V1aWQiOiJhYmMtMTIzIn0.s")
	f.Add("eyJhbGciOiJub25lIn0.eyJ1aWQiOiJ0ZXN0In0.")
	f.Add("h.W10.s")
	f.Add("h.====.s")

	f.Fuzz(func(t *testing.T, input string) {
		payload, err := DecodePayload(input)
		if err != nil {
			if err != ErrPayloadUndecodable {
				t.Fatalf("unexpected error %v", err)
			}
			if payload != nil {
				t.Fatal("DecodePayload returned a payload with an error")
			}
			return
		}
		if payload == nil {
			t.Fatal("DecodePayload returned nil payload without error")
		}
		if _, err := payload.MarshalJSON(); err != nil {
			t.Fatalf("decoded payload does not re-encode: %v", err)
		}
	})
}
