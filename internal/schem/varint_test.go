package schem

import "testing"

func TestVarints_RoundTrip(t *testing.T) {
	vals := []int{0, 1, 2, 126, 127, 128, 129, 16383, 16384, 65535, 1 << 20, 1<<31 - 1}
	enc := encodeVarints(vals)
	dec, err := decodeVarints(enc, len(vals))
	if err != nil {
		t.Fatalf("decodeVarints: %v", err)
	}
	for i := range vals {
		if dec[i] != vals[i] {
			t.Fatalf("index %d: got %d want %d", i, dec[i], vals[i])
		}
	}
}

func TestVarints_SingleByteValues(t *testing.T) {
	// Values below 128 encode as themselves.
	enc := encodeVarints([]int{0, 0, 1})
	if len(enc) != 3 || enc[0] != 0 || enc[1] != 0 || enc[2] != 1 {
		t.Fatalf("encodeVarints([0,0,1]) = %v", enc)
	}
}

func TestVarints_MultiByteLayout(t *testing.T) {
	// 300 = 0b100101100 -> 0xAC 0x02 little-endian 7-bit groups.
	enc := encodeVarints([]int{300})
	if len(enc) != 2 || enc[0] != 0xac || enc[1] != 0x02 {
		t.Fatalf("encodeVarints([300]) = %#v", enc)
	}
}

func TestVarints_Truncated(t *testing.T) {
	if _, err := decodeVarints([]byte{0x80}, 1); err == nil {
		t.Fatalf("continuation byte at end of input decoded")
	}
	if _, err := decodeVarints([]byte{0x01}, 2); err == nil {
		t.Fatalf("decoded more varints than input holds")
	}
}

func TestVarints_CountLargerThanInput(t *testing.T) {
	// More declared varints than input bytes must fail up front, before
	// an output slice of that size exists.
	if _, err := decodeVarints([]byte{0}, 1<<40); err == nil {
		t.Fatalf("decoded count far beyond input length")
	}
}

func TestVarints_TrailingData(t *testing.T) {
	if _, err := decodeVarints([]byte{0x01, 0x01}, 1); err == nil {
		t.Fatalf("trailing bytes accepted")
	}
}

func TestVarints_Overlong(t *testing.T) {
	if _, err := decodeVarints([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, 1); err == nil {
		t.Fatalf("six-byte varint accepted")
	}
}
