package nbt

import (
	"errors"
	"testing"
)

func sampleDoc() Tag {
	return Compound(map[string]Tag{
		"Width":  Short(16),
		"Name":   String("hut"),
		"Seed":   Long(-1337),
		"Scale":  Double(0.75),
		"Flag":   Byte(1),
		"Offset": IntArray([]int32{-3, 0, 12}),
		"Packed": LongArray([]int64{0x0123456789abcdef, -1}),
		"Data":   ByteArray([]byte{0, 1, 2, 0x80, 0xff}),
		"Palette": Compound(map[string]Tag{
			"minecraft:air":   Int(0),
			"minecraft:stone": Int(1),
		}),
		"Entries": List(KindCompound,
			Compound(map[string]Tag{"Name": String("minecraft:air")}),
			Compound(map[string]Tag{"Name": String("minecraft:stone")}),
		),
		"Empty": List(KindEnd),
	})
}

func TestReadWrite_RoundTrip(t *testing.T) {
	raw, err := Append(nil, "Schematic", sampleDoc())
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	name, got, err := Read(raw)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if name != "Schematic" {
		t.Fatalf("root name = %q", name)
	}

	w, err := mustField(t, got, "Width").AsShort()
	if err != nil || w != 16 {
		t.Fatalf("Width = %d, %v", w, err)
	}
	seed, err := mustField(t, got, "Seed").AsLong()
	if err != nil || seed != -1337 {
		t.Fatalf("Seed = %d, %v", seed, err)
	}
	scale, err := mustField(t, got, "Scale").AsDouble()
	if err != nil || scale != 0.75 {
		t.Fatalf("Scale = %v, %v", scale, err)
	}
	off, err := mustField(t, got, "Offset").AsIntArray()
	if err != nil || len(off) != 3 || off[0] != -3 || off[2] != 12 {
		t.Fatalf("Offset = %v, %v", off, err)
	}
	packed, err := mustField(t, got, "Packed").AsLongArray()
	if err != nil || len(packed) != 2 || packed[1] != -1 {
		t.Fatalf("Packed = %v, %v", packed, err)
	}
	data, err := mustField(t, got, "Data").AsByteArray()
	if err != nil || len(data) != 5 || data[3] != 0x80 {
		t.Fatalf("Data = %v, %v", data, err)
	}
	pal, err := mustField(t, got, "Palette").AsCompound()
	if err != nil || len(pal) != 2 {
		t.Fatalf("Palette = %v, %v", pal, err)
	}
	elem, items, err := mustField(t, got, "Entries").AsList()
	if err != nil || elem != KindCompound || len(items) != 2 {
		t.Fatalf("Entries = %v/%d, %v", elem, len(items), err)
	}
	n, err := mustField(t, items[1], "Name").AsString()
	if err != nil || n != "minecraft:stone" {
		t.Fatalf("Entries[1].Name = %q, %v", n, err)
	}
}

func mustField(t *testing.T, c Tag, name string) Tag {
	t.Helper()
	f, err := c.Field(name)
	if err != nil {
		t.Fatalf("Field(%s): %v", name, err)
	}
	return f
}

func TestWrite_Deterministic(t *testing.T) {
	a, err := Append(nil, "", sampleDoc())
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	b, err := Append(nil, "", sampleDoc())
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("same document serialized differently")
	}
}

func TestRead_BadTagID(t *testing.T) {
	// Root compound containing a child with tag id 13.
	raw := []byte{
		byte(KindCompound), 0, 0,
		13, 0, 1, 'x',
	}
	_, _, err := Read(raw)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
}

func TestRead_Truncated(t *testing.T) {
	raw, err := Append(nil, "root", sampleDoc())
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	for _, cut := range []int{1, 5, len(raw) / 2, len(raw) - 1} {
		_, _, err := Read(raw[:cut])
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("cut %d: expected *FormatError, got %v", cut, err)
		}
	}
}

func TestRead_TrailingBytes(t *testing.T) {
	raw, err := Append(nil, "root", Compound(nil))
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, _, err := Read(append(raw, 0)); err == nil {
		t.Fatalf("expected error for trailing bytes")
	}
}

func TestRead_HugeDeclaredLength(t *testing.T) {
	// IntArray claiming 2^30 entries with no payload behind it.
	raw := []byte{
		byte(KindIntArray), 0, 0,
		0x40, 0, 0, 0,
	}
	_, _, err := Read(raw)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
}

func TestAccessors_KindMismatch(t *testing.T) {
	s := String("hi")
	if _, err := s.AsShort(); err == nil {
		t.Fatalf("AsShort on String succeeded")
	}
	if _, err := s.AsCompound(); err == nil {
		t.Fatalf("AsCompound on String succeeded")
	}
	var fe *FormatError
	_, err := Int(3).AsLongArray()
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
	if _, err := Compound(nil).Field("missing"); err == nil {
		t.Fatalf("Field on missing key succeeded")
	}
}

func TestCompressed_RoundTrip(t *testing.T) {
	data, err := WriteCompressed("Schematic", sampleDoc())
	if err != nil {
		t.Fatalf("WriteCompressed: %v", err)
	}
	name, got, err := ReadCompressed(data)
	if err != nil {
		t.Fatalf("ReadCompressed: %v", err)
	}
	if name != "Schematic" {
		t.Fatalf("root name = %q", name)
	}
	if _, err := mustField(t, got, "Width").AsShort(); err != nil {
		t.Fatalf("Width: %v", err)
	}
}

func TestCompressed_BadFraming(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x1f},
		{0x00, 0x01, 0x02, 0x03},
		{0x1f, 0x8b, 0xff, 0xff, 0xff},
	}
	for i, c := range cases {
		_, _, err := ReadCompressed(c)
		var ce *CompressionError
		if !errors.As(err, &ce) {
			t.Fatalf("case %d: expected *CompressionError, got %v", i, err)
		}
	}
}

func TestCompressed_TruncatedStream(t *testing.T) {
	data, err := WriteCompressed("root", sampleDoc())
	if err != nil {
		t.Fatalf("WriteCompressed: %v", err)
	}
	_, _, err = ReadCompressed(data[:len(data)-4])
	var ce *CompressionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompressionError, got %v", err)
	}
}
