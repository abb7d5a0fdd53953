// Package nbt implements the tagged binary tree both schematic formats are
// built on: a closed variant over the NBT tag kinds with typed accessors,
// plus a reader, writer, and gzip framing.
package nbt

import "math"

// Kind is an NBT tag id.
type Kind byte

const (
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray

	kindMax
)

var kindNames = [...]string{
	"End", "Byte", "Short", "Int", "Long", "Float", "Double",
	"ByteArray", "String", "List", "Compound", "IntArray", "LongArray",
}

func (k Kind) String() string {
	if k < kindMax {
		return kindNames[k]
	}
	return "Unknown"
}

// Tag is one node of the tree. The zero value is the End tag. Tags are built
// through the per-kind constructors and taken apart through the As* accessors,
// which fail with *FormatError on a kind mismatch; there is no unchecked
// access path.
type Tag struct {
	kind  Kind
	num   uint64 // Byte/Short/Int/Long two's complement; Float/Double IEEE bits
	str   string
	bytes []byte
	ints  []int32
	longs []int64
	elem  Kind // element kind of a List
	list  []Tag
	comp  map[string]Tag
}

func (t Tag) Kind() Kind { return t.kind }

func Byte(v int8) Tag      { return Tag{kind: KindByte, num: uint64(v)} }
func Short(v int16) Tag    { return Tag{kind: KindShort, num: uint64(v)} }
func Int(v int32) Tag      { return Tag{kind: KindInt, num: uint64(v)} }
func Long(v int64) Tag     { return Tag{kind: KindLong, num: uint64(v)} }
func Float(v float32) Tag  { return Tag{kind: KindFloat, num: uint64(math.Float32bits(v))} }
func Double(v float64) Tag { return Tag{kind: KindDouble, num: math.Float64bits(v)} }
func String(v string) Tag  { return Tag{kind: KindString, str: v} }

func ByteArray(v []byte) Tag  { return Tag{kind: KindByteArray, bytes: v} }
func IntArray(v []int32) Tag  { return Tag{kind: KindIntArray, ints: v} }
func LongArray(v []int64) Tag { return Tag{kind: KindLongArray, longs: v} }

// List builds a homogeneous list tag. Every item must carry the element kind;
// the writer rejects mixed lists.
func List(elem Kind, items ...Tag) Tag {
	return Tag{kind: KindList, elem: elem, list: items}
}

// Compound builds a compound tag over the given children. The map is owned by
// the tag afterwards.
func Compound(children map[string]Tag) Tag {
	if children == nil {
		children = map[string]Tag{}
	}
	return Tag{kind: KindCompound, comp: children}
}

func (t Tag) AsByte() (int8, error) {
	if t.kind != KindByte {
		return 0, formatErrf("expected Byte, got %s", t.kind)
	}
	return int8(t.num), nil
}

func (t Tag) AsShort() (int16, error) {
	if t.kind != KindShort {
		return 0, formatErrf("expected Short, got %s", t.kind)
	}
	return int16(t.num), nil
}

func (t Tag) AsInt() (int32, error) {
	if t.kind != KindInt {
		return 0, formatErrf("expected Int, got %s", t.kind)
	}
	return int32(t.num), nil
}

func (t Tag) AsLong() (int64, error) {
	if t.kind != KindLong {
		return 0, formatErrf("expected Long, got %s", t.kind)
	}
	return int64(t.num), nil
}

func (t Tag) AsFloat() (float32, error) {
	if t.kind != KindFloat {
		return 0, formatErrf("expected Float, got %s", t.kind)
	}
	return math.Float32frombits(uint32(t.num)), nil
}

func (t Tag) AsDouble() (float64, error) {
	if t.kind != KindDouble {
		return 0, formatErrf("expected Double, got %s", t.kind)
	}
	return math.Float64frombits(t.num), nil
}

func (t Tag) AsString() (string, error) {
	if t.kind != KindString {
		return "", formatErrf("expected String, got %s", t.kind)
	}
	return t.str, nil
}

func (t Tag) AsByteArray() ([]byte, error) {
	if t.kind != KindByteArray {
		return nil, formatErrf("expected ByteArray, got %s", t.kind)
	}
	return t.bytes, nil
}

func (t Tag) AsIntArray() ([]int32, error) {
	if t.kind != KindIntArray {
		return nil, formatErrf("expected IntArray, got %s", t.kind)
	}
	return t.ints, nil
}

func (t Tag) AsLongArray() ([]int64, error) {
	if t.kind != KindLongArray {
		return nil, formatErrf("expected LongArray, got %s", t.kind)
	}
	return t.longs, nil
}

// AsList returns the element kind and items of a list tag.
func (t Tag) AsList() (Kind, []Tag, error) {
	if t.kind != KindList {
		return KindEnd, nil, formatErrf("expected List, got %s", t.kind)
	}
	return t.elem, t.list, nil
}

func (t Tag) AsCompound() (map[string]Tag, error) {
	if t.kind != KindCompound {
		return nil, formatErrf("expected Compound, got %s", t.kind)
	}
	return t.comp, nil
}

// Get looks up a direct child of a compound tag. It returns false both for a
// missing key and for a non-compound receiver.
func (t Tag) Get(name string) (Tag, bool) {
	if t.kind != KindCompound {
		return Tag{}, false
	}
	c, ok := t.comp[name]
	return c, ok
}

// Field is Get with a structured error for required children.
func (t Tag) Field(name string) (Tag, error) {
	if t.kind != KindCompound {
		return Tag{}, formatErrf("expected Compound, got %s", t.kind)
	}
	c, ok := t.comp[name]
	if !ok {
		return Tag{}, formatErrf("missing tag %q", name)
	}
	return c, nil
}
