package nbt

import "encoding/binary"

// maxDepth bounds compound/list nesting so a hostile document cannot blow the
// stack.
const maxDepth = 512

// Read parses one named tag (the document root) from raw, uncompressed NBT
// bytes. Trailing bytes after the root are rejected.
func Read(data []byte) (name string, t Tag, err error) {
	r := &reader{data: data}
	name, t, err = r.readNamed(0)
	if err != nil {
		return "", Tag{}, err
	}
	if r.off != len(r.data) {
		return "", Tag{}, formatErrf("%d trailing bytes after document root", len(r.data)-r.off)
	}
	return name, t, nil
}

type reader struct {
	data []byte
	off  int
}

func (r *reader) remaining() int { return len(r.data) - r.off }

func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, formatErrf("unexpected end of data at offset %d", r.off)
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) u8() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) u64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *reader) string() (string, error) {
	n, err := r.u16()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// arrayLen reads a signed 32-bit length and sanity-checks it against the
// remaining input, given a minimum byte width per element.
func (r *reader) arrayLen(elemSize int) (int, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}
	n := int(int32(v))
	if n < 0 {
		return 0, formatErrf("negative length %d", n)
	}
	if n*elemSize > r.remaining() {
		return 0, formatErrf("length %d exceeds remaining input", n)
	}
	return n, nil
}

func (r *reader) readNamed(depth int) (string, Tag, error) {
	id, err := r.u8()
	if err != nil {
		return "", Tag{}, err
	}
	kind := Kind(id)
	if kind == KindEnd || kind >= kindMax {
		return "", Tag{}, formatErrf("bad tag id %d", id)
	}
	name, err := r.string()
	if err != nil {
		return "", Tag{}, err
	}
	t, err := r.readPayload(kind, depth)
	return name, t, err
}

func (r *reader) readPayload(kind Kind, depth int) (Tag, error) {
	if depth > maxDepth {
		return Tag{}, formatErrf("nesting deeper than %d", maxDepth)
	}
	switch kind {
	case KindByte:
		v, err := r.u8()
		if err != nil {
			return Tag{}, err
		}
		return Byte(int8(v)), nil
	case KindShort:
		v, err := r.u16()
		if err != nil {
			return Tag{}, err
		}
		return Short(int16(v)), nil
	case KindInt:
		v, err := r.u32()
		if err != nil {
			return Tag{}, err
		}
		return Int(int32(v)), nil
	case KindLong:
		v, err := r.u64()
		if err != nil {
			return Tag{}, err
		}
		return Long(int64(v)), nil
	case KindFloat:
		v, err := r.u32()
		if err != nil {
			return Tag{}, err
		}
		return Tag{kind: KindFloat, num: uint64(v)}, nil
	case KindDouble:
		v, err := r.u64()
		if err != nil {
			return Tag{}, err
		}
		return Tag{kind: KindDouble, num: v}, nil
	case KindByteArray:
		n, err := r.arrayLen(1)
		if err != nil {
			return Tag{}, err
		}
		b, err := r.take(n)
		if err != nil {
			return Tag{}, err
		}
		out := make([]byte, n)
		copy(out, b)
		return ByteArray(out), nil
	case KindString:
		s, err := r.string()
		if err != nil {
			return Tag{}, err
		}
		return String(s), nil
	case KindList:
		return r.readList(depth)
	case KindCompound:
		return r.readCompound(depth)
	case KindIntArray:
		n, err := r.arrayLen(4)
		if err != nil {
			return Tag{}, err
		}
		out := make([]int32, n)
		for i := range out {
			v, err := r.u32()
			if err != nil {
				return Tag{}, err
			}
			out[i] = int32(v)
		}
		return IntArray(out), nil
	case KindLongArray:
		n, err := r.arrayLen(8)
		if err != nil {
			return Tag{}, err
		}
		out := make([]int64, n)
		for i := range out {
			v, err := r.u64()
			if err != nil {
				return Tag{}, err
			}
			out[i] = int64(v)
		}
		return LongArray(out), nil
	default:
		return Tag{}, formatErrf("bad tag id %d", byte(kind))
	}
}

func (r *reader) readList(depth int) (Tag, error) {
	id, err := r.u8()
	if err != nil {
		return Tag{}, err
	}
	elem := Kind(id)
	if elem >= kindMax {
		return Tag{}, formatErrf("bad tag id %d", id)
	}
	n, err := r.arrayLen(1)
	if err != nil {
		return Tag{}, err
	}
	if elem == KindEnd {
		if n > 0 {
			return Tag{}, formatErrf("list of End tags with length %d", n)
		}
		return List(KindEnd), nil
	}
	items := make([]Tag, 0, n)
	for i := 0; i < n; i++ {
		item, err := r.readPayload(elem, depth+1)
		if err != nil {
			return Tag{}, err
		}
		items = append(items, item)
	}
	return List(elem, items...), nil
}

func (r *reader) readCompound(depth int) (Tag, error) {
	children := map[string]Tag{}
	for {
		id, err := r.u8()
		if err != nil {
			return Tag{}, err
		}
		kind := Kind(id)
		if kind == KindEnd {
			return Compound(children), nil
		}
		if kind >= kindMax {
			return Tag{}, formatErrf("bad tag id %d", id)
		}
		name, err := r.string()
		if err != nil {
			return Tag{}, err
		}
		child, err := r.readPayload(kind, depth+1)
		if err != nil {
			return Tag{}, err
		}
		children[name] = child
	}
}
