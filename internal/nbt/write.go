package nbt

import (
	"encoding/binary"
	"sort"
)

// Append serializes a named root tag onto dst and returns the extended slice.
// Compound children are emitted in sorted key order so output is
// deterministic.
func Append(dst []byte, name string, t Tag) ([]byte, error) {
	if t.kind == KindEnd || t.kind >= kindMax {
		return nil, formatErrf("cannot write root of kind %s", t.kind)
	}
	dst = append(dst, byte(t.kind))
	dst = appendString(dst, name)
	return appendPayload(dst, t)
}

func appendString(dst []byte, s string) []byte {
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(s)))
	return append(dst, s...)
}

func appendPayload(dst []byte, t Tag) ([]byte, error) {
	switch t.kind {
	case KindByte:
		return append(dst, byte(t.num)), nil
	case KindShort:
		return binary.BigEndian.AppendUint16(dst, uint16(t.num)), nil
	case KindInt, KindFloat:
		return binary.BigEndian.AppendUint32(dst, uint32(t.num)), nil
	case KindLong, KindDouble:
		return binary.BigEndian.AppendUint64(dst, t.num), nil
	case KindString:
		return appendString(dst, t.str), nil
	case KindByteArray:
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(t.bytes)))
		return append(dst, t.bytes...), nil
	case KindIntArray:
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(t.ints)))
		for _, v := range t.ints {
			dst = binary.BigEndian.AppendUint32(dst, uint32(v))
		}
		return dst, nil
	case KindLongArray:
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(t.longs)))
		for _, v := range t.longs {
			dst = binary.BigEndian.AppendUint64(dst, uint64(v))
		}
		return dst, nil
	case KindList:
		return appendList(dst, t)
	case KindCompound:
		return appendCompound(dst, t)
	default:
		return nil, formatErrf("cannot write tag of kind %s", t.kind)
	}
}

func appendList(dst []byte, t Tag) ([]byte, error) {
	if t.elem == KindEnd && len(t.list) > 0 {
		return nil, formatErrf("list of End tags with length %d", len(t.list))
	}
	dst = append(dst, byte(t.elem))
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(t.list)))
	for _, item := range t.list {
		if item.kind != t.elem {
			return nil, formatErrf("list item of kind %s in list of %s", item.kind, t.elem)
		}
		var err error
		dst, err = appendPayload(dst, item)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func appendCompound(dst []byte, t Tag) ([]byte, error) {
	names := make([]string, 0, len(t.comp))
	for name := range t.comp {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		child := t.comp[name]
		if child.kind == KindEnd || child.kind >= kindMax {
			return nil, formatErrf("cannot write child %q of kind %s", name, child.kind)
		}
		dst = append(dst, byte(child.kind))
		dst = appendString(dst, name)
		var err error
		dst, err = appendPayload(dst, child)
		if err != nil {
			return nil, err
		}
	}
	return append(dst, byte(KindEnd)), nil
}
