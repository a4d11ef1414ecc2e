package attr

import (
	"bytes"
	"fmt"

	"github.com/exrgo/exr/bin"
	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/format"
	"github.com/exrgo/exr/internal/pool"
)

// newScratchWriter creates a Writer over a small fresh buffer, used to
// measure an attribute value's serialized size before emitting its size
// prefix.
func newScratchWriter(engine endian.EndianEngine) *bin.Writer {
	return bin.NewWriter(pool.NewByteBuffer(64), engine)
}

// ReadAttribute reads one (name, type, size, value) tuple from r.
//
// It returns (nil, nil, nil) when the header terminator is reached (the
// name position holds a single 0x00 byte instead of a name). Exactly one of
// the two return pointers is non-nil on a successful, non-terminal read:
// attr for a recognized Kind, unknown for anything else — the caller can
// still preserve and re-emit an unknown attribute unmodified.
func ReadAttribute(r *bin.Reader, maxTextLen, maxAttrBytes, maxVectorLen int) (*Attribute, *UnknownAttribute, error) {
	isTerm, err := r.PeekIsTerminator()
	if err != nil {
		return nil, nil, err
	}
	if isTerm {
		if _, err := r.ReadU8(); err != nil {
			return nil, nil, err
		}

		return nil, nil, nil
	}

	name, err := r.ReadNullTerminatedString(maxTextLen)
	if err != nil {
		return nil, nil, err
	}
	if err := ValidateText(name, maxTextLen); err != nil {
		return nil, nil, err
	}

	kindStr, err := r.ReadNullTerminatedString(maxTextLen)
	if err != nil {
		return nil, nil, err
	}

	size, err := r.ReadI32()
	if err != nil {
		return nil, nil, err
	}
	if size < 0 || int(size) > maxAttrBytes {
		return nil, nil, fmt.Errorf("%w: attribute %q declares %d bytes, cap is %d", errs.ErrInvalidSize, name, size, maxAttrBytes)
	}

	kind := Kind(kindStr)
	value, recognized, err := readAttributeValue(r, kind, int(size), maxAttrBytes, maxVectorLen)
	if err != nil {
		return nil, nil, fmt.Errorf("attribute %q: %w", name, err)
	}
	if !recognized {
		raw, err := r.ReadBytes(int(size), maxAttrBytes)
		if err != nil {
			return nil, nil, err
		}

		return nil, &UnknownAttribute{Name: Text(name), Kind: Text(kindStr), Bytes: raw}, nil
	}

	return &Attribute{Name: Text(name), Kind: kind, Value: value}, nil, nil
}

// readAttributeValue dispatches on kind. The bool return is false for any
// kind not in the closed AttributeValue set, signaling the caller to fall
// back to raw-byte preservation.
func readAttributeValue(r *bin.Reader, kind Kind, size, maxAttrBytes, maxVectorLen int) (any, bool, error) {
	switch kind {
	case KindBox2i:
		v, err := readBox2i(r)
		return v, true, err
	case KindBox2f:
		v, err := readBox2f(r)
		return v, true, err
	case KindInt:
		v, err := r.ReadI32()
		return v, true, err
	case KindFloat:
		v, err := r.ReadF32()
		return v, true, err
	case KindDouble:
		v, err := r.ReadF64()
		return v, true, err
	case KindRational:
		n, err := r.ReadI32()
		if err != nil {
			return nil, true, err
		}
		d, err := r.ReadU32()
		return Rational{N: n, D: d}, true, err
	case KindTimeCode:
		tf, err := r.ReadU32()
		if err != nil {
			return nil, true, err
		}
		ud, err := r.ReadU32()
		return TimeCode{TimeAndFlags: tf, UserData: ud}, true, err
	case KindV2i:
		v, err := readV2i(r)
		return v, true, err
	case KindV2f:
		v, err := readV2f(r)
		return v, true, err
	case KindV3i:
		v, err := readV3i(r)
		return v, true, err
	case KindV3f:
		v, err := readV3f(r)
		return v, true, err
	case KindM33f:
		v, err := readM33f(r)
		return v, true, err
	case KindM44f:
		v, err := readM44f(r)
		return v, true, err
	case KindChlist:
		v, err := readChannelList(r, maxVectorLen)
		return v, true, err
	case KindChromaticities:
		v, err := readChromaticities(r)
		return v, true, err
	case KindCompression:
		b, err := r.ReadU8()
		return format.Compression(b), true, err
	case KindEnvmap:
		b, err := r.ReadU8()
		return format.EnvMap(b), true, err
	case KindKeyCode:
		v, err := readKeyCode(r)
		return v, true, err
	case KindLineOrder:
		b, err := r.ReadU8()
		return format.LineOrder(b), true, err
	case KindPreview:
		v, err := readPreview(r, maxAttrBytes)
		return v, true, err
	case KindString:
		b, err := r.ReadBytes(size, maxAttrBytes)
		return string(b), true, err
	case KindStringVector:
		v, err := readStringVector(r, size, maxAttrBytes)
		return v, true, err
	case KindTileDesc:
		v, err := readTileDescription(r)
		return v, true, err
	default:
		return nil, false, nil
	}
}

// WriteAttribute appends attr's wire form (name, type, size, value) to w's
// underlying buffer, computing size from the value's own serialization.
// maxTextLen caps attr.Name the same way ReadAttribute enforces it on the
// way back in; a name exceeding it is rejected rather than written past
// the limit the file's own requirements flags declare.
func WriteAttribute(w *bin.Writer, engine endian.EndianEngine, attr Attribute, maxTextLen int) error {
	if err := ValidateText(string(attr.Name), maxTextLen); err != nil {
		return err
	}

	w.WriteNullTerminatedString(string(attr.Name))
	w.WriteNullTerminatedString(string(attr.Kind))

	valueBuf := newScratchWriter(engine)
	if err := writeAttributeValue(valueBuf, attr); err != nil {
		return err
	}

	w.WriteI32(int32(len(valueBuf.Bytes())))
	w.WriteBytes(valueBuf.Bytes())

	return nil
}

// WriteUnknownAttribute re-emits an attribute this library couldn't parse,
// verbatim: same name, same type string, and the exact bytes captured at
// read time.
func WriteUnknownAttribute(w *bin.Writer, attr UnknownAttribute) {
	w.WriteNullTerminatedString(string(attr.Name))
	w.WriteNullTerminatedString(string(attr.Kind))
	w.WriteI32(int32(len(attr.Bytes)))
	w.WriteBytes(attr.Bytes)
}

func writeAttributeValue(w *bin.Writer, attr Attribute) error {
	switch attr.Kind {
	case KindBox2i:
		writeBox2i(w, attr.Value.(Box2i))
	case KindBox2f:
		writeBox2f(w, attr.Value.(Box2f))
	case KindInt:
		w.WriteI32(attr.Value.(int32))
	case KindFloat:
		w.WriteF32(attr.Value.(float32))
	case KindDouble:
		w.WriteF64(attr.Value.(float64))
	case KindRational:
		v := attr.Value.(Rational)
		w.WriteI32(v.N)
		w.WriteU32(v.D)
	case KindTimeCode:
		v := attr.Value.(TimeCode)
		w.WriteU32(v.TimeAndFlags)
		w.WriteU32(v.UserData)
	case KindV2i:
		writeV2i(w, attr.Value.(V2i))
	case KindV2f:
		writeV2f(w, attr.Value.(V2f))
	case KindV3i:
		writeV3i(w, attr.Value.(V3i))
	case KindV3f:
		writeV3f(w, attr.Value.(V3f))
	case KindM33f:
		writeM33f(w, attr.Value.(M33f))
	case KindM44f:
		writeM44f(w, attr.Value.(M44f))
	case KindChlist:
		writeChannelList(w, attr.Value.(ChannelList))
	case KindChromaticities:
		writeChromaticities(w, attr.Value.(Chromaticities))
	case KindCompression:
		w.WriteU8(byte(attr.Value.(format.Compression)))
	case KindEnvmap:
		w.WriteU8(byte(attr.Value.(format.EnvMap)))
	case KindKeyCode:
		writeKeyCode(w, attr.Value.(KeyCode))
	case KindLineOrder:
		w.WriteU8(byte(attr.Value.(format.LineOrder)))
	case KindPreview:
		writePreview(w, attr.Value.(Preview))
	case KindString:
		w.WriteBytes([]byte(attr.Value.(string)))
	case KindStringVector:
		writeStringVector(w, attr.Value.(StringVector))
	case KindTileDesc:
		writeTileDescription(w, attr.Value.(TileDescription))
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnknownAttributeType, attr.Kind)
	}

	return nil
}

func readV2i(r *bin.Reader) (V2i, error) {
	x, err := r.ReadI32()
	if err != nil {
		return V2i{}, err
	}
	y, err := r.ReadI32()
	return V2i{X: x, Y: y}, err
}

func writeV2i(w *bin.Writer, v V2i) {
	w.WriteI32(v.X)
	w.WriteI32(v.Y)
}

func readV2f(r *bin.Reader) (V2f, error) {
	x, err := r.ReadF32()
	if err != nil {
		return V2f{}, err
	}
	y, err := r.ReadF32()
	return V2f{X: x, Y: y}, err
}

func writeV2f(w *bin.Writer, v V2f) {
	w.WriteF32(v.X)
	w.WriteF32(v.Y)
}

func readV3i(r *bin.Reader) (V3i, error) {
	x, err := r.ReadI32()
	if err != nil {
		return V3i{}, err
	}
	y, err := r.ReadI32()
	if err != nil {
		return V3i{}, err
	}
	z, err := r.ReadI32()
	return V3i{X: x, Y: y, Z: z}, err
}

func writeV3i(w *bin.Writer, v V3i) {
	w.WriteI32(v.X)
	w.WriteI32(v.Y)
	w.WriteI32(v.Z)
}

func readV3f(r *bin.Reader) (V3f, error) {
	x, err := r.ReadF32()
	if err != nil {
		return V3f{}, err
	}
	y, err := r.ReadF32()
	if err != nil {
		return V3f{}, err
	}
	z, err := r.ReadF32()
	return V3f{X: x, Y: y, Z: z}, err
}

func writeV3f(w *bin.Writer, v V3f) {
	w.WriteF32(v.X)
	w.WriteF32(v.Y)
	w.WriteF32(v.Z)
}

func readBox2i(r *bin.Reader) (Box2i, error) {
	min, err := readV2i(r)
	if err != nil {
		return Box2i{}, err
	}
	max, err := readV2i(r)
	return Box2i{Min: min, Max: max}, err
}

func writeBox2i(w *bin.Writer, b Box2i) {
	writeV2i(w, b.Min)
	writeV2i(w, b.Max)
}

func readBox2f(r *bin.Reader) (Box2f, error) {
	min, err := readV2f(r)
	if err != nil {
		return Box2f{}, err
	}
	max, err := readV2f(r)
	return Box2f{Min: min, Max: max}, err
}

func writeBox2f(w *bin.Writer, b Box2f) {
	writeV2f(w, b.Min)
	writeV2f(w, b.Max)
}

func readM33f(r *bin.Reader) (M33f, error) {
	var m M33f
	for i := range m {
		v, err := r.ReadF32()
		if err != nil {
			return m, err
		}
		m[i] = v
	}

	return m, nil
}

func writeM33f(w *bin.Writer, m M33f) {
	for _, v := range m {
		w.WriteF32(v)
	}
}

func readM44f(r *bin.Reader) (M44f, error) {
	var m M44f
	for i := range m {
		v, err := r.ReadF32()
		if err != nil {
			return m, err
		}
		m[i] = v
	}

	return m, nil
}

func writeM44f(w *bin.Writer, m M44f) {
	for _, v := range m {
		w.WriteF32(v)
	}
}

func readChromaticities(r *bin.Reader) (Chromaticities, error) {
	var c Chromaticities
	fields := []*float32{&c.RedX, &c.RedY, &c.GreenX, &c.GreenY, &c.BlueX, &c.BlueY, &c.WhiteX, &c.WhiteY}
	for _, f := range fields {
		v, err := r.ReadF32()
		if err != nil {
			return c, err
		}
		*f = v
	}

	return c, nil
}

func writeChromaticities(w *bin.Writer, c Chromaticities) {
	w.WriteF32(c.RedX)
	w.WriteF32(c.RedY)
	w.WriteF32(c.GreenX)
	w.WriteF32(c.GreenY)
	w.WriteF32(c.BlueX)
	w.WriteF32(c.BlueY)
	w.WriteF32(c.WhiteX)
	w.WriteF32(c.WhiteY)
}

func readKeyCode(r *bin.Reader) (KeyCode, error) {
	var k KeyCode
	fields := []*int32{&k.FilmMfcCode, &k.FilmType, &k.Prefix, &k.Count, &k.PerfOffset, &k.PerfsPerFrame, &k.PerfsPerCount}
	for _, f := range fields {
		v, err := r.ReadI32()
		if err != nil {
			return k, err
		}
		*f = v
	}

	return k, nil
}

func writeKeyCode(w *bin.Writer, k KeyCode) {
	w.WriteI32(k.FilmMfcCode)
	w.WriteI32(k.FilmType)
	w.WriteI32(k.Prefix)
	w.WriteI32(k.Count)
	w.WriteI32(k.PerfOffset)
	w.WriteI32(k.PerfsPerFrame)
	w.WriteI32(k.PerfsPerCount)
}

func readTileDescription(r *bin.Reader) (TileDescription, error) {
	var t TileDescription

	xs, err := r.ReadU32()
	if err != nil {
		return t, err
	}
	ys, err := r.ReadU32()
	if err != nil {
		return t, err
	}
	mode, err := r.ReadU8()
	if err != nil {
		return t, err
	}

	t.XSize, t.YSize = xs, ys
	t.UnpackMode(mode)

	return t, nil
}

func writeTileDescription(w *bin.Writer, t TileDescription) {
	w.WriteU32(t.XSize)
	w.WriteU32(t.YSize)
	w.WriteU8(t.PackedMode())
}

func readPreview(r *bin.Reader, maxPixelBytes int) (Preview, error) {
	var p Preview

	width, err := r.ReadU32()
	if err != nil {
		return p, err
	}
	height, err := r.ReadU32()
	if err != nil {
		return p, err
	}

	n := int(width) * int(height) * 4
	pixels, err := r.ReadBytes(n, maxPixelBytes)
	if err != nil {
		return p, err
	}

	p.Width, p.Height, p.Pixels = width, height, pixels

	return p, nil
}

func writePreview(w *bin.Writer, p Preview) {
	w.WriteU32(p.Width)
	w.WriteU32(p.Height)
	w.WriteBytes(p.Pixels)
}

// readChannelList reads channels until the list terminator (a 0x00 byte
// where the next channel's name would start), bounded by maxChannels so a
// corrupt or hostile stream can't spin the reader forever.
func readChannelList(r *bin.Reader, maxChannels int) (ChannelList, error) {
	var list ChannelList

	for {
		isTerm, err := r.PeekIsTerminator()
		if err != nil {
			return nil, err
		}
		if isTerm {
			if _, err := r.ReadU8(); err != nil {
				return nil, err
			}

			return list, nil
		}
		if len(list) >= maxChannels {
			return nil, fmt.Errorf("%w: channel list exceeds %d entries", errs.ErrInvalidSize, maxChannels)
		}

		name, err := r.ReadNullTerminatedString(LongTextMaxLen)
		if err != nil {
			return nil, err
		}

		pixelType, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		linear, err := r.ReadU8()
		if err != nil {
			return nil, err
		}

		var reserved [3]int8
		for i := range reserved {
			b, err := r.ReadI8()
			if err != nil {
				return nil, err
			}
			reserved[i] = b
		}

		sx, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		sy, err := r.ReadI32()
		if err != nil {
			return nil, err
		}

		list = append(list, Channel{
			Name:      Text(name),
			Type:      format.PixelType(pixelType),
			Linear:    linear != 0,
			Reserved:  reserved,
			SamplingX: sx,
			SamplingY: sy,
		})
	}
}

func writeChannelList(w *bin.Writer, list ChannelList) {
	for _, c := range list {
		w.WriteNullTerminatedString(string(c.Name))
		w.WriteI32(int32(c.Type))
		if c.Linear {
			w.WriteU8(1)
		} else {
			w.WriteU8(0)
		}
		for _, b := range c.Reserved {
			w.WriteI8(b)
		}
		w.WriteI32(c.SamplingX)
		w.WriteI32(c.SamplingY)
	}
	w.WriteU8(0)
}

// readStringVector parses size raw bytes as concatenated (i32 length,
// bytes) tuples — the attribute has no element count of its own, just a
// total byte size.
func readStringVector(r *bin.Reader, size, maxVectorLen int) (StringVector, error) {
	if size == 0 {
		return StringVector{}, nil
	}

	raw, err := r.ReadBytes(size, maxVectorLen)
	if err != nil {
		return nil, err
	}

	sub := bin.NewReader(bytes.NewReader(raw), endian.GetLittleEndianEngine())

	var result StringVector
	remaining := size
	for remaining > 0 {
		strLen, err := sub.ReadI32()
		if err != nil {
			return nil, err
		}
		remaining -= 4
		if strLen < 0 || int(strLen) > remaining {
			return nil, fmt.Errorf("%w: stringvector element length %d exceeds remaining %d bytes", errs.ErrInvalidContent, strLen, remaining)
		}

		b, err := sub.ReadBytes(int(strLen), maxVectorLen)
		if err != nil {
			return nil, err
		}
		remaining -= int(strLen)

		result = append(result, string(b))
	}

	return result, nil
}

func writeStringVector(w *bin.Writer, sv StringVector) {
	for _, s := range sv {
		w.WriteI32(int32(len(s)))
		w.WriteBytes([]byte(s))
	}
}
