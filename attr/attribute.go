package attr

// Kind is the wire-visible type name written after an attribute's name,
// e.g. "box2i" or "chlist". It is what the `type` field of the on-disk
// (name, type, size, value) tuple actually carries.
type Kind string

const (
	KindBox2i          Kind = "box2i"
	KindBox2f          Kind = "box2f"
	KindInt            Kind = "int"
	KindFloat          Kind = "float"
	KindDouble         Kind = "double"
	KindRational       Kind = "rational"
	KindTimeCode       Kind = "timecode"
	KindV2i            Kind = "v2i"
	KindV2f            Kind = "v2f"
	KindV3i            Kind = "v3i"
	KindV3f            Kind = "v3f"
	KindM33f           Kind = "m33f"
	KindM44f           Kind = "m44f"
	KindChlist         Kind = "chlist"
	KindChromaticities Kind = "chromaticities"
	KindCompression    Kind = "compression"
	KindEnvmap         Kind = "envmap"
	KindKeyCode        Kind = "keycode"
	KindLineOrder      Kind = "lineOrder"
	KindPreview        Kind = "preview"
	KindString         Kind = "string"
	KindStringVector   Kind = "stringvector"
	KindTileDesc       Kind = "tiledesc"
)

// Attribute is a single header entry: a name, its wire kind, and a value
// whose concrete Go type is determined by Kind (see ReadAttribute).
type Attribute struct {
	Name  Text
	Kind  Kind
	Value any
}

// UnknownAttribute preserves an attribute whose Kind this library doesn't
// recognize, so a header carrying forward-compatible metadata can still be
// read and (if the caller re-serializes unmodified) written back unchanged.
type UnknownAttribute struct {
	Name  Text
	Kind  Text
	Bytes []byte
}
