package skemawire

// Wire tags: the high 3 bits of every value's first header byte. Shifted
// into position so a header byte can be built with a single OR.
const (
	tagNumeric byte = 0 << 5
	tagString  byte = 1 << 5
	tagObject  byte = 2 << 5
	tagDate    byte = 3 << 5
	tagArray   byte = 4 << 5
	tagUnion   byte = 5 << 5
	tagMap     byte = 6 << 5
	tagReserved byte = 7 << 5
)

func wireTag(header byte) byte { return header & 0xE0 }

// Numeric subtypes: the low 4 bits of a numeric header.
const (
	subI8       byte = 0x0
	subF64      byte = 0x1
	subI16      byte = 0x2
	subI32      byte = 0x3
	subBigIntI64 byte = 0x4
	subI64      byte = 0x5
	subNaN      byte = 0x6
	subPosInf   byte = 0x7
	subNegInf   byte = 0x8
	subTrue     byte = 0x9
	subFalse    byte = 0xA
)

// Object family subkinds: bits 3-2 of the header.
const (
	objSubObject    byte = 0x0
	objSubNull      byte = 0x1
	objSubUndefined byte = 0x2
	objSubAbsent    byte = 0x3
)

const (
	headerObject    = tagObject | (objSubObject << 2)
	headerNull      = tagObject | (objSubNull << 2)
	headerUndefined = tagObject | (objSubUndefined << 2)
	// headerAbsent marks an optional object field that is not present at all: 0x4C.
	headerAbsent = tagObject | (objSubAbsent << 2)
)

const headerDate = tagDate

// Array/tuple/set length-form selectors: bits 4-3 of the header.
const (
	lenFormShort byte = 0x0 // 3-bit length inline, < 8
	lenFormMid   byte = 0x1 // 11-bit length, 1 trailing byte
	lenFormLong  byte = 0x2 // 19-bit length, 2 trailing bytes
	lenFormResv  byte = 0x3 // reserved, rejected on read
)

const (
	maxShortLen = 1 << 3
	maxMidLen   = 1 << 11
	maxLongLen  = 1 << 19
)

// Map/record container-kind and length-form bits.
const (
	mapKindRecord byte = 0x0
	mapKindMap    byte = 0x1

	mapLenForm11 byte = 0x0 // 11-bit length, 2 header bytes total
	mapLenForm19 byte = 0x1 // 19-bit length, 3 header bytes total
)

const (
	maxMapLen11 = 1 << 11
	maxMapLen19 = 1 << 19
)

// String length-form flag: bit 4 of the header.
const (
	strFormShort byte = 0
	strFormLong  byte = 1
)

const (
	maxShortStringLen = 1 << 12
	maxStringLen      = 1 << 20 // strings at or above this length are rejected
)

const maxUnionOptions = 32

// ProtocolVersion is byte 0 of every envelope.
const ProtocolVersion byte = 1

// EnvelopeSize is the fixed prefix length: 1 version byte + 8 fingerprint
// bytes.
const EnvelopeSize = 9
