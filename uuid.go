package uuid

import (
	"bytes"
	"fmt"
)

const (
	// Size is the length of a UUID in bytes.
	Size = 16

	// StringLen is the length of the canonical form
	// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
	StringLen = 36

	// URNPrefix is prepended to the canonical form to build the URN form.
	URNPrefix = "urn:uuid:"

	// URNLen is the length of the URN form.
	URNLen = len(URNPrefix) + StringLen
)

// Byte offsets and masks of the tag bits.
const (
	versionByte  = 6
	versionShift = 4
	versionMask  = 0x0f

	variantByte    = 8
	variantRFCMask = 0x3f
	variantRFCBits = 0x80
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122.
// Its fields are always laid out big-endian:
//
//	time_low             bytes 0-3
//	time_mid             bytes 4-5
//	time_hi_and_version  bytes 6-7
//	clock_seq_hi_and_res byte  8
//	clock_seq_low        byte  9
//	node                 bytes 10-15
//
// A UUID is a plain value; copies are independent and == compares bytes.
type UUID [Size]byte

// Nil is the nil UUID (all zeros)
var Nil UUID

// Version represents the UUID version stored in the top four bits of byte 6.
type Version byte

const (
	VersionNil    Version = iota // all-zero tag, used by the nil UUID
	VersionTime                  // version 1, time based
	VersionDCE                   // version 2, DCE security
	VersionMD5                   // version 3, MD5 name based
	VersionRandom                // version 4, random
	VersionSHA1                  // version 5, SHA-1 name based
)

// Valid reports whether v is one of the named versions.
func (v Version) Valid() bool {
	return v <= VersionSHA1
}

func (v Version) String() string {
	switch v {
	case VersionNil:
		return "nil"
	case VersionTime:
		return "time"
	case VersionDCE:
		return "dce"
	case VersionMD5:
		return "md5"
	case VersionRandom:
		return "random"
	case VersionSHA1:
		return "sha1"
	default:
		return fmt.Sprintf("unknown(%d)", byte(v))
	}
}

// Variant represents the UUID variant stored in the top bits of byte 8.
type Variant byte

const (
	VariantNCS       Variant = iota // 0xx, reserved for NCS backward compatibility
	VariantRFC4122                  // 10x
	VariantMicrosoft                // 110, reserved for Microsoft backward compatibility
	VariantReserved                 // 111, reserved for future definition
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "ncs"
	case VariantRFC4122:
		return "rfc4122"
	case VariantMicrosoft:
		return "microsoft"
	case VariantReserved:
		return "reserved"
	default:
		return fmt.Sprintf("Variant(%d)", byte(v))
	}
}

// FromArray wraps b verbatim.
func FromArray(b [Size]byte) UUID {
	return UUID(b)
}

// Array returns the 16 big-endian bytes of the UUID.
func (u UUID) Array() [Size]byte {
	return u
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// Variant returns the variant of the UUID. Every byte pattern maps to
// exactly one variant.
func (u UUID) Variant() Variant {
	switch b := u[variantByte]; {
	case b&0x80 == 0x00:
		return VariantNCS
	case b&0xc0 == 0x80:
		return VariantRFC4122
	case b&0xe0 == 0xc0:
		return VariantMicrosoft
	default:
		return VariantReserved
	}
}

// LookupVersion returns the version tag of the UUID and whether it is one of
// the named versions.
func (u UUID) LookupVersion() (Version, bool) {
	v := Version(u[versionByte] >> versionShift)
	return v, v.Valid()
}

// Version returns the version of the UUID.
//
// It panics if the tag is not one of the named versions; use LookupVersion
// when inspecting identifiers from untrusted sources.
func (u UUID) Version() Version {
	v, ok := u.LookupVersion()
	if !ok {
		panic(fmt.Sprintf("uuid: invalid version %04b in %s", byte(v), u))
	}
	return v
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	return bytes.Compare(u[:], other[:])
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
