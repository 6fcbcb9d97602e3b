package uuid

import "encoding/binary"

// MixedEndian returns the UUID in the legacy mixed-endian layout used by
// Microsoft GUIDs and DCE version 2 identifiers: time_low, time_mid and
// time_hi_and_version are little-endian, the remaining eight bytes are
// unchanged. u itself is not modified.
func (u UUID) MixedEndian() [Size]byte {
	return swapFields(u)
}

// FromMixedEndian builds a UUID from bytes in the mixed-endian layout.
// It is the inverse of MixedEndian.
func FromMixedEndian(b [Size]byte) UUID {
	return UUID(swapFields(b))
}

// swapFields flips the byte order of the first three fields. Applying it
// twice yields the input.
func swapFields(b [Size]byte) [Size]byte {
	var out [Size]byte
	binary.LittleEndian.PutUint32(out[0:4], binary.BigEndian.Uint32(b[0:4]))
	binary.LittleEndian.PutUint16(out[4:6], binary.BigEndian.Uint16(b[4:6]))
	binary.LittleEndian.PutUint16(out[6:8], binary.BigEndian.Uint16(b[6:8]))
	copy(out[8:], b[8:])
	return out
}
