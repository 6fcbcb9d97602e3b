// Package uuid provides a small, allocation-conscious implementation of
// RFC 4122 Universally Unique Identifiers.
//
// A UUID is a plain 16 byte value. The package can:
//   - inspect the variant and version tags of any UUID
//   - convert to and from the legacy mixed-endian (GUID) byte layout
//   - format the canonical and URN text forms into a caller buffer
//   - parse the canonical and URN text forms
//   - generate random (version 4) UUIDs
//
// Basic Usage:
//
//	// Generate a new random UUID
//	id, err := uuid.NewV4()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Parse a UUID from string
//	id, err := uuid.Parse("urn:uuid:662aa7c7-7598-4d56-8bcc-a72c30f998a2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.Variant(), id.Version())
//
// Formatting without allocation:
//
//	var buf [uuid.URNLen]byte
//	text := id.PutURN(buf[:])
//
// PutString and PutURN panic when handed a buffer that is too short, and
// Version panics on a version tag outside the six named ones; LookupVersion
// reports such tags without panicking. Parse failures are always
// ErrInvalidFormat.
//
// Thread Safety:
//
// UUID values are immutable once built and may be shared freely. The default
// generator reads from crypto/rand and can be used concurrently from
// multiple goroutines without additional synchronization.
//
// Versions 1, 2, 3 and 5 are recognised when inspecting identifiers but are
// not generated.
package uuid
