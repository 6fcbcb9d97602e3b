package uuid

import "encoding/hex"

// textWriter is a cursor over a caller-owned buffer. Writes past the end of
// the buffer panic; nothing is ever reallocated.
type textWriter struct {
	buf []byte
	off int
}

func (w *textWriter) reserve(n int) []byte {
	if len(w.buf)-w.off < n {
		panic("uuid: buffer too small for UUID")
	}
	p := w.buf[w.off : w.off+n]
	w.off += n
	return p
}

func (w *textWriter) writeString(s string) {
	copy(w.reserve(len(s)), s)
}

func (w *textWriter) writeByte(c byte) {
	w.reserve(1)[0] = c
}

func (w *textWriter) writeHex(src []byte) {
	hex.Encode(w.reserve(hex.EncodedLen(len(src))), src)
}

func (w *textWriter) bytes() []byte {
	return w.buf[:w.off]
}

// writeCanonical writes the five fields as fixed-width lowercase hex
// separated by dashes.
func (w *textWriter) writeCanonical(u *UUID) {
	w.writeHex(u[0:4])
	w.writeByte('-')
	w.writeHex(u[4:6])
	w.writeByte('-')
	w.writeHex(u[6:8])
	w.writeByte('-')
	w.writeHex(u[8:10])
	w.writeByte('-')
	w.writeHex(u[10:16])
}

// PutString writes the canonical form of u into dst and returns the written
// region, dst[:StringLen]. It does not allocate.
//
// PutString panics if len(dst) < StringLen.
func (u UUID) PutString(dst []byte) []byte {
	if len(dst) < StringLen {
		panic("uuid: buffer too small for UUID")
	}
	w := textWriter{buf: dst}
	w.writeCanonical(&u)
	return w.bytes()
}

// PutURN writes the URN form of u ("urn:uuid:" followed by the canonical
// form) into dst and returns the written region, dst[:URNLen]. It does not
// allocate.
//
// PutURN panics if len(dst) < URNLen.
func (u UUID) PutURN(dst []byte) []byte {
	if len(dst) < URNLen {
		panic("uuid: buffer too small for UUID URN")
	}
	w := textWriter{buf: dst}
	w.writeString(URNPrefix)
	w.writeCanonical(&u)
	return w.bytes()
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [StringLen]byte
	return string(u.PutString(buf[:]))
}

// URN returns the URN form of the UUID:
// urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) URN() string {
	var buf [URNLen]byte
	return string(u.PutURN(buf[:]))
}

// AppendText appends the canonical form of u to b.
func (u UUID) AppendText(b []byte) ([]byte, error) {
	var buf [StringLen]byte
	return append(b, u.PutString(buf[:])...), nil
}
