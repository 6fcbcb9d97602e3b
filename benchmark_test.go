package uuid

import (
	"testing"
)

func BenchmarkNewV4(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := NewV4()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkUUID_PutString(b *testing.B) {
	uuid := Must(NewV4())
	var buf [StringLen]byte
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.PutString(buf[:])
	}
}

func BenchmarkUUID_PutURN(b *testing.B) {
	uuid := Must(NewV4())
	var buf [URNLen]byte
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.PutURN(buf[:])
	}
}

func BenchmarkUUID_String(b *testing.B) {
	uuid := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.String()
	}
}

func BenchmarkParse(b *testing.B) {
	s := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_URN(b *testing.B) {
	s := "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_UnmarshalText(b *testing.B) {
	text := []byte("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var uuid UUID
		err := uuid.UnmarshalText(text)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_MixedEndian(b *testing.B) {
	uuid := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		uuid = FromMixedEndian(uuid.MixedEndian())
	}
}

func BenchmarkUUID_Variant(b *testing.B) {
	uuid := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.Variant()
		_, _ = uuid.LookupVersion()
	}
}

func BenchmarkDecodeFromHex(b *testing.B) {
	s := "f47ac10b58cc4372a5670e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := DecodeFromHex(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_EncodeToBase64(b *testing.B) {
	uuid := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.EncodeToBase64()
	}
}
