package su3

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func testFile(sigType SignatureType) *File {
	return &File{
		SignatureType: sigType,
		FileType:      FileTypeXMLGZ,
		ContentType:   ContentTypeNews,
		Version:       PadVersion("0.9.66"),
		SignerID:      []byte("zzz@mail.i2p"),
		Content:       []byte("<feed>news</feed>"),
		Signature:     bytes.Repeat([]byte{0xA5}, int(sigType.Length())),
	}
}

func assertSameFile(t *testing.T, want, got *File) {
	t.Helper()
	if want.SignatureType != got.SignatureType {
		t.Errorf("SignatureType = %s, want %s", got.SignatureType, want.SignatureType)
	}
	if want.FileType != got.FileType {
		t.Errorf("FileType = %s, want %s", got.FileType, want.FileType)
	}
	if want.ContentType != got.ContentType {
		t.Errorf("ContentType = %s, want %s", got.ContentType, want.ContentType)
	}
	if !bytes.Equal(want.Version, got.Version) {
		t.Errorf("Version = %q, want %q", got.Version, want.Version)
	}
	if !bytes.Equal(want.SignerID, got.SignerID) {
		t.Errorf("SignerID = %q, want %q", got.SignerID, want.SignerID)
	}
	if !bytes.Equal(want.Content, got.Content) {
		t.Errorf("Content differs: got %d bytes, want %d", len(got.Content), len(want.Content))
	}
	if !bytes.Equal(want.Signature, got.Signature) {
		t.Errorf("Signature differs: got %d bytes, want %d", len(got.Signature), len(want.Signature))
	}
}

func mustEncode(t *testing.T, f *File) []byte {
	t.Helper()
	data, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return data
}

func TestRoundTrip(t *testing.T) {
	for st := range signatureTypeNames {
		t.Run(st.String(), func(t *testing.T) {
			want := testFile(st)
			data := mustEncode(t, want)

			if len(data) != want.EncodedLen() {
				t.Errorf("encoded %d bytes, EncodedLen() = %d", len(data), want.EncodedLen())
			}

			got, rest, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if len(rest) != 0 {
				t.Errorf("expected no leftover bytes, got %d", len(rest))
			}
			assertSameFile(t, want, got)
		})
	}
}

func TestRoundTripEmptyRegions(t *testing.T) {
	want := &File{Version: make([]byte, MinVersionLength)}
	data := mustEncode(t, want)
	if len(data) != HeaderLength+MinVersionLength {
		t.Fatalf("encoded %d bytes, want %d", len(data), HeaderLength+MinVersionLength)
	}

	got, rest, err := Decode(data)
	if err == nil {
		t.Fatalf("expected missing signature to fail, got %v with %d leftover", got, len(rest))
	}

	// a default DSA file declares a 40 byte signature, so supply one
	want.Signature = make([]byte, 40)
	data = mustEncode(t, want)
	got, rest, err = Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(rest) != 0 {
		t.Errorf("expected no leftover bytes, got %d", len(rest))
	}
	assertSameFile(t, want, got)
}

func TestDecodeReseedFixture(t *testing.T) {
	raw, err := os.ReadFile("testdata/meeh_i2pseeds.su3")
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	f, rest, err := Decode(raw)
	if err != nil {
		t.Fatalf("Failed to parse reseed fixture: %v", err)
	}
	if len(rest) != 0 {
		t.Errorf("Bytes remaining: %d", len(rest))
	}

	if f.ContentType != ContentTypeReseed {
		t.Errorf("ContentType = %s, want RESEED", f.ContentType)
	}
	if f.FileType != FileTypeZIP {
		t.Errorf("FileType = %s, want ZIP", f.FileType)
	}
	if f.SignatureType != SigTypeRSAWithSHA512 {
		t.Errorf("SignatureType = %s, want RSA_SHA512_4096", f.SignatureType)
	}
	signer, err := f.SignerIDText()
	if err != nil || signer != "meeh@mail.i2p" {
		t.Errorf("SignerIDText() = %q, %v", signer, err)
	}
	version, err := f.VersionText()
	if err != nil || version != "1429373004" {
		t.Errorf("VersionText() = %q, %v", version, err)
	}
	if !bytes.HasPrefix(f.Content, []byte("PK\x03\x04")) {
		t.Error("content should be a zip archive")
	}

	reencoded := make([]byte, len(raw))
	n, err := f.EncodeTo(reencoded)
	if err != nil {
		t.Fatalf("Failed to re-encode reseed fixture: %v", err)
	}
	if n != len(raw) || !bytes.Equal(reencoded, raw) {
		t.Error("re-encoding did not reproduce the original bytes")
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := mustEncode(t, testFile(SigTypeEdDSAWithSHA512))

	for n := 0; n < len(data); n++ {
		_, _, err := Decode(data[:n])
		if !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("prefix of %d bytes: expected ErrInsufficientData, got %v", n, err)
		}
	}
}

func TestDecodeInsufficientDataDetails(t *testing.T) {
	testCases := []struct {
		name      string
		length    int
		field     string
		required  uint64
		available int
	}{
		{"empty", 0, "magic", 6, 0},
		{"mid magic", 4, "magic", 6, 4},
		{"mid signature type", 9, "signature_type", 2, 1},
		{"mid content length", 20, "content_length", 8, 4},
		{"reserved block", 30, "unused", 12, 2},
		{"version", HeaderLength + 3, "version", MinVersionLength, 3},
	}

	data := mustEncode(t, testFile(SigTypeDSA))
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Decode(data[:tc.length])
			var dataErr *InsufficientDataError
			if !errors.As(err, &dataErr) {
				t.Fatalf("expected *InsufficientDataError, got %v", err)
			}
			if dataErr.Field != tc.field || dataErr.Required != tc.required || dataErr.Available != tc.available {
				t.Errorf("got %+v, want field %s required %d available %d", *dataErr, tc.field, tc.required, tc.available)
			}
		})
	}
}

func TestDecodeHugeContentLength(t *testing.T) {
	data := mustEncode(t, testFile(SigTypeDSA))
	// content length lives at offset 16
	for i := 16; i < 24; i++ {
		data[i] = 0xFF
	}

	_, _, err := Decode(data)
	var dataErr *InsufficientDataError
	if !errors.As(err, &dataErr) || dataErr.Field != "content" {
		t.Fatalf("expected insufficient content error, got %v", err)
	}
}

func TestDecodeMagicMismatch(t *testing.T) {
	data := mustEncode(t, testFile(SigTypeDSA))
	data[0] ^= 0xFF

	f, rest, err := Decode(data)
	if !errors.Is(err, ErrMagicMismatch) {
		t.Fatalf("expected ErrMagicMismatch, got %v", err)
	}
	if f != nil || rest != nil {
		t.Error("nothing should be returned on failure")
	}
}

func TestDecodeUnknownCodes(t *testing.T) {
	testCases := []struct {
		name   string
		offset int
		value  byte
		field  string
	}{
		{"file type", 25, 0xFF, "file_type"},
		{"content type", 27, 0x06, "content_type"},
		{"signature type", 9, 0x07, "signature_type"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := mustEncode(t, testFile(SigTypeRSAWithSHA384))
			data[tc.offset] = tc.value

			_, _, err := Decode(data)
			var enumErr *UnknownEnumCodeError
			if !errors.As(err, &enumErr) {
				t.Fatalf("expected *UnknownEnumCodeError, got %v", err)
			}
			if enumErr.Field != tc.field || enumErr.Code != uint64(tc.value) {
				t.Errorf("got %+v", *enumErr)
			}
			if !errors.Is(err, ErrUnknownEnumCode) {
				t.Error("error should match ErrUnknownEnumCode")
			}
		})
	}
}

func TestDecodeChecksLengthsBeforeEnums(t *testing.T) {
	data := mustEncode(t, testFile(SigTypeDSA))
	data[25] = 0xFF

	_, _, err := Decode(data[:len(data)-1])
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData to win over the bad file type, got %v", err)
	}
}

func TestDecodeReturnsLeftover(t *testing.T) {
	data := mustEncode(t, testFile(SigTypeECDSAWithSHA256))
	trailer := []byte("next record")

	f, rest, err := Decode(append(data, trailer...))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(rest, trailer) {
		t.Errorf("leftover = %q, want %q", rest, trailer)
	}
	assertSameFile(t, testFile(SigTypeECDSAWithSHA256), f)
}

func TestDecodeAliasesInput(t *testing.T) {
	data := mustEncode(t, testFile(SigTypeDSA))

	f, _, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	data[HeaderLength] = 'X'
	if f.Version[0] != 'X' {
		t.Error("decoded version should share memory with the input")
	}
	// appending to a decoded region must not clobber the following one
	_ = append(f.Version, 'Y')
	if f.SignerID[0] != 'z' {
		t.Error("append on Version overwrote SignerID")
	}
}

func TestDecodeAcceptsShortVersion(t *testing.T) {
	f := testFile(SigTypeDSA)
	data := mustEncode(t, f)

	// shrink the version region to 4 bytes by hand
	short := append([]byte{}, data[:HeaderLength]...)
	short[13] = 4
	short = append(short, f.Version[:4]...)
	short = append(short, data[HeaderLength+MinVersionLength:]...)

	got, rest, err := Decode(short)
	if err != nil {
		t.Fatalf("decode should be lenient about version length, got %v", err)
	}
	if len(rest) != 0 || len(got.Version) != 4 {
		t.Fatalf("unexpected decode: version %q, %d leftover", got.Version, len(rest))
	}

	if _, err := Encode(got); !errors.Is(err, ErrInvalidVersionLength) {
		t.Errorf("re-encoding a short version should fail, got %v", err)
	}
}

func TestDecodeIgnoresFormatByte(t *testing.T) {
	data := mustEncode(t, testFile(SigTypeDSA))
	data[6] = 0x01
	data[7] = 0x01

	if _, _, err := Decode(data); err != nil {
		t.Fatalf("unused header bytes should be ignored, got %v", err)
	}
}

func TestEncodeHeaderLayout(t *testing.T) {
	f := testFile(SigTypeRSAWithSHA512)
	f.Signature = []byte("short")
	data := mustEncode(t, f)

	want := []byte{
		'I', '2', 'P', 's', 'u', '3', 0, 0,
		0x00, 0x06, // signature type
		0x02, 0x00, // signature length from the table, not len(Signature)
		0, 16,
		0, 12,
		0, 0, 0, 0, 0, 0, 0, 17,
		0, 3,
		0, 4,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	if !bytes.Equal(data[:HeaderLength], want) {
		t.Errorf("header = % x\nwant     % x", data[:HeaderLength], want)
	}
	if len(data) != HeaderLength+16+12+17+5 {
		t.Errorf("encoded length = %d", len(data))
	}
	if !bytes.HasSuffix(data, []byte("short")) {
		t.Error("signature should be written verbatim")
	}
}

func TestEncodeValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(f *File)
		want   error
	}{
		{"short version", func(f *File) { f.Version = []byte("1.0") }, ErrInvalidVersionLength},
		{"nil version", func(f *File) { f.Version = nil }, ErrInvalidVersionLength},
		{"unassigned signature type", func(f *File) { f.SignatureType = 7 }, ErrUnknownEnumCode},
		{"bad file type", func(f *File) { f.FileType = 42 }, ErrUnknownEnumCode},
		{"bad content type", func(f *File) { f.ContentType = 6 }, ErrUnknownEnumCode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := testFile(SigTypeDSA)
			tc.mutate(f)

			if _, err := Encode(f); !errors.Is(err, tc.want) {
				t.Errorf("Encode error = %v, want %v", err, tc.want)
			}
			if _, err := f.BodyBytes(); !errors.Is(err, tc.want) {
				t.Errorf("BodyBytes error = %v, want %v", err, tc.want)
			}

			dst := bytes.Repeat([]byte{0xEE}, 4096)
			n, err := f.EncodeTo(dst)
			if !errors.Is(err, tc.want) || n != 0 {
				t.Errorf("EncodeTo = %d, %v, want 0, %v", n, err, tc.want)
			}
			if !bytes.Equal(dst, bytes.Repeat([]byte{0xEE}, 4096)) {
				t.Error("EncodeTo wrote into dst despite failing validation")
			}
		})
	}
}

func TestInvalidVersionLengthDetails(t *testing.T) {
	f := testFile(SigTypeDSA)
	f.Version = []byte("1.2.3")

	_, err := Encode(f)
	var lenErr *InvalidVersionLengthError
	if !errors.As(err, &lenErr) || lenErr.Actual != 5 {
		t.Fatalf("expected *InvalidVersionLengthError{Actual: 5}, got %v", err)
	}
}

func TestEncodeTo(t *testing.T) {
	f := testFile(SigTypeECDSAWithSHA384)
	want := mustEncode(t, f)

	t.Run("exact fit", func(t *testing.T) {
		dst := make([]byte, len(want))
		n, err := f.EncodeTo(dst)
		if err != nil {
			t.Fatalf("EncodeTo failed: %v", err)
		}
		if n != len(want) || !bytes.Equal(dst, want) {
			t.Error("EncodeTo output differs from Encode")
		}
	})

	t.Run("larger buffer", func(t *testing.T) {
		dst := make([]byte, len(want)+10)
		n, err := f.EncodeTo(dst)
		if err != nil {
			t.Fatalf("EncodeTo failed: %v", err)
		}
		if n != len(want) || !bytes.Equal(dst[:n], want) {
			t.Error("EncodeTo output differs from Encode")
		}
	})

	t.Run("too small", func(t *testing.T) {
		dst := make([]byte, len(want)-1)
		n, err := f.EncodeTo(dst)
		var sizeErr *OutputTooSmallError
		if !errors.As(err, &sizeErr) || n != 0 {
			t.Fatalf("expected *OutputTooSmallError, got %d, %v", n, err)
		}
		if sizeErr.Required != len(want) || sizeErr.Available != len(want)-1 {
			t.Errorf("got %+v", *sizeErr)
		}
		if !bytes.Equal(dst, make([]byte, len(want)-1)) {
			t.Error("EncodeTo wrote into a buffer that was too small")
		}
	})
}

func TestBodyBytes(t *testing.T) {
	f := testFile(SigTypeRSAWithSHA256)
	full := mustEncode(t, f)

	body, err := f.BodyBytes()
	if err != nil {
		t.Fatalf("BodyBytes failed: %v", err)
	}
	if !bytes.Equal(body, full[:len(full)-len(f.Signature)]) {
		t.Error("BodyBytes should be the encoding minus the signature")
	}
}

func TestUnmarshalBinary(t *testing.T) {
	want := testFile(SigTypeECDSAWithSHA512)
	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	var got File
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	assertSameFile(t, want, &got)

	// regions are copies, not views
	data[HeaderLength] = 'X'
	if got.Version[0] == 'X' {
		t.Error("UnmarshalBinary should copy the regions out of the input")
	}

	before := got
	err = got.UnmarshalBinary(append(data, 0))
	var trailErr *TrailingDataError
	if !errors.As(err, &trailErr) || trailErr.Remaining != 1 {
		t.Fatalf("expected *TrailingDataError{Remaining: 1}, got %v", err)
	}
	assertSameFile(t, &before, &got)

	if err := got.UnmarshalBinary(data[:10]); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestNewAndPadVersion(t *testing.T) {
	f := New()
	if len(f.Version) != MinVersionLength {
		t.Errorf("New() version is %d bytes, want %d", len(f.Version), MinVersionLength)
	}
	if f.SignatureType != SigTypeDSA || f.FileType != FileTypeZIP || f.ContentType != ContentTypeUnknown {
		t.Errorf("New() should keep the default enum values, got %s %s %s", f.SignatureType, f.FileType, f.ContentType)
	}

	if got := PadVersion("1.0"); !bytes.Equal(got, append([]byte("1.0"), make([]byte, 13)...)) {
		t.Errorf("PadVersion(1.0) = %q", got)
	}
	long := strings.Repeat("9", 20)
	if got := PadVersion(long); string(got) != long {
		t.Errorf("PadVersion should leave long versions alone, got %q", got)
	}
}

func TestString(t *testing.T) {
	s := testFile(SigTypeRSAWithSHA512).String()
	for _, want := range []string{"RSA_SHA512_4096", "XML_GZ", "NEWS", `"0.9.66"`, `"zzz@mail.i2p"`, "Signature: 512 bytes"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	f := testFile(SigTypeRSAWithSHA512)
	f.Content = bytes.Repeat([]byte{1}, 64*1024)
	data, err := Encode(f)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeTo(b *testing.B) {
	f := testFile(SigTypeRSAWithSHA512)
	f.Content = bytes.Repeat([]byte{1}, 64*1024)
	dst := make([]byte, f.EncodedLen())

	b.SetBytes(int64(len(dst)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.EncodeTo(dst); err != nil {
			b.Fatal(err)
		}
	}
}
