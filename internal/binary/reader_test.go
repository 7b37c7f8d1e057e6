package binary

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/simonhull/echoproc/internal/types"
)

// mockReader implements io.ReaderAt for testing.
type mockReader struct {
	data []byte
}

func (m *mockReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func newTestReader(data []byte) *SafeReader {
	return NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.nc")
}

func TestSafeReader_ReadAt_Success(t *testing.T) {
	sr := newTestReader([]byte("CDF\x01"))

	buf := make([]byte, 3)
	if err := sr.ReadAt(buf, 0, "magic"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf) != "CDF" {
		t.Errorf("expected CDF, got %q", buf)
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	sr := newTestReader([]byte{0x01, 0x02, 0x03, 0x04})

	tests := []struct {
		name string
		off  int64
		n    int
	}{
		{"beyond end", 10, 2},
		{"straddles end", 3, 2},
		{"negative offset", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.n), tt.off, "header field")
			var oob *types.OutOfBoundsError
			if !errors.As(err, &oob) {
				t.Fatalf("expected *OutOfBoundsError, got %v", err)
			}
			if !strings.Contains(err.Error(), "test.nc") || !strings.Contains(err.Error(), "header field") {
				t.Errorf("error should name file and field: %v", err)
			}
		})
	}
}

func TestSafeReader_Match(t *testing.T) {
	sr := newTestReader([]byte("\x89HDF\r\n\x1a\n\x00"))

	if !sr.Match(0, []byte("\x89HDF\r\n\x1a\n")) {
		t.Error("expected HDF5 signature to match at offset 0")
	}
	if sr.Match(1, []byte("\x89HDF")) {
		t.Error("signature should not match at offset 1")
	}
	if sr.Match(512, []byte("\x89HDF")) {
		t.Error("match past end of data should be false")
	}
}

func TestRead_Widths(t *testing.T) {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, 0x0102030405060708)
	sr := newTestReader(data)

	if v, err := Read[uint8](sr, 0, "u8"); err != nil || v != 0x01 {
		t.Errorf("Read[uint8] = 0x%x, %v", v, err)
	}
	if v, err := Read[uint16](sr, 0, "u16"); err != nil || v != 0x0102 {
		t.Errorf("Read[uint16] = 0x%x, %v", v, err)
	}
	if v, err := Read[uint32](sr, 4, "u32"); err != nil || v != 0x05060708 {
		t.Errorf("Read[uint32] = 0x%x, %v", v, err)
	}
	if v, err := Read[uint64](sr, 0, "u64"); err != nil || v != 0x0102030405060708 {
		t.Errorf("Read[uint64] = 0x%x, %v", v, err)
	}
	if _, err := Read[uint32](sr, 6, "u32"); err == nil {
		t.Error("expected error reading past end")
	}
}

func TestReader_Sequential(t *testing.T) {
	// CDF classic preamble: magic, version, numrecs
	data := []byte{'C', 'D', 'F', 0x01, 0x00, 0x00, 0x00, 0x07}
	r := NewReader(newTestReader(data), 0)

	if !r.Match(0, []byte("CDF")) {
		t.Fatal("expected CDF magic")
	}
	r.Skip(3)

	version, err := ReadValue[uint8](r, "version")
	if err != nil || version != 1 {
		t.Fatalf("ReadValue[uint8] = %d, %v", version, err)
	}

	numrecs, err := ReadValue[uint32](r, "numrecs")
	if err != nil || numrecs != 7 {
		t.Fatalf("ReadValue[uint32] = %d, %v", numrecs, err)
	}

	if r.Offset() != 8 {
		t.Errorf("expected offset 8, got %d", r.Offset())
	}
}

func TestReader_Skip(t *testing.T) {
	r := NewReader(newTestReader(make([]byte, 100)), 10)

	r.Skip(20)
	if r.Offset() != 30 {
		t.Errorf("expected offset 30 after skip, got %d", r.Offset())
	}
}

func BenchmarkRead_Uint32(b *testing.B) {
	data := make([]byte, 1024*1024)
	for i := 0; i < len(data); i += 4 {
		binary.BigEndian.PutUint32(data[i:], uint32(i))
	}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "bench.nc")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := int64((i % (len(data) / 4)) * 4)
		_, _ = Read[uint32](sr, offset, "benchmark")
	}
}
