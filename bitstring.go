package decimal

import "fmt"

// BitString is a decimal value in its IEEE754-2019 interchange-format
// binary encoding, backed by one of this package's BinaryBuf
// implementations. It carries no state of its own beyond the buffer —
// every classification below is an O(1) check on the buffer's last byte.
type BitString struct {
	buf BinaryBuf
}

// FromBuf wraps an already-encoded BinaryBuf as a BitString.
func FromBuf(buf BinaryBuf) BitString {
	return BitString{buf: buf}
}

// Bytes returns the decimal's raw little-endian-ordered storage.
func (b BitString) Bytes() []byte {
	if b.buf == nil {
		return nil
	}
	return b.buf.Bytes()
}

// StorageWidthBits is the decimal's total bit width.
func (b BitString) StorageWidthBits() int { return StorageWidthBits(b.buf) }

// IsFinite reports whether this value is a finite number (not infinite or NaN).
func (b BitString) IsFinite() bool { return IsFinite(b.Bytes()) }

// IsInfinite reports whether this value is an infinity.
func (b BitString) IsInfinite() bool { return IsInfinite(b.Bytes()) }

// IsNaN reports whether this value is a NaN, quiet or signaling.
func (b BitString) IsNaN() bool { return IsNaN(b.Bytes()) }

// IsQuietNaN reports whether this value is a quiet NaN.
func (b BitString) IsQuietNaN() bool { return IsQuietNaN(b.Bytes()) }

// IsSignalingNaN reports whether this value is a signaling NaN.
func (b BitString) IsSignalingNaN() bool { return IsSignalingNaN(b.Bytes()) }

// IsNegative reports whether this value's sign bit is set.
func (b BitString) IsNegative() bool { return IsSignNegative(b.Bytes()) }

// Import wraps an existing byte slice as a BitString without copying,
// as long as its length is a valid storage width (a positive multiple of
// 4 bytes). The slice is shared with the caller.
func Import(data []byte) (BitString, error) {
	if len(data) == 0 || len(data)%4 != 0 {
		return BitString{}, newOverflowError("storage width must be a positive multiple of 4 bytes, got %d", len(data))
	}
	return BitString{buf: ArbitraryBuf(data)}, nil
}

// ImportExact accepts exactly the lengths Import accepts (any positive
// multiple of 4 bytes, each of which is a storage width this codec can
// construct); on rejection its OverflowError also names the next valid
// size, the next multiple of 4 above len(data) (see spec.md §6.4, §8
// scenario 9).
func ImportExact(data []byte) (BitString, error) {
	if len(data) == 0 || len(data)%4 != 0 {
		next := ((len(data) / 4) + 1) * 4
		return BitString{}, newOverflowError("exact import requires a storage width that is a multiple of 4 bytes; got %d bytes, next valid size is %d", len(data), next)
	}
	return Import(data)
}

func (b BitString) String() string {
	return fmt.Sprintf("BitString(%d bits)", b.StorageWidthBits())
}
