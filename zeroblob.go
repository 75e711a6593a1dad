//go:build zeroblob

package tosql

import (
	"fmt"
)

// ZeroBlob is an Output that asks for a blob of Len zero bytes to be reserved
// in place of actual data, so that the contents can be written later by an
// incremental blob writer. It holds no borrowed data and is safe to retain.
//
// ZeroBlob only exists in builds using the zeroblob tag.
type ZeroBlob struct {
	Len int32
}

func (ZeroBlob) isOutput() {}

// ToSQL returns z.
func (z ZeroBlob) ToSQL() (Output, error) {
	return z, nil
}

func (z ZeroBlob) String() string {
	return fmt.Sprintf("ZeroBlob(%d)", z.Len)
}

// ZeroFill is a length in bytes that converts to a ZeroBlob of that length.
// A negative length fails with ErrOutOfRange.
type ZeroFill int32

func (n ZeroFill) ToSQL() (Output, error) {
	if n < 0 {
		return nil, ConversionError([]error{ErrOutOfRange}, "zero-filled blob length %d is negative", int32(n))
	}
	return ZeroBlob{Len: int32(n)}, nil
}
