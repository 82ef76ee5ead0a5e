package render

import "unsafe"

// Bytes reinterprets a slice of 4-byte scalars as its underlying bytes
// without copying.
func Bytes[T float32 | uint32 | int32](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}
