package varints

import "math/bits"

// Len64 возвращает длину канонического представления данного значения.
func Len64(v int64) int {
	if v == 0 {
		return 1
	}

	return (bits.Len64(uint64(v)) + 6) / 7
}

// Len32 возвращает длину канонического представления 32-битного значения.
func Len32(v int32) int {
	return Len64(int64(v))
}
