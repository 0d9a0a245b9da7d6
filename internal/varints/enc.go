package varints

// Append64 дописывает каноническое (минимальной длины) представление
// значения к dst и возвращает расширенный слайс. Отрицательные значения
// занимают все десять байтов.
func Append64(dst []byte, v int64) []byte {
	u := uint64(v)
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}

	return append(dst, byte(u))
}

// Append32 дописывает каноническое представление 32-битного значения.
// На проводе знаковые 32-битные значения ничем не отличаются от 64-битных,
// поэтому отрицательные так же разворачиваются до десяти байтов.
func Append32(dst []byte, v int32) []byte {
	return Append64(dst, int64(v))
}
