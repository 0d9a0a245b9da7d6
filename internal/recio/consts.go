package recio

const (
	// fileHeaderSize размер метаданных в начале файла.
	fileHeaderSize = 32

	// fileMagic сигнатура файла с логом записей.
	fileMagic = "WIREREC\x00"

	// frameSizeHardLimit максимальный размер кадра не должен превышать 32Мб.
	frameSizeHardLimit = 1024 * 1024 * 32 // 32Мб

	// leastFrameSize кадры меньше этого размера бессмысленны.
	leastFrameSize = 16

	// defaultFrameSize размер кадра по-умолчанию.
	defaultFrameSize = 1024 * 1024
)
