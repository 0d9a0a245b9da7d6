package recio

// WriterOpt определение опции писалки.
type WriterOpt func(w *Writer, _ writerOptRestriction)

type writerOptRestriction struct{}

// WithFrameSize устанавливает размер кадра. Предполагается, что он
// должен быть не меньше максимального размера одной записи, но не
// намного.
func WithFrameSize(frame int) WriterOpt {
	return func(w *Writer, _ writerOptRestriction) {
		w.frame = frame
	}
}
