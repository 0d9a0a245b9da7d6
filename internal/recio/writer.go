package recio

import (
	"bufio"
	"encoding/binary"
	"os"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/varsize"
)

// NewWriter конструктор писалки нового файла с логом записей.
// Параметры:
//
//   - name имя файла, файл не должен существовать.
//   - id идентификатор потока, сохраняется в заголовке файла.
func NewWriter(name string, id uuid.UUID, opts ...WriterOpt) (*Writer, error) {
	res := &Writer{
		id:    id,
		frame: defaultFrameSize,
		pos:   fileHeaderSize,
	}
	for _, opt := range opts {
		opt(res, writerOptRestriction{})
	}

	switch {
	case res.frame < leastFrameSize:
		return nil, errors.New("frame is too small").
			Int("frame-size", res.frame).
			Int("least-frame-size", leastFrameSize)
	case res.frame > frameSizeHardLimit:
		return nil, errors.New("frame is too large").
			Int("frame-size", res.frame).
			Int("maximal-frame-size", frameSizeHardLimit)
	}

	file, err := os.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "create log file")
	}

	dst := bufio.NewWriter(file)
	if err := writeHeader(dst, uint64(res.frame), id); err != nil {
		if cErr := file.Close(); cErr != nil {
			panic(errors.Wrap(cErr, "close file after header write failure"))
		}

		return nil, errors.Wrap(err, "write file header")
	}

	res.file = file
	res.dst = dst
	return res, nil
}

// Writer писалка лога записей.
type Writer struct {
	file *os.File
	dst  *bufio.Writer

	id     uuid.UUID
	frame  int
	pos    uint64
	zeroes []byte
}

// WriteRecord дописывает запись в лог и возвращает её смещение в файле.
// Записи никогда не пересекают границу кадра: если в текущем кадре не
// хватает места, его остаток забивается нулевыми байтами.
func (w *Writer) WriteRecord(data []byte) (uint64, error) {
	tag := uint64(len(data)) + 1
	l := varsize.Uint(tag) + len(data)
	if l > w.frame {
		return 0, errorRecordTooLarge{
			frame: w.frame,
			rec:   data,
		}
	}

	if rest := w.frameRest(); rest < l {
		if rest > len(w.zeroes) {
			w.zeroes = make([]byte, rest)
		}

		if _, err := w.dst.Write(w.zeroes[:rest]); err != nil {
			return 0, errors.Wrap(err, "push zeroes at the end of a frame")
		}
		w.pos += uint64(rest)
	}

	off := w.pos
	var buf [binary.MaxVarintLen64]byte
	ll := binary.PutUvarint(buf[:], tag)
	if _, err := w.dst.Write(buf[:ll]); err != nil {
		return 0, errors.Wrap(err, "push record tag")
	}
	if _, err := w.dst.Write(data); err != nil {
		return 0, errors.Wrap(err, "push record data")
	}

	w.pos += uint64(ll + len(data))
	return off, nil
}

// ID идентификатор потока данного лога.
func (w *Writer) ID() uuid.UUID {
	return w.id
}

// Pos текущая логическая позиция записи в файле.
func (w *Writer) Pos() uint64 {
	return w.pos
}

// Flush сброс буферизованных данных в файл.
func (w *Writer) Flush() error {
	if err := w.dst.Flush(); err != nil {
		return errors.Wrap(err, "flush buffered data")
	}

	return nil
}

// Close сброс буферизованных данных и закрытие файла.
func (w *Writer) Close() error {
	if err := w.dst.Flush(); err != nil {
		return errors.Wrap(err, "flush buffered data")
	}

	if err := w.file.Close(); err != nil {
		return errors.Wrap(err, "close log file")
	}

	return nil
}

// Количество байтов остающихся в текущем кадре.
func (w *Writer) frameRest() int {
	return w.frame - int((w.pos-fileHeaderSize)%uint64(w.frame))
}
