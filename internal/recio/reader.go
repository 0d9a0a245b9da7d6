package recio

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/wireio/internal/varints"
)

// NewReader создаёт итератор для чтения записей из файла с логом.
func NewReader(name string) (*ReadIterator, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	frame, id, err := readHeader(file)
	if err != nil {
		if cErr := file.Close(); cErr != nil {
			panic(errors.Wrap(cErr, "close file after header processing failure"))
		}

		return nil, errors.Wrap(err, "load file metadata")
	}

	return &ReadIterator{
		src:   file,
		buf:   make([]byte, frame),
		frame: int(frame),
		id:    id,
		pos:   fileHeaderSize,
	}, nil
}

// ReadIterator итератор по файлу с записями.
type ReadIterator struct {
	src   *os.File
	buf   []byte
	rest  []byte
	frame int
	id    uuid.UUID

	pos  uint64
	off  uint64
	data []byte
	err  error
}

// Next вычитка следующей записи.
func (it *ReadIterator) Next() bool {
	if it.err != nil {
		return false
	}

	for {
		if len(it.rest) == 0 {
			n, err := io.ReadFull(it.src, it.buf)
			switch err {
			case nil:
			case io.EOF:
				return false
			case io.ErrUnexpectedEOF:
				// Последний кадр файла может быть неполным.
			default:
				it.err = errors.Wrap(err, "read next frame")
				return false
			}

			it.rest = it.buf[:n]
		}

		// Бюджет вычитки тега ограничен остатком кадра: записи
		// не пересекают его границу.
		v, rest, err := varints.Dec64(it.rest, len(it.rest))
		if err != nil {
			it.err = errors.Wrap(ErrorIntegrityCompromised{}, "decode record tag").
				Uint64("failed-tag-offset", it.pos)
			return false
		}

		if v == 0 {
			// Нулевой тег это набивка, остаток кадра пропускается.
			it.pos += uint64(len(it.rest))
			it.rest = nil
			continue
		}

		length := v - 1
		if length < 0 || length > int64(len(rest)) {
			it.err = errors.Wrap(ErrorIntegrityCompromised{}, "record data goes out of its frame").
				Uint64("failed-record-offset", it.pos).
				Int64("record-data-length", length)
			return false
		}

		it.off = it.pos
		it.data = rest[:length]
		it.pos += uint64(len(it.rest) - len(rest) + int(length))
		it.rest = rest[length:]
		return true
	}
}

// Record данные текущей записи. Слайс действителен лишь до следующего
// вызова Next.
func (it *ReadIterator) Record() []byte {
	return it.data
}

// Pos смещение текущей записи в файле.
func (it *ReadIterator) Pos() uint64 {
	return it.off
}

// ID идентификатор потока из заголовка файла.
func (it *ReadIterator) ID() uuid.UUID {
	return it.id
}

// Err ошибка вычитки если она была.
func (it *ReadIterator) Err() error {
	return it.err
}

// Close закрытие файла с логом.
func (it *ReadIterator) Close() error {
	if err := it.src.Close(); err != nil {
		return errors.Wrap(err, "close log file")
	}

	return nil
}
