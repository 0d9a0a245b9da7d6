package ackio

import (
	"io"

	"github.com/sirkon/errors"
)

const missingFrameDefaultSize = 4096

// Reader читалка из источника с функциональностью подтверждения вычитки
// или отката к началу неподтверждённых вычитанных данных. Вычитка значений
// кодированных в varint ведётся через VarintReader.
type Reader struct {
	src io.Reader
	buf []byte
	frm int

	pos int64 // логическая позиция конца подтверждённой вычитки в источнике
	ack int   // начало неподтверждённых данных в буфере
	cur int   // текущая позиция чтения, ack <= cur <= end
	end int   // граница заполненной части буфера
	eof bool
}

// New конструктор читалки с данным источником и опциями.
func New(src io.Reader, opts ...ReaderOpt) *Reader {
	r := &Reader{
		src: src,
	}
	for _, opt := range opts {
		opt(r, readerOptRestriction{})
	}

	if r.buf == nil {
		r.buf = make([]byte, missingFrameDefaultSize)
	}

	return r
}

// Read для реализации io.Reader.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	if r.exhausted() {
		if err := r.fulfill(r.frame()); err != nil {
			return 0, err
		}

		if r.exhausted() {
			// Данных в источнике пока нет.
			return 0, nil
		}
	}

	n = copy(p, r.buf[r.cur:r.end])
	r.cur += n
	return n, nil
}

// Ack подтверждение вычитки n байт начиная с конца подтверждённых
// ранее данных. Подтверждённое становится недоступным для Rollback.
func (r *Reader) Ack(n int) error {
	if n <= 0 {
		return errors.New("acknowledge must be positive").Int("invalid-acknowledge-value", n)
	}

	if r.ack+n > r.end {
		return errors.New("acknowledge must not leave the buffered data").
			Int("invalid-acknowledge-value", n).
			Int("unacknowledged-bytes-count", r.end-r.ack)
	}

	r.ack += n
	r.pos += int64(n)
	if r.cur < r.ack {
		r.cur = r.ack
	}

	return nil
}

// Rollback откат позиции чтения в начало неподтверждённых данных.
func (r *Reader) Rollback() {
	r.cur = r.ack
}

// VarintReader возврат varint-курсора по буферу.
func (r *Reader) VarintReader() VarintReader {
	return VarintReader{
		r:     r,
		count: 0,
	}
}

// Pos позиция конца подтверждённой вычитки.
func (r *Reader) Pos() int64 {
	return r.pos
}

// fulfill дочитывает в буфер очередную порцию данных с указанием её
// минимального предполагаемого размера. Неподтверждённые данные при
// этом сохраняются, возможно со сдвигом в начало буфера.
func (r *Reader) fulfill(n int) error {
	if r.eof {
		if r.exhausted() {
			return io.EOF
		}

		return nil
	}

	r.ensure(n)
	read, err := r.src.Read(r.buf[r.end:])
	r.end += read
	if err != nil {
		if err == io.EOF {
			r.eof = true
			if read == 0 && r.exhausted() {
				return io.EOF
			}

			return nil
		}

		return errors.Wrap(err, "read underlying source")
	}

	return nil
}

// ensure освобождает в буфере не менее n байт под дочитку, сдвигая
// неподтверждённый остаток в начало и лишь при нехватке места выделяя
// новый буфер.
func (r *Reader) ensure(n int) {
	if len(r.buf)-r.end >= n {
		return
	}

	kept := r.end - r.ack
	if len(r.buf)-kept >= n {
		copy(r.buf, r.buf[r.ack:r.end])
	} else {
		buf := make([]byte, kept+n)
		copy(buf, r.buf[r.ack:r.end])
		r.buf = buf
	}

	r.cur -= r.ack
	r.end = kept
	r.ack = 0
}

// Возвращает true если буфер пуст или все данные оттуда уже были вычитаны.
func (r *Reader) exhausted() bool {
	return r.cur == r.end
}

func (r *Reader) frame() int {
	if r.frm > 0 {
		return r.frm
	}

	return missingFrameDefaultSize
}
