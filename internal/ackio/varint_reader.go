package ackio

import (
	"io"

	"github.com/sirkon/errors"
	"github.com/sirkon/wireio/internal/varints"
)

// VarintReader одноразовый курсор поверх Reader предназначенный для
// безопасной вычитки значений кодированных в varint: осмотренные байты
// учитываются в родительском Reader только после вызова Commit.
type VarintReader struct {
	r     *Reader
	count int
}

// Int64 вычитка очередного 64-битного значения, но:
//
//   - В случае если данных нет и источник закрыт возвращается io.EOF.
//   - В случае если значение оборвано концом источника возвращается
//     io.ErrUnexpectedEOF.
//   - В случае если данных для завершения значения пока не хватает, но
//     последующие чтения могут их получить, возвращается ошибка такая,
//     что IsReaderNotReady(err) == true. Повторный вызов продолжит
//     с того же места.
func (r *VarintReader) Int64() (int64, error) {
	for {
		start := r.r.cur + r.count
		avail := r.r.end - start

		v, rest, err := varints.Dec64(r.r.buf[start:r.r.end], avail)
		if err == nil {
			r.count += avail - len(rest)
			return v, nil
		}
		if !varints.IsIncomplete(err) {
			return 0, errors.Wrap(err, "decode buffered value")
		}

		// Значению не хватило вычитанных байтов, дочитываем источник
		// и повторяем с того же места.
		if err := r.refill(); err != nil {
			return 0, err
		}
	}
}

// Int32 вычитка очередного 32-битного значения, контракт тот же,
// что и у Int64.
func (r *VarintReader) Int32() (int32, error) {
	for {
		start := r.r.cur + r.count
		avail := r.r.end - start

		v, rest, err := varints.Dec32(r.r.buf[start:r.r.end], avail)
		if err == nil {
			r.count += avail - len(rest)
			return v, nil
		}
		if !varints.IsIncomplete(err) {
			return 0, errors.Wrap(err, "decode buffered value")
		}

		if err := r.refill(); err != nil {
			return 0, err
		}
	}
}

func (r *VarintReader) refill() error {
	end := r.r.end
	if err := r.r.fulfill(r.r.frame()); err != nil {
		if err == io.EOF {
			// Источник закончился ровно на границе значений.
			return io.EOF
		}

		return errors.Wrap(err, "refill buffer")
	}

	if r.r.end != end {
		return nil
	}

	if r.r.eof {
		// Источник закончился на середине значения.
		return r.WrapError(io.ErrUnexpectedEOF, "refill to finish a value")
	}

	return errorReaderNotReady{}
}

// Commit учёт вычитанного в родительском Reader. Курсор после этого
// можно использовать дальше, счётчик начинается заново.
func (r *VarintReader) Commit() {
	r.r.cur += r.count
	r.count = 0
}

// Count возвращает количество байтов осмотренных данной сущностью
// с момента создания или последнего Commit.
func (r *VarintReader) Count() int {
	return r.count
}

// WrapError дополняет данную ошибку аннотацией и контекстом.
func (r *VarintReader) WrapError(err error, msg string) error {
	return errors.Wrap(err, msg).
		Int64("read-start", r.r.pos+int64(r.r.cur-r.r.ack)).
		Int64("read-failed-pos", r.r.pos+int64(r.r.cur-r.r.ack+r.count))
}
