package varints_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/sirkon/errors"
	"github.com/sirkon/wireio/internal/tlog"
	"github.com/sirkon/wireio/internal/varints"
)

func TestAppend64(t *testing.T) {
	values := []int64{
		0, 1, 127, 128, 16383, 16384,
		math.MaxInt64, -1, math.MinInt64,
	}

	for _, v := range values {
		// Кодировка обязана побайтово совпадать со стандартной
		// беззнаковой уложенной поверх дополнительного кода.
		var std [binary.MaxVarintLen64]byte
		l := binary.PutUvarint(std[:], uint64(v))

		data := varints.Append64(nil, v)
		if !bytes.Equal(data, std[:l]) {
			t.Errorf("encoding of %d mismatches the standard one: % x vs % x", v, data, std[:l])
			continue
		}
		if want := varints.Len64(v); want != len(data) {
			t.Errorf("Len64(%d) = %d while %d bytes were encoded", v, want, len(data))
		}

		back, rest, err := varints.Dec64(data, binary.MaxVarintLen64)
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "decode back").Int64("value", v))
			continue
		}
		if len(rest) != 0 || back != v {
			t.Errorf("expected %d with an empty rest, got %d with %d bytes left", v, back, len(rest))
		}
	}
}

func TestAppend32(t *testing.T) {
	// Отрицательные 32-битные значения разворачиваются на проводе
	// до полных десяти байтов.
	data := varints.Append32(nil, -1)
	if len(data) != binary.MaxVarintLen64 {
		t.Fatalf("10 bytes expected for -1, got %d", len(data))
	}
	if !bytes.Equal(data, varints.Append64(nil, -1)) {
		t.Error("32-bit and 64-bit encodings of -1 must be identical")
	}

	v, rest, err := varints.Dec32(data, binary.MaxVarintLen64)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "decode back"))
		return
	}
	if v != -1 || len(rest) != 0 {
		t.Errorf("expected -1 with an empty rest, got %d with %d bytes left", v, len(rest))
	}

	if want := varints.Len32(-1); want != binary.MaxVarintLen64 {
		t.Errorf("Len32(-1) = %d, 10 expected", want)
	}
}
