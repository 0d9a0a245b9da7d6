package recio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/wireio/internal/recio"
	"github.com/sirkon/wireio/internal/tlog"
)

func TestWriter(t *testing.T) {
	streamID := uuid.MustParse("4e9f8f15-68f6-472b-9c46-0ed35bd039a3")

	t.Run("positions", func(t *testing.T) {
		// Сценарий: пишем записи так, чтобы третья легла впритык
		// к границе кадра, а следующая потребовала набивки.
		name := filepath.Join(t.TempDir(), "records.log")
		w, err := recio.NewWriter(name, streamID, recio.WithFrameSize(32))
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "create writer"))
			return
		}
		if w.ID() != streamID {
			t.Errorf("expected stream id %s, got %s", streamID, w.ID())
		}

		checkOffset := func(data []byte, want uint64) {
			t.Helper()
			off, err := w.WriteRecord(data)
			if err != nil {
				tlog.Error(t, errors.Wrap(err, "write record").Int("record-length", len(data)))
				return
			}
			if off != want {
				t.Errorf("expected record offset %d, got %d", want, off)
			}
		}

		checkOffset([]byte("alpha"), 32)
		checkOffset(make([]byte, 20), 38)
		checkOffset([]byte("beta"), 59)

		// Кадр закончился ровно на предыдущей записи.
		checkOffset([]byte("x"), 64)

		// Эта запись в остаток кадра не помещается, он забивается нулями.
		checkOffset(make([]byte, 30), 96)

		if w.Pos() != 127 {
			t.Errorf("expected write position 127, got %d", w.Pos())
		}

		if err := w.Close(); err != nil {
			tlog.Error(t, errors.Wrap(err, "close writer"))
			return
		}

		info, err := os.Stat(name)
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "stat written file"))
			return
		}
		if info.Size() != 127 {
			t.Errorf("expected file size 127, got %d", info.Size())
		}
	})

	t.Run("record-too-large", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "records.log")
		w, err := recio.NewWriter(name, streamID, recio.WithFrameSize(32))
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "create writer"))
			return
		}
		defer func() {
			if err := w.Close(); err != nil {
				tlog.Error(t, errors.Wrap(err, "close writer"))
			}
		}()

		if _, err := w.WriteRecord(make([]byte, 40)); !recio.IsRecordTooLarge(err) {
			tlog.Error(t, errors.Wrap(err, "record too large error expected"))
			return
		} else {
			tlog.Log(t, errors.Wrap(err, "expected error"))
		}
	})

	t.Run("invalid-frame-sizes", func(t *testing.T) {
		dir := t.TempDir()

		if _, err := recio.NewWriter(
			filepath.Join(dir, "small.log"),
			streamID,
			recio.WithFrameSize(3),
		); err == nil {
			t.Error("too small frame must be rejected")
		} else {
			tlog.Log(t, errors.Wrap(err, "expected error"))
		}

		if _, err := recio.NewWriter(
			filepath.Join(dir, "large.log"),
			streamID,
			recio.WithFrameSize(1024*1024*1024),
		); err == nil {
			t.Error("too large frame must be rejected")
		} else {
			tlog.Log(t, errors.Wrap(err, "expected error"))
		}
	})
}
