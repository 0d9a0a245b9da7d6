package recio

import (
	"encoding/binary"
	"io"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
)

// writeHeader сериализация метаданных в начало файла.
func writeHeader(dst io.Writer, frame uint64, id uuid.UUID) error {
	var buf [fileHeaderSize]byte
	copy(buf[:8], fileMagic)
	binary.LittleEndian.PutUint64(buf[8:16], frame)
	copy(buf[16:], id[:])

	if _, err := dst.Write(buf[:]); err != nil {
		return errors.Wrap(err, "write encoded header")
	}

	return nil
}

// readHeader вычитка и проверка метаданных файла.
func readHeader(src io.Reader) (frame uint64, id uuid.UUID, err error) {
	var buf [fileHeaderSize]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, id, errors.Wrap(err, "read header data")
	}

	if string(buf[:8]) != fileMagic {
		return 0, id, errors.Wrap(ErrorIntegrityCompromised{}, "check file signature")
	}

	frame = binary.LittleEndian.Uint64(buf[8:16])
	if frame < leastFrameSize || frame > frameSizeHardLimit {
		return 0, id, errors.Wrap(ErrorIntegrityCompromised{}, "check frame size").
			Uint64("header-frame-size", frame)
	}

	copy(id[:], buf[16:])
	return frame, id, nil
}
