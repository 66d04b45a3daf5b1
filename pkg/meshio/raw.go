package meshio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Faultbox/projective/pkg/surface"
)

// rawMagic identifies a raw vertex buffer file.
var rawMagic = [4]byte{'S', 'R', 'F', 'B'}

// ErrInvalidMagic is returned when a raw file does not start with rawMagic.
var ErrInvalidMagic = errors.New("invalid raw buffer magic")

// RawHeader precedes the float data of a raw buffer file.
type RawHeader struct {
	Magic       [4]byte
	Layout      uint32
	USegments   uint32
	VSegments   uint32
	VertexCount uint32
}

// WriteRaw writes a header followed by the buffer as little-endian float32,
// so the data can be memory-mapped straight into a GL buffer.
func WriteRaw(w io.Writer, buf *surface.VertexBuffer) error {
	h := RawHeader{
		Magic:       rawMagic,
		Layout:      uint32(buf.Layout),
		USegments:   uint32(buf.Grid.U),
		VSegments:   uint32(buf.Grid.V),
		VertexCount: uint32(buf.VertexCount()),
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, buf.Data); err != nil {
		return fmt.Errorf("writing data: %w", err)
	}
	return nil
}

// ReadRaw reads a buffer written by WriteRaw.
func ReadRaw(r io.Reader) (*surface.VertexBuffer, error) {
	var h RawHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if h.Magic != rawMagic {
		return nil, ErrInvalidMagic
	}

	layout := surface.Layout(h.Layout)
	if layout != surface.LayoutBlock && layout != surface.LayoutInterleaved {
		return nil, fmt.Errorf("unknown layout %d", h.Layout)
	}

	data := make([]float32, int(h.VertexCount)*surface.FloatsPerVertex)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	return &surface.VertexBuffer{
		Data:   data,
		Layout: layout,
		Grid:   surface.Grid{U: int(h.USegments), V: int(h.VSegments)},
	}, nil
}
