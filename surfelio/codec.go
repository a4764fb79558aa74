package surfelio

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/surfelod/surfel"
	"github.com/katalvlaran/surfelod/vecmath"
)

// record is the on-wire layout of one surfel: position, normal, color
// (three float64 each), then radius - 10 little-endian float64s.
type record struct {
	PX, PY, PZ float64
	NX, NY, NZ float64
	CX, CY, CZ float64
	Radius     float64
}

func toRecord(s surfel.Surfel) record {
	return record{
		PX: s.Position.X, PY: s.Position.Y, PZ: s.Position.Z,
		NX: s.Normal.X, NY: s.Normal.Y, NZ: s.Normal.Z,
		CX: s.Color.X, CY: s.Color.Y, CZ: s.Color.Z,
		Radius: s.Radius,
	}
}

func (r record) toSurfel() surfel.Surfel {
	return surfel.Surfel{
		Position: vecmath.Vec3{X: r.PX, Y: r.PY, Z: r.PZ},
		Normal:   vecmath.Vec3{X: r.NX, Y: r.NY, Z: r.NZ},
		Color:    vecmath.Vec3{X: r.CX, Y: r.CY, Z: r.CZ},
		Radius:   r.Radius,
	}
}

// Encode writes arr to w as a count-prefixed sequence of fixed-size
// surfel records.
func Encode(w io.Writer, arr surfel.Array) error {
	n := int64(arr.Length())
	if err := binary.Write(w, binary.LittleEndian, n); err != nil {
		return err
	}
	for i := int64(0); i < n; i++ {
		rec := toRecord(arr.ReadSurfel(int(i)))
		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a stream written by Encode and returns it as a
// *surfel.MemArray.
func Decode(r io.Reader) (*surfel.MemArray, error) {
	var n int64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		if err == io.EOF {
			return nil, ErrCorruptStream
		}
		return nil, err
	}

	out := surfel.NewMemArrayWithCapacity(int(n))
	for i := int64(0); i < n; i++ {
		var rec record
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrCorruptStream
			}
			return nil, err
		}
		out.Append(rec.toSurfel())
	}
	return out, nil
}
