// Package quad implements quadratic integer rings Z[√d] and O_(Q(√d)) and
// their elements (a + b√d)/denom with exact integer arithmetic.
package quad

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"

	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/arith"
)

// Ring identifies the ring of algebraic integers of Q(√d) for a squarefree
// radicand d. The zero value is not a valid ring; construct through NewRing.
// Ring is comparable and usable as a map key.
type Ring struct {
	d int64
}

// RingDescriptor is the serializable literal form of a Ring.
type RingDescriptor struct {
	Radicand int64 `json:"radicand"`
}

// NewRing constructs the ring of integers of Q(√d). The radicand must be
// squarefree and distinct from 0 and 1.
func NewRing(d int64) (Ring, error) {
	if d == 0 || d == 1 || !arith.IsSquarefree(d) {
		return Ring{}, fmt.Errorf("%w: %d", ErrInvalidRadicand, d)
	}
	return Ring{d: d}, nil
}

// Radicand returns the squarefree integer d defining the ring.
func (r Ring) Radicand() int64 {
	return r.d
}

// IsImaginary reports whether d < 0.
func (r Ring) IsImaginary() bool {
	return r.d < 0
}

// IsReal reports whether d > 0.
func (r Ring) IsReal() bool {
	return r.d > 0
}

// HasHalfIntegers reports whether elements (a + b√d)/2 with a, b both odd
// belong to the ring, which is the case exactly when d ≡ 1 (mod 4).
func (r Ring) HasHalfIntegers() bool {
	m, _ := arith.Mod(r.d, 4)
	return m == 1
}

// Discriminant returns the field discriminant: d when d ≡ 1 (mod 4),
// otherwise 4d.
func (r Ring) Discriminant() int64 {
	if r.HasHalfIntegers() {
		return r.d
	}
	return 4 * r.d
}

// Equal reports whether both rings have the same radicand.
func (r Ring) Equal(other Ring) bool {
	return r.d == other.d
}

func (r Ring) String() string {
	switch r.d {
	case -1:
		return "Z[i]"
	case -3:
		return "Z[ω]"
	}
	if r.HasHalfIntegers() {
		return fmt.Sprintf("O_(Q(√%d))", r.d)
	}
	return fmt.Sprintf("Z[√%d]", r.d)
}

// Descriptor returns the serializable literal of the ring.
func (r Ring) Descriptor() RingDescriptor {
	return RingDescriptor{Radicand: r.d}
}

// MarshalJSON returns a JSON representation of the ring. See Marshal from the
// [encoding/json] package.
func (r Ring) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Descriptor())
}

// UnmarshalJSON reads a JSON representation into the receiver, validating the
// radicand through NewRing.
func (r *Ring) UnmarshalJSON(data []byte) (err error) {
	var desc RingDescriptor
	if err = json.Unmarshal(data, &desc); err != nil {
		return err
	}
	*r, err = NewRing(desc.Radicand)
	return
}

// MarshalBinary returns a []byte representation of the ring. This
// representation corresponds to the [Ring.MarshalJSON] representation.
func (r Ring) MarshalBinary() ([]byte, error) {
	buf := buffer.NewBufferSize(r.BinarySize())
	_, err := r.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes on the target Ring.
func (r *Ring) UnmarshalBinary(data []byte) (err error) {
	_, err = r.ReadFrom(buffer.NewBuffer(data))
	return
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (r Ring) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		bytes, err := r.MarshalJSON()
		if err != nil {
			return 0, err
		}

		if n, err = buffer.WriteAsUint32(w, len(bytes)); err != nil {
			return n, fmt.Errorf("buffer.WriteAsUint32[int]: %w", err)
		}

		var inc int
		if inc, err = w.Write(bytes); err != nil {
			return int64(n), fmt.Errorf("io.Writer.Write: %w", err)
		}

		n += int64(inc)

		return n, w.Flush()
	default:
		return r.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (r *Ring) ReadFrom(rd io.Reader) (n int64, err error) {
	switch rd := rd.(type) {
	case buffer.Reader:

		var size int
		if n, err = buffer.ReadAsUint32(rd, &size); err != nil {
			return int64(n), fmt.Errorf("buffer.ReadAsUint32[int]: %w", err)
		}

		bytes := make([]byte, size)

		var inc int
		if inc, err = rd.Read(bytes); err != nil {
			return n + int64(inc), fmt.Errorf("io.Reader.Read: %w", err)
		}
		return n + int64(inc), r.UnmarshalJSON(bytes)

	default:
		return r.ReadFrom(bufio.NewReader(rd))
	}
}

// BinarySize returns the size in bytes of the marshalled Ring.
func (r Ring) BinarySize() int {
	b, _ := r.MarshalJSON()
	return 4 + len(b)
}
