package mpg

import (
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
)

// Buffer MessagePack extension type.
const bufferExtID = 1

// MarshalMsgpack implements the [msgpack.Marshaler] interface.
// A buffer is encoded as the extension type 1 with a packed BCD payload:
//
//	+-------+-------+=====================+
//	|   W   |   F   | digits, 2 per byte  |
//	+-------+-------+=====================+
//
// Digits are packed from the most significant one, high nibble first.
// When W + F is odd the last low nibble is zero.
//
// [msgpack.Marshaler]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#Marshaler
func (b Buffer) MarshalMsgpack() ([]byte, error) {
	if !b.size.valid() {
		return nil, fmt.Errorf("marshaling %T: %w: invalid size %v", b, ErrInvalidInput, b.size)
	}
	if b.size.Whole > 0xff || b.size.Frac > 0xff {
		return nil, fmt.Errorf("marshaling %T: %w: size %v does not fit into a byte", b, ErrPrecisionOverflow, b.size)
	}
	n := b.size.Len()
	data := make([]byte, 0, 2+(n+1)/2)
	data = append(data, byte(b.size.Whole), byte(b.size.Frac))
	for i := 0; i < n; i += 2 {
		v := byte(b.digits[i]) << 4
		if i+1 < n {
			v |= byte(b.digits[i+1])
		}
		data = append(data, v)
	}
	return data, nil
}

// UnmarshalMsgpack implements the [msgpack.Unmarshaler] interface.
// See also method [Buffer.MarshalMsgpack].
//
// [msgpack.Unmarshaler]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#Unmarshaler
func (b *Buffer) UnmarshalMsgpack(data []byte) error {
	c, err := unmarshalBCD(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Buffer{}, err)
	}
	*b = c
	return nil
}

func unmarshalBCD(data []byte) (Buffer, error) {
	if len(data) < 2 {
		return Buffer{}, fmt.Errorf("%w: payload too short (%v bytes)", ErrInvalidInput, len(data))
	}
	s := Size{Whole: int(data[0]), Frac: int(data[1])}
	n := s.Len()
	if got, want := len(data)-2, (n+1)/2; got != want {
		return Buffer{}, fmt.Errorf("%w: size %v requires %v packed byte(s), got %v", ErrInvalidInput, s, want, got)
	}
	digits := make([]int8, 0, n)
	for i, v := range data[2:] {
		digits = append(digits, int8(v>>4))
		switch {
		case 2*i+1 < n:
			digits = append(digits, int8(v&0x0f))
		case v&0x0f != 0:
			return Buffer{}, fmt.Errorf("%w: non-zero padding nibble", ErrInvalidInput)
		}
	}
	return NewBuffer(s, digits...)
}

func bufferEncoder(e *msgpack.Encoder, v reflect.Value) ([]byte, error) {
	b := v.Interface().(Buffer)
	return b.MarshalMsgpack()
}

func bufferDecoder(d *msgpack.Decoder, v reflect.Value, extLen int) error {
	data := make([]byte, extLen)
	if err := d.ReadFull(data); err != nil {
		return fmt.Errorf("msgpack: unexpected end of stream: %w", err)
	}
	ptr := v.Addr().Interface().(*Buffer)
	return ptr.UnmarshalMsgpack(data)
}

func init() {
	msgpack.RegisterExtDecoder(bufferExtID, Buffer{}, bufferDecoder)
	msgpack.RegisterExtEncoder(bufferExtID, Buffer{}, bufferEncoder)
}
