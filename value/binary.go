package value

import (
	"fmt"
	"math"

	"github.com/dekarrin/rezi/v2"
)

// MarshalBinary encodes v with REZI. The kind is written first, followed by
// the payload for that kind; a Null has no payload.
func (v Value) MarshalBinary() ([]byte, error) {
	var enc []byte

	enc = append(enc, rezi.MustEnc(int(v.kind))...)

	switch v.kind {
	case KindNull:
		// no payload
	case KindBoolean:
		enc = append(enc, rezi.MustEnc(v.i != 0)...)
	case KindInteger:
		enc = append(enc, rezi.MustEnc(v.i)...)
	case KindReal:
		enc = append(enc, rezi.MustEnc(math.Float64bits(v.f))...)
	case KindText:
		enc = append(enc, rezi.MustEnc(v.s)...)
	case KindBlob:
		enc = append(enc, rezi.MustEnc(v.b)...)
	default:
		return nil, fmt.Errorf("cannot encode value of unknown kind %s", v.kind)
	}

	return enc, nil
}

// UnmarshalBinary decodes data created by MarshalBinary into v.
func (v *Value) UnmarshalBinary(data []byte) error {
	var kindNum int
	n, err := rezi.Dec(data, &kindNum)
	if err != nil {
		return rezi.Wrapf(0, "kind: %s", err)
	}
	data = data[n:]

	decoded := Value{kind: Kind(kindNum)}
	if !decoded.kind.valid() {
		return fmt.Errorf("kind: unknown kind number %d", kindNum)
	}

	switch decoded.kind {
	case KindNull:
		// no payload
	case KindBoolean:
		var b bool
		if _, err := rezi.Dec(data, &b); err != nil {
			return rezi.Wrapf(n, "boolean: %s", err)
		}
		decoded = Bool(b)
	case KindInteger:
		if _, err := rezi.Dec(data, &decoded.i); err != nil {
			return rezi.Wrapf(n, "integer: %s", err)
		}
	case KindReal:
		var bits uint64
		if _, err := rezi.Dec(data, &bits); err != nil {
			return rezi.Wrapf(n, "real: %s", err)
		}
		decoded.f = math.Float64frombits(bits)
	case KindText:
		if _, err := rezi.Dec(data, &decoded.s); err != nil {
			return rezi.Wrapf(n, "text: %s", err)
		}
	case KindBlob:
		var b []byte
		if _, err := rezi.Dec(data, &b); err != nil {
			return rezi.Wrapf(n, "blob: %s", err)
		}
		decoded = Blob(b)
	}

	*v = decoded

	return nil
}
