package bls381

import "fmt"

// Flag bits reserved in the final byte of a serialized curve point: the
// point at infinity (set over all-zero coordinate bytes) and, for the
// compressed form, the sign of the omitted Y coordinate. Coordinates are
// little-endian field elements; the field prime leaves the two high bits of
// the most significant byte free for the flags.
const (
	flagNegativeY = 0x80
	flagInfinity  = 0x40
	flagMask      = flagNegativeY | flagInfinity
)

// Flag values used by the backend, which serializes big-endian with three
// flag bits in the first byte.
const (
	backendMask               = 0xe0
	backendCompressedSmallest = 0x80
	backendCompressedLargest  = 0xa0
	backendCompressedInfinity = 0xc0
)

// toWireCompressed rewrites the backend's compressed encoding into the wire
// form: byte order reversed, the backend's first-byte flags remapped onto
// the last byte. The backend's "lexicographically largest Y" flag and the
// wire's "negative Y" flag name the same root.
func toWireCompressed(be []byte) []byte {
	out := make([]byte, len(be))
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	last := len(out) - 1
	out[last] &^= byte(backendMask)
	switch be[0] & backendMask {
	case backendCompressedInfinity:
		out[last] |= flagInfinity
	case backendCompressedLargest:
		out[last] |= flagNegativeY
	}
	return out
}

// fromWireCompressed rewrites a wire-form compressed point back into the
// backend's form, validating the flag combination and the all-zero identity
// encoding. Point validation itself is left to the backend decoder.
func fromWireCompressed(data []byte) ([]byte, error) {
	flags := data[len(data)-1] & flagMask
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	be[0] &^= byte(flagMask)
	switch flags {
	case flagInfinity:
		for _, b := range be {
			if b != 0 {
				return nil, fmt.Errorf("%w: infinity flag over nonzero coordinates", ErrInvalidFlags)
			}
		}
		be[0] = backendCompressedInfinity
	case flagNegativeY:
		be[0] |= backendCompressedLargest
	case 0:
		be[0] |= backendCompressedSmallest
	default:
		return nil, fmt.Errorf("%w: infinity and sign flags both set", ErrInvalidFlags)
	}
	return be, nil
}

// toWireUncompressed rewrites the backend's uncompressed encoding (X then
// Y, big-endian) into the wire form: each coordinate byte-reversed in
// place, the sign of Y recorded in the last byte as in the compressed form.
// The receiver must not be the point at infinity; see
// [wireInfinityUncompressed].
func toWireUncompressed(be []byte, negativeY bool) []byte {
	half := len(be) / 2
	out := make([]byte, len(be))
	for i := 0; i < half; i++ {
		out[half-1-i] = be[i]
		out[len(be)-1-i] = be[half+i]
	}
	if negativeY {
		out[len(out)-1] |= flagNegativeY
	}
	return out
}

// wireInfinityUncompressed is the uncompressed identity encoding: all-zero
// coordinates with only the infinity flag set.
func wireInfinityUncompressed(size int) []byte {
	out := make([]byte, size)
	out[size-1] = flagInfinity
	return out
}

// fromWireUncompressed rewrites a wire-form uncompressed point back into
// the backend's form. The second return reports the canonical identity
// encoding, which has no backend form and must be handled by the caller.
func fromWireUncompressed(data []byte) ([]byte, bool, error) {
	flags := data[len(data)-1] & flagMask
	if flags == flagMask {
		return nil, false, fmt.Errorf("%w: infinity and sign flags both set", ErrInvalidFlags)
	}
	if flags&flagInfinity != 0 {
		for i, b := range data {
			if i == len(data)-1 {
				b &^= flagInfinity
			}
			if b != 0 {
				return nil, false, fmt.Errorf("%w: infinity flag over nonzero coordinates", ErrInvalidFlags)
			}
		}
		return nil, true, nil
	}
	half := len(data) / 2
	be := make([]byte, len(data))
	for i := 0; i < half; i++ {
		be[i] = data[half-1-i]
		be[half+i] = data[len(data)-1-i]
	}
	// the sign bit is redundant when Y is present
	be[half] &^= byte(flagNegativeY)
	return be, false, nil
}
