// Package wire encodes a decoded symbol event as a fixed-size binary
// frame for transport over UDP or a serial link to a remote aggregator,
// without requiring the receiving end to parse the digit string.
package wire

import (
	"encoding/binary"
	"errors"

	"github.com/zkrige/zbar/ean"
)

// ErrBufferTooSmall is returned by Encode when dst cannot hold a Frame
// and by Decode when src is truncated.
var ErrBufferTooSmall = errors.New("wire: buffer too small")

// frameSize is the fixed, on-the-wire byte length of a Frame.
const frameSize = 24

/* Frame (one decoded symbol event)

0        2   3                 21             24
| Symbol | N | Digits (18B)    | Reserved (3B) |
|  2B    | 1B|  padded 0xFF    |   0B used     |

Legend:
	Symbol:   ean.SymbolType, little-endian
	N:        number of valid bytes at the front of Digits
	Digits:   ASCII '0'-'9', padded with 0xFF past N
	Reserved: zero, ignored on decode
*/

// Frame is the wire representation of one ean.SymbolType plus its
// formatted digit string.
type Frame struct {
	Symbol ean.SymbolType
	Digits [18]byte
	N      uint8
}

// Encode writes f into dst in the fixed 24-byte layout and returns the
// number of bytes written.
func (f *Frame) Encode(dst []byte) (int, error) {
	if len(dst) < frameSize {
		return 0, ErrBufferTooSmall
	}
	binary.LittleEndian.PutUint16(dst[0:2], uint16(f.Symbol))
	dst[2] = f.N
	for i := 0; i < 18; i++ {
		if uint8(i) < f.N {
			dst[3+i] = f.Digits[i]
		} else {
			dst[3+i] = 0xff
		}
	}
	for i := 21; i < frameSize; i++ {
		dst[i] = 0
	}
	return frameSize, nil
}

// Decode reads a Frame out of src, which must hold at least 24 bytes.
func Decode(src []byte) (Frame, error) {
	var f Frame
	if len(src) < frameSize {
		return f, ErrBufferTooSmall
	}
	f.Symbol = ean.SymbolType(binary.LittleEndian.Uint16(src[0:2]))
	f.N = src[2]
	copy(f.Digits[:], src[3:21])
	return f, nil
}

// NewFrame builds a Frame from a decoded symbol type and its formatted
// digit string, as produced by (*ean.Decoder).Output.
func NewFrame(sym ean.SymbolType, digits []byte) Frame {
	f := Frame{Symbol: sym}
	n := copy(f.Digits[:], digits)
	f.N = uint8(n)
	return f
}
