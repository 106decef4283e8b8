package ean

// digits maps a 4-bit ratio pair (e1<<2|e2, plus the 0x10 flag for the
// ambiguous-width disambiguation in decode4) to a byte whose low nibble
// is the decoded digit 0-9 and whose bit 4 is the A/B parity of that
// digit's encoding.
var digits = [20]byte{
	0x06, 0x10, 0x04, 0x13,
	0x19, 0x08, 0x11, 0x05,
	0x09, 0x12, 0x07, 0x15,
	0x16, 0x00, 0x14, 0x03,
	0x18, 0x01, 0x02, 0x17,
}

// parityDecode maps a 6-bit parity pattern to its derived leading digit.
// It is indexed by the pattern shifted right one bit, and each byte holds
// two entries: the low nibble for a pattern whose low bit is 0 and the
// high nibble for one whose low bit is 1. A nibble of 0xf (and so a byte
// of 0xff for two such entries) marks a parity pattern with no valid
// decoding.
var parityDecode = [32]byte{
	0xf0,

	0xff,
	0xff,
	0x0f,
	0xff,
	0x1f,
	0x2f,
	0xf3,
	0xff,
	0x4f,
	0x7f,
	0xf8,
	0x5f,
	0xf9,
	0xf6,
	0xff,

	0xff,
	0x6f,
	0x9f,
	0xf5,
	0x8f,
	0xf7,
	0xf4,
	0xff,
	0x3f,
	0xf2,
	0xf1,
	0xff,
	0xff,
	0xff,
	0xff,
	0x0f,
}
