package loadunit

// SelectWord extracts the 32-bit big-endian slice of wideWord starting at
// the given byte offset. Byte 0 of wideWord is the most-significant byte,
// i.e. the lowest byte address within the word.
//
// When the 4-byte window extends past the end of the word, the missing
// bytes read as zero. The original design left this boundary case
// unspecified; the explicit guard here makes large offsets safe instead of
// relying on an external precondition.
func SelectWord(wideWord []byte, offset uint64) uint32 {
	var selected uint32
	for i := uint64(0); i < 4; i++ {
		selected <<= 8
		if idx := offset + i; idx < uint64(len(wideWord)) {
			selected |= uint32(wideWord[idx])
		}
	}
	return selected
}

// Resize right-justifies and zero-extends the selected 32-bit slice
// according to the transfer size:
//
//	word     -> all 32 bits, verbatim
//	halfword -> low 16 bits, upper 16 zeroed
//	byte     -> low 8 bits, upper 24 zeroed
//
// This mirrors big-endian, zero-extending load semantics. There is no sign
// extension. The reserved size encoding yields zero.
func Resize(selected uint32, size TransferSize) uint32 {
	switch size {
	case SizeWord:
		return selected
	case SizeHalfword:
		return selected & 0xFFFF
	case SizeByte:
		return selected & 0xFF
	default:
		return 0
	}
}
