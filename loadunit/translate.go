// Package loadunit implements a byte-granular load front-end for a
// word-organized memory. It translates byte addresses into word addresses,
// carries per-request metadata alongside the fixed-latency memory access,
// and extracts the requested sub-word from the returned wide word with
// big-endian, right-justified, zero-extended semantics.
//
// The pipeline is fully synchronous with an initiation interval of one:
// every call to LoadUnit.Tick advances all stages exactly one cycle.
package loadunit

// TransferSize classifies the requested data width. The encoding follows
// packet-filter load-instruction semantics: a 2-bit field with one unused
// code.
type TransferSize uint8

const (
	// SizeWord requests a full 32-bit load.
	SizeWord TransferSize = 0

	// SizeHalfword requests a 16-bit load.
	SizeHalfword TransferSize = 1

	// SizeByte requests an 8-bit load.
	SizeByte TransferSize = 2

	// sizeReserved is the unused fourth encoding of the 2-bit size field.
	sizeReserved TransferSize = 3
)

// Bytes returns the number of significant bytes for the transfer size.
// The reserved encoding returns 0.
func (s TransferSize) Bytes() int {
	switch s {
	case SizeWord:
		return 4
	case SizeHalfword:
		return 2
	case SizeByte:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable name for the transfer size.
func (s TransferSize) String() string {
	switch s {
	case SizeWord:
		return "word"
	case SizeHalfword:
		return "halfword"
	case SizeByte:
		return "byte"
	default:
		return "reserved"
	}
}

// ParseTransferSize converts a size name ("word", "halfword", "byte") to a
// TransferSize. Returns false if the name is not recognized.
func ParseTransferSize(name string) (TransferSize, bool) {
	switch name {
	case "word", "w":
		return SizeWord, true
	case "halfword", "half", "h":
		return SizeHalfword, true
	case "byte", "b":
		return SizeByte, true
	default:
		return sizeReserved, false
	}
}

// SplitAddress decomposes a byte address into the word address sent to the
// word memory and the in-word byte offset. offsetBits is the width of the
// offset field, i.e. log2 of the word size in bytes.
//
// The split is pure and combinational. Every address value is valid here;
// out-of-range word addresses are the memory collaborator's concern.
func SplitAddress(byteAddr uint64, offsetBits uint) (wordAddr, offset uint64) {
	wordAddr = byteAddr >> offsetBits
	offset = byteAddr & ((1 << offsetBits) - 1)
	return wordAddr, offset
}
