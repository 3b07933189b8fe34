// Package wordmem models the word-organized memory collaborator that the
// load front-end drives: a fixed-size array of wide words with big-endian
// byte layout and a fixed, configurable access latency.
package wordmem

// Memory is a word-addressable backing store. Byte 0 of each word is the
// most-significant byte, i.e. the lowest byte address within the word.
type Memory struct {
	wordBytes int
	numWords  uint64
	data      []byte
}

// NewMemory creates a memory of numWords words of wordBytes bytes each,
// initialized to zero.
func NewMemory(numWords uint64, wordBytes int) *Memory {
	return &Memory{
		wordBytes: wordBytes,
		numWords:  numWords,
		data:      make([]byte, numWords*uint64(wordBytes)),
	}
}

// WordBytes returns the word size in bytes.
func (m *Memory) WordBytes() int {
	return m.wordBytes
}

// NumWords returns the number of words.
func (m *Memory) NumWords() uint64 {
	return m.numWords
}

// ReadWord returns a copy of the word at the given word address.
// Out-of-range addresses read as an all-zero word.
func (m *Memory) ReadWord(wordAddr uint64) []byte {
	word := make([]byte, m.wordBytes)
	if wordAddr < m.numWords {
		base := wordAddr * uint64(m.wordBytes)
		copy(word, m.data[base:base+uint64(m.wordBytes)])
	}
	return word
}

// WriteWord stores a word at the given word address. Short input words
// update only their leading bytes. Out-of-range addresses are ignored.
func (m *Memory) WriteWord(wordAddr uint64, word []byte) {
	if wordAddr >= m.numWords {
		return
	}
	base := wordAddr * uint64(m.wordBytes)
	n := len(word)
	if n > m.wordBytes {
		n = m.wordBytes
	}
	copy(m.data[base:base+uint64(n)], word[:n])
}

// Read8 returns the byte at the given byte address, or zero if out of
// range.
func (m *Memory) Read8(byteAddr uint64) byte {
	if byteAddr >= uint64(len(m.data)) {
		return 0
	}
	return m.data[byteAddr]
}

// Write8 stores a byte at the given byte address. Out-of-range addresses
// are ignored.
func (m *Memory) Write8(byteAddr uint64, value byte) {
	if byteAddr >= uint64(len(m.data)) {
		return
	}
	m.data[byteAddr] = value
}

// WriteBytes stores a byte image starting at the given byte address.
func (m *Memory) WriteBytes(byteAddr uint64, image []byte) {
	for i, b := range image {
		m.Write8(byteAddr+uint64(i), b)
	}
}

// Clear zeroes the entire memory.
func (m *Memory) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}
