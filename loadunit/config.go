package loadunit

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the build-time geometry and latency parameters of the load
// front-end. All fields are fixed at construction; none are runtime-variable.
type Config struct {
	// ByteAddressBits is the width W of the byte address space.
	// Default: 16 bits (64KB of addressable bytes).
	ByteAddressBits uint `json:"byte_address_bits"`

	// WordCountBits is log2 of the number of words in the word memory.
	// The in-word offset width is derived as ByteAddressBits - WordCountBits.
	// Default: 12 bits (4096 words of 16 bytes each).
	WordCountBits uint `json:"word_count_bits"`

	// ExtraInputStages is the number of extra buffer stages on the address
	// path into the word memory. Default: 0.
	ExtraInputStages uint64 `json:"extra_input_stages"`

	// ExtraOutputStages is the number of extra buffer stages on the data
	// path out of the word memory. Default: 0.
	ExtraOutputStages uint64 `json:"extra_output_stages"`

	// OutputRegister enables one extra cycle of buffering on the result
	// path. Purely a timing-closure knob; it shifts when results are
	// observable but never what they are. Default: false.
	OutputRegister bool `json:"output_register"`

	// CachePlaceholder is the constant data value reported by the
	// always-miss cache stub. Default: 0xDEADBEEF.
	CachePlaceholder uint32 `json:"cache_placeholder"`
}

// DefaultConfig returns a Config matching a 64KB byte space organized as
// 4096 words of 128 bits, with a single-cycle memory and no output register.
func DefaultConfig() *Config {
	return &Config{
		ByteAddressBits:   16,
		WordCountBits:     12,
		ExtraInputStages:  0,
		ExtraOutputStages: 0,
		OutputRegister:    false,
		CachePlaceholder:  0xDEADBEEF,
	}
}

// OffsetBits returns the width of the in-word byte offset field.
func (c *Config) OffsetBits() uint {
	return c.ByteAddressBits - c.WordCountBits
}

// WordBytes returns the word size in bytes.
func (c *Config) WordBytes() int {
	return 1 << c.OffsetBits()
}

// DataWidthBits returns the word size in bits.
func (c *Config) DataWidthBits() int {
	return c.WordBytes() * 8
}

// NumWords returns the number of words in the word memory.
func (c *Config) NumWords() uint64 {
	return 1 << c.WordCountBits
}

// MemLatency returns the end-to-end word-memory latency in cycles: one
// cycle for the array access plus the configured buffer stages. This must
// equal the actual latency of the memory collaborator; a mismatch silently
// pairs results with the wrong request's metadata and cannot be detected
// at run time.
func (c *Config) MemLatency() uint64 {
	return 1 + c.ExtraInputStages + c.ExtraOutputStages
}

// TotalLatency returns the number of cycles from request admission to the
// result becoming observable, including the output register if enabled.
func (c *Config) TotalLatency() uint64 {
	lat := c.MemLatency()
	if c.OutputRegister {
		lat++
	}
	return lat
}

// Validate checks that the configured geometry is self-consistent.
func (c *Config) Validate() error {
	if c.ByteAddressBits == 0 || c.ByteAddressBits > 64 {
		return fmt.Errorf("byte_address_bits must be in 1..64, got %d", c.ByteAddressBits)
	}
	if c.WordCountBits >= c.ByteAddressBits {
		return fmt.Errorf("word_count_bits (%d) must be < byte_address_bits (%d)",
			c.WordCountBits, c.ByteAddressBits)
	}
	if c.OffsetBits() < 2 {
		return fmt.Errorf("word size must be at least 4 bytes, got %d", c.WordBytes())
	}
	if c.OffsetBits() > 12 {
		return fmt.Errorf("word size must be at most 4096 bytes, got %d", c.WordBytes())
	}
	return nil
}

// LoadConfig loads a Config from a JSON file. Fields absent from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
