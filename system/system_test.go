package system_test

import (
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/memfront/loadunit"
	"github.com/sarchlab/memfront/system"
)

// ascendingImage is the 16-byte ascending pattern stored at word 0.
var ascendingImage = []byte{
	0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
	0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x10,
}

var _ = Describe("System", func() {
	var (
		config *loadunit.Config
		sys    *system.System
	)

	newSystem := func(opts ...system.Option) *system.System {
		s, err := system.New(config, opts...)
		Expect(err).NotTo(HaveOccurred())
		s.Memory().WriteBytes(0, ascendingImage)
		return s
	}

	BeforeEach(func() {
		config = loadunit.DefaultConfig()
	})

	Describe("New", func() {
		It("should create a system from the default config", func() {
			sys = newSystem()
			Expect(sys.TotalLatency()).To(Equal(uint64(1)))
		})

		It("should reject an invalid config", func() {
			config.ByteAddressBits = 0
			_, err := system.New(config)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ReadSync", func() {
		BeforeEach(func() {
			sys = newSystem()
		})

		It("should read a word", func() {
			Expect(sys.ReadSync(0, loadunit.SizeWord)).To(Equal(uint32(0x11223344)))
		})

		It("should read the halfword of the ascending pattern at byte address 6", func() {
			Expect(sys.ReadSync(6, loadunit.SizeHalfword)).To(Equal(uint32(0x99AA)))
		})

		It("should read a byte", func() {
			Expect(sys.ReadSync(0, loadunit.SizeByte)).To(Equal(uint32(0x44)))
		})

		It("should read across the word array", func() {
			sys.Memory().WriteBytes(16, []byte{0x01, 0x02, 0x03, 0x04})
			Expect(sys.ReadSync(16, loadunit.SizeWord)).To(Equal(uint32(0x01020304)))
		})
	})

	Describe("pipelined operation", func() {
		BeforeEach(func() {
			config.ExtraInputStages = 1
			config.ExtraOutputStages = 1
			sys = newSystem()
		})

		It("should produce one result per cycle, each after the full latency", func() {
			Expect(sys.TotalLatency()).To(Equal(uint64(3)))

			addrs := []uint64{0, 4, 8, 12}
			expected := []uint32{0x11223344, 0x55667788, 0x99AABBCC, 0xDDEEFF10}

			var results []uint32
			latency := int(sys.TotalLatency())
			total := len(addrs) + latency
			for cycle := 0; cycle < total; cycle++ {
				in := loadunit.CycleInput{}
				if cycle < len(addrs) {
					in = loadunit.CycleInput{
						ByteAddress: addrs[cycle],
						Size:        loadunit.SizeWord,
						ReadEnable:  true,
					}
				}

				out := sys.Tick(in)
				if cycle >= latency {
					results = append(results, out.Result)
				}
			}

			Expect(results).To(Equal(expected))
		})
	})

	Describe("with output register", func() {
		BeforeEach(func() {
			config.OutputRegister = true
			sys = newSystem()
		})

		It("should observe the result one cycle later", func() {
			Expect(sys.TotalLatency()).To(Equal(uint64(2)))
			Expect(sys.ReadSync(6, loadunit.SizeHalfword)).To(Equal(uint32(0x99AA)))
		})
	})

	Describe("with a word cache", func() {
		It("should hit on a repeated word", func() {
			cache := loadunit.NewDirectMappedCache(4, config.WordBytes())
			sys = newSystem(system.WithCache(cache))

			sys.ReadSync(0, loadunit.SizeWord)
			sys.ReadSync(4, loadunit.SizeWord)

			Expect(sys.Stats().CacheHits).To(Equal(uint64(1)))
		})
	})

	Describe("Stats", func() {
		It("should count admissions and retirements", func() {
			sys = newSystem()
			sys.ReadSync(0, loadunit.SizeWord)
			sys.ReadSync(6, loadunit.SizeHalfword)

			stats := sys.Stats()
			Expect(stats.ReadsAdmitted).To(Equal(uint64(2)))
			Expect(stats.ReadsRetired).To(Equal(uint64(2)))
			Expect(stats.CacheHits).To(Equal(uint64(0)))
			Expect(stats.Cycles).To(BeNumerically(">", uint64(2)))
		})
	})

	Describe("tracing", func() {
		It("should run with debug logging enabled", func() {
			log := logrus.New()
			log.SetOutput(io.Discard)
			log.SetLevel(logrus.DebugLevel)

			sys = newSystem(system.WithLogger(log))
			Expect(sys.ReadSync(0, loadunit.SizeWord)).To(Equal(uint32(0x11223344)))
		})
	})

	Describe("Reset", func() {
		It("should drop in-flight state but keep memory contents", func() {
			sys = newSystem()
			sys.Tick(loadunit.CycleInput{ByteAddress: 0, Size: loadunit.SizeWord, ReadEnable: true})
			sys.Reset()

			Expect(sys.Stats().Cycles).To(Equal(uint64(0)))
			Expect(sys.ReadSync(0, loadunit.SizeWord)).To(Equal(uint32(0x11223344)))
		})
	})
})
