package loadunit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/memfront/loadunit"
)

var _ = Describe("ContextQueue", func() {
	It("should report its depth", func() {
		q := loadunit.NewContextQueue(3)
		Expect(q.Depth()).To(Equal(3))
	})

	It("should clamp depth to at least 1", func() {
		q := loadunit.NewContextQueue(0)
		Expect(q.Depth()).To(Equal(1))
	})

	It("should return each context exactly depth cycles after its push", func() {
		q := loadunit.NewContextQueue(3)

		// The queue starts full of empty contexts; the first depth pops
		// return those.
		for i := uint64(0); i < 3; i++ {
			popped := q.Advance(loadunit.Context{Offset: i, ReadEnable: true})
			Expect(popped).To(Equal(loadunit.Context{}))
		}

		// From now on, every pop is the context pushed 3 cycles earlier.
		for i := uint64(3); i < 20; i++ {
			popped := q.Advance(loadunit.Context{Offset: i, ReadEnable: true})
			Expect(popped.Offset).To(Equal(i - 3))
			Expect(popped.ReadEnable).To(BeTrue())
		}
	})

	It("should not mix metadata between in-flight contexts", func() {
		q := loadunit.NewContextQueue(2)

		q.Advance(loadunit.Context{Offset: 1, Size: loadunit.SizeByte, WordAddress: 10, ReadEnable: true})
		q.Advance(loadunit.Context{Offset: 2, Size: loadunit.SizeHalfword, WordAddress: 20, ReadEnable: false})

		first := q.Advance(loadunit.Context{})
		Expect(first.Offset).To(Equal(uint64(1)))
		Expect(first.Size).To(Equal(loadunit.SizeByte))
		Expect(first.WordAddress).To(Equal(uint64(10)))
		Expect(first.ReadEnable).To(BeTrue())

		second := q.Advance(loadunit.Context{})
		Expect(second.Offset).To(Equal(uint64(2)))
		Expect(second.Size).To(Equal(loadunit.SizeHalfword))
		Expect(second.WordAddress).To(Equal(uint64(20)))
		Expect(second.ReadEnable).To(BeFalse())
	})

	It("should advance unconditionally so stale contexts age out", func() {
		q := loadunit.NewContextQueue(2)

		q.Advance(loadunit.Context{Offset: 7, ReadEnable: false})
		q.Advance(loadunit.Context{})
		stale := q.Advance(loadunit.Context{})
		Expect(stale.Offset).To(Equal(uint64(7)))
		Expect(stale.ReadEnable).To(BeFalse())
	})

	It("should clear all entries on Reset", func() {
		q := loadunit.NewContextQueue(2)
		q.Advance(loadunit.Context{Offset: 5, ReadEnable: true})
		q.Reset()

		popped := q.Advance(loadunit.Context{})
		Expect(popped).To(Equal(loadunit.Context{}))
	})
})
