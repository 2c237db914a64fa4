package testtypes

import "sync/atomic"

// Factory builds StructA values tagged with a sequence number starting at 0.
// It is safe for concurrent use.
type Factory struct {
	count atomic.Int64
}

func (f *Factory) NewStructA() *StructA {
	return &StructA{
		Tag: int(f.count.Add(1) - 1),
	}
}

func (f *Factory) NewInterfaceA() InterfaceA {
	return f.NewStructA()
}

// Count returns the number of values built.
func (f *Factory) Count() int {
	return int(f.count.Load())
}

// ExpectStructA returns the first count values a Factory builds.
func ExpectStructA(count int) []*StructA {
	s := make([]*StructA, count)
	for i := range s {
		s[i] = &StructA{Tag: i}
	}
	return s
}

// ExpectInterfaceA returns the first count values a Factory builds, as InterfaceA.
func ExpectInterfaceA(count int) []InterfaceA {
	s := make([]InterfaceA, count)
	for i, a := range ExpectStructA(count) {
		s[i] = a
	}
	return s
}
