package testtypes

// Getter is an open generic interface.
type Getter[T any] interface {
	Get() T
}

// Box is an open generic implementation of Getter.
type Box[T any] struct {
	Value T
}

func (b *Box[T]) Get() T { return b.Value }

func NewBox[T any]() *Box[T] {
	return &Box[T]{}
}

func NewGetter[T any]() Getter[T] {
	return &Box[T]{}
}

// Pair has two type arguments.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Holder depends on a closed Getter.
type Holder[T any] struct {
	Getter Getter[T]
}

func NewHolder[T any](g Getter[T]) *Holder[T] {
	return &Holder[T]{Getter: g}
}
