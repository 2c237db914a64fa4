package benchtypes

import (
	"reflect"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

var instances = xsync.NewMapOf[reflect.Type, *atomic.Int64]()

// track counts a new instance of service T and returns its sequence number.
func track[T any]() int64 {
	n, _ := instances.LoadOrCompute(reflect.TypeFor[T](), func() *atomic.Int64 {
		return new(atomic.Int64)
	})
	return n.Add(1)
}

// Instances returns the number of instances of service T created since the last [ResetInstances].
func Instances[T any]() int64 {
	return InstancesOf(reflect.TypeFor[T]())
}

// InstancesOf returns the number of instances of service t created since the last [ResetInstances].
func InstancesOf(t reflect.Type) int64 {
	n, ok := instances.Load(t)
	if !ok {
		return 0
	}
	return n.Load()
}

// ResetInstances clears every instance counter.
func ResetInstances() {
	instances.Clear()
}
