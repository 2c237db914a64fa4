package di

import (
	"fmt"
	"reflect"
)

// serviceKey identifies a service by its type and an optional tag.
type serviceKey struct {
	Type reflect.Type
	Tag  any
}

func (k serviceKey) String() string {
	if k.Tag == nil {
		return k.Type.String()
	}
	return fmt.Sprintf("%s (Tag %v)", k.Type, k.Tag)
}

// dependency is a service key required by a binding.
type dependency struct {
	Key      serviceKey
	Optional bool
}
