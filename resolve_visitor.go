package di

import (
	"strings"

	"github.com/sectrean/di-bench/internal/errors"
)

// resolveVisitor tracks the services in the active resolution chain.
type resolveVisitor struct {
	visiting map[serviceKey]struct{}
	trail    []serviceKey
}

func newResolveVisitor() *resolveVisitor {
	return &resolveVisitor{
		visiting: make(map[serviceKey]struct{}),
	}
}

// Enter returns false if the key is already part of the chain.
func (v *resolveVisitor) Enter(key serviceKey) bool {
	if _, exists := v.visiting[key]; exists {
		return false
	}

	v.visiting[key] = struct{}{}
	v.trail = append(v.trail, key)
	return true
}

func (v *resolveVisitor) Leave(key serviceKey) {
	delete(v.visiting, key)

	if n := len(v.trail); n > 0 && v.trail[n-1] == key {
		v.trail = v.trail[:n-1]
	}
}

// cycleError returns an error describing the chain from the first visit of key back to key.
func (v *resolveVisitor) cycleError(key serviceKey) error {
	var sb strings.Builder

	start := 0
	for i, k := range v.trail {
		if k == key {
			start = i
			break
		}
	}

	for _, k := range v.trail[start:] {
		sb.WriteString(k.String())
		sb.WriteString(" -> ")
	}
	sb.WriteString(key.String())

	return errors.Errorf("%w: %s", ErrCyclicDependency, sb.String())
}
