package benchtypes

// ScopedCombined replaces a Combined service in a child container.
type ScopedCombined struct {
	Transient any
	Singleton any
	seq       int64
}

func (*ScopedCombined) DoSomething() {}

func NewScopedCombined1(t Transient1, s Singleton1) Combined1 {
	return &ScopedCombined{Transient: t, Singleton: s, seq: track[*ScopedCombined]()}
}

func NewScopedCombined2(t Transient2, s Singleton2) Combined2 {
	return &ScopedCombined{Transient: t, Singleton: s, seq: track[*ScopedCombined]()}
}

func NewScopedCombined3(t Transient3, s Singleton3) Combined3 {
	return &ScopedCombined{Transient: t, Singleton: s, seq: track[*ScopedCombined]()}
}

// ScopedTransient replaces Transient1 in a child container.
type ScopedTransient struct{ seq int64 }

func (*ScopedTransient) DoSomething() {}

func NewScopedTransient() Transient1 {
	return &ScopedTransient{seq: track[*ScopedTransient]()}
}
