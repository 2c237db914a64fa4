package benchtypes

// Singleton services are registered once per container.
type (
	Singleton1 interface{ DoSomething() }
	Singleton2 interface{ DoSomething() }
	Singleton3 interface{ DoSomething() }
)

// Transient services are registered to be constructed on every resolve.
type (
	Transient1 interface{ DoSomething() }
	Transient2 interface{ DoSomething() }
	Transient3 interface{ DoSomething() }
)

// Combined services depend on a singleton and a transient service.
type (
	Combined1 interface{ DoSomething() }
	Combined2 interface{ DoSomething() }
	Combined3 interface{ DoSomething() }
)

// Calculator services are stateless transients.
type (
	Calculator1 interface{ Add(a, b int) int }
	Calculator2 interface{ Add(a, b int) int }
	Calculator3 interface{ Add(a, b int) int }
)

type singleton struct{ seq int64 }

func (*singleton) DoSomething() {}

func NewSingleton1() Singleton1 { return &singleton{seq: track[Singleton1]()} }
func NewSingleton2() Singleton2 { return &singleton{seq: track[Singleton2]()} }
func NewSingleton3() Singleton3 { return &singleton{seq: track[Singleton3]()} }

type transient struct{ seq int64 }

func (*transient) DoSomething() {}

func NewTransient1() Transient1 { return &transient{seq: track[Transient1]()} }
func NewTransient2() Transient2 { return &transient{seq: track[Transient2]()} }
func NewTransient3() Transient3 { return &transient{seq: track[Transient3]()} }

// Combined holds the services a Combined service was built from.
type Combined struct {
	Singleton any
	Transient any
	seq       int64
}

func (*Combined) DoSomething() {}

func NewCombined1(s Singleton1, t Transient1) Combined1 {
	return &Combined{Singleton: s, Transient: t, seq: track[Combined1]()}
}

func NewCombined2(s Singleton2, t Transient2) Combined2 {
	return &Combined{Singleton: s, Transient: t, seq: track[Combined2]()}
}

func NewCombined3(s Singleton3, t Transient3) Combined3 {
	return &Combined{Singleton: s, Transient: t, seq: track[Combined3]()}
}

type calculator struct{ seq int64 }

func (*calculator) Add(a, b int) int { return a + b }

func NewCalculator1() Calculator1 { return &calculator{seq: track[Calculator1]()} }
func NewCalculator2() Calculator2 { return &calculator{seq: track[Calculator2]()} }
func NewCalculator3() Calculator3 { return &calculator{seq: track[Calculator3]()} }
