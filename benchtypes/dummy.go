package benchtypes

// Dummy services have no dependencies. They pad the registrations of a container.
type (
	DummyOne   interface{ DummyOne() }
	DummyTwo   interface{ DummyTwo() }
	DummyThree interface{ DummyThree() }
	DummyFour  interface{ DummyFour() }
	DummyFive  interface{ DummyFive() }
	DummySix   interface{ DummySix() }
	DummySeven interface{ DummySeven() }
	DummyEight interface{ DummyEight() }
	DummyNine  interface{ DummyNine() }
	DummyTen   interface{ DummyTen() }
)

type dummyOne struct{ seq int64 }

func (*dummyOne) DummyOne() {}

func NewDummyOne() DummyOne {
	return &dummyOne{seq: track[DummyOne]()}
}

type dummyTwo struct{ seq int64 }

func (*dummyTwo) DummyTwo() {}

func NewDummyTwo() DummyTwo {
	return &dummyTwo{seq: track[DummyTwo]()}
}

type dummyThree struct{ seq int64 }

func (*dummyThree) DummyThree() {}

func NewDummyThree() DummyThree {
	return &dummyThree{seq: track[DummyThree]()}
}

type dummyFour struct{ seq int64 }

func (*dummyFour) DummyFour() {}

func NewDummyFour() DummyFour {
	return &dummyFour{seq: track[DummyFour]()}
}

type dummyFive struct{ seq int64 }

func (*dummyFive) DummyFive() {}

func NewDummyFive() DummyFive {
	return &dummyFive{seq: track[DummyFive]()}
}

type dummySix struct{ seq int64 }

func (*dummySix) DummySix() {}

func NewDummySix() DummySix {
	return &dummySix{seq: track[DummySix]()}
}

type dummySeven struct{ seq int64 }

func (*dummySeven) DummySeven() {}

func NewDummySeven() DummySeven {
	return &dummySeven{seq: track[DummySeven]()}
}

type dummyEight struct{ seq int64 }

func (*dummyEight) DummyEight() {}

func NewDummyEight() DummyEight {
	return &dummyEight{seq: track[DummyEight]()}
}

type dummyNine struct{ seq int64 }

func (*dummyNine) DummyNine() {}

func NewDummyNine() DummyNine {
	return &dummyNine{seq: track[DummyNine]()}
}

type dummyTen struct{ seq int64 }

func (*dummyTen) DummyTen() {}

func NewDummyTen() DummyTen {
	return &dummyTen{seq: track[DummyTen]()}
}
