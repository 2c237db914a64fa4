package benchtypes

// Services of the complex graph. The first, second and third services are singletons
// shared by the sub objects and every Complex service.
type (
	FirstService  interface{ First() }
	SecondService interface{ Second() }
	ThirdService  interface{ Third() }

	SubObjectOne   interface{ SubOne() }
	SubObjectTwo   interface{ SubTwo() }
	SubObjectThree interface{ SubThree() }

	Complex1 interface{ Graph() *Complex }
	Complex2 interface{ Graph() *Complex }
	Complex3 interface{ Graph() *Complex }
)

type firstService struct{ seq int64 }

func (*firstService) First() {}

func NewFirstService() FirstService { return &firstService{seq: track[FirstService]()} }

type secondService struct{ seq int64 }

func (*secondService) Second() {}

func NewSecondService() SecondService { return &secondService{seq: track[SecondService]()} }

type thirdService struct{ seq int64 }

func (*thirdService) Third() {}

func NewThirdService() ThirdService { return &thirdService{seq: track[ThirdService]()} }

type subObjectOne struct {
	first FirstService
	seq   int64
}

func (*subObjectOne) SubOne() {}

func NewSubObjectOne(first FirstService) SubObjectOne {
	return &subObjectOne{first: first, seq: track[SubObjectOne]()}
}

type subObjectTwo struct {
	second SecondService
	seq    int64
}

func (*subObjectTwo) SubTwo() {}

func NewSubObjectTwo(second SecondService) SubObjectTwo {
	return &subObjectTwo{second: second, seq: track[SubObjectTwo]()}
}

type subObjectThree struct {
	third ThirdService
	seq   int64
}

func (*subObjectThree) SubThree() {}

func NewSubObjectThree(third ThirdService) SubObjectThree {
	return &subObjectThree{third: third, seq: track[SubObjectThree]()}
}

// Complex is the root of the complex graph.
type Complex struct {
	First  FirstService
	Second SecondService
	Third  ThirdService

	SubOne   SubObjectOne
	SubTwo   SubObjectTwo
	SubThree SubObjectThree

	seq int64
}

func (c *Complex) Graph() *Complex { return c }

func newComplex(
	first FirstService,
	second SecondService,
	third ThirdService,
	subOne SubObjectOne,
	subTwo SubObjectTwo,
	subThree SubObjectThree,
	seq int64,
) *Complex {
	return &Complex{
		First:    first,
		Second:   second,
		Third:    third,
		SubOne:   subOne,
		SubTwo:   subTwo,
		SubThree: subThree,
		seq:      seq,
	}
}

func NewComplex1(
	first FirstService, second SecondService, third ThirdService,
	subOne SubObjectOne, subTwo SubObjectTwo, subThree SubObjectThree,
) Complex1 {
	return newComplex(first, second, third, subOne, subTwo, subThree, track[Complex1]())
}

func NewComplex2(
	first FirstService, second SecondService, third ThirdService,
	subOne SubObjectOne, subTwo SubObjectTwo, subThree SubObjectThree,
) Complex2 {
	return newComplex(first, second, third, subOne, subTwo, subThree, track[Complex2]())
}

func NewComplex3(
	first FirstService, second SecondService, third ThirdService,
	subOne SubObjectOne, subTwo SubObjectTwo, subThree SubObjectThree,
) Complex3 {
	return newComplex(first, second, third, subOne, subTwo, subThree, track[Complex3]())
}
