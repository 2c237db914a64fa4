package benchtypes

// SimpleAdapter is bound several times. A slice of SimpleAdapter resolves all of them in order.
type SimpleAdapter interface {
	Name() string
}

type simpleAdapter struct {
	name string
	seq  int64
}

func (a *simpleAdapter) Name() string { return a.name }

func NewSimpleAdapterOne() SimpleAdapter {
	return &simpleAdapter{name: "one", seq: track[SimpleAdapter]()}
}

func NewSimpleAdapterTwo() SimpleAdapter {
	return &simpleAdapter{name: "two", seq: track[SimpleAdapter]()}
}

func NewSimpleAdapterThree() SimpleAdapter {
	return &simpleAdapter{name: "three", seq: track[SimpleAdapter]()}
}

func NewSimpleAdapterFour() SimpleAdapter {
	return &simpleAdapter{name: "four", seq: track[SimpleAdapter]()}
}

func NewSimpleAdapterFive() SimpleAdapter {
	return &simpleAdapter{name: "five", seq: track[SimpleAdapter]()}
}

// SimpleAdapterNames lists the names of the SimpleAdapter bindings in registration order.
var SimpleAdapterNames = []string{"one", "two", "three", "four", "five"}

// ImportMultiple services take every SimpleAdapter.
type (
	ImportMultiple1 interface{ Adapters() []SimpleAdapter }
	ImportMultiple2 interface{ Adapters() []SimpleAdapter }
	ImportMultiple3 interface{ Adapters() []SimpleAdapter }
)

type importMultiple struct {
	adapters []SimpleAdapter
	seq      int64
}

func (m *importMultiple) Adapters() []SimpleAdapter { return m.adapters }

func NewImportMultiple1(adapters ...SimpleAdapter) ImportMultiple1 {
	return &importMultiple{adapters: adapters, seq: track[ImportMultiple1]()}
}

func NewImportMultiple2(adapters ...SimpleAdapter) ImportMultiple2 {
	return &importMultiple{adapters: adapters, seq: track[ImportMultiple2]()}
}

func NewImportMultiple3(adapters ...SimpleAdapter) ImportMultiple3 {
	return &importMultiple{adapters: adapters, seq: track[ImportMultiple3]()}
}
