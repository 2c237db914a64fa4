package benchtypes

// GenericInterface is the open generic service. It is bound to GenericExport for every T.
type GenericInterface[T any] interface {
	Value() T
}

type GenericExport[T any] struct {
	value T
	seq   int64
}

func (g *GenericExport[T]) Value() T { return g.value }

func NewGenericExport[T any]() GenericInterface[T] {
	return &GenericExport[T]{seq: track[GenericInterface[T]]()}
}

// ImportGeneric depends on the open generic service of the same type argument.
type ImportGeneric[T any] struct {
	Imported GenericInterface[T]
	seq      int64
}

func NewImportGeneric[T any](imported GenericInterface[T]) *ImportGeneric[T] {
	return &ImportGeneric[T]{Imported: imported, seq: track[*ImportGeneric[T]]()}
}
