package di

import (
	"reflect"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/sectrean/di-bench/internal/errors"
)

// GenericDefinition identifies an uninstantiated generic type by its package path and base name.
//
// Go instantiates generic types at compile time, so a definition is derived from any
// instantiation of the type using [GenericOf].
type GenericDefinition struct {
	PkgPath string
	Name    string
	Pointer bool
}

// GenericOf returns the [GenericDefinition] of the generic type T.
// Any type arguments can be used:
//
//	def := di.GenericOf[GenericInterface[any]]()
//
// The zero GenericDefinition is returned if T is not an instantiated generic type.
func GenericOf[T any]() GenericDefinition {
	return GenericDefinitionOf(reflect.TypeFor[T]())
}

// GenericDefinitionOf returns the [GenericDefinition] of the instantiated generic type t.
func GenericDefinitionOf(t reflect.Type) GenericDefinition {
	def, _, _ := parseGeneric(t)
	return def
}

// IsZero returns true if the definition does not identify a generic type.
func (d GenericDefinition) IsZero() bool {
	return d.Name == ""
}

func (d GenericDefinition) String() string {
	var sb strings.Builder
	if d.Pointer {
		sb.WriteByte('*')
	}
	if d.PkgPath != "" {
		sb.WriteString(d.PkgPath)
		sb.WriteByte('.')
	}
	sb.WriteString(d.Name)
	sb.WriteString("[...]")
	return sb.String()
}

// parseGeneric matches a closed generic type against its definition.
// The type arguments are returned as they appear in the type name.
func parseGeneric(t reflect.Type) (def GenericDefinition, typeArgs []string, ok bool) {
	if t == nil {
		return def, nil, false
	}

	if t.Kind() == reflect.Ptr && t.Name() == "" {
		def.Pointer = true
		t = t.Elem()
	}

	name := t.Name()
	open := strings.IndexByte(name, '[')
	if open <= 0 || !strings.HasSuffix(name, "]") {
		return GenericDefinition{}, nil, false
	}

	def.PkgPath = t.PkgPath()
	def.Name = name[:open]

	return def, splitTypeArgs(name[open+1 : len(name)-1]), true
}

// splitTypeArgs splits a type argument list on the commas that are not nested in brackets.
func splitTypeArgs(list string) []string {
	var args []string
	depth, start := 0, 0

	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(list[start:i]))
				start = i + 1
			}
		}
	}

	return append(args, strings.TrimSpace(list[start:]))
}

// Specializer returns the constructor function, or value, used to provide a closed generic type.
//
// The closed type is the requested type, for example GenericInterface[int].
// The type arguments are parsed from the name of the closed type, for example ["int"].
// Return a nil constructor if the closed type is not supported.
type Specializer func(closed reflect.Type, typeArgs []string) (any, error)

// SpecializeWith returns a [Specializer] that selects, from the provided constructor
// functions or values, the first one whose service type is assignable to the requested closed type.
//
// Example:
//
//	di.RegisterGeneric(di.GenericOf[GenericInterface[any]](),
//		di.SpecializeWith(NewGenericExport[int], NewGenericExport[string]),
//	)
func SpecializeWith(funcsOrValues ...any) Specializer {
	return func(closed reflect.Type, _ []string) (any, error) {
		for _, fv := range funcsOrValues {
			t := reflect.TypeOf(fv)
			if t == nil {
				return nil, errors.New("specialize with: nil constructor")
			}

			if t.Kind() == reflect.Func {
				if t.NumOut() == 0 {
					return nil, errors.Errorf("specialize with %s: function must return Service", t)
				}
				t = t.Out(0)
			}

			if t.AssignableTo(closed) {
				return fv, nil
			}
		}
		return nil, nil
	}
}

// RegisterGeneric registers an open generic binding with a new Container
// when calling [NewContainer] or [Container.NewScope].
//
// When a closed instantiation of the definition is resolved and has no binding of its own,
// specialize is called once for that closed type. The returned constructor or value is
// registered as if by [Register] with the provided options, under the closed type,
// and cached for every later resolve from this Container and its child scopes.
//
// Example:
//
//	c, err := di.NewContainer(
//		di.RegisterGeneric(di.GenericOf[GenericInterface[any]](),
//			di.SpecializeWith(NewGenericExport[int], NewGenericExport[string]),
//			di.PerContainer,
//		),
//	)
//	v, err := di.Resolve[GenericInterface[int]](ctx, c)
func RegisterGeneric(def GenericDefinition, specialize Specializer, opts ...RegisterOption) ContainerOption {
	return newContainerOption(orderService, func(c *Container) error {
		if def.IsZero() {
			return errors.New("register generic: definition is not a generic type")
		}
		if specialize == nil {
			return errors.Errorf("register generic %s: specialize is nil", def)
		}

		g := &openGeneric{
			def:         def,
			specialize:  specialize,
			opts:        opts,
			owner:       c,
			specialized: xsync.NewMapOf[reflect.Type, specialization](),
		}

		// The template is keyed by its tag, like any other binding
		for _, opt := range opts {
			if tag, ok := opt.(tagOption); ok {
				g.tag = tag.tag
			}
		}

		return errors.Wrapf(c.registry.addGeneric(g), "register generic %s", def)
	})
}

// openGeneric is a binding template keyed by a generic definition.
type openGeneric struct {
	def         GenericDefinition
	tag         any
	specialize  Specializer
	opts        []RegisterOption
	owner       *Container
	specialized *xsync.MapOf[reflect.Type, specialization]
}

type specialization struct {
	b   binding
	err error
}

// bindingFor returns the binding for a closed type, specializing it on first use.
func (g *openGeneric) bindingFor(closed reflect.Type, typeArgs []string) (binding, error) {
	s, _ := g.specialized.LoadOrCompute(closed, func() specialization {
		b, err := g.build(closed, typeArgs)
		return specialization{b: b, err: err}
	})

	return s.b, s.err
}

func (g *openGeneric) build(closed reflect.Type, typeArgs []string) (binding, error) {
	funcOrValue, err := g.specialize(closed, typeArgs)
	if err != nil {
		return nil, errors.Wrapf(err, "specialize %s", closed)
	}
	if funcOrValue == nil {
		return nil, errors.Wrapf(ErrUnresolvedDependency, "specialize %s: no specialization", closed)
	}

	b, err := newBinding(g.owner, funcOrValue, g.opts)
	if err != nil {
		return nil, errors.Wrapf(err, "specialize %s", closed)
	}

	// Make sure the binding is keyed by the closed type
	cfg := bindingConfigOf(b)
	if cfg.t != closed && !slices.Contains(cfg.aliases, closed) {
		if err := cfg.addAlias(closed); err != nil {
			return nil, errors.Wrapf(err, "specialize %s", closed)
		}
	}

	return b, nil
}

func bindingConfigOf(b binding) *bindingConfig {
	switch b := b.(type) {
	case *funcBinding:
		return &b.bindingConfig
	case *valueBinding:
		return &b.bindingConfig
	default:
		panic("unexpected binding type")
	}
}
