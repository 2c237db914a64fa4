package di

// A Module is a collection of container options.
// It can be used to export a re-usable group of related services.
//
// Example:
//
//	var StandardModule = di.Module{
//		di.Register(NewSingleton1, di.PerContainer),
//		di.Register(NewTransient1),
//		di.Register(NewCombined1),
//	}
type Module []ContainerOption

func (Module) applyContainer(*Container) error { return nil }
func (Module) order() optionOrder              { return orderService }

// WithModule applies the options in a [Module] when calling [NewContainer] or [Container.NewScope].
//
// Modules can be nested.
//
// Example:
//
//	c, err := di.NewContainer(
//		di.WithModule(StandardModule), // var StandardModule di.Module
//		di.Register(NewComplex1),
//	)
func WithModule(m Module) ContainerOption {
	return m
}

// flattenModules replaces every Module, at any depth, with the options it contains.
func flattenModules(opts []ContainerOption) []ContainerOption {
	flat := make([]ContainerOption, 0, len(opts))

	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case Module:
			flat = append(flat, flattenModules(opt)...)
		default:
			flat = append(flat, opt)
		}
	}

	return flat
}
