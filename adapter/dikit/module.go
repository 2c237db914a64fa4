package dikit

import (
	"github.com/sectrean/di-bench"
	"github.com/sectrean/di-bench/catalog"
)

// Module returns the registrations of the catalog groups as a [di.Module].
func Module(groups ...catalog.Group) di.Module {
	var m di.Module
	for _, g := range groups {
		for _, r := range g.Registrations {
			opts := []di.RegisterOption{lifetime(r.Lifetime)}
			if r.Multiple {
				opts = append(opts, di.Multiple())
			}

			m = append(m, di.Register(r.New, opts...))
		}

		for _, gen := range g.Generics {
			m = append(m, di.RegisterGeneric(
				di.GenericDefinitionOf(gen.Service),
				di.SpecializeWith(gen.Constructors...),
				lifetime(gen.Lifetime),
			))
		}
	}

	return m
}

func lifetime(l catalog.Lifetime) di.Lifetime {
	switch l {
	case catalog.Singleton:
		return di.PerContainer
	case catalog.Scoped:
		return di.PerScope
	default:
		return di.Transient
	}
}
