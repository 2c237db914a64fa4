package catalog

import (
	"reflect"

	"github.com/sectrean/di-bench/benchtypes"
)

// Dummies returns ten transient services with no dependencies.
func Dummies() Group {
	return Group{
		Name: "dummies",
		Registrations: []Registration{
			register[benchtypes.DummyOne](benchtypes.NewDummyOne, Transient),
			register[benchtypes.DummyTwo](benchtypes.NewDummyTwo, Transient),
			register[benchtypes.DummyThree](benchtypes.NewDummyThree, Transient),
			register[benchtypes.DummyFour](benchtypes.NewDummyFour, Transient),
			register[benchtypes.DummyFive](benchtypes.NewDummyFive, Transient),
			register[benchtypes.DummySix](benchtypes.NewDummySix, Transient),
			register[benchtypes.DummySeven](benchtypes.NewDummySeven, Transient),
			register[benchtypes.DummyEight](benchtypes.NewDummyEight, Transient),
			register[benchtypes.DummyNine](benchtypes.NewDummyNine, Transient),
			register[benchtypes.DummyTen](benchtypes.NewDummyTen, Transient),
		},
	}
}

// Standard returns the singleton, transient, combined and calculator services.
func Standard() Group {
	return Group{
		Name: "standard",
		Registrations: []Registration{
			register[benchtypes.Singleton1](benchtypes.NewSingleton1, Singleton),
			register[benchtypes.Singleton2](benchtypes.NewSingleton2, Singleton),
			register[benchtypes.Singleton3](benchtypes.NewSingleton3, Singleton),
			register[benchtypes.Transient1](benchtypes.NewTransient1, Transient),
			register[benchtypes.Transient2](benchtypes.NewTransient2, Transient),
			register[benchtypes.Transient3](benchtypes.NewTransient3, Transient),
			register[benchtypes.Combined1](benchtypes.NewCombined1, Transient),
			register[benchtypes.Combined2](benchtypes.NewCombined2, Transient),
			register[benchtypes.Combined3](benchtypes.NewCombined3, Transient),
			register[benchtypes.Calculator1](benchtypes.NewCalculator1, Transient),
			register[benchtypes.Calculator2](benchtypes.NewCalculator2, Transient),
			register[benchtypes.Calculator3](benchtypes.NewCalculator3, Transient),
		},
	}
}

// Complex returns the complex graph.
func Complex() Group {
	return Group{
		Name: "complex",
		Registrations: []Registration{
			register[benchtypes.SubObjectOne](benchtypes.NewSubObjectOne, Transient),
			register[benchtypes.SubObjectTwo](benchtypes.NewSubObjectTwo, Transient),
			register[benchtypes.SubObjectThree](benchtypes.NewSubObjectThree, Transient),
			register[benchtypes.FirstService](benchtypes.NewFirstService, Singleton),
			register[benchtypes.SecondService](benchtypes.NewSecondService, Singleton),
			register[benchtypes.ThirdService](benchtypes.NewThirdService, Singleton),
			register[benchtypes.Complex1](benchtypes.NewComplex1, Transient),
			register[benchtypes.Complex2](benchtypes.NewComplex2, Transient),
			register[benchtypes.Complex3](benchtypes.NewComplex3, Transient),
		},
	}
}

// GenericTypeArgs are the type arguments the open generics can be resolved with.
var GenericTypeArgs = []string{"int", "float64", "string"}

// Generics returns the open generic services.
func Generics() Group {
	return Group{
		Name: "generics",
		Generics: []Generic{
			generic[benchtypes.GenericInterface[any]](Transient,
				benchtypes.NewGenericExport[int],
				benchtypes.NewGenericExport[float64],
				benchtypes.NewGenericExport[string],
			),
			generic[*benchtypes.ImportGeneric[any]](Transient,
				benchtypes.NewImportGeneric[int],
				benchtypes.NewImportGeneric[float64],
				benchtypes.NewImportGeneric[string],
			),
		},
	}
}

// Multiple returns five SimpleAdapter bindings and the services that import all of them.
func Multiple() Group {
	return Group{
		Name: "multiple",
		Registrations: []Registration{
			registerMultiple[benchtypes.SimpleAdapter](benchtypes.NewSimpleAdapterOne),
			registerMultiple[benchtypes.SimpleAdapter](benchtypes.NewSimpleAdapterTwo),
			registerMultiple[benchtypes.SimpleAdapter](benchtypes.NewSimpleAdapterThree),
			registerMultiple[benchtypes.SimpleAdapter](benchtypes.NewSimpleAdapterFour),
			registerMultiple[benchtypes.SimpleAdapter](benchtypes.NewSimpleAdapterFive),
			register[benchtypes.ImportMultiple1](benchtypes.NewImportMultiple1, Transient),
			register[benchtypes.ImportMultiple2](benchtypes.NewImportMultiple2, Transient),
			register[benchtypes.ImportMultiple3](benchtypes.NewImportMultiple3, Transient),
		},
	}
}

// ChildOverrides returns the registrations of a child container.
// They replace the combined services and Transient1 of the parent.
func ChildOverrides() Group {
	return Group{
		Name: "child overrides",
		Registrations: []Registration{
			register[benchtypes.Combined1](benchtypes.NewScopedCombined1, Transient),
			register[benchtypes.Combined2](benchtypes.NewScopedCombined2, Transient),
			register[benchtypes.Combined3](benchtypes.NewScopedCombined3, Transient),
			register[benchtypes.Transient1](benchtypes.NewScopedTransient, Transient),
		},
	}
}

// Framework returns the services of a web application.
//
// Controllers depend on the current *http.Request, which is registered by the request scope,
// and Controller3 depends on a [benchtypes.ScopeFactory] the adapter registers for its container.
func Framework() Group {
	return Group{
		Name: "framework",
		Registrations: []Registration{
			register[benchtypes.Repository1](benchtypes.NewRepository1, Transient),
			register[benchtypes.Repository2](benchtypes.NewRepository2, Transient),
			register[benchtypes.Repository3](benchtypes.NewRepository3, Transient),
			register[benchtypes.RequestService1](benchtypes.NewRequestService1, Scoped),
			register[benchtypes.RequestService2](benchtypes.NewRequestService2, Scoped),
			register[benchtypes.RequestService3](benchtypes.NewRequestService3, Scoped),
			register[benchtypes.Controller1](benchtypes.NewController1, Transient),
			register[benchtypes.Controller2](benchtypes.NewController2, Transient),
			register[benchtypes.Controller3](benchtypes.NewController3, Transient),
		},
	}
}

// Basic returns the groups registered by PrepareBasic.
func Basic() []Group {
	return []Group{Dummies(), Standard(), Complex()}
}

// Full returns the groups registered by Prepare.
func Full() []Group {
	return []Group{Dummies(), Standard(), Complex(), Generics(), Multiple(), Framework()}
}

// Route is an HTTP route of the framework scenario.
type Route struct {
	Pattern    string
	Controller reflect.Type
}

// FrameworkRoutes are served by the controllers of the framework group.
var FrameworkRoutes = []Route{
	{Pattern: "/controller1/{id}", Controller: reflect.TypeFor[benchtypes.Controller1]()},
	{Pattern: "/controller2/{id}", Controller: reflect.TypeFor[benchtypes.Controller2]()},
	{Pattern: "/controller3/{id}", Controller: reflect.TypeFor[benchtypes.Controller3]()},
}
