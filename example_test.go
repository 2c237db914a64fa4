package di_test

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sectrean/di-bench"
)

type Greeter struct {
	logger *zap.Logger
	name   string
}

func NewGreeter(logger *zap.Logger) *Greeter {
	return &Greeter{logger: logger, name: "world"}
}

func (g *Greeter) Greet() string {
	g.logger.Debug("greeting", zap.String("name", g.name))
	return "hello " + g.name
}

func (g *Greeter) Close(context.Context) error {
	fmt.Println("greeter closed")
	return nil
}

var GreeterModule = di.Module{
	di.Register(zap.NewNop()),
	di.Register(NewGreeter, di.PerContainer),
}

func Example() {
	ctx := context.Background()

	c, err := di.NewContainer(
		di.WithModule(GreeterModule),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	g := di.MustResolve[*Greeter](ctx, c)
	fmt.Println(g.Greet())

	if err := c.Close(ctx); err != nil {
		fmt.Println(err)
	}

	// Output:
	// hello world
	// greeter closed
}

func ExampleContainer_NewScope() {
	ctx := context.Background()

	c, _ := di.NewContainer(
		di.WithModule(GreeterModule),
	)

	scope, err := c.NewScope()
	if err != nil {
		fmt.Println(err)
		return
	}

	// PerContainer services are shared with every scope
	fromRoot := di.MustResolve[*Greeter](ctx, c)
	fromScope := di.MustResolve[*Greeter](ctx, scope)
	fmt.Println(fromRoot == fromScope)

	_ = scope.Close(ctx)
	_ = c.Close(ctx)

	// Output:
	// true
	// greeter closed
}
