package benchtypes_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sectrean/di-bench/benchtypes"
)

func Test_Instances(t *testing.T) {
	t.Run("counts per service", func(t *testing.T) {
		benchtypes.ResetInstances()

		benchtypes.NewDummyOne()
		benchtypes.NewDummyOne()
		benchtypes.NewDummyTwo()

		assert.Equal(t, int64(2), benchtypes.Instances[benchtypes.DummyOne]())
		assert.Equal(t, int64(1), benchtypes.InstancesOf(reflect.TypeFor[benchtypes.DummyTwo]()))
		assert.Equal(t, int64(0), benchtypes.Instances[benchtypes.DummyThree]())
	})

	t.Run("reset", func(t *testing.T) {
		benchtypes.NewCalculator1()
		benchtypes.ResetInstances()

		assert.Equal(t, int64(0), benchtypes.Instances[benchtypes.Calculator1]())
	})

	t.Run("generic instantiations", func(t *testing.T) {
		benchtypes.ResetInstances()

		benchtypes.NewImportGeneric(benchtypes.NewGenericExport[int]())
		benchtypes.NewGenericExport[string]()

		assert.Equal(t, int64(1), benchtypes.Instances[benchtypes.GenericInterface[int]]())
		assert.Equal(t, int64(1), benchtypes.Instances[benchtypes.GenericInterface[string]]())
		assert.Equal(t, int64(1), benchtypes.Instances[*benchtypes.ImportGeneric[int]]())
	})

	t.Run("concurrent", func(t *testing.T) {
		benchtypes.ResetInstances()

		const concurrency = 100
		var wg sync.WaitGroup
		wg.Add(concurrency)
		for range concurrency {
			go func() {
				defer wg.Done()
				benchtypes.NewTransient1()
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(concurrency), benchtypes.Instances[benchtypes.Transient1]())
	})
}

func Test_Services(t *testing.T) {
	t.Run("distinct instances", func(t *testing.T) {
		a := benchtypes.NewDummyOne()
		b := benchtypes.NewDummyOne()
		assert.NotSame(t, a, b)
	})

	t.Run("complex graph", func(t *testing.T) {
		first := benchtypes.NewFirstService()
		second := benchtypes.NewSecondService()
		third := benchtypes.NewThirdService()

		c := benchtypes.NewComplex1(first, second, third,
			benchtypes.NewSubObjectOne(first),
			benchtypes.NewSubObjectTwo(second),
			benchtypes.NewSubObjectThree(third),
		)

		g := c.Graph()
		assert.Same(t, first, g.First)
		assert.NotNil(t, g.SubThree)
	})

	t.Run("import multiple", func(t *testing.T) {
		m := benchtypes.NewImportMultiple1(
			benchtypes.NewSimpleAdapterOne(),
			benchtypes.NewSimpleAdapterTwo(),
		)

		names := make([]string, 0, 2)
		for _, a := range m.Adapters() {
			names = append(names, a.Name())
		}
		assert.Equal(t, benchtypes.SimpleAdapterNames[:2], names)
	})

	t.Run("calculator", func(t *testing.T) {
		assert.Equal(t, 5, benchtypes.NewCalculator2().Add(2, 3))
	})
}
