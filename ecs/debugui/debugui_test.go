package debugui

import (
	"reflect"
	"testing"

	"github.com/plus3/towerdefense/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Value int
}

type marker struct{}

func newCounterStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[counter](registry)
	ecs.RegisterComponent[marker](registry)
	RegisterDebugUIComponents(registry)
	return ecs.NewStorage(registry)
}

func TestCollectEntityInfos(t *testing.T) {
	storage := newCounterStorage()

	parent := storage.Spawn(counter{Value: 1})
	child := storage.Spawn(counter{Value: 2}, marker{})
	storage.SetParent(child, parent)

	infos := collectEntityInfos(storage)
	require.Len(t, infos, 2)
	assert.Equal(t, parent, infos[0].ID)
	assert.Equal(t, ecs.EntityId(0), infos[0].Parent)
	assert.Equal(t, parent, infos[1].Parent)
	assert.Equal(t, []string{"debugui.marker", "debugui.counter"}, infos[1].ComponentTypes)
}

func TestFilterAndSortEntityInfos(t *testing.T) {
	storage := newCounterStorage()
	storage.Spawn(counter{})
	storage.Spawn(counter{}, marker{})
	storage.Spawn(marker{})

	infos := collectEntityInfos(storage)

	assert.Len(t, filterEntityInfos(infos, "", ""), 3)
	assert.Len(t, filterEntityInfos(infos, "", "debugui.marker"), 2)
	assert.Len(t, filterEntityInfos(infos, "COUNTER", ""), 2)
	assert.Len(t, filterEntityInfos(infos, "counter", "debugui.marker"), 1)

	sortEntityInfos(infos, 0, false)
	assert.Equal(t, uint32(2), infos[0].ID.Index())
	sortEntityInfos(infos, 0, true)
	assert.Equal(t, uint32(0), infos[0].ID.Index())
}

func TestPoolInfos(t *testing.T) {
	storage := newCounterStorage()
	storage.Spawn(counter{})
	storage.Spawn(counter{}, marker{})

	pools := collectPoolInfos(storage.CollectStats())
	sortPoolInfos(pools, 1, false)

	require.Len(t, pools, 2)
	assert.Equal(t, PoolInfo{ComponentType: "debugui.counter", ComponentCount: 2}, pools[0])
	assert.Equal(t, PoolInfo{ComponentType: "debugui.marker", ComponentCount: 1}, pools[1])
}

func TestMatchingEntities(t *testing.T) {
	storage := newCounterStorage()
	a := storage.Spawn(counter{})
	b := storage.Spawn(counter{}, marker{})

	counterType := reflect.TypeOf(counter{})
	markerType := reflect.TypeOf(marker{})

	assert.Equal(t, []ecs.EntityId{a, b}, matchingEntities(storage, []reflect.Type{counterType}))
	assert.Equal(t, []ecs.EntityId{b}, matchingEntities(storage, []reflect.Type{counterType, markerType}))
}

func TestPerformanceHistory(t *testing.T) {
	ps := NewPerformanceStatsComponent(4)
	ps.record(0.010)
	ps.record(0.020)

	assert.InDelta(t, 7.5, ps.averageFrameTime(), 1e-4)

	for i := 0; i < 4; i++ {
		ps.record(0.016)
	}
	assert.InDelta(t, 16, ps.averageFrameTime(), 1e-4)
}

type turret struct {
	Range   float64
	Owner   *counter
	Offset  struct{ X, Y, Z float64 }
	Kills   []int
	Labels  map[string]string
	private int
}

func TestReflectionCacheFields(t *testing.T) {
	rc := NewReflectionCache()
	fields := rc.GetFields(reflect.TypeOf(turret{}))

	require.Len(t, fields, 5)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Range", "Owner", "Offset", "Kills", "Labels"}, names)

	owner := fields[1]
	assert.True(t, owner.IsPointer)
	assert.True(t, owner.IsStruct)
	assert.Equal(t, reflect.TypeOf(counter{}), owner.Type)
	assert.True(t, fields[2].IsStruct)
	assert.True(t, fields[3].IsSlice)
	assert.True(t, fields[4].IsMap)

	assert.Same(t, &fields[0], &rc.GetFields(reflect.TypeOf(turret{}))[0], "second lookup is served from the cache")
	assert.Empty(t, rc.GetFields(reflect.TypeOf(0)))
}
