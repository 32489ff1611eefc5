package ecs

import "sort"

// StorageStats is a point-in-time summary of a Storage, used by tooling.
type StorageStats struct {
	TotalEntityCount int
	PoolCount        int
	SingletonCount   int
	FreeSlotCount    int
	PoolBreakdown    []PoolStats
	SingletonTypes   []string
}

// PoolStats describes one component pool.
type PoolStats struct {
	ComponentType  string
	ComponentCount int
}

// CollectStats gathers entity, pool and singleton counts.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		TotalEntityCount: s.entities.count,
		FreeSlotCount:    len(s.entities.freeSlots),
		SingletonCount:   len(s.singletons),
	}

	for t, p := range s.pools {
		if p.Len() == 0 {
			continue
		}
		stats.PoolBreakdown = append(stats.PoolBreakdown, PoolStats{
			ComponentType:  t.String(),
			ComponentCount: p.Len(),
		})
	}
	stats.PoolCount = len(stats.PoolBreakdown)
	sort.Slice(stats.PoolBreakdown, func(i, j int) bool {
		return stats.PoolBreakdown[i].ComponentType < stats.PoolBreakdown[j].ComponentType
	})

	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
