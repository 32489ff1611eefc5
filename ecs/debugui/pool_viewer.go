package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/towerdefense/ecs"
)

type PoolInfo struct {
	ComponentType  string
	ComponentCount int
}

type PoolViewerCache struct {
	pools []PoolInfo
}

func NewPoolViewerComponent() PoolViewerComponent {
	return PoolViewerComponent{
		cache:         &PoolViewerCache{},
		sortColumn:    1,
		sortAscending: false,
	}
}

// Render draws one row per non-empty component pool and returns the component
// type name the user clicked this frame, or "".
func (pv *PoolViewerComponent) Render(storage *ecs.Storage) string {
	if !imgui.BeginV("Component Pools", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return ""
	}

	pv.cache.pools = collectPoolInfos(storage.CollectStats())
	sortPoolInfos(pv.cache.pools, pv.sortColumn, pv.sortAscending)

	maxCount := 0
	for _, pool := range pv.cache.pools {
		maxCount = max(maxCount, pool.ComponentCount)
	}

	var clicked string

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("PoolTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			pv.sortColumn = int(spec.ColumnIndex())
			pv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortPoolInfos(pv.cache.pools, pv.sortColumn, pv.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, pool := range pv.cache.pools {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := pv.selectedPool == pool.ComponentType
			if imgui.SelectableBoolV(pool.ComponentType, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				pv.selectedPool = pool.ComponentType
				clicked = pool.ComponentType
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", pool.ComponentCount))

			if maxCount > 0 {
				barWidth := float32(pool.ComponentCount) / float32(maxCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

func collectPoolInfos(stats ecs.StorageStats) []PoolInfo {
	pools := make([]PoolInfo, 0, len(stats.PoolBreakdown))
	for _, p := range stats.PoolBreakdown {
		pools = append(pools, PoolInfo{ComponentType: p.ComponentType, ComponentCount: p.ComponentCount})
	}
	return pools
}

func sortPoolInfos(pools []PoolInfo, column int, ascending bool) {
	sort.SliceStable(pools, func(i, j int) bool {
		a, b := pools[i], pools[j]
		var less bool
		if column == 0 {
			less = a.ComponentType < b.ComponentType
		} else {
			less = a.ComponentCount < b.ComponentCount
		}
		if !ascending {
			return !less
		}
		return less
	})
}
