package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/towerdefense/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityId
	Parent         ecs.EntityId
	ComponentTypes []string
}

type EntityBrowserCache struct {
	entities      []EntityInfo
	lastCount     int
	lastFreeSlots int
	sortColumn    int
	sortAscending bool
}

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		cache: &EntityBrowserCache{
			lastCount:     -1,
			sortColumn:    0,
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserComponent) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(storage)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterComponent = ""
	}
	imgui.SameLine()
	if imgui.Button("Refresh") {
		eb.cache.lastCount = -1
		eb.rebuildCacheIfNeeded(storage)
	}
	if eb.filterComponent != "" {
		imgui.Text("Pool: " + eb.filterComponent)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Gen")
		imgui.TableSetupColumn("Parent")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortEntityInfos(eb.cache.entities, eb.cache.sortColumn, eb.cache.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		filteredEntities := filterEntityInfos(eb.cache.entities, eb.filterText, eb.filterComponent)

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filteredEntities))

		for i := startIdx; i < endIdx; i++ {
			entity := filteredEntities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID.Index()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.ID.Generation()))

			imgui.TableNextColumn()
			if entity.Parent != 0 {
				imgui.Text(fmt.Sprintf("%d", entity.Parent.Index()))
			} else {
				imgui.Text("-")
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}

	filteredEntities := filterEntityInfos(eb.cache.entities, eb.filterText, eb.filterComponent)

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		eb.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

// rebuildCacheIfNeeded rebuilds when the live or free slot counts move, which
// catches spawns, deletes and slot reuse.
func (eb *EntityBrowserComponent) rebuildCacheIfNeeded(storage *ecs.Storage) {
	stats := storage.CollectStats()
	if eb.cache.lastCount == stats.TotalEntityCount && eb.cache.lastFreeSlots == stats.FreeSlotCount {
		return
	}
	eb.cache.lastCount = stats.TotalEntityCount
	eb.cache.lastFreeSlots = stats.FreeSlotCount
	eb.cache.entities = collectEntityInfos(storage)
	sortEntityInfos(eb.cache.entities, eb.cache.sortColumn, eb.cache.sortAscending)
}

func collectEntityInfos(storage *ecs.Storage) []EntityInfo {
	infos := make([]EntityInfo, 0, storage.Count())
	for id := range storage.Entities() {
		types := storage.ComponentTypes(id)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.String()
		}
		parent, _ := storage.Parent(id)
		infos = append(infos, EntityInfo{
			ID:             id,
			Parent:         parent,
			ComponentTypes: names,
		})
	}
	return infos
}

func sortEntityInfos(entities []EntityInfo, column int, ascending bool) {
	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		var less bool

		switch column {
		case 1:
			less = a.ID.Generation() < b.ID.Generation()
		case 2:
			less = a.Parent.Index() < b.Parent.Index()
		case 3:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		default:
			less = a.ID.Index() < b.ID.Index()
		}

		if !ascending {
			return !less
		}
		return less
	})
}

func filterEntityInfos(entities []EntityInfo, text, component string) []EntityInfo {
	if text == "" && component == "" {
		return entities
	}

	filtered := make([]EntityInfo, 0, len(entities))
	filterLower := strings.ToLower(text)

	for _, entity := range entities {
		if component != "" && !containsString(entity.ComponentTypes, component) {
			continue
		}

		if text != "" {
			idStr := fmt.Sprintf("%d", entity.ID.Index())
			componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

			if !strings.Contains(idStr, filterLower) && !strings.Contains(componentsStr, filterLower) {
				continue
			}
		}

		filtered = append(filtered, entity)
	}

	return filtered
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func (eb *EntityBrowserComponent) GetSelectedEntity() ecs.EntityId {
	return eb.selectedEntityId
}
