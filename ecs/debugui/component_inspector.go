package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/towerdefense/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{}
}

func (ci *ComponentInspectorComponent) Render(storage *ecs.Storage, selectedEntityId ecs.EntityId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityId = selectedEntityId

	if ci.selectedEntityId == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	if !storage.IsAlive(ci.selectedEntityId) {
		imgui.Text(fmt.Sprintf("Entity %d (gen %d) no longer exists",
			ci.selectedEntityId.Index(), ci.selectedEntityId.Generation()))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: slot %d, generation %d", ci.selectedEntityId.Index(), ci.selectedEntityId.Generation()))
	if parent, ok := storage.Parent(ci.selectedEntityId); ok {
		imgui.Text(fmt.Sprintf("Parent: slot %d", parent.Index()))
	}
	if children := storage.Children(ci.selectedEntityId); len(children) > 0 {
		imgui.Text(fmt.Sprintf("Children: %d", len(children)))
	}
	imgui.Separator()

	for _, compType := range storage.ComponentTypes(ci.selectedEntityId) {
		component := storage.GetComponent(ci.selectedEntityId, compType)
		if component == nil {
			continue
		}

		if imgui.TreeNodeStr(compType.String()) {
			val := reflect.ValueOf(component).Elem()
			if val.Kind() == reflect.Struct {
				renderFields(val)
			} else {
				renderValue(compType.Name(), val)
			}
			imgui.TreePop()
		}
	}

	if imgui.Button("Delete Entity") {
		storage.DeleteRecursive(ci.selectedEntityId)
	}

	imgui.End()
}

// renderValue draws an editor for val. val must be addressable for edits to stick;
// component pointers from the storage always are.
func renderValue(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		labelled(name, 150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		labelled(name, 150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		labelled(name, 150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		labelled(name, 200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Array:
		// Vectors and quaternions are small float arrays
		if imgui.TreeNodeStr(fmt.Sprintf("%s [%d]", name, val.Len())) {
			for i := 0; i < val.Len(); i++ {
				renderValue(fmt.Sprintf("%s[%d]", name, i), val.Index(i))
			}
			imgui.TreePop()
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			renderFields(val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Func:
		imgui.Text(fmt.Sprintf("%s: func", name))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

func renderFields(val reflect.Value) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		renderValue(field.Name, fieldVal)
	}
}

func labelled(name string, width float32) {
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(width)
}
