package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	gridType     = reflect.TypeFor[tetris.Grid]()
	entityType   = reflect.TypeFor[tetris.Entity]()
)

// fieldView selects how a state field is drawn.
type fieldView uint8

const (
	viewText fieldView = iota
	viewGrid
	viewEntity
	viewStruct
	viewCount
)

type inspectedField struct {
	name  string
	index int
	view  fieldView
}

// layouts remembers how the fields of each struct type are drawn. Types are
// classified once; frames only walk the cached layout.
type layouts map[reflect.Type][]inspectedField

func (l layouts) of(t reflect.Type) []inspectedField {
	if fields, ok := l[t]; ok {
		return fields
	}

	var fields []inspectedField
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fields = append(fields, inspectedField{name: f.Name, index: i, view: classify(f.Type)})
		}
	}
	l[t] = fields
	return fields
}

func classify(t reflect.Type) fieldView {
	switch {
	case t == gridType:
		return viewGrid
	case t == entityType:
		return viewEntity
	case t.Implements(stringerType):
		return viewText
	case t.Kind() == reflect.Struct:
		return viewStruct
	case t.Kind() == reflect.Slice, t.Kind() == reflect.Map:
		return viewCount
	}
	return viewText
}

// StateInspector walks a game snapshot field by field. It is read-only.
type StateInspector struct {
	Snapshot func() tetris.State
	layouts  layouts
}

func NewStateInspector(snapshot func() tetris.State) *StateInspector {
	return &StateInspector{Snapshot: snapshot, layouts: layouts{}}
}

func (si *StateInspector) Item() Item {
	return Item{Render: si.Render}
}

func (si *StateInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("State Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	si.renderStruct(reflect.ValueOf(si.Snapshot()))
	imgui.End()
}

func (si *StateInspector) renderStruct(val reflect.Value) {
	for _, f := range si.layouts.of(val.Type()) {
		si.renderField(f, val.Field(f.index))
	}
}

func (si *StateInspector) renderField(f inspectedField, val reflect.Value) {
	switch f.view {
	case viewGrid:
		renderGrid(gridLabel(f.name, val.Interface().(tetris.Grid)), val.Interface().(tetris.Grid))

	case viewEntity:
		e := val.Interface().(tetris.Entity)
		renderGrid(entityLabel(f.name, e), e.Grid)

	case viewStruct:
		if imgui.TreeNodeStr(f.name) {
			si.renderStruct(val)
			imgui.TreePop()
		}

	case viewCount:
		imgui.Text(fmt.Sprintf("%s: [%d items]", f.name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %s", f.name, describe(val)))
	}
}

func renderGrid(label string, g tetris.Grid) {
	if imgui.TreeNodeStr(label) {
		for _, line := range strings.Split(g.String(), "\n") {
			imgui.Text(line)
		}
		imgui.TreePop()
	}
}

func gridLabel(name string, g tetris.Grid) string {
	return fmt.Sprintf("%s (%dx%d, %d occupied)", name, g.Rows(), g.Columns(), g.Occupied())
}

// entityLabel names the piece and where it sits; the board has no shape.
func entityLabel(name string, e tetris.Entity) string {
	if !e.Shape.Valid() {
		return gridLabel(name, e.Grid)
	}
	return fmt.Sprintf("%s: %s at %s", name, e.Shape, e.Pos)
}

// describe formats a field value the way the inspector shows it.
func describe(val reflect.Value) string {
	if s, ok := val.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", val.Interface())
}
