package mountain

import "codeberg.org/anaseto/gruid"

// ObjectKind represents the kinds of map objects placed by generation.
type ObjectKind int

const (
	ObjClosedDoor ObjectKind = iota
	ObjOpenDoor
	ObjMineEntrance
	ObjCaveMouth
	ObjStairsDown
	ObjStairsUp
)

// Object is a map object. Objects are ordinary list entries: their position
// in Map.Objects only matters for draw layering.
type Object struct {
	Kind        ObjectKind
	Name        string
	Rune        rune
	P           gruid.Point
	Blocks      bool
	BlocksSight bool
}

var objectTable = [...]Object{
	ObjClosedDoor:   {Name: "closed door", Rune: '+', Blocks: true, BlocksSight: true},
	ObjOpenDoor:     {Name: "open door", Rune: '\''},
	ObjMineEntrance: {Name: "mine entrance", Rune: '>'},
	ObjCaveMouth:    {Name: "cave mouth", Rune: '>'},
	ObjStairsDown:   {Name: "stairs down", Rune: '>'},
	ObjStairsUp:     {Name: "stairs up", Rune: '<'},
}

// NewObject returns a new object of the given kind at p.
func NewObject(kind ObjectKind, p gruid.Point) *Object {
	o := objectTable[kind]
	o.Kind = kind
	o.P = p
	return &o
}

// Interact applies the interaction effect of the first interactive object at
// p. A closed door is replaced in place by an open door, drawn under the
// other objects. It reports whether something happened.
func (m *Map) Interact(p gruid.Point) bool {
	for _, o := range m.Objects {
		if o.P == p && o.Kind == ObjClosedDoor {
			m.RemoveObject(o)
			m.InsertObjectUnder(NewObject(ObjOpenDoor, p))
			return true
		}
	}
	return false
}

// placeDoor puts a closed door at p on floor terrain.
func (m *Map) placeDoor(p gruid.Point) {
	m.Terrain.Set(p, Floor)
	m.InsertObjectUnder(NewObject(ObjClosedDoor, p))
}
