package symbols

// Arena owns every entity and hands out stable ids. All cross-references
// inside the entity graph go through ids, which keeps the cyclic graph
// free of ownership edges.
type Arena struct {
	entities []Entity
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) add(e Entity) EntityId {
	a.entities = append(a.entities, e)
	return EntityId(len(a.entities) - 1)
}

// Get returns the entity for id, or nil for an id the arena never issued.
func (a *Arena) Get(id EntityId) Entity {
	if id < 0 || int(id) >= len(a.entities) {
		return nil
	}
	return a.entities[id]
}

// TypeEnt returns the type entity for id, or nil if id is not a type.
func (a *Arena) TypeEnt(id EntityId) *TypeEnt {
	t, _ := a.Get(id).(*TypeEnt)
	return t
}

// ObjectEnt returns the object entity for id, or nil if id is not an object.
func (a *Arena) ObjectEnt(id EntityId) *ObjectEnt {
	o, _ := a.Get(id).(*ObjectEnt)
	return o
}

// NewScalarType declares a scalar (integer, physical or floating) type.
func (a *Arena) NewScalarType(designator string) *TypeEnt {
	t := &TypeEnt{Designator: designator, Kind: ScalarType, Elem: NoEntity}
	t.Id = a.add(t)
	return t
}

// NewEnumType declares an enumeration type.
func (a *Arena) NewEnumType(designator string) *TypeEnt {
	t := &TypeEnt{Designator: designator, Kind: EnumType, Elem: NoEntity}
	t.Id = a.add(t)
	return t
}

// NewArrayType declares an array type over the given element type.
func (a *Arena) NewArrayType(designator string, elem EntityId) *TypeEnt {
	t := &TypeEnt{Designator: designator, Kind: ArrayType, Elem: elem}
	t.Id = a.add(t)
	return t
}

// NewRecordType declares a record type with the given elements.
func (a *Arena) NewRecordType(designator string, fields []RecordField) *TypeEnt {
	t := &TypeEnt{Designator: designator, Kind: RecordType, Elem: NoEntity, Fields: fields}
	t.Id = a.add(t)
	return t
}

// NewObject declares an object of the given class and subtype.
func (a *Arena) NewObject(designator string, class ObjectClass, subtype EntityId) *ObjectEnt {
	o := &ObjectEnt{Designator: designator, Class: class, Mode: NoMode, Subtype: subtype}
	o.Id = a.add(o)
	return o
}

// NewInterfaceObject declares a formal port or parameter with a mode.
func (a *Arena) NewInterfaceObject(designator string, class ObjectClass, mode Mode, subtype EntityId) *ObjectEnt {
	o := &ObjectEnt{Designator: designator, Class: class, Mode: mode, Subtype: subtype}
	o.Id = a.add(o)
	return o
}

// NewOverloaded declares a subprogram or enumeration literal name.
func (a *Arena) NewOverloaded(designator string) *OverloadedEnt {
	e := &OverloadedEnt{Designator: designator}
	e.Id = a.add(e)
	return e
}

// NewLibrary declares a library name.
func (a *Arena) NewLibrary(designator string) *LibraryEnt {
	e := &LibraryEnt{Designator: designator}
	e.Id = a.add(e)
	return e
}
