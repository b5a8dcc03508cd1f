package symbols

import "fmt"

// EntityId is a stable handle into the arena. The resolved-entity graph
// is cyclic (types referencing types, scopes referencing parents), so
// entities reference each other by id, never by ownership.
type EntityId int

const NoEntity EntityId = -1

// ObjectClass is the declaration category of an object.
type ObjectClass int

const (
	Constant ObjectClass = iota
	Signal
	Variable
	SharedVariable
	FileObject
)

func (c ObjectClass) String() string {
	switch c {
	case Constant:
		return "constant"
	case Signal:
		return "signal"
	case Variable:
		return "variable"
	case SharedVariable:
		return "shared variable"
	case FileObject:
		return "file"
	}
	return "object"
}

// Mode is the direction of a formal port or parameter. NoMode means the
// object is not a formal.
type Mode int

const (
	NoMode Mode = iota
	In
	Out
	InOut
	Buffer
	Linkage
)

func (m Mode) String() string {
	switch m {
	case In:
		return "in"
	case Out:
		return "out"
	case InOut:
		return "inout"
	case Buffer:
		return "buffer"
	case Linkage:
		return "linkage"
	}
	return ""
}

// TypeKind classifies a type entity.
type TypeKind int

const (
	ScalarType TypeKind = iota
	EnumType
	ArrayType
	RecordType
	AccessType
	FileType
)

// Entity is anything the arena can hold.
type Entity interface {
	EntityId() EntityId
	EntityDesignator() string
}

// RecordField is one element of a record type.
type RecordField struct {
	Name string
	Type EntityId
}

// TypeEnt is a declared type or subtype.
type TypeEnt struct {
	Id         EntityId
	Designator string
	Kind       TypeKind
	Elem       EntityId      // element type for arrays
	Fields     []RecordField // elements for records
}

func (t *TypeEnt) EntityId() EntityId       { return t.Id }
func (t *TypeEnt) EntityDesignator() string { return t.Designator }

// Field looks up a record element by (case-folded) name.
func (t *TypeEnt) Field(name string) (RecordField, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return RecordField{}, false
}

// Describe renders the type for diagnostics.
func (t *TypeEnt) Describe() string {
	return fmt.Sprintf("type '%s'", t.Designator)
}

// ObjectEnt is a declared object: signal, variable, constant or file.
type ObjectEnt struct {
	Id         EntityId
	Designator string
	Class      ObjectClass
	Mode       Mode
	Subtype    EntityId
}

func (o *ObjectEnt) EntityId() EntityId       { return o.Id }
func (o *ObjectEnt) EntityDesignator() string { return o.Designator }

// DescribeClass renders the object for assignment diagnostics, e.g.
// "constant 'c'" or "interface signal 's'".
func (o *ObjectEnt) DescribeClass() string {
	if o.Mode != NoMode {
		return fmt.Sprintf("interface %s '%s'", o.Class, o.Designator)
	}
	return fmt.Sprintf("%s '%s'", o.Class, o.Designator)
}

// OverloadedEnt stands in for subprograms and enumeration literals;
// the target resolver only needs to know they are not objects.
type OverloadedEnt struct {
	Id         EntityId
	Designator string
}

func (e *OverloadedEnt) EntityId() EntityId       { return e.Id }
func (e *OverloadedEnt) EntityDesignator() string { return e.Designator }

// LibraryEnt is a design library name made visible in a scope.
type LibraryEnt struct {
	Id         EntityId
	Designator string
}

func (e *LibraryEnt) EntityId() EntityId       { return e.Id }
func (e *LibraryEnt) EntityDesignator() string { return e.Designator }
