package analyzer

import "github.com/hdltools/vhdlang/internal/symbols"

// RegisterStandard declares the predefined types of std.standard and
// the common ieee scalar/vector types into the given scope, so designs
// can be analyzed without elaborating the standard libraries.
func RegisterStandard(arena *symbols.Arena, scope *symbols.Scope) {
	declare := func(t *symbols.TypeEnt) *symbols.TypeEnt {
		scope.Define(t.Designator, t.Id)
		return t
	}

	boolean := declare(arena.NewEnumType("boolean"))
	bit := declare(arena.NewEnumType("bit"))
	character := declare(arena.NewEnumType("character"))
	declare(arena.NewEnumType("severity_level"))
	integer := declare(arena.NewScalarType("integer"))
	declare(arena.NewScalarType("natural"))
	declare(arena.NewScalarType("positive"))
	declare(arena.NewScalarType("real"))
	declare(arena.NewScalarType("time"))

	declare(arena.NewArrayType("string", character.Id))
	declare(arena.NewArrayType("bit_vector", bit.Id))
	declare(arena.NewArrayType("boolean_vector", boolean.Id))
	declare(arena.NewArrayType("integer_vector", integer.Id))

	stdLogic := declare(arena.NewEnumType("std_logic"))
	stdULogic := declare(arena.NewEnumType("std_ulogic"))
	declare(arena.NewArrayType("std_logic_vector", stdLogic.Id))
	declare(arena.NewArrayType("std_ulogic_vector", stdULogic.Id))

	for _, lib := range []string{"std", "ieee", "work"} {
		l := arena.NewLibrary(lib)
		scope.Define(lib, l.Id)
	}
}
