package config

// SourceFileExtensions are the file endings recognized as VHDL sources.
var SourceFileExtensions = []string{".vhd", ".vhdl"}

// StandardLibraries are the library names made visible without a
// library clause.
var StandardLibraries = []string{"std", "ieee", "work"}

// DefaultProjectFile is looked up in the working directory when no
// project file is given explicitly.
const DefaultProjectFile = "vhdlang.yml"

// DefaultIndexFile is where the design-unit index is persisted,
// relative to the project file.
const DefaultIndexFile = ".vhdlang-index.db"
