package symtab

import "strings"

type Flag uint8

const (
	FLAG_LOCAL Flag = 1 << iota
	FLAG_GLOBAL
	FLAG_REFERENCED
	FLAG_PARAMETER
	FLAG_IMPORTED
)

const flagBinding = FLAG_LOCAL | FLAG_GLOBAL | FLAG_PARAMETER | FLAG_IMPORTED

var flagNames = []struct {
	flag Flag
	name string
}{
	{FLAG_LOCAL, "local"},
	{FLAG_GLOBAL, "global"},
	{FLAG_REFERENCED, "referenced"},
	{FLAG_PARAMETER, "parameter"},
	{FLAG_IMPORTED, "imported"},
}

func (f Flag) Has(other Flag) bool { return f&other == other }

// Names lists the set flags from the lowest bit up.
func (f Flag) Names() []string {
	var names []string
	for _, entry := range flagNames {
		if f&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	return names
}

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}

type Symbol struct {
	Name  string
	Flags Flag
}

func (s *Symbol) IsLocal() bool      { return s.Flags&FLAG_LOCAL != 0 }
func (s *Symbol) IsGlobal() bool     { return s.Flags&FLAG_GLOBAL != 0 }
func (s *Symbol) IsReferenced() bool { return s.Flags&FLAG_REFERENCED != 0 }
func (s *Symbol) IsParameter() bool  { return s.Flags&FLAG_PARAMETER != 0 }
func (s *Symbol) IsImported() bool   { return s.Flags&FLAG_IMPORTED != 0 }

// IsFree reports whether the name is used in its scope without being bound
// there.
func (s *Symbol) IsFree() bool {
	return s.IsReferenced() && s.Flags&flagBinding == 0
}

func (s *Symbol) String() string {
	return "<symbol '" + s.Name + "'>"
}
