package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hon-lang/hon/internal/config"
	"github.com/hon-lang/hon/internal/symtab"
)

// Symtab writes scope and every descendant in the requested format.
func Symtab(w io.Writer, scope *symtab.Scope, format config.Format) error {
	switch format {
	case config.FORMAT_YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewScopeView(scope)); err != nil {
			return err
		}
		return enc.Close()
	case config.FORMAT_JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewScopeView(scope))
	default:
		return SymtabText(w, scope)
	}
}

// SymtabText prints each scope header, its name lists and one line of flags
// per symbol.
func SymtabText(w io.Writer, scope *symtab.Scope) error {
	return scope.Walk(func(s *symtab.Scope) error {
		if _, err := fmt.Fprintf(w, "\nSymbol table: %s %s\n", s.Name, s.Kind); err != nil {
			return err
		}
		lines := []string{fmt.Sprintf("identifiers: %v", s.Identifiers())}
		if s.Kind == symtab.SCOPE_FUNCTION {
			lines = append(lines,
				fmt.Sprintf("parameters: %v", s.Parameters()),
				fmt.Sprintf("locals: %v", s.Locals()),
				fmt.Sprintf("globals: %v", s.Globals()),
				fmt.Sprintf("frees: %v", s.Frees()),
			)
		}
		for _, sym := range s.Symbols() {
			lines = append(lines, fmt.Sprintf("%-10s l:%t g:%t p:%t r:%t f:%t i:%t",
				sym.Name,
				sym.IsLocal(),
				sym.IsGlobal(),
				sym.IsParameter(),
				sym.IsReferenced(),
				sym.IsFree(),
				sym.IsImported(),
			))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	})
}

type SymbolView struct {
	Name  string   `yaml:"name" json:"name"`
	Flags []string `yaml:"flags" json:"flags"`
}

type ScopeView struct {
	Name       string       `yaml:"name" json:"name"`
	Kind       string       `yaml:"kind" json:"kind"`
	Parameters []string     `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Symbols    []SymbolView `yaml:"symbols" json:"symbols"`
	Children   []ScopeView  `yaml:"children,omitempty" json:"children,omitempty"`
}

func NewScopeView(scope *symtab.Scope) ScopeView {
	view := ScopeView{
		Name:    scope.Name,
		Kind:    scope.Kind.String(),
		Symbols: []SymbolView{},
	}
	if params := scope.Parameters(); len(params) > 0 {
		view.Parameters = params
	}
	for _, sym := range scope.Symbols() {
		view.Symbols = append(view.Symbols, SymbolView{Name: sym.Name, Flags: sym.Flags.Names()})
	}
	for _, child := range scope.Children() {
		view.Children = append(view.Children, NewScopeView(child))
	}
	return view
}
