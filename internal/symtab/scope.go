package symtab

import (
	"errors"
	"fmt"
)

var ERR_SYMBOL_NOT_FOUND_ON_SCOPE = errors.New("symbol not found on scope")

const MODULE_SCOPE_NAME = "top"

type ScopeKind int

const (
	SCOPE_MODULE ScopeKind = iota
	SCOPE_FUNCTION
)

func (k ScopeKind) String() string {
	switch k {
	case SCOPE_MODULE:
		return "module"
	case SCOPE_FUNCTION:
		return "function"
	}
	return fmt.Sprintf("ScopeKind(%d)", int(k))
}

// Scope is the flat table of names bound or used in one module or function
// body. Symbols keep the order in which their name was first recorded.
type Scope struct {
	Name   string
	Kind   ScopeKind
	Parent *Scope

	symbols  map[string]*Symbol
	order    []*Symbol
	params   []string
	children []*Scope
}

func NewModule() *Scope {
	return &Scope{
		Name:    MODULE_SCOPE_NAME,
		Kind:    SCOPE_MODULE,
		symbols: map[string]*Symbol{},
	}
}

// NewFunction creates the scope of a function body. It is not attached to
// parent until AddChild is called.
func NewFunction(name string, parent *Scope) *Scope {
	return &Scope{
		Name:    name,
		Kind:    SCOPE_FUNCTION,
		Parent:  parent,
		symbols: map[string]*Symbol{},
	}
}

// Add records name with flags. Recording a name again merges the flags into
// the existing symbol.
func (scope *Scope) Add(name string, flags Flag) *Symbol {
	if sym, ok := scope.symbols[name]; ok {
		sym.Flags |= flags
		return sym
	}
	sym := &Symbol{Name: name, Flags: flags}
	scope.symbols[name] = sym
	scope.order = append(scope.order, sym)
	return sym
}

func (scope *Scope) AddParameter(name string) *Symbol {
	if sym, ok := scope.symbols[name]; !ok || !sym.IsParameter() {
		scope.params = append(scope.params, name)
	}
	return scope.Add(name, FLAG_LOCAL|FLAG_PARAMETER)
}

func (scope *Scope) AddChild(child *Scope) {
	child.Parent = scope
	scope.children = append(scope.children, child)
}

func (scope *Scope) Lookup(name string) (*Symbol, error) {
	if sym, ok := scope.symbols[name]; ok {
		return sym, nil
	}
	return nil, fmt.Errorf("%w: %s", ERR_SYMBOL_NOT_FOUND_ON_SCOPE, name)
}

// LookupAcrossScopes resolves name in this scope or the nearest enclosing
// scope that records it.
func (scope *Scope) LookupAcrossScopes(name string) (*Symbol, *Scope, error) {
	for s := scope; s != nil; s = s.Parent {
		if sym, ok := s.symbols[name]; ok {
			return sym, s, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ERR_SYMBOL_NOT_FOUND_ON_SCOPE, name)
}

func (scope *Scope) Identifiers() []string {
	names := make([]string, 0, len(scope.order))
	for _, sym := range scope.order {
		names = append(names, sym.Name)
	}
	return names
}

func (scope *Scope) Symbols() []*Symbol {
	symbols := make([]*Symbol, len(scope.order))
	copy(symbols, scope.order)
	return symbols
}

func (scope *Scope) Children() []*Scope {
	children := make([]*Scope, len(scope.children))
	copy(children, scope.children)
	return children
}

func (scope *Scope) HasChildren() bool { return len(scope.children) > 0 }

// IsNested is true for every scope other than the module scope.
func (scope *Scope) IsNested() bool { return scope.Kind != SCOPE_MODULE }

func (scope *Scope) Parameters() []string {
	params := make([]string, len(scope.params))
	copy(params, scope.params)
	return params
}

func (scope *Scope) Locals() []string  { return scope.filter((*Symbol).IsLocal) }
func (scope *Scope) Globals() []string { return scope.filter((*Symbol).IsGlobal) }
func (scope *Scope) Frees() []string   { return scope.filter((*Symbol).IsFree) }

func (scope *Scope) filter(keep func(*Symbol) bool) []string {
	var names []string
	for _, sym := range scope.order {
		if keep(sym) {
			names = append(names, sym.Name)
		}
	}
	return names
}

// Walk calls fn on scope and then on every descendant, depth first in
// the order children were attached.
func (scope *Scope) Walk(fn func(*Scope) error) error {
	if err := fn(scope); err != nil {
		return err
	}
	for _, child := range scope.children {
		if err := child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

func (scope *Scope) String() string {
	return fmt.Sprintf("Scope %s (%s): %v", scope.Name, scope.Kind, scope.Identifiers())
}
