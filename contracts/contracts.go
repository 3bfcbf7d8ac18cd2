// Package contracts defines the interfaces the inference engine core
// consumes from the broader knowledge-representation layer (spec.md §6):
// a KnowledgeStore for context retrieval/assertion and a TypeSystemManager
// for type lookups used when building typed AST. These are contracts, not
// parts of the core proper; this package also provides a small in-memory
// reference implementation (no other package of this module uses it),
// grounded on the teacher's split between factstore.ConcurrentFactStore
// (queryable, growable) and factstore.FactStoreWithRemove (mutable EDB).
package contracts

import (
	"fmt"
	"sync"

	"github.com/Steake/godelos-core/ast"
)

// KnowledgeStore is the consumer-side contract to the knowledge store: the
// core reads proof context through it and, when a prover derives new facts
// worth retaining (e.g. CLP solutions), writes back through it.
type KnowledgeStore interface {
	QueryAllStatements(contextIDs []string) ([]ast.Node, error)
	AddStatement(node ast.Node, contextID string) error
	CreateContext(id, kind string) error
}

// TypeSystemManager is the consumer-side contract to the AST builder's type
// system: provers look up declared types when constructing Skolem
// functions, SMT declarations, and CLP domain variables.
type TypeSystemManager interface {
	DefineAtomicType(name string) (ast.Type, error)
	DefineFunctionSignature(name string, args []ast.Type, result ast.Type) error
	GetType(name string) (ast.Type, bool)
}

// MemoryStore is a minimal in-memory KnowledgeStore, grounded on Mangle's
// FactStoreWithRemove contract (a mutable, queryable collection keyed by
// context rather than by predicate).
type MemoryStore struct {
	mu       sync.RWMutex
	contexts map[string]string // id -> kind
	facts    map[string][]ast.Node
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		contexts: make(map[string]string),
		facts:    make(map[string][]ast.Node),
	}
}

func (m *MemoryStore) CreateContext(id, kind string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.contexts[id]; exists {
		return fmt.Errorf("context %q already exists", id)
	}
	m.contexts[id] = kind
	return nil
}

func (m *MemoryStore) AddStatement(node ast.Node, contextID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.contexts[contextID]; !exists {
		return fmt.Errorf("unknown context %q", contextID)
	}
	m.facts[contextID] = append(m.facts[contextID], node)
	return nil
}

func (m *MemoryStore) QueryAllStatements(contextIDs []string) ([]ast.Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []ast.Node
	for _, id := range contextIDs {
		if _, exists := m.contexts[id]; !exists {
			return nil, fmt.Errorf("unknown context %q", id)
		}
		out = append(out, m.facts[id]...)
	}
	return out, nil
}

// BasicTypeSystem is a minimal in-memory TypeSystemManager backed by the
// well-known atomic types in package ast plus whatever the caller defines.
type BasicTypeSystem struct {
	mu    sync.RWMutex
	types map[string]ast.Type
	sigs  map[string]functionSig
}

type functionSig struct {
	args   []ast.Type
	result ast.Type
}

// NewBasicTypeSystem seeds a type system with Boolean/Integer/Real/String.
func NewBasicTypeSystem() *BasicTypeSystem {
	t := &BasicTypeSystem{
		types: map[string]ast.Type{
			"Boolean": ast.TypeBoolean,
			"Integer": ast.TypeInteger,
			"Real":    ast.TypeReal,
			"String":  ast.TypeString,
		},
		sigs: make(map[string]functionSig),
	}
	return t
}

func (t *BasicTypeSystem) DefineAtomicType(name string) (ast.Type, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.types[name]; ok {
		return existing, nil
	}
	typ := ast.Type{Name: name}
	t.types[name] = typ
	return typ, nil
}

func (t *BasicTypeSystem) DefineFunctionSignature(name string, args []ast.Type, result ast.Type) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sigs[name] = functionSig{args: args, result: result}
	t.types[name] = ast.Type{Name: result.Name, Args: args}
	return nil
}

func (t *BasicTypeSystem) GetType(name string) (ast.Type, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	typ, ok := t.types[name]
	return typ, ok
}
