// Package layrgraph holds the records every diagram is built from.
//
// Records are plain values decoded from the request JSON. Entities are joined
// to connections by name, never by index.
package layrgraph

import (
	"strings"
)

type EntityKind string

const (
	KindComponent   EntityKind = "component"
	KindDatabase    EntityKind = "database"
	KindService     EntityKind = "service"
	KindExternal    EntityKind = "external"
	KindUser        EntityKind = "user"
	KindActor       EntityKind = "actor"
	KindEnvironment EntityKind = "environment"
	KindEntity      EntityKind = "entity"
)

var EntityKinds = []EntityKind{
	KindComponent,
	KindDatabase,
	KindService,
	KindExternal,
	KindUser,
	KindActor,
	KindEnvironment,
	KindEntity,
}

// Known reports whether k is one of EntityKinds. Call Normalize first.
func (k EntityKind) Known() bool {
	for _, k2 := range EntityKinds {
		if k == k2 {
			return true
		}
	}
	return false
}

// Normalize lowercases k and maps the empty kind to component.
func (k EntityKind) Normalize() EntityKind {
	k = EntityKind(strings.ToLower(strings.TrimSpace(string(k))))
	if k == "" {
		return KindComponent
	}
	return k
}

type Entity struct {
	Name        string      `json:"name"`
	Kind        EntityKind  `json:"type,omitempty"`
	Description string      `json:"description,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

type Attribute struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Key  bool   `json:"key,omitempty"`
}

// Label is how an attribute row reads inside an entity box.
func (a Attribute) Label() string {
	s := a.Name
	if a.Type != "" {
		s += ": " + a.Type
	}
	if a.Key {
		s = "PK " + s
	}
	return s
}

type ConnectionKind string

const (
	ConnectionDefault       ConnectionKind = "default"
	ConnectionBidirectional ConnectionKind = "bidirectional"
	ConnectionDependency    ConnectionKind = "dependency"
	ConnectionAssociation   ConnectionKind = "association"
	ConnectionAggregation   ConnectionKind = "aggregation"
	ConnectionComposition   ConnectionKind = "composition"

	OneToMany  ConnectionKind = "one-to-many"
	OneToOne   ConnectionKind = "one-to-one"
	ManyToMany ConnectionKind = "many-to-many"
	ManyToOne  ConnectionKind = "many-to-one"
)

var connectionAliases = map[string]ConnectionKind{
	"1:n": OneToMany,
	"1:1": OneToOne,
	"n:m": ManyToMany,
	"m:n": ManyToMany,
	"n:1": ManyToOne,
}

// Normalize lowercases k and resolves symbolic cardinalities like 1:N.
// Unrecognized kinds are returned lowercased so callers can report them.
func (k ConnectionKind) Normalize() ConnectionKind {
	s := strings.ToLower(strings.TrimSpace(string(k)))
	if alias, ok := connectionAliases[s]; ok {
		return alias
	}
	return ConnectionKind(s)
}

// IsCardinality reports whether k names a data-model relationship.
func (k ConnectionKind) IsCardinality() bool {
	switch k.Normalize() {
	case OneToMany, OneToOne, ManyToMany, ManyToOne:
		return true
	}
	return false
}

// Symbol is the short form of a cardinality, 1:N for one-to-many.
// Other kinds are returned as is.
func (k ConnectionKind) Symbol() string {
	switch k.Normalize() {
	case OneToMany:
		return "1:N"
	case OneToOne:
		return "1:1"
	case ManyToMany:
		return "N:M"
	case ManyToOne:
		return "N:1"
	}
	return string(k)
}

type Connection struct {
	From        string         `json:"from"`
	To          string         `json:"to"`
	Kind        ConnectionKind `json:"type,omitempty"`
	Description string         `json:"description,omitempty"`
}

type SequenceStep struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Action string `json:"action,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

func (s SequenceStep) IsSelfCall() bool {
	return s.From == s.To
}

type Environment struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Component is an entity deployed to an environment on a host.
type Component struct {
	Entity
	Env  string `json:"env,omitempty"`
	Host string `json:"host,omitempty"`
}

// DefaultEnvironment receives components that name no environment.
const DefaultEnvironment = "Default"

// Index maps entity names to their position in entities. The first entity
// with a given name wins. Entities with empty names are not indexed.
func Index(entities []Entity) map[string]int {
	m := make(map[string]int, len(entities))
	for i, e := range entities {
		if e.Name == "" {
			continue
		}
		if _, ok := m[e.Name]; !ok {
			m[e.Name] = i
		}
	}
	return m
}
