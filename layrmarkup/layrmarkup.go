// Package layrmarkup writes diagrams as Mermaid source for client-side
// rendering.
package layrmarkup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrlayouts/layrsequence"
)

const indent = "    "

// TITLE_STYLE highlights the title node of architecture graphs.
const TITLE_STYLE = "fill:#f9f,stroke:#333,stroke-width:2px"

func quote(s string) string {
	return strings.NewReplacer("'", "#39;", "\n", " ").Replace(s)
}

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// ident turns s into a bare Mermaid identifier.
func ident(s string) string {
	s = strings.Trim(nonIdent.ReplaceAllString(s, "_"), "_")
	if s == "" {
		return "_"
	}
	return s
}

func node(id string, e layrgraph.Entity) string {
	name := quote(e.Name)
	switch e.Kind.Normalize() {
	case layrgraph.KindDatabase:
		return fmt.Sprintf("%s[('%s')]", id, name)
	case layrgraph.KindExternal:
		return fmt.Sprintf("%s>'%s']", id, name)
	case layrgraph.KindUser, layrgraph.KindActor:
		return fmt.Sprintf("%s[/'%s'/]", id, name)
	default:
		return fmt.Sprintf("%s['%s']", id, name)
	}
}

// Architecture writes a top-down graph with a title node, one node per
// entity and one edge per connection whose endpoints both exist.
func Architecture(entities []layrgraph.Entity, connections []layrgraph.Connection, appName string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "graph TD\n%stitle['%s Architecture']\n%s\n", indent, quote(appName), indent)

	for i, e := range entities {
		fmt.Fprintf(&sb, "%s%s\n", indent, node(fmt.Sprintf("comp%d", i), e))
	}

	index := layrgraph.Index(entities)
	for _, conn := range connections {
		from, okFrom := index[conn.From]
		to, okTo := index[conn.To]
		if !okFrom || !okTo {
			continue
		}
		if conn.Description == "" {
			fmt.Fprintf(&sb, "%scomp%d --> comp%d\n", indent, from, to)
		} else {
			fmt.Fprintf(&sb, "%scomp%d -- %s --> comp%d\n", indent, from, quote(conn.Description), to)
		}
	}

	fmt.Fprintf(&sb, "%s\n%sstyle title %s\n", indent, indent, TITLE_STYLE)
	return sb.String()
}

// Sequence writes a sequence diagram with participants in first-seen order.
// Actor names are trimmed the same way layrsequence lays out lanes.
func Sequence(steps []layrgraph.SequenceStep) string {
	actors := layrsequence.Actors(steps)
	index := make(map[string]int, len(actors))

	var sb strings.Builder
	sb.WriteString("sequenceDiagram\n")
	for i, a := range actors {
		index[a] = i
		fmt.Fprintf(&sb, "%sparticipant P%d as %s\n", indent, i, quote(a))
	}
	for _, s := range steps {
		from, okFrom := index[strings.TrimSpace(s.From)]
		to, okTo := index[strings.TrimSpace(s.To)]
		if !okFrom || !okTo {
			continue
		}
		fmt.Fprintf(&sb, "%sP%d->>P%d: %s\n", indent, from, to, quote(s.Action))
		if s.Notes == "" {
			continue
		}
		if from == to {
			fmt.Fprintf(&sb, "%sNote right of P%d: %s\n", indent, from, quote(s.Notes))
		} else {
			fmt.Fprintf(&sb, "%sNote over P%d,P%d: %s\n", indent, from, to, quote(s.Notes))
		}
	}
	return sb.String()
}

// crowsFoot is the erDiagram relationship operator for kind. Kinds without
// multiplicity use a dashed zero-or-one link.
func crowsFoot(kind layrgraph.ConnectionKind) string {
	switch kind.Normalize() {
	case layrgraph.OneToOne:
		return "||--||"
	case layrgraph.OneToMany, "":
		return "||--o{"
	case layrgraph.ManyToOne:
		return "}o--||"
	case layrgraph.ManyToMany:
		return "}o--o{"
	}
	return "|o..o|"
}

// DataModel writes an entity-relationship diagram.
func DataModel(entities []layrgraph.Entity, relationships []layrgraph.Connection) string {
	var sb strings.Builder
	sb.WriteString("erDiagram\n")
	for _, e := range entities {
		if len(e.Attributes) == 0 {
			fmt.Fprintf(&sb, "%s%s {\n%s}\n", indent, ident(e.Name), indent)
			continue
		}
		fmt.Fprintf(&sb, "%s%s {\n", indent, ident(e.Name))
		for _, a := range e.Attributes {
			typ := a.Type
			if typ == "" {
				typ = "string"
			}
			line := ident(typ) + " " + ident(a.Name)
			if a.Key {
				line += " PK"
			}
			fmt.Fprintf(&sb, "%s%s%s\n", indent, indent, line)
		}
		fmt.Fprintf(&sb, "%s}\n", indent)
	}

	index := layrgraph.Index(entities)
	for _, rel := range relationships {
		if _, ok := index[rel.From]; !ok {
			continue
		}
		if _, ok := index[rel.To]; !ok {
			continue
		}
		label := rel.Description
		if label == "" {
			kind := rel.Kind
			if kind == "" {
				kind = layrgraph.OneToMany
			}
			label = kind.Symbol()
		}
		fmt.Fprintf(&sb, "%s%s %s %s : %q\n", indent, ident(rel.From), crowsFoot(rel.Kind), ident(rel.To), label)
	}
	return sb.String()
}
