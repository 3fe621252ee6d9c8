package layrinfer

import (
	"sort"
	"strings"

	"github.com/layr-arb/layr/layrgraph"
)

// flowRank orders components along a request: users, then services,
// databases and external systems.
func flowRank(k layrgraph.EntityKind) int {
	switch k.Normalize() {
	case layrgraph.KindUser:
		return 1
	case layrgraph.KindService:
		return 2
	case layrgraph.KindDatabase:
		return 3
	case layrgraph.KindExternal:
		return 4
	}
	return 99
}

func connectionDescription(from, to layrgraph.Entity) string {
	fk, tk := from.Kind.Normalize(), to.Kind.Normalize()
	switch {
	case fk == layrgraph.KindUser && tk == layrgraph.KindService:
		return "User Requests"
	case fk == layrgraph.KindService && tk == layrgraph.KindService:
		lower := strings.ToLower(from.Name)
		if strings.Contains(lower, "api") || strings.Contains(lower, "gateway") {
			return "API Routing"
		}
		return "Service Calls"
	case fk == layrgraph.KindService && tk == layrgraph.KindDatabase:
		return "Data Operations"
	case fk == layrgraph.KindService && tk == layrgraph.KindExternal:
		return "External Integration"
	default:
		return "Communication"
	}
}

type edgeSet struct {
	seen  map[[2]string]struct{}
	edges []layrgraph.Connection
}

func (s *edgeSet) has(from, to string) bool {
	_, ok := s.seen[[2]string{from, to}]
	return ok
}

func (s *edgeSet) add(c layrgraph.Connection) {
	if s.seen == nil {
		s.seen = make(map[[2]string]struct{})
	}
	if s.has(c.From, c.To) {
		return
	}
	s.seen[[2]string{c.From, c.To}] = struct{}{}
	s.edges = append(s.edges, c)
}

// Connections links components along the request flow, then adds the
// UI to API, service to database and auth fan-out edges.
func Connections(components []layrgraph.Entity) []layrgraph.Connection {
	sorted := make([]layrgraph.Entity, len(components))
	copy(sorted, components)
	sort.SliceStable(sorted, func(i, j int) bool {
		return flowRank(sorted[i].Kind) < flowRank(sorted[j].Kind)
	})

	var set edgeSet
	for i := 0; i+1 < len(sorted); i++ {
		from, to := sorted[i], sorted[i+1]
		set.add(layrgraph.Connection{
			From:        from.Name,
			To:          to.Name,
			Kind:        layrgraph.ConnectionDefault,
			Description: connectionDescription(from, to),
		})
	}

	for i, from := range sorted {
		for j, to := range sorted {
			if i == j || set.has(from.Name, to.Name) {
				continue
			}
			fk, tk := from.Kind.Normalize(), to.Kind.Normalize()
			var desc string
			switch {
			case fk == layrgraph.KindUser && tk == layrgraph.KindService && strings.Contains(strings.ToLower(to.Name), "api"):
				desc = "API Requests"
			case fk == layrgraph.KindService && tk == layrgraph.KindDatabase:
				desc = "Data Operations"
			case strings.Contains(strings.ToLower(from.Name), "auth") && tk != layrgraph.KindDatabase:
				desc = "Authentication/Authorization"
			default:
				continue
			}
			set.add(layrgraph.Connection{
				From:        from.Name,
				To:          to.Name,
				Kind:        layrgraph.ConnectionDefault,
				Description: desc,
			})
		}
	}
	return set.edges
}
