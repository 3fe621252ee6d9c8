// Package layrinfer derives diagram records from the free-text description
// of an application. The heuristics are keyword based and deterministic.
package layrinfer

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/layr-arb/layr/layrgraph"
)

type componentPattern struct {
	re   *regexp.Regexp
	kind layrgraph.EntityKind
}

// Checked in order. Each pattern contributes at most one component, named
// after its first match.
var componentPatterns = []componentPattern{
	{regexp.MustCompile(`(?i)\b(web|ui|frontend|interface|client)\b`), layrgraph.KindUser},
	{regexp.MustCompile(`(?i)\b(api gateway|gateway|api management)\b`), layrgraph.KindService},
	{regexp.MustCompile(`(?i)\b(service|microservice|backend|server)\b`), layrgraph.KindService},
	{regexp.MustCompile(`(?i)\b(database|db|data store|repository|sql|nosql)\b`), layrgraph.KindDatabase},
	{regexp.MustCompile(`(?i)\b(external|third.party|integration|external system)\b`), layrgraph.KindExternal},
	{regexp.MustCompile(`(?i)\b(auth|security|authentication|authorization)\b`), layrgraph.KindService},
	{regexp.MustCompile(`(?i)\b(monitor|logging|observability|telemetry)\b`), layrgraph.KindService},
}

var fallbackComponents = []layrgraph.Entity{
	{Name: "User Interface", Kind: layrgraph.KindUser, Description: "The frontend component responsible for user interactions"},
	{Name: "Application Service", Kind: layrgraph.KindService, Description: "Core business logic and processing service"},
	{Name: "Database", Kind: layrgraph.KindDatabase, Description: "Persistent data storage"},
}

// title capitalizes each word. Casers are stateful so each call builds one.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// ComponentName turns a matched keyword into a display name.
func ComponentName(keyword string) string {
	lower := strings.ToLower(keyword)
	switch lower {
	case "ui", "db":
		return strings.ToUpper(keyword) + " Component"
	case "api":
		return strings.ToUpper(keyword) + " Gateway"
	}

	capitalized := title(lower)
	switch lower {
	case "database", "data store", "repository":
		return capitalized
	case "web", "frontend", "client", "interface":
		return capitalized + " Interface"
	case "service", "microservice", "backend", "server":
		return capitalized + " Service"
	default:
		return capitalized + " Component"
	}
}

func componentDescription(name string, kind layrgraph.EntityKind) string {
	lower := strings.ToLower(name)
	switch kind {
	case layrgraph.KindUser:
		return fmt.Sprintf("The %s provides the user-facing interface for the application, handling user interactions and presentation logic.", name)
	case layrgraph.KindService:
		switch {
		case strings.Contains(lower, "api") || strings.Contains(lower, "gateway"):
			return fmt.Sprintf("The %s routes and manages API requests, providing a unified entry point for client applications.", name)
		case strings.Contains(lower, "auth") || strings.Contains(lower, "security"):
			return fmt.Sprintf("The %s handles authentication, authorization, and security-related functionality.", name)
		default:
			return fmt.Sprintf("The %s implements core business logic and processing functionality.", name)
		}
	case layrgraph.KindDatabase:
		return fmt.Sprintf("The %s provides persistent data storage and retrieval capabilities.", name)
	case layrgraph.KindExternal:
		return fmt.Sprintf("The %s represents an external system or third-party service that the application integrates with.", name)
	default:
		return fmt.Sprintf("The %s is a key component in the system architecture.", name)
	}
}

// Components finds architecture components mentioned in the description and
// technology stack. A user interface, a service and a database are always
// present, added with generic names when nothing matched them.
func Components(description, techStack string) []layrgraph.Entity {
	text := strings.ToLower(description + " " + techStack)

	var comps []layrgraph.Entity
	has := func(pred func(layrgraph.Entity) bool) bool {
		for _, c := range comps {
			if pred(c) {
				return true
			}
		}
		return false
	}

	for _, p := range componentPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := ComponentName(m[1])
		if has(func(c layrgraph.Entity) bool { return strings.EqualFold(c.Name, name) }) {
			continue
		}
		comps = append(comps, layrgraph.Entity{
			Name:        name,
			Kind:        p.kind,
			Description: componentDescription(name, p.kind),
		})
	}

	for _, fb := range fallbackComponents {
		kind := fb.Kind
		if !has(func(c layrgraph.Entity) bool { return c.Kind == kind }) {
			comps = append(comps, fb)
		}
	}
	return comps
}
