package layrinfer

import (
	"regexp"
	"strings"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/lib/orderedset"
)

var entityPattern = regexp.MustCompile(`(?i)\b(customer|account|order|product|item|transaction|payment|invoice|subscription|content|article|post|comment|review)\b`)

func attrs(pairs ...string) []layrgraph.Attribute {
	out := make([]layrgraph.Attribute, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, layrgraph.Attribute{Name: pairs[i], Type: pairs[i+1]})
	}
	return out
}

func withKey(rest []layrgraph.Attribute) []layrgraph.Attribute {
	return append([]layrgraph.Attribute{{Name: "id", Type: "UUID", Key: true}}, rest...)
}

// commonEntities are present in every inferred data model.
func commonEntities() []layrgraph.Entity {
	return []layrgraph.Entity{
		{
			Name: "User",
			Kind: layrgraph.KindEntity,
			Attributes: withKey(attrs(
				"username", "String",
				"email", "String",
				"password", "String",
				"createdAt", "Timestamp",
			)),
		},
		{
			Name: "Profile",
			Kind: layrgraph.KindEntity,
			Attributes: withKey(attrs(
				"userId", "UUID",
				"firstName", "String",
				"lastName", "String",
				"bio", "Text",
				"avatar", "String",
			)),
		},
	}
}

func entityAttributes(keyword string) []layrgraph.Attribute {
	a := withKey(attrs(
		"name", "String",
		"description", "Text",
		"createdAt", "Timestamp",
		"updatedAt", "Timestamp",
	))
	switch keyword {
	case "order":
		a = append(a, attrs(
			"customerId", "UUID",
			"orderDate", "Date",
			"status", "String",
			"totalAmount", "Decimal",
		)...)
	case "product":
		a = append(a, attrs(
			"price", "Decimal",
			"category", "String",
			"inStock", "Boolean",
		)...)
	case "post", "article", "content":
		a = append(a, attrs(
			"title", "String",
			"body", "Text",
			"authorId", "UUID",
			"publishedAt", "Timestamp",
		)...)
	}
	return a
}

// Entities returns the common User and Profile entities followed by one
// entity per distinct domain noun in first-mention order.
func Entities(description, dataModel string) []layrgraph.Entity {
	entities := commonEntities()
	names := orderedset.New[string]()
	for _, e := range entities {
		names.Add(strings.ToLower(e.Name))
	}

	text := strings.ToLower(description + " " + dataModel)
	for _, m := range entityPattern.FindAllStringSubmatch(text, -1) {
		keyword := m[1]
		if !names.Add(keyword) {
			continue
		}
		entities = append(entities, layrgraph.Entity{
			Name:       title(keyword),
			Kind:       layrgraph.KindEntity,
			Attributes: entityAttributes(keyword),
		})
	}
	return entities
}

// foreignKey reports whether e has an attribute referencing target by
// name, as targetId or target_id.
func foreignKey(e layrgraph.Entity, target string) bool {
	target = strings.ToLower(target)
	for _, a := range e.Attributes {
		n := strings.ToLower(a.Name)
		if n == target+"id" || n == target+"_id" {
			return true
		}
	}
	return false
}

// Relationships infers relationships from foreign key attributes, falling
// back to well known pairs: one user has one profile and many posts, orders
// and products are many to many.
func Relationships(entities []layrgraph.Entity) []layrgraph.Connection {
	var set edgeSet
	for i, e1 := range entities {
		for j, e2 := range entities {
			if i == j {
				continue
			}
			if foreignKey(e1, e2.Name) {
				set.add(layrgraph.Connection{From: e1.Name, To: e2.Name, Kind: "N:1"})
				continue
			}
			if foreignKey(e2, e1.Name) {
				set.add(layrgraph.Connection{From: e2.Name, To: e1.Name, Kind: "N:1"})
				continue
			}

			n1, n2 := strings.ToLower(e1.Name), strings.ToLower(e2.Name)
			switch {
			case n1 == "user" && n2 == "profile":
				set.add(layrgraph.Connection{From: e1.Name, To: e2.Name, Kind: "1:1"})
			case n1 == "user" && (n2 == "post" || n2 == "content" || n2 == "article"):
				set.add(layrgraph.Connection{From: e1.Name, To: e2.Name, Kind: "1:N"})
			case n1 == "order" && n2 == "product":
				set.add(layrgraph.Connection{From: e1.Name, To: e2.Name, Kind: "N:M"})
			case n1 == "product" && n2 == "order":
				set.add(layrgraph.Connection{From: e2.Name, To: e1.Name, Kind: "N:M"})
			}
		}
	}
	return set.edges
}
