package layrmarkup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/diff"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrmarkup"
)

func assertString(t *testing.T, exp, got string) {
	t.Helper()

	ds, err := diff.Strings(exp, got)
	if err != nil {
		t.Fatal(err)
	}
	if ds != "" {
		t.Fatalf("exp != got:\n%s", ds)
	}
}

func TestArchitecture(t *testing.T) {
	t.Parallel()

	entities := []layrgraph.Entity{
		{Name: "User", Kind: layrgraph.KindUser},
		{Name: "API Gateway", Kind: layrgraph.KindService},
		{Name: "Postgres", Kind: layrgraph.KindDatabase},
		{Name: "Stripe", Kind: layrgraph.KindExternal},
	}
	connections := []layrgraph.Connection{
		{From: "User", To: "API Gateway", Description: "User Requests"},
		{From: "API Gateway", To: "Postgres", Description: "Data Operations"},
		{From: "API Gateway", To: "Stripe"},
		{From: "API Gateway", To: "Redis", Description: "dropped"},
	}

	exp := `graph TD
    title['Shop Architecture']
    
    comp0[/'User'/]
    comp1['API Gateway']
    comp2[('Postgres')]
    comp3>'Stripe']
    comp0 -- User Requests --> comp1
    comp1 -- Data Operations --> comp2
    comp1 --> comp3
    
    style title fill:#f9f,stroke:#333,stroke-width:2px
`
	assertString(t, exp, layrmarkup.Architecture(entities, connections, "Shop"))
}

func TestArchitectureQuotes(t *testing.T) {
	t.Parallel()

	got := layrmarkup.Architecture([]layrgraph.Entity{{Name: "Bob's DB", Kind: "database"}}, nil, "X")
	assert.Contains(t, got, "comp0[('Bob#39;s DB')]")

	got = layrmarkup.Architecture(nil, nil, "Shop [beta] (v2)")
	assert.Contains(t, got, "title['Shop [beta] (v2) Architecture']")
}

func TestSequence(t *testing.T) {
	t.Parallel()

	steps := []layrgraph.SequenceStep{
		{From: "User", To: "API", Action: "login"},
		{From: "API", To: "API", Action: "validate", Notes: "checks token"},
		{From: "API", To: "User", Action: "ok", Notes: "200"},
		{From: "", To: "API", Action: "lost"},
	}
	exp := `sequenceDiagram
    participant P0 as User
    participant P1 as API
    P0->>P1: login
    P1->>P1: validate
    Note right of P1: checks token
    P1->>P0: ok
    Note over P1,P0: 200
`
	assertString(t, exp, layrmarkup.Sequence(steps))
}

func TestSequenceTrimsActors(t *testing.T) {
	t.Parallel()

	steps := []layrgraph.SequenceStep{
		{From: "User ", To: "API", Action: "login"},
		{From: " API", To: "User", Action: "ok"},
		{From: "User", To: " ", Action: "lost"},
	}
	exp := `sequenceDiagram
    participant P0 as User
    participant P1 as API
    P0->>P1: login
    P1->>P0: ok
`
	assertString(t, exp, layrmarkup.Sequence(steps))
}

func TestDataModel(t *testing.T) {
	t.Parallel()

	entities := []layrgraph.Entity{
		{Name: "User", Attributes: []layrgraph.Attribute{
			{Name: "id", Type: "int", Key: true},
			{Name: "email"},
		}},
		{Name: "Order Item"},
	}
	relationships := []layrgraph.Connection{
		{From: "User", To: "Order Item"},
		{From: "Order Item", To: "User", Kind: "inheritance"},
		{From: "User", To: "Ghost", Kind: "1:1"},
	}
	exp := `erDiagram
    User {
        int id PK
        string email
    }
    Order_Item {
    }
    User ||--o{ Order_Item : "1:N"
    Order_Item |o..o| User : "inheritance"
`
	assertString(t, exp, layrmarkup.DataModel(entities, relationships))
}

func TestDocument(t *testing.T) {
	t.Parallel()

	doc := layrmarkup.Document("Shop Architecture", "graph TD\n    a --> b")
	assertString(t, "# Shop Architecture\n\n```mermaid\ngraph TD\n    a --> b\n```\n", doc)

	html, err := layrmarkup.HTML(doc)
	assert.NoError(t, err)
	assert.Contains(t, html, "<h1>Shop Architecture</h1>")
	assert.Contains(t, html, `<code class="language-mermaid">`)
	assert.Contains(t, html, "a --&gt; b")
}
