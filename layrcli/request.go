package layrcli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"oss.terrastruct.com/xdefer"

	"github.com/layr-arb/layr/layrcompose"
	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrinfer"
	"github.com/layr-arb/layr/layrmarkup"
	"github.com/layr-arb/layr/layrtarget"
)

type DiagramType string

const (
	TypeArchitecture DiagramType = "architecture"
	TypeDeployment   DiagramType = "deployment"
	TypeSequence     DiagramType = "sequence"
	TypeDataModel    DiagramType = "data-model"
	TypeMarkup       DiagramType = "markup"
	TypeApplication  DiagramType = "application"
)

var DiagramTypes = []DiagramType{
	TypeArchitecture,
	TypeDeployment,
	TypeSequence,
	TypeDataModel,
	TypeMarkup,
	TypeApplication,
}

var typeAliases = map[string]DiagramType{
	"system":     TypeArchitecture,
	"data_model": TypeDataModel,
	"datamodel":  TypeDataModel,
	"erd":        TypeDataModel,
	"mermaid":    TypeMarkup,
}

func (t DiagramType) Normalize() DiagramType {
	s := strings.ToLower(strings.TrimSpace(string(t)))
	if alias, ok := typeAliases[s]; ok {
		return alias
	}
	return DiagramType(s)
}

// Request is one diagram to render. Which fields are read depends on Type.
type Request struct {
	Type  DiagramType `json:"type"`
	Title string      `json:"title,omitempty"`

	Components    []layrgraph.Component    `json:"components,omitempty"`
	Connections   []layrgraph.Connection   `json:"connections,omitempty"`
	Environments  []layrgraph.Environment  `json:"environments,omitempty"`
	Steps         []layrgraph.SequenceStep `json:"steps,omitempty"`
	Entities      []layrgraph.Entity       `json:"entities,omitempty"`
	Relationships []layrgraph.Connection   `json:"relationships,omitempty"`

	// Markup is diagram source for markup requests. When empty the source is
	// built from the records.
	Markup string `json:"markup,omitempty"`

	Application *layrinfer.Application `json:"application,omitempty"`
}

func DecodeRequest(b []byte) (_ *Request, err error) {
	defer xdefer.Errorf(&err, "failed to decode request")

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	req := &Request{}
	err = dec.Decode(req)
	if err != nil {
		return nil, err
	}
	return req, req.Validate()
}

// Validate normalizes the type and checks the request can be rendered.
func (req *Request) Validate() error {
	req.Type = req.Type.Normalize()
	switch req.Type {
	case "":
		return fmt.Errorf("missing diagram type, expected one of %s", typesString())
	case TypeApplication:
		if req.Application == nil {
			return fmt.Errorf("application requests need an application")
		}
	default:
		for _, t := range DiagramTypes {
			if req.Type == t {
				return nil
			}
		}
		return fmt.Errorf("unknown diagram type %q, expected one of %s", req.Type, typesString())
	}
	return nil
}

func typesString() string {
	var s []string
	for _, t := range DiagramTypes {
		s = append(s, string(t))
	}
	return strings.Join(s, ", ")
}

// entities is what an architecture is drawn from: components if any were
// given, entities otherwise.
func (req *Request) entities() []layrgraph.Entity {
	if len(req.Components) == 0 {
		return req.Entities
	}
	entities := make([]layrgraph.Entity, 0, len(req.Components))
	for _, c := range req.Components {
		entities = append(entities, c.Entity)
	}
	return entities
}

func (req *Request) markup() string {
	if req.Markup != "" {
		return req.Markup
	}
	switch {
	case len(req.Steps) > 0:
		return layrmarkup.Sequence(req.Steps)
	case len(req.Relationships) > 0:
		return layrmarkup.DataModel(req.Entities, req.Relationships)
	default:
		return layrmarkup.Architecture(req.entities(), req.Connections, req.Title)
	}
}

// Response is a rendered request. Exactly one of Result and Diagrams is set.
type Response struct {
	Result   *layrtarget.Result
	Diagrams *layrinfer.Diagrams
}

func (r *Response) Success() bool {
	if r.Diagrams != nil {
		return r.Diagrams.Success()
	}
	return r.Result != nil && r.Result.Success
}

// Files lists the paths of everything written.
func (r *Response) Files() []string {
	results := []*layrtarget.Result{r.Result}
	if r.Diagrams != nil {
		results = []*layrtarget.Result{r.Diagrams.System, r.Diagrams.DataModel, r.Diagrams.Markup}
	}
	var files []string
	for _, res := range results {
		if res != nil && res.Success && res.FilePath != "" {
			files = append(files, res.FilePath)
		}
	}
	return files
}

func (r *Response) MarshalJSON() ([]byte, error) {
	if r.Diagrams != nil {
		return json.Marshal(r.Diagrams)
	}
	return json.Marshal(r.Result)
}

// Render dispatches req to c.
func Render(ctx context.Context, c *layrcompose.Composer, req *Request) *Response {
	switch req.Type.Normalize() {
	case TypeApplication:
		var app layrinfer.Application
		if req.Application != nil {
			app = *req.Application
		}
		return &Response{Diagrams: layrinfer.Generate(ctx, c, app)}
	case TypeDeployment:
		return &Response{Result: c.Deployment(ctx, req.Environments, req.Components, req.Connections, req.Title)}
	case TypeSequence:
		return &Response{Result: c.Sequence(ctx, req.Steps, req.Title)}
	case TypeDataModel:
		return &Response{Result: c.DataModel(ctx, req.Entities, req.Relationships, req.Title)}
	case TypeMarkup:
		return &Response{Result: c.Markup(ctx, req.markup(), req.Title)}
	default:
		return &Response{Result: c.Architecture(ctx, req.entities(), req.Connections, req.Title)}
	}
}
