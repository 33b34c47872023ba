package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-augment/pkg/augment/measure"
	"github.com/askiada/go-augment/pkg/augment/model"
)

// DOTDrawer is a drawer that writes the operator chain as a Graphviz DOT file.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer writing to dotFileName.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
	}
}

// AddOperator adds an operator to the graph. Its shape depends on its kind.
func (d *DOTDrawer) AddOperator(op *model.OperatorInfo) error {
	err := d.graph.AddVertex(op.Name, graph.VertexAttribute("shape", shapeOf(op.Kind)))
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", op.Name)
	}

	return nil
}

func shapeOf(kind model.OperatorKind) string {
	switch kind {
	case model.PhotometricKind:
		return "ellipse"
	case model.GeometricKind:
		return "box"
	default:
		return "circle"
	}
}

// AddLink adds a link between parent and child operators.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// Draw creates a DOT file with the operator graph.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = d.Write(file)
	if err != nil {
		return errors.Wrapf(err, "unable to write dot file %s", d.dotFileName)
	}

	return nil
}

// Write renders the operator graph to wrt.
func (d *DOTDrawer) Write(wrt io.Writer) error {
	return dot(d.graph, wrt)
}

const maxRGB = 240

// AddMeasure labels every operator with its average duration and colours it
// from blue for the cheapest to red for the most expensive.
// The end vertex is labelled with the average duration of a whole call.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	ranking := []measure.Ranking{}
	for _, rk := range measure.Slowest(msr) {
		if rk.Name == model.EndOperator.Name {
			err := d.setAttribute(rk.Name, "xlabel", "per call: "+rk.Metric.AVGDuration().String())
			if err != nil {
				return err
			}

			continue
		}
		ranking = append(ranking, rk)
	}
	if len(ranking) == 0 {
		return nil
	}

	maxValue := ranking[0].Metric.AVGDuration()
	minValue := ranking[len(ranking)-1].Metric.AVGDuration()

	for _, rk := range ranking {
		curr := rk.Metric.AVGDuration()
		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(curr-minValue) / float64(maxValue-minValue)
		}

		red := maxRGB * fraction
		blue := maxRGB - red

		colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		xlabel := curr.String()
		if rk.Metric.Samples() > 0 {
			xlabel += ", per sample: " + rk.Metric.AVGSampleDuration().String()
		}

		err = d.setAttribute(rk.Name, "color", colour.ToHEX().String())
		if err != nil {
			return err
		}
		err = d.setAttribute(rk.Name, "xlabel", xlabel)
		if err != nil {
			return err
		}
	}

	return nil
}

// setAttribute sets an attribute of an operator, ignoring operators absent from the graph.
func (d *DOTDrawer) setAttribute(name, key, value string) error {
	_, properties, err := d.graph.VertexWithProperties(name)
	if errors.Is(err, graph.ErrVertexNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "unable to get vertex %s properties", name)
	}

	properties.Attributes[key] = value

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer) error {
	desc, err := generateDOT(g)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T]) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   map[string]string{"rankdir": "LR"},
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]K, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}
	sort.Slice(vertices, func(i, j int) bool {
		return fmt.Sprint(vertices[i]) < fmt.Sprint(vertices[j])
	})

	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))
		for k, v := range sourceProperties.Attributes {
			sourceAttributes[k] = v
		}

		if xlabel, ok := sourceAttributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceAttributes, "xlabel")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency, edge := range adjacencyMap[vertex] {
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
