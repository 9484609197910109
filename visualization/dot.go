// Package visualization renders a state machine's transition graph in
// Graphviz DOT format.
package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/anggasct/tickfsm"
)

// DOTGenerator generates Graphviz DOT representations of a state machine's
// registered transition graph.
type DOTGenerator struct {
	machine *tickfsm.StateMachine
	options DOTOptions
}

// DOTOptions configures the DOT generation.
type DOTOptions struct {
	RankDirection    string // "TB", "LR", "BT", "RL"
	NodeShape        string
	HighlightCurrent bool
}

// DefaultDOTOptions returns sensible defaults for DOT generation.
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		RankDirection:    "LR",
		NodeShape:        "box",
		HighlightCurrent: true,
	}
}

// NewDOTGenerator creates a DOT generator for the given machine.
func NewDOTGenerator(machine *tickfsm.StateMachine, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}
	return &DOTGenerator{machine: machine, options: opts}
}

// Generate creates a DOT representation of the machine's transition graph.
// Sentinel states render with distinct shapes, conditioned transitions as
// dashed edges, and the restart edge from the exit sentinel back to the
// enter sentinel as a dotted edge.
func (g *DOTGenerator) Generate() string {
	var dot strings.Builder

	dot.WriteString(fmt.Sprintf("digraph %q {\n", g.machine.Name()))
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")

	g.generateStates(&dot)
	g.generateTransitions(&dot)

	dot.WriteString("}\n")
	return dot.String()
}

// generateStates emits one node per distinct state, in first-seen
// registration order.
func (g *DOTGenerator) generateStates(dot *strings.Builder) {
	dot.WriteString("  // States\n")

	seen := make(map[tickfsm.State]bool)
	var states []tickfsm.State
	collect := func(s tickfsm.State) {
		if !seen[s] {
			seen[s] = true
			states = append(states, s)
		}
	}
	g.machine.EachTransition(func(t *tickfsm.Transition) {
		collect(t.Source())
		collect(t.Target())
	})

	for _, s := range states {
		g.generateStateNode(dot, s)
	}
	dot.WriteString("\n")
}

func (g *DOTGenerator) generateStateNode(dot *strings.Builder, s tickfsm.State) {
	shape := g.options.NodeShape
	fillColor := "lightblue"

	switch s {
	case tickfsm.Enter:
		shape = "circle"
		fillColor = "lightgreen"
	case tickfsm.Exit:
		shape = "doublecircle"
		fillColor = "lightcoral"
	case tickfsm.Any:
		shape = "diamond"
		fillColor = "lightyellow"
	}

	extra := ""
	if g.options.HighlightCurrent && s == g.machine.CurrentState() {
		extra = " penwidth=2"
	}

	dot.WriteString(fmt.Sprintf("  %q [shape=%s style=\"filled\" fillcolor=%s%s];\n",
		tickfsm.StateName(s), shape, fillColor, extra))
}

// generateTransitions emits one edge per registered transition, in
// registration order.
func (g *DOTGenerator) generateTransitions(dot *strings.Builder) {
	dot.WriteString("  // Transitions\n")

	g.machine.EachTransition(func(t *tickfsm.Transition) {
		style := "solid"
		switch {
		case t.Conditioned():
			style = "dashed"
		case t.Source() == tickfsm.Exit && t.Target() == tickfsm.Enter:
			// The machine's implicit restart wiring.
			style = "dotted"
		}
		dot.WriteString(fmt.Sprintf("  %q -> %q [style=%s];\n",
			tickfsm.StateName(t.Source()), tickfsm.StateName(t.Target()), style))
	})
}

// GenerateToFile writes the DOT representation to a file.
func (g *DOTGenerator) GenerateToFile(filename string) error {
	return os.WriteFile(filename, []byte(g.Generate()), 0644)
}

// GenerateSVG renders the graph to SVG by invoking the Graphviz dot command.
func (g *DOTGenerator) GenerateSVG() (string, error) {
	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(g.Generate())

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}
	return out.String(), nil
}
