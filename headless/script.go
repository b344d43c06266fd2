package headless

import (
	"errors"
	"fmt"
	"io"
	"os"

	cfg "github.com/automoto/fps01/config"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Step holds its input for Ticks ticks. Mouse motion repeats every tick;
// presses are delivered on the first tick only.
type Step struct {
	Ticks int        `yaml:"ticks"`
	Hold  []string   `yaml:"hold"`
	Press []string   `yaml:"press"`
	Mouse mgl64.Vec2 `yaml:"mouse"`
}

// ScriptedInput replays a list of steps as an input source.
type ScriptedInput struct {
	steps []compiledStep
	index int
	left  int

	held    [cfg.ActionCount]bool
	presses []cfg.ActionID
	mouse   mgl64.Vec2
}

type compiledStep struct {
	ticks int
	hold  []cfg.ActionID
	press []cfg.ActionID
	mouse mgl64.Vec2
}

// NewScriptedInput validates steps and returns a source positioned before
// the first tick.
func NewScriptedInput(steps []Step) (*ScriptedInput, error) {
	s := &ScriptedInput{}
	for i, step := range steps {
		if step.Ticks <= 0 {
			return nil, fmt.Errorf("step %d: ticks must be positive", i)
		}
		c := compiledStep{ticks: step.Ticks, mouse: step.Mouse}
		var err error
		if c.hold, err = parseActions(step.Hold); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if c.press, err = parseActions(step.Press); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		s.steps = append(s.steps, c)
	}
	s.index = -1
	return s, nil
}

func parseActions(names []string) ([]cfg.ActionID, error) {
	out := make([]cfg.ActionID, 0, len(names))
	for _, n := range names {
		a, ok := cfg.ParseAction(n)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", n)
		}
		out = append(out, a)
	}
	return out, nil
}

// LoadScript reads a YAML list of steps.
func LoadScript(path string) (*ScriptedInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return DecodeScript(f)
}

func DecodeScript(r io.Reader) (*ScriptedInput, error) {
	var steps []Step
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&steps); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return NewScriptedInput(steps)
}

// DefaultScript walks, strafes, jumps, looks around and throws one of each
// projectile, then idles while things settle.
func DefaultScript() *ScriptedInput {
	s, err := NewScriptedInput([]Step{
		{Ticks: 90},
		{Ticks: 60, Hold: []string{"forward"}},
		{Ticks: 30, Hold: []string{"left"}},
		{Ticks: 1, Hold: []string{"jump"}},
		{Ticks: 60},
		{Ticks: 30, Mouse: mgl64.Vec2{-6, 0}},
		{Ticks: 1, Press: []string{"fire-primary"}},
		{Ticks: 20},
		{Ticks: 1, Press: []string{"fire-secondary"}},
		{Ticks: 180},
	})
	if err != nil {
		panic(err)
	}
	return s
}

// Next moves to the next tick. It reports false once the script is over.
func (s *ScriptedInput) Next() bool {
	for s.left == 0 {
		s.index++
		if s.index >= len(s.steps) {
			s.held = [cfg.ActionCount]bool{}
			s.presses = nil
			s.mouse = mgl64.Vec2{}
			return false
		}
		step := s.steps[s.index]
		s.left = step.ticks
		s.held = [cfg.ActionCount]bool{}
		for _, a := range step.hold {
			s.held[a] = true
		}
		s.presses = append(s.presses[:0], step.press...)
	}
	s.mouse = s.steps[s.index].mouse
	s.left--
	return true
}

// Ticks is the total length of the script.
func (s *ScriptedInput) Ticks() int {
	n := 0
	for _, step := range s.steps {
		n += step.ticks
	}
	return n
}

func (s *ScriptedInput) Held(a cfg.ActionID) bool {
	return s.held[a]
}

func (s *ScriptedInput) DrainPresses() []cfg.ActionID {
	p := s.presses
	s.presses = nil
	return p
}

func (s *ScriptedInput) DrainMouseMotion() mgl64.Vec2 {
	m := s.mouse
	s.mouse = mgl64.Vec2{}
	return m
}
