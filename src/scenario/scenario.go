// Package scenario loads tick schedules and expected visit logs from YAML.
package scenario

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"scanvator/src/config"
	"scanvator/src/sim"
	"scanvator/src/types"
)

//go:embed builtin/*.yaml
var builtin embed.FS

type Floors struct {
	Bottom int `yaml:"bottom"`
	Top    int `yaml:"top"`
}

type CallEntry struct {
	Tick        int    `yaml:"tick"`
	Origin      int    `yaml:"origin"`
	Dir         string `yaml:"dir"`
	Destination int    `yaml:"destination"`
}

// Scenario is one YAML document. Load fills in defaults and checks it.
type Scenario struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Floors      *Floors     `yaml:"floors"`
	Start       []int       `yaml:"start"`
	Visits      string      `yaml:"visits"`
	Ticks       int         `yaml:"ticks"`
	Starvation  *int        `yaml:"starvation"`
	Calls       []CallEntry `yaml:"calls"`
	Expect      [][]int     `yaml:"expect"`

	cfg      config.Config
	schedule sim.Schedule
}

func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: decoding scenario: %v", types.ErrInvalidConfig, err)
	}
	if err := s.prepare(); err != nil {
		if s.Name != "" {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		return nil, err
	}
	return &s, nil
}

func LoadFile(p string) (*Scenario, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}
	return s, nil
}

func (s *Scenario) prepare() error {
	cfg := config.Default()
	if s.Floors != nil {
		cfg.Building = config.Building{Bottom: s.Floors.Bottom, Top: s.Floors.Top}
	}
	if len(s.Start) > 0 {
		cfg.StartFloors = s.Start
	}
	visits, err := config.ParseVisitMode(s.Visits)
	if err != nil {
		return err
	}
	cfg.Visits = visits
	if s.Starvation != nil {
		cfg.StarvationTicks = *s.Starvation
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if s.Ticks == 0 {
		s.Ticks = config.SimTicks
	}
	if s.Ticks < 0 {
		return fmt.Errorf("%w: negative tick count %d", types.ErrInvalidConfig, s.Ticks)
	}
	if len(s.Expect) > 0 && len(s.Expect) != cfg.NumCars() {
		return fmt.Errorf("%w: %d expected visit lists for %d cars", types.ErrInvalidConfig, len(s.Expect), cfg.NumCars())
	}

	schedule := sim.Schedule{}
	for i, c := range s.Calls {
		dir, err := types.ParseDirection(c.Dir)
		if err != nil {
			return fmt.Errorf("call %d: %w", i, err)
		}
		if c.Tick < 0 {
			return fmt.Errorf("%w: call %d at negative tick %d", types.ErrInvalidConfig, i, c.Tick)
		}
		schedule[c.Tick] = append(schedule[c.Tick], types.Call{Origin: c.Origin, Dir: dir, Destination: c.Destination})
	}

	s.cfg = cfg
	s.schedule = schedule
	return nil
}

func (s *Scenario) Config() config.Config {
	cfg := s.cfg
	cfg.StartFloors = slices.Clone(cfg.StartFloors)
	return cfg
}

func (s *Scenario) Schedule() sim.Schedule {
	return s.schedule
}

// NewSystem builds a fresh system for the scenario without running it.
func (s *Scenario) NewSystem(sink types.EventSink) (*sim.System, error) {
	return sim.New(s.Config(), sink)
}

// Run plays the whole schedule on a fresh system and returns it for inspection.
// Calls rejected on ingestion are reported but do not stop the run.
func (s *Scenario) Run(sink types.EventSink) (*sim.System, error) {
	sys, err := s.NewSystem(sink)
	if err != nil {
		return nil, err
	}
	return sys, sys.Run(s.schedule, s.Ticks)
}

// Verify compares every car's visited log with the expected one.
// A scenario without expectations always passes.
func (s *Scenario) Verify(sys *sim.System) error {
	for id, want := range s.Expect {
		if got := sys.Visited(id); !slices.Equal(got, want) {
			return fmt.Errorf("%w: scenario %q car %d visited %v, expected %v", types.ErrExpectationFailed, s.Name, id, got, want)
		}
	}
	return nil
}

// Names lists the built-in scenarios in file order.
func Names() []string {
	files, err := fs.Glob(builtin, "builtin/*.yaml")
	if err != nil {
		panic(err)
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = strings.TrimSuffix(path.Base(f), ".yaml")
	}
	return names
}

func Builtin(name string) (*Scenario, error) {
	f, err := builtin.Open(path.Join("builtin", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownScenario, name)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, err
	}
	s.Name = name
	return s, nil
}
