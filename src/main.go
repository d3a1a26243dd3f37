package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"scanvator/src/config"
	"scanvator/src/logger"
	"scanvator/src/scenario"
	"scanvator/src/sim"
	"scanvator/src/timer"
	"scanvator/src/utils"
)

func main() {
	name := flag.String("scenario", "", "Built-in scenario to run (default: all)")
	file := flag.String("file", "", "YAML scenario file to run")
	list := flag.Bool("list", false, "List built-in scenarios and exit")
	ticks := flag.Int("ticks", 0, "Override the number of ticks to simulate")
	verbose := flag.Bool("v", false, "Log every car status at debug level")
	step := flag.Bool("step", false, "Advance one tick per keypress")
	interval := flag.Duration("interval", 0, "Delay between ticks (overrides "+config.EnvTickInterval+")")
	envPath := flag.String("env", ".env", "Driver settings file")
	flag.Parse()

	if *list {
		for _, n := range scenario.Names() {
			fmt.Println(n)
		}
		return
	}

	env, err := config.LoadEnv(*envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level := env.LogLevel
	if *verbose {
		level = "debug"
	}
	closeLog, err := logger.Init(level, env.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()

	if *interval > 0 {
		env.TickInterval = *interval
	}
	var pacer timer.Pacer = timer.None()
	switch {
	case *step:
		pacer = timer.Keypress{}
	case env.TickInterval > 0:
		pacer = timer.NewInterval(env.TickInterval)
	}

	scenarios, err := selectScenarios(*name, *file)
	if err != nil {
		log.Error().Err(err).Msg("Could not load scenario")
		closeLog()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := 0
	for _, s := range scenarios {
		if *ticks > 0 {
			s.Ticks = *ticks
		}
		if err := run(ctx, s, pacer); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, timer.ErrQuit) {
				log.Info().Msg("Stopped")
				break
			}
			log.Error().Err(err).Str("scenario", s.Name).Msg("Scenario failed")
			failed++
		}
	}
	if failed > 0 {
		log.Error().Int("failed", failed).Int("total", len(scenarios)).Msg("Scenarios failed")
		stop()
		closeLog()
		os.Exit(1)
	}
}

func selectScenarios(name, file string) ([]*scenario.Scenario, error) {
	switch {
	case file != "":
		s, err := scenario.LoadFile(file)
		if err != nil {
			return nil, err
		}
		return []*scenario.Scenario{s}, nil
	case name != "":
		s, err := scenario.Builtin(name)
		if err != nil {
			return nil, err
		}
		return []*scenario.Scenario{s}, nil
	}
	var all []*scenario.Scenario
	for _, n := range scenario.Names() {
		s, err := scenario.Builtin(n)
		if err != nil {
			return nil, err
		}
		all = append(all, s)
	}
	return all, nil
}

func run(ctx context.Context, s *scenario.Scenario, pacer timer.Pacer) error {
	sys, err := s.NewSystem(sim.LogSink{})
	if err != nil {
		return err
	}
	log.Info().Str("scenario", s.Name).Str("description", s.Description).Int("ticks", s.Ticks).Msg("Running scenario")

	schedule := s.Schedule()
	for range s.Ticks {
		if err := sys.Inject(schedule[sys.Tick()]); err != nil {
			log.Warn().Err(err).Int("tick", sys.Tick()).Msg("Some calls were rejected")
		}
		sys.Step()
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
	}

	for id := range sys.Cars() {
		fmt.Printf("%-26s car %d: %s\n", s.Name, id, utils.FormatFloors(sys.Visited(id)))
	}
	stats := sys.Stats()
	fmt.Printf("%-26s ticks=%d queued=%d assigned=%d aged=%d max-assign-wait=%d max-pickup-wait=%d\n",
		s.Name, stats.Tick, stats.Queued, stats.Assigned, stats.Aged, stats.MaxAssignWait, stats.MaxPickupWait)
	return s.Verify(sys)
}
