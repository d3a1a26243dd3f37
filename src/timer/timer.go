package timer

import (
	"context"
	"errors"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog/log"
)

// ErrQuit is returned by a pacer when the user asked to stop.
var ErrQuit = errors.New("quit requested")

// Pacer blocks between two simulation ticks.
type Pacer interface {
	Wait(ctx context.Context) error
}

type none struct{}

func (none) Wait(ctx context.Context) error {
	return ctx.Err()
}

// None returns a pacer that never blocks.
func None() Pacer {
	return none{}
}

// Interval sleeps a fixed duration per tick.
type Interval struct {
	timer    *time.Timer
	duration time.Duration
}

func NewInterval(d time.Duration) *Interval {
	t := time.NewTimer(d)
	t.Stop()
	return &Interval{timer: t, duration: d}
}

func (p *Interval) Wait(ctx context.Context) error {
	resetTimer(p.timer, p.duration)
	select {
	case <-ctx.Done():
		p.timer.Stop()
		return ctx.Err()
	case <-p.timer.C:
		return nil
	}
}

// Stops the timer and resets it.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}

// Keypress waits for a key per tick. q, Esc and Ctrl-C quit.
type Keypress struct{}

func (Keypress) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	char, key, err := keyboard.GetSingleKey()
	if err != nil {
		log.Error().Err(err).Msg("Error reading key")
		return err
	}
	if char == 'q' || char == 'Q' || key == keyboard.KeyEsc || key == keyboard.KeyCtrlC {
		return ErrQuit
	}
	return ctx.Err()
}
