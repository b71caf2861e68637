package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pomoglass/internal/stats"
	"pomoglass/internal/telemetry"
)

// Engine is the Pomodoro state machine. It owns the countdown, the phase
// cycle, and today's counters, and is safe for concurrent use: every
// command and the background tick mutate state under one mutex.
type Engine struct {
	mu      sync.Mutex
	cfg     Config
	phase   Phase
	running bool

	remaining     int
	cycleProgress int
	inFlight      bool

	daily    stats.Daily
	store    StatsStore
	recorder Recorder
	logger   *telemetry.Logger

	runID    string
	lastTick time.Time
	options  Options
	stopCh   chan struct{}
	looping  bool
}

// New creates an Engine with defaults, loading today's counters from the
// store. A nil recorder disables the history ledger.
func New(store StatsStore, recorder Recorder, logger *telemetry.Logger, options Options) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = 250 * time.Millisecond
	}
	e := &Engine{
		cfg:      DefaultConfig(),
		phase:    PhaseFocus,
		store:    store,
		recorder: recorder,
		logger:   logger,
		runID:    uuid.NewString(),
		options:  options,
		stopCh:   make(chan struct{}),
	}
	e.daily = store.Load(time.Now())
	e.remaining = e.cfg.WorkSeconds
	return e
}

// Run launches the background tick loop. Calling it twice is a no-op.
func (e *Engine) Run() {
	e.mu.Lock()
	if e.looping {
		e.mu.Unlock()
		return
	}
	e.looping = true
	e.lastTick = time.Now()
	e.mu.Unlock()

	go e.loop()
}

// Stop terminates the tick loop. The engine state stays readable.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.looping {
		e.mu.Unlock()
		return
	}
	e.looping = false
	close(e.stopCh)
	e.mu.Unlock()
}

func (e *Engine) loop() {
	ticker := time.NewTicker(e.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stopCh:
			return
		case now := <-ticker.C:
			e.onTick(now)
		}
	}
}

// onTick folds wall-clock time into whole elapsed seconds. The monotonic
// component of lastTick absorbs scheduler jitter without drifting.
func (e *Engine) onTick(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		e.lastTick = now
		return
	}
	elapsed := int(now.Sub(e.lastTick) / time.Second)
	if elapsed <= 0 {
		return
	}
	e.lastTick = e.lastTick.Add(time.Duration(elapsed) * time.Second)
	e.daily.Rollover(now)
	e.advanceLocked(elapsed, now)
}

// Start applies optional duration overrides and begins (or resumes) the
// countdown. Remaining time carried over from a pause is preserved; the
// phase duration is installed only when no countdown is in flight.
func (e *Engine) Start(o Overrides) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.applyOverridesLocked(o)
	if !e.inFlight || e.remaining <= 0 {
		e.remaining = e.phaseDurationLocked(e.phase)
	}
	e.inFlight = true
	e.running = true
	e.lastTick = time.Now()
}

// Pause freezes the countdown, keeping the remaining time for resume.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.running = false
	e.lastTick = time.Now()
}

// Reset stops the timer and returns to a fresh Focus phase.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.running = false
	e.phase = PhaseFocus
	e.cycleProgress = 0
	e.remaining = e.cfg.WorkSeconds
	e.inFlight = false
	e.lastTick = time.Now()
}

// ApplyPreset installs a named duration bundle and resets to Focus.
// Unknown names and the Custom sentinel leave everything untouched.
func (e *Engine) ApplyPreset(name string) bool {
	preset, ok := LookupPreset(name)
	if !ok || preset == nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cfg.WorkSeconds = preset.Work * 60
	e.cfg.BreakSeconds = preset.Break * 60
	e.cfg.LongBreakSeconds = preset.LongBreak * 60
	e.cfg.LongBreakInterval = preset.Interval
	e.phase = PhaseFocus
	e.cycleProgress = 0
	e.remaining = e.cfg.WorkSeconds
	e.inFlight = false
	return true
}

// UpdateDurations applies positive overrides. While stopped, the remaining
// time snaps to the current phase's new duration so the display matches.
func (e *Engine) UpdateDurations(o Overrides) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.applyOverridesLocked(o)
	if !e.running {
		e.remaining = e.phaseDurationLocked(e.phase)
		e.inFlight = false
	}
}

// State returns a copy of the timer state.
func (e *Engine) State() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		WorkSeconds:       e.cfg.WorkSeconds,
		BreakSeconds:      e.cfg.BreakSeconds,
		LongBreakSeconds:  e.cfg.LongBreakSeconds,
		LongBreakInterval: e.cfg.LongBreakInterval,
		RemainingSeconds:  e.remaining,
		Running:           e.running,
		Phase:             e.phase,
		CycleProgress:     e.cycleProgress,
	}
}

// Stats returns a copy of today's counters.
func (e *Engine) Stats() stats.Daily {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.daily
}

// advance pushes the countdown forward by whole seconds, as if that much
// wall-clock time had passed while running. Commands never call it.
func (e *Engine) advance(seconds int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	e.advanceLocked(seconds, time.Now())
}

func (e *Engine) applyOverridesLocked(o Overrides) {
	if o.WorkMinutes > 0 {
		e.cfg.WorkSeconds = o.WorkMinutes * 60
	}
	if o.BreakMinutes > 0 {
		e.cfg.BreakSeconds = o.BreakMinutes * 60
	}
	if o.LongBreakMinutes > 0 {
		e.cfg.LongBreakSeconds = o.LongBreakMinutes * 60
	}
	if o.Interval > 0 {
		e.cfg.LongBreakInterval = o.Interval
	}
}

func (e *Engine) phaseDurationLocked(phase Phase) int {
	switch phase {
	case PhaseShortBreak:
		return e.cfg.BreakSeconds
	case PhaseLongBreak:
		return e.cfg.LongBreakSeconds
	default:
		return e.cfg.WorkSeconds
	}
}

// advanceLocked burns down one second at a time so every second lands in
// the right counter even when a phase boundary sits inside the window.
func (e *Engine) advanceLocked(seconds int, now time.Time) {
	for seconds > 0 {
		if e.remaining > 0 {
			e.remaining--
			if e.phase.IsBreak() {
				e.daily.BreakSeconds++
			} else {
				e.daily.FocusSeconds++
			}
			seconds--
		}
		if e.remaining <= 0 {
			e.completePhaseLocked(now)
		}
	}
}

func (e *Engine) completePhaseLocked(now time.Time) {
	finished := e.phase
	finishedSeconds := e.phaseDurationLocked(finished)

	if finished.IsBreak() {
		if finished == PhaseLongBreak {
			e.daily.LongBreaks++
		} else {
			e.daily.ShortBreaks++
		}
		e.phase = PhaseFocus
		e.remaining = e.cfg.WorkSeconds
	} else {
		e.daily.Count++
		e.cycleProgress++
		if e.cfg.LongBreakInterval > 0 && e.cycleProgress%e.cfg.LongBreakInterval == 0 {
			e.phase = PhaseLongBreak
			e.remaining = e.cfg.LongBreakSeconds
		} else {
			e.phase = PhaseShortBreak
			e.remaining = e.cfg.BreakSeconds
		}
	}

	if err := e.store.Save(e.daily); err != nil {
		e.logger.Error("save stats", map[string]any{"error": err.Error()})
	}
	if e.recorder != nil {
		err := e.recorder.RecordPhase(context.Background(), e.runID, string(finished), finishedSeconds, now)
		if err != nil {
			e.logger.Error("record phase", map[string]any{"error": err.Error(), "phase": string(finished)})
		}
	}
	e.logger.Info("phase complete", map[string]any{
		"phase": string(finished),
		"next":  string(e.phase),
		"count": e.daily.Count,
	})
}
