package weather

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/infoboard/internal/geo"
	"github.com/julianstephens/infoboard/internal/logger"
)

const (
	noteLocateFailed   = "定位失败：使用默认城市获取天气。"
	noteUnsupported    = "不支持定位：使用默认城市获取天气。"
	noteCoordsFallback = "定位或网络失败，已回退到默认城市（若仍失败请检查 API Key）。"
	noteCityFailed     = "天气请求失败，请检查网络或 API Key。"
	noteManualRefresh  = "手动刷新中…"
)

var errNoCityProvider = errors.New("no city weather provider configured")

// CoordinateProvider fetches weather for a position.
type CoordinateProvider interface {
	ByCoordinates(ctx context.Context, lat, lon float64) (Payload, error)
}

// CityProvider fetches weather for a named city.
type CityProvider interface {
	ByCity(ctx context.Context, city string) (Payload, error)
}

// Config wires the collaborators of an Acquisition.
type Config struct {
	Locator     geo.Locator
	GeoOptions  geo.Options
	Coordinates CoordinateProvider
	City        CityProvider
	DefaultCity string
	Now         func() time.Time
	NewCycleID  func() string
}

// Event is the completion of a Task. Every event carries the generation of
// the acquisition cycle that produced it.
type Event interface {
	generation() uint64
}

// Located reports a successful position lookup.
type Located struct {
	Generation uint64
	Position   geo.Position
}

// LocateFailed reports a failed or impossible position lookup.
type LocateFailed struct {
	Generation uint64
	Err        error
}

// Fetched carries a weather payload from the named source.
type Fetched struct {
	Generation uint64
	Source     Source
	Payload    Payload
}

// FetchFailed reports a provider failure for the named source.
type FetchFailed struct {
	Generation uint64
	Source     Source
	Err        error
}

func (e Located) generation() uint64      { return e.Generation }
func (e LocateFailed) generation() uint64 { return e.Generation }
func (e Fetched) generation() uint64      { return e.Generation }
func (e FetchFailed) generation() uint64  { return e.Generation }

// Task is a blocking step that runs off the state owner's loop and reports
// back with an Event. Tasks never touch State.
type Task func(ctx context.Context) Event

// Acquisition owns the weather State. All mutation goes through Start and
// Apply, which must be called from one goroutine.
type Acquisition struct {
	cfg   Config
	state State
}

// NewAcquisition returns an Idle acquisition.
func NewAcquisition(cfg Config) *Acquisition {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewCycleID == nil {
		cfg.NewCycleID = uuid.NewString
	}
	if cfg.GeoOptions == (geo.Options{}) {
		cfg.GeoOptions = geo.DefaultOptions()
	}
	return &Acquisition{cfg: cfg}
}

// State returns the current state.
func (a *Acquisition) State() State { return a.state }

// Start begins a new cycle from any state. The previous cycle, if still in
// flight, becomes stale and its completions are discarded.
func (a *Acquisition) Start() Task {
	prev := a.state
	a.state = State{
		Phase:      Locating,
		Generation: prev.Generation + 1,
		Cycle:      a.cfg.NewCycleID(),
		UpdatedAt:  prev.UpdatedAt,
	}
	a.logTransition(prev.Phase, "start")
	return a.locateTask(a.state.Generation)
}

// Retry is the user-initiated restart, available from every state.
func (a *Acquisition) Retry() Task {
	task := a.Start()
	a.state.Note = noteManualRefresh
	return task
}

// Apply is the single transition function. It returns the follow-up task, or
// nil when the cycle reached Ready or Failed, and whether ev was accepted.
// Events from an older generation, or that do not fit the current phase, are
// dropped without touching state.
func (a *Acquisition) Apply(ev Event) (Task, bool) {
	if ev == nil {
		return nil, false
	}
	if ev.generation() != a.state.Generation {
		logger.Debug("discarding stale weather completion",
			"generation", ev.generation(), "current", a.state.Generation, "cycle", a.state.Cycle)
		return nil, false
	}

	prev := a.state.Phase
	switch e := ev.(type) {
	case Located:
		if prev != Locating {
			return a.reject(ev)
		}
		pos := e.Position
		a.state.Position = &pos
		if a.cfg.Coordinates == nil {
			a.state.Note = noteLocateFailed
			a.toCity()
			a.logTransition(prev, "no coordinate provider")
			return a.cityTask(a.state.Generation), true
		}
		a.state.Phase = Fetching
		a.state.Source = SourceCoordinates
		a.logTransition(prev, "located")
		return a.coordinatesTask(a.state.Generation, pos), true

	case LocateFailed:
		if prev != Locating {
			return a.reject(ev)
		}
		a.state.LocateReason = locateReason(e.Err)
		if geo.CodeOf(e.Err) == geo.CodeUnsupported {
			a.state.Note = noteUnsupported
		} else {
			a.state.Note = noteLocateFailed
		}
		a.toCity()
		logger.Warn("geolocation failed", "cycle", a.state.Cycle, "reason", a.state.LocateReason, "error", e.Err)
		a.logTransition(prev, "locate failed")
		return a.cityTask(a.state.Generation), true

	case Fetched:
		if prev != Fetching || e.Source != a.state.Source {
			return a.reject(ev)
		}
		p := e.Payload
		a.state.Phase = Ready
		a.state.Payload = &p
		a.state.UpdatedAt = a.cfg.Now()
		if a.state.Note == noteManualRefresh {
			a.state.Note = ""
		}
		a.logTransition(prev, "fetched")
		return nil, true

	case FetchFailed:
		if prev != Fetching || e.Source != a.state.Source {
			return a.reject(ev)
		}
		logger.Warn("weather fetch failed", "cycle", a.state.Cycle, "source", e.Source, "error", e.Err)
		if e.Source == SourceCoordinates {
			a.state.Note = noteCoordsFallback
			a.toCity()
			a.logTransition(prev, "coordinate fetch failed")
			return a.cityTask(a.state.Generation), true
		}
		a.state.Phase = Failed
		a.state.Reason = FailureReason(e.Err)
		a.state.Note = noteCityFailed
		a.logTransition(prev, "city fetch failed")
		return nil, true
	}
	return a.reject(ev)
}

// Drive runs task and every follow-up task to completion on the calling
// goroutine and returns the final state.
func (a *Acquisition) Drive(ctx context.Context, task Task) State {
	for task != nil {
		ev := task(ctx)
		task, _ = a.Apply(ev)
	}
	return a.state
}

// Run starts a cycle and drives it to completion.
func (a *Acquisition) Run(ctx context.Context) State {
	return a.Drive(ctx, a.Start())
}

func (a *Acquisition) toCity() {
	a.state.Phase = Fetching
	a.state.Source = SourceCity
	a.state.City = a.cfg.DefaultCity
}

func (a *Acquisition) reject(ev Event) (Task, bool) {
	logger.Debug("discarding out-of-phase weather completion",
		"phase", a.state.Phase, "event", ev, "cycle", a.state.Cycle)
	return nil, false
}

func (a *Acquisition) logTransition(from Phase, cause string) {
	logger.Info("weather transition",
		"cycle", a.state.Cycle,
		"generation", a.state.Generation,
		"from", from,
		"to", a.state.Phase,
		"source", a.state.Source,
		"cause", cause)
}

func (a *Acquisition) locateTask(gen uint64) Task {
	locator, opts := a.cfg.Locator, a.cfg.GeoOptions
	return func(ctx context.Context) Event {
		pos, err := geo.Locate(ctx, locator, opts)
		if err != nil {
			return LocateFailed{Generation: gen, Err: err}
		}
		return Located{Generation: gen, Position: pos}
	}
}

func (a *Acquisition) coordinatesTask(gen uint64, pos geo.Position) Task {
	provider := a.cfg.Coordinates
	return func(ctx context.Context) Event {
		p, err := provider.ByCoordinates(ctx, pos.Latitude, pos.Longitude)
		if err != nil {
			return FetchFailed{Generation: gen, Source: SourceCoordinates, Err: err}
		}
		if pos.Label != "" {
			p.Location = pos.Label
		}
		return Fetched{Generation: gen, Source: SourceCoordinates, Payload: p}
	}
}

func (a *Acquisition) cityTask(gen uint64) Task {
	provider, city := a.cfg.City, a.cfg.DefaultCity
	return func(ctx context.Context) Event {
		if provider == nil {
			return FetchFailed{Generation: gen, Source: SourceCity, Err: errNoCityProvider}
		}
		p, err := provider.ByCity(ctx, city)
		if err != nil {
			return FetchFailed{Generation: gen, Source: SourceCity, Err: err}
		}
		return Fetched{Generation: gen, Source: SourceCity, Payload: p}
	}
}

func locateReason(err error) string {
	var gerr *geo.Error
	if errors.As(err, &gerr) {
		return gerr.Reason()
	}
	return (&geo.Error{Code: geo.CodeUnknown}).Reason()
}
