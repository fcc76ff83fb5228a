package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/termsnake/internal/entity"
	"github.com/samdwyer/termsnake/internal/gamedata"
	"github.com/samdwyer/termsnake/internal/telemetry"
	"github.com/samdwyer/termsnake/internal/ui"
	"github.com/samdwyer/termsnake/internal/world"
)

// TickInterval is the time between simulation steps.
const TickInterval = 200 * time.Millisecond

// Game holds the entire game state. All fields are owned by the goroutine
// running Run; terminal events reach it through a channel.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	tracer   trace.Tracer
	rng      *rand.Rand

	boundary *world.Boundary
	snake    *entity.Snake
	food     *entity.FoodSpawner

	state        State
	session      string
	ticks        int
	score        int
	tickInterval time.Duration
	running      bool
	closeOnce    sync.Once
}

// New creates a new game on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(cfg, screen)
}

// NewWithScreen creates a new game on an existing tcell screen.
func NewWithScreen(cfg Config, s tcell.Screen) (*Game, error) {
	screen, err := ui.Wrap(s)
	if err != nil {
		return nil, err
	}
	return newGame(cfg, screen)
}

func newGame(cfg Config, screen *ui.Screen) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		screen.Close()
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("game")
	}

	return &Game{
		screen:       screen,
		renderer:     ui.NewRenderer(screen, palette),
		tracer:       tracer,
		rng:          rand.New(rand.NewSource(seed)),
		tickInterval: TickInterval,
		running:      true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is cancelled.
// The screen is closed before Run returns.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	g.start(ctx)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(g.tickInterval)
	defer ticker.Stop()

	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			before := g.state
			g.handleEvent(ctx, ev)
			if before == StateEnded && g.state == StateRunning {
				ticker.Reset(g.tickInterval)
			}

		case <-ticker.C:
			if g.step(ctx) == StateEnded {
				ticker.Stop()
			}
		}
	}

	return nil
}

// pollEvents forwards terminal events until the screen is closed or Run exits.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if isQuitKey(ev) {
		g.running = false
		return
	}

	switch g.state {
	case StateRunning:
		if dir, ok := directionForKey(ev.Key()); ok {
			g.snake.Rotation(dir)
		}
	case StateEnded:
		if isRestartKey(ev) {
			g.restart(ctx)
		}
	}
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Score returns the number of food items eaten since the last start.
func (g *Game) Score() int {
	return g.score
}

// Session returns the identifier of the current round.
func (g *Game) Session() string {
	return g.session
}

// Close cleans up game resources. It is safe to call more than once.
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		if g.screen != nil {
			g.screen.Close()
		}
	})
}

// logger returns a log entry tagged with the current round.
func (g *Game) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"session": g.session,
		"ticks":   g.ticks,
		"score":   g.score,
	})
}
