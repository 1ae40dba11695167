// internal/term/loop.go
package term

import (
	"context"
	"log"
	"time"

	"go-hive-defense/internal/app"
	"go-hive-defense/internal/config"
	"go-hive-defense/internal/level"

	"github.com/gdamore/tcell/v2"
)

// Loader загружает сессию по номеру уровня.
type Loader func(levelNum int) (*app.Game, error)

// Loop связывает сессию, ввод и тики по app.Ticker в терминале.
type Loop struct {
	screen tcell.Screen
	load   Loader
	ticker *app.Ticker
	view   *Renderer
	game   *app.Game
	ctrl   *Controller
}

// NewLoop загружает уровень levelNum и готовит цикл.
func NewLoop(screen tcell.Screen, load Loader, levelNum int) (*Loop, error) {
	l := &Loop{
		screen: screen,
		load:   load,
		ticker: app.NewTicker(config.TickLength, config.MaxCatchupTicks),
		view:   NewRenderer(screen),
	}
	if err := l.start(levelNum); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Loop) start(levelNum int) error {
	g, err := l.load(levelNum)
	if err != nil {
		return err
	}
	prev := l.ctrl
	l.game = g
	l.ctrl = NewController(g, g.Board.NumSquares(), g.Board.SquareSize())
	if prev != nil {
		// Курсор остаётся на месте, если влезает в новую доску.
		l.ctrl.Cursor = prev.Cursor
		l.ctrl.move(0, 0)
	}
	l.ticker.Reset()
	return nil
}

// Game: текущая сессия.
func (l *Loop) Game() *app.Game { return l.game }

// Controller: текущий обработчик клавиш.
func (l *Loop) Controller() *Controller { return l.ctrl }

// HandleEvent обрабатывает событие терминала. Возвращает false, когда пора выходить.
func (l *Loop) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch l.ctrl.HandleKey(ev) {
		case CommandQuit:
			return false
		case CommandRetry:
			l.restart(l.game.Level)
		case CommandNext:
			if l.game.Level < level.MaxLevel {
				l.restart(l.game.Level + 1)
			}
		}
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

// restart переходит на уровень levelNum. При ошибке остаётся текущая сессия.
func (l *Loop) restart(levelNum int) {
	if err := l.start(levelNum); err != nil {
		log.Printf("term: failed to start level %d: %v", levelNum, err)
	}
}

// Advance выполняет due тиков с учётом множителя скорости.
func (l *Loop) Advance(due int) int {
	steps := due * int(l.game.Speed())
	ran := 0
	for i := 0; i < steps; i++ {
		if !l.game.Tick() {
			break
		}
		ran++
	}
	return ran
}

func (l *Loop) Draw() {
	l.view.Draw(l.game, l.game.Board, l.ctrl.Cursor)
}

// Run крутит цикл до выхода игрока или отмены ctx.
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	frame := time.NewTimer(0)
	defer frame.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !l.HandleEvent(ev) {
				return nil
			}
			l.Draw()
		case <-frame.C:
			l.Advance(l.ticker.Due())
			l.Draw()
			frame.Reset(l.ticker.Until() + time.Millisecond)
		}
	}
}
