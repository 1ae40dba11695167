// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-hive-defense/internal/audio"
	"go-hive-defense/internal/config"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/event"
	"go-hive-defense/internal/state"
	"go-hive-defense/internal/ui"
	"go-hive-defense/internal/utils"
	"go-hive-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

// Update переводит время кадра в deltaTime и отдаёт его машине состояний.
func (a *AppGame) Update() error {
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelNum := flag.Int("level", 1, "level to start from")
	seed := flag.Int64("seed", 0, "random seed, 0 means time-based")
	defsPath := flag.String("defs", "", "JSON file overriding unit definitions")
	mute := flag.Bool("mute", false, "disable sound")
	menu := flag.Bool("menu", false, "start from the level menu")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	if *defsPath != "" {
		if err := defs.LoadUnitDefinitions(*defsPath); err != nil {
			log.Fatalf("failed to load unit definitions: %v", err)
		}
	}

	rng := utils.NewPRNGService(*seed)
	log.Printf("game: random seed %d", rng.Seed())

	dispatcher := event.NewDispatcher()
	cues := audio.NewCues(*mute)
	defer cues.Close()
	cues.Attach(dispatcher)
	tally := event.NewTally()
	tally.Attach(dispatcher)

	ctx := &state.Context{
		RNG:    rng,
		Events: dispatcher,
		Face:   ui.DefaultFace(),
		Colors: render.DefaultBoardColors(),
		Tally:  tally,
	}

	sm := state.NewStateMachine()
	if *menu {
		sm.SetState(state.NewMenuState(sm, ctx))
	} else {
		ctx.StartLevel(sm, *levelNum)
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
