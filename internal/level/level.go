// internal/level/level.go
package level

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-hive-defense/internal/board"
	"go-hive-defense/internal/enemy"
	"go-hive-defense/internal/tower"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/utils"
	"go-hive-defense/pkg/geom"
)

// MaxLevel: номер последнего встроенного уровня.
const MaxLevel = 10

const (
	commandSquares   = "squares"
	commandTime      = "time"
	commandHive      = "hive"
	commandGenerator = "generator"

	delimiterCommand  = "="
	delimiterArgument = ","
)

//go:embed levels/*.level
var levelFiles embed.FS

// LevelNotFoundError: уровень не удалось прочитать или разобрать.
// Интерфейс в ответ возвращается в меню.
type LevelNotFoundError struct {
	Level int
	Err   error
}

func (e *LevelNotFoundError) Error() string {
	return fmt.Sprintf("level %d not found: %v", e.Level, e.Err)
}

func (e *LevelNotFoundError) Unwrap() error { return e.Err }

var errNoTime = errors.New("level has no time command")

// Load собирает встроенный уровень n. Ульи получают общий rng.
func Load(n int, rng *utils.PRNGService) (*board.State, error) {
	if n < 1 || n > MaxLevel {
		return nil, &LevelNotFoundError{Level: n, Err: fmt.Errorf("level must be in [1, %d]", MaxLevel)}
	}
	file, err := levelFiles.Open(fmt.Sprintf("levels/%d.level", n))
	if err != nil {
		return nil, &LevelNotFoundError{Level: n, Err: err}
	}
	defer file.Close()

	state, err := Parse(file, rng)
	if err != nil {
		return nil, &LevelNotFoundError{Level: n, Err: err}
	}
	return state, nil
}

// Parse читает уровень построчно: key=value, пустые строки и # пропускаются,
// неизвестные команды игнорируются.
func Parse(r io.Reader, rng *utils.PRNGService) (*board.State, error) {
	squares := -1
	var state *board.State

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		command, args, ok := strings.Cut(line, delimiterCommand)
		if !ok {
			return nil, fmt.Errorf("line %d: missing %q in %q", lineNo, delimiterCommand, line)
		}
		command = strings.TrimSpace(command)
		args = strings.TrimSpace(args)

		var err error
		switch command {
		case commandSquares:
			squares, err = strconv.Atoi(args)
		case commandTime:
			state, err = newLevelState(squares, args)
		case commandHive:
			err = addHive(state, args, rng)
		case commandGenerator:
			err = addGenerator(state, args)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d (%s): %w", lineNo, command, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level: %w", err)
	}
	if state == nil {
		return nil, errNoTime
	}
	return state, nil
}

func newLevelState(squares int, args string) (*board.State, error) {
	if squares < 0 {
		return nil, errors.New("time before squares")
	}
	ticks, err := strconv.Atoi(args)
	if err != nil {
		return nil, err
	}
	state, err := board.NewState(squares, ticks)
	if err != nil {
		return nil, err
	}
	fillTerrain(state)
	return state, nil
}

func fillTerrain(state *board.State) {
	size := state.SquareSize()
	for x := 0; x < state.NumSquares(); x++ {
		for y := 0; y < state.NumSquares(); y++ {
			// Клетки на доске, ошибки быть не может
			_ = state.SetTower(tower.NewTerrain(x*size, y*size, size))
		}
	}
}

func addHive(state *board.State, args string, rng *utils.PRNGService) error {
	g, err := parseCell(state, args)
	if err != nil {
		return err
	}
	if err := state.ClearCell(g); err != nil {
		return err
	}
	size := state.SquareSize()
	state.AppendEnemy(enemy.NewHive(g.X*size, g.Y*size, size, rng))
	return nil
}

// addGenerator ставит генератор, запитанный от самого уровня.
func addGenerator(state *board.State, args string) error {
	g, err := parseCell(state, args)
	if err != nil {
		return err
	}
	size := state.SquareSize()
	gen := tower.NewGenerator(g.X*size, g.Y*size, size)
	gen.Power(types.LevelSupply)
	return state.SetTower(gen)
}

func parseCell(state *board.State, args string) (geom.Point, error) {
	if state == nil {
		return geom.Point{}, errors.New("units before time")
	}
	xs, ys, ok := strings.Cut(args, delimiterArgument)
	if !ok {
		return geom.Point{}, fmt.Errorf("want <x>%s<y>, got %q", delimiterArgument, args)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return geom.Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return geom.Point{}, err
	}
	g := geom.Pt(x, y)
	if !state.InBounds(g) {
		return geom.Point{}, fmt.Errorf("cell %v: %w", g, board.ErrOffscreen)
	}
	return g, nil
}
