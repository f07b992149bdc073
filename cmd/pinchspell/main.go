package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"sync/atomic"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/pinchspell/audio"
	"github.com/plus3/pinchspell/game"
	"github.com/plus3/pinchspell/game/debugui"
	debuguiebiten "github.com/plus3/pinchspell/game/debugui/ebiten"
	"github.com/plus3/pinchspell/hint"
	"github.com/plus3/pinchspell/scores"
	"github.com/plus3/pinchspell/words"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

// App drives the engine from Ebiten's frame callback and renders the world.
type App struct {
	game   *game.Game
	source *MouseSource

	backend *debuguiebiten.ImguiBackend
	overlay *debugui.Overlay

	hints       *hint.Client
	hintVerdict atomic.Pointer[hint.Verdict]

	lastUpdate time.Time
}

// Update implements ebiten.Game: one engine frame per tick.
func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now

	a.source.Poll()

	if a.backend != nil {
		a.backend.BeginFrame()
	}

	if err := a.game.Update(dt); err != nil {
		return err
	}

	if a.hints != nil && inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.requestHint()
	}

	if a.backend != nil {
		a.overlay.Render(a.game, float32(dt))
		a.backend.EndFrame()
	}
	return nil
}

// requestHint asks the advisory service about the current tray word on a
// separate goroutine; the verdict only feeds the on-screen hint text.
func (a *App) requestHint() {
	w := a.game.World()
	trayWord := w.TrayWord()
	var pool []rune
	for _, t := range w.PoolTiles() {
		pool = append(pool, t.Letter)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		v, err := a.hints.Check(ctx, nil, trayWord, string(pool))
		if err != nil {
			log.Printf("hint unavailable: %v", err)
		}
		a.hintVerdict.Store(&v)
	}()
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	w := a.game.World()
	cfg := w.Config()
	round := w.Round()
	session := w.Session()

	// Tray line.
	vector.StrokeLine(screen, 0, float32(cfg.TrayLineY), screenWidth, float32(cfg.TrayLineY), 1, color.RGBA{90, 90, 110, 255}, false)

	half := float32(cfg.TileSize / 2)
	for tile := range w.All() {
		c := game.Palette[tile.Color]
		fill := color.RGBA{c[0], c[1], c[2], 255}
		x := float32(tile.X)
		y := float32(tile.Y)
		vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, fill, false)
		if tile.Dragging {
			vector.StrokeRect(screen, x-half, y-half, half*2, half*2, 3, color.White, false)
		}
		ebitenutil.DebugPrintAt(screen, string(tile.Letter), int(tile.X)-3, int(tile.Y)-8)
	}

	for _, p := range w.Particles() {
		c := game.Palette[p.Color]
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 3, color.RGBA{c[0], c[1], c[2], 255}, false)
	}

	// Cursor.
	cursor := w.Cursor()
	cursorColor := color.RGBA{220, 220, 220, 255}
	if cursor.Pinch {
		cursorColor = color.RGBA{255, 80, 80, 255}
	}
	vector.StrokeCircle(screen, float32(cursor.X), float32(cursor.Y), 10, 2, cursorColor, false)

	hud := fmt.Sprintf("Score: %d  High: %d  Words: %d  Time: %.0f  Target: %s  Tray: %s",
		session.Score, session.HighScore, session.WordsCompleted, round.TimeLeft, round.Word, w.TrayWord())
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	if session.Phase == game.Loading {
		ebitenutil.DebugPrintAt(screen, "Waiting for hand tracking...", screenWidth/2-80, screenHeight/2)
	}
	if round.Solved {
		ebitenutil.DebugPrintAt(screen, "Solved!", screenWidth/2-20, screenHeight/2-40)
	}
	if round.Failed {
		ebitenutil.DebugPrintAt(screen, "Time's up!", screenWidth/2-25, screenHeight/2-40)
	}
	if v := a.hintVerdict.Load(); v != nil {
		ebitenutil.DebugPrintAt(screen, "Hint: "+v.Suggestion, 10, screenHeight-20)
	}

	if a.backend != nil {
		a.backend.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
	}
	return screenWidth, screenHeight
}

func main() {
	category := flag.String("category", words.DefaultCategory, "word category (animals, food, objects)")
	difficulty := flag.String("difficulty", "medium", "difficulty (easy, medium, hard)")
	scorePath := flag.String("scores", "pinchspell.db", "path of the high-score database")
	hintURL := flag.String("hint-url", "", "base URL of the advisory hint service (empty disables hints)")
	mute := flag.Bool("mute", false, "disable audio cues")
	debug := flag.Bool("debug", false, "show the ImGui debug overlay")
	flag.Parse()

	cfg := game.DefaultConfig(screenWidth, screenHeight)
	// The mouse source already reports screen coordinates the right way
	// around; mirroring is for selfie-view webcams.
	cfg.Mirror = false
	switch *difficulty {
	case "easy":
		cfg.Difficulty = game.Easy
	case "medium":
		cfg.Difficulty = game.Medium
	case "hard":
		cfg.Difficulty = game.Hard
	default:
		log.Fatalf("unknown difficulty %q", *difficulty)
	}

	var sink game.CueSink = game.NopSink{}
	if !*mute {
		player, err := audio.NewPlayer(0.8)
		if err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer player.Close()
		sink = player
	}

	store, err := scores.Open(*scorePath)
	if err != nil {
		log.Fatalf("open score store: %v", err)
	}
	defer store.Close()

	source := NewMouseSource(screenWidth, screenHeight)
	g, err := game.New(cfg, source, &words.Provider{}, sink, store, *category)
	if err != nil {
		log.Fatalf("start game: %v", err)
	}

	app := &App{
		game:       g,
		source:     source,
		lastUpdate: time.Now(),
	}
	if *hintURL != "" {
		app.hints = hint.New(*hintURL, 10*time.Second)
	}

	if *debug {
		app.backend = debuguiebiten.New("pinchspell", screenWidth, screenHeight)
		imgui.CurrentIO().SetIniFilename("")
		app.overlay = debugui.NewOverlay()
	} else {
		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle("pinchspell")
	}

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
