package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/duel/duel"
	"github.com/milk9111/duel/prefabs"
	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
	"github.com/milk9111/duel/sim/system"
)

const (
	baseWidth  = 1000
	baseHeight = 600

	// arenaTop shifts world y down to leave room for the gauges.
	arenaTop  = 60
	maxLog    = 6
	cueFrames = 30
)

type cueFlash struct {
	cue component.Cue
	ttl int
}

type Game struct {
	frames int

	level     int
	seed      int64
	useScript bool
	debug     bool

	input   *Input
	match   *duel.Match
	pouch   *duel.Pouch
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
	face    ebtext.Face

	paused  bool
	logs    []string
	flashes []cueFlash
}

func NewGame(level int, seed int64, useScript, debug bool) (*Game, error) {
	g := &Game{
		level:     level,
		seed:      seed,
		useScript: useScript,
		debug:     debug,
		input:     NewInput(),
		face:      ebtext.NewGoXFace(basicfont.Face7x13),
	}
	if err := g.newMatch(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		log.Printf("prefabs: hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g, nil
}

func (g *Game) newMatch() error {
	cfg, err := duel.LoadConfig(g.level, g.useScript)
	if err != nil {
		return err
	}
	cfg.Rand = duel.NewRand(g.seed)
	g.pouch, _ = cfg.Resources.(*duel.Pouch)
	g.logs = g.logs[:0]
	g.flashes = g.flashes[:0]
	cfg.Hooks = duel.Hooks{
		Log: g.pushLog,
		Cue: func(c component.Cue) {
			g.flashes = append(g.flashes, cueFlash{cue: c, ttl: cueFrames})
		},
		End: func(o sim.Outcome) {
			log.Printf("duel: %s at frame %d", o, g.match.Frame())
		},
	}

	m, err := duel.NewMatch(cfg)
	if err != nil {
		return err
	}
	g.match = m
	return nil
}

// restart keeps the old match when the prefabs no longer load.
func (g *Game) restart() {
	if err := g.newMatch(); err != nil {
		log.Printf("duel: restart: %v", err)
		return
	}
	g.setPaused(false)
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.match.SetPaused(paused)
}

func (g *Game) pushLog(msg string) {
	g.logs = append(g.logs, msg)
	if len(g.logs) > maxLog {
		g.logs = g.logs[len(g.logs)-maxLog:]
	}
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: %s changed, restarting duel", name)
			g.restart()
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefabs: watch: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollReload()

	in := g.input.Update()
	if g.input.Pause && !g.match.Over() {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.match.Over() {
		if g.input.Restart {
			g.restart()
		}
		return nil
	}

	g.match.Step(in)

	kept := g.flashes[:0]
	for _, f := range g.flashes {
		if f.ttl--; f.ttl > 0 {
			kept = append(kept, f)
		}
	}
	g.flashes = kept
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x14, G: 0x12, B: 0x18, A: 0xff})
	st := g.match.State()
	t := st.Tuning

	floor := float32(t.Arena.GroundY + st.Boss.Height + arenaTop)
	vector.StrokeLine(screen, 0, floor, baseWidth, floor, 2, colornames.Dimgray, false)

	g.drawBoss(screen, st)
	g.drawPlayer(screen, st)
	for _, pr := range st.Projectiles {
		c := colornames.Lightgray
		if pr.Owner == component.OwnerBoss {
			c = colornames.Orangered
		}
		drawBox(screen, pr.Box(), c)
	}
	if g.debug {
		g.drawHitBoxes(screen, st)
	}

	g.drawGauges(screen, g.match.HUD())
	g.drawText(screen, st)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  Frame: %d", ebiten.ActualFPS(), g.match.Frame()), baseWidth-170, baseHeight-20)
}

func (g *Game) drawPlayer(screen *ebiten.Image, st *sim.State) {
	p := st.Player
	c := colornames.Steelblue
	switch {
	case p.State == component.PlayerHit:
		c = colornames.Crimson
	case p.ParryTimer > 0:
		c = colornames.Gold
	case p.State == component.PlayerDash:
		c = colornames.Lightskyblue
	case p.State == component.PlayerHeal:
		c = colornames.Mediumseagreen
	case p.State == component.PlayerThrustCharge:
		c = colornames.Orchid
	case p.Blocking:
		c = colornames.Slategray
	}
	drawBox(screen, p.Box(), c)

	// facing tick
	x := float32(p.Pos.X)
	if p.FacingRight {
		x += float32(p.Width)
	}
	y := float32(p.Pos.Y) + arenaTop + 10
	vector.StrokeLine(screen, x, y, x, y+10, 3, colornames.White, false)

	if p.State == component.PlayerThrustCharge {
		frac := system.ChargeFraction(p.Charge, st.Tuning.Player.MaxCharge)
		vector.FillRect(screen, float32(p.Pos.X), float32(p.Pos.Y)+arenaTop-8, float32(p.Width*frac), 4, colornames.Orchid, false)
	}
}

func (g *Game) drawBoss(screen *ebiten.Image, st *sim.State) {
	b := st.Boss
	c := colornames.Darkred
	switch b.State {
	case component.BossHit:
		c = colornames.Lightcoral
	case component.BossBlock:
		c = colornames.Rosybrown
	case component.BossDodge:
		c = colornames.Indianred
	case component.BossWindup, component.BossAttack:
		c = colornames.Firebrick
	}
	drawBox(screen, b.Box(), c)

	box := b.Box()
	if b.State == component.BossWindup && b.Perilous {
		vector.StrokeRect(screen, float32(box.L)-3, float32(box.B)+arenaTop-3, float32(b.Width)+6, float32(b.Height)+6, 3, colornames.Red, false)
	}
	if b.Armored {
		vector.StrokeRect(screen, float32(box.L)-6, float32(box.B)+arenaTop-6, float32(b.Width)+12, float32(b.Height)+12, 2, colornames.Orange, false)
	}
}

func (g *Game) drawHitBoxes(screen *ebiten.Image, st *sim.State) {
	b := st.Boss
	if b.State == component.BossAttack {
		strokeBox(screen, system.BossAttackBox(b, st.Tuning.Attacks.Of(b.Attack)), colornames.Red)
	}
	p := st.Player
	switch p.State {
	case component.PlayerAttack:
		strokeBox(screen, system.PlayerStrikeBox(p, component.StrikeSlash), colornames.Yellow)
	case component.PlayerThrustRelease:
		strokeBox(screen, system.PlayerStrikeBox(p, component.StrikeThrust), colornames.Yellow)
	case component.PlayerFloatingPassage:
		strokeBox(screen, system.PlayerStrikeBox(p, component.StrikeFlurry), colornames.Yellow)
	}
}

func (g *Game) drawGauges(screen *ebiten.Image, hud duel.HUD) {
	const barW, barH = 300, 12
	drawBar(screen, 20, 20, barW, barH, hud.PlayerHealth/hud.PlayerMaxHealth, colornames.Forestgreen)
	drawBar(screen, 20, 36, barW, barH/2, hud.PlayerPosture/hud.PlayerMaxPosture, colornames.Orange)
	drawBar(screen, baseWidth-20-barW, 20, barW, barH, hud.BossHealth/hud.BossMaxHealth, colornames.Darkred)
	drawBar(screen, baseWidth-20-barW, 36, barW, barH/2, hud.BossPosture/hud.BossMaxPosture, colornames.Orange)
}

func (g *Game) drawText(screen *ebiten.Image, st *sim.State) {
	gourds, emblems := g.pouch.Counts()
	g.print(screen, fmt.Sprintf("%s  gourds %d  emblems %d", st.Player.State, gourds, emblems), 20, 46, colornames.White)
	g.print(screen, fmt.Sprintf("%s lv %d  %s", st.Boss.Stats.Name, st.Level(), st.Boss.State), baseWidth-320, 46, colornames.White)

	for i, line := range g.logs {
		g.print(screen, line, 20, float64(baseHeight-20-16*(len(g.logs)-i)), colornames.Lightgray)
	}
	for _, f := range g.flashes {
		c := colornames.White
		if f.cue.Kind == component.CuePerilous || f.cue.Kind == component.CueDeathblow {
			c = colornames.Red
		}
		y := st.Tuning.Arena.GroundY - 30 + arenaTop - float64(cueFrames-f.ttl)
		g.print(screen, string(f.cue.Kind), f.cue.X-20, y, c)
	}

	if g.match.Over() {
		banner := "IMMORTALITY SEVERED"
		if g.match.Outcome() == sim.OutcomeDefeat {
			banner = "DEATH"
		}
		g.print(screen, banner+"  (Enter to restart)", baseWidth/2-110, baseHeight/2-60, colornames.Gold)
	}
}

func (g *Game) print(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, g.face, op)
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, frac float64, c color.Color) {
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}, false)
	vector.FillRect(screen, x, y, w*float32(max(0, min(1, frac))), h, c, false)
	vector.StrokeRect(screen, x, y, w, h, 1, colornames.Black, false)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
