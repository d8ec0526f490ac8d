package main

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/daml/herofx/ambient"
	"github.com/daml/herofx/audio"
	"github.com/daml/herofx/constants"
	"github.com/daml/herofx/content"
	"github.com/daml/herofx/engine"
	"github.com/daml/herofx/input"
	"github.com/daml/herofx/render"
	"github.com/daml/herofx/rotator"
	"github.com/daml/herofx/tween"
)

// app wires the hero components to one scheduler and one screen
// Every method runs on the scheduler's goroutine
type app struct {
	sched  engine.Scheduler
	screen tcell.Screen
	logger *log.Logger
	stop   func()

	path     string
	doc      *content.Hero
	hero     *render.Hero
	rot      *rotator.Rotator
	anim     *ambient.Animator
	scroll   *tween.Scroll
	cue      *audio.Cue
	machine  *input.Machine
	hover    bool
	frame    engine.Frame
	drawn    uint64
	stopping bool
}

// newApp mounts the rotator and animator for doc
// path is the content file for reloads, empty when running on embedded content
func newApp(sched engine.Scheduler, screen tcell.Screen, doc *content.Hero, path string, cue *audio.Cue, logger *log.Logger, stop func()) (*app, error) {
	hero, err := render.NewHero(doc)
	if err != nil {
		return nil, err
	}
	rot, err := rotator.Mount(sched, doc.RotatorConfig())
	if err != nil {
		return nil, errors.Wrap(err, "mount rotator")
	}
	anim, err := ambient.Mount(sched, doc.AmbientConfig())
	if err != nil {
		rot.Teardown()
		return nil, errors.Wrap(err, "mount ambient")
	}

	width, height := screen.Size()
	a := &app{
		sched:  sched,
		screen: screen,
		logger: logger,
		stop:   stop,
		path:   path,
		doc:    doc,
		hero:   hero,
		rot:    rot,
		anim:   anim,
		scroll: tween.NewScroll(sched, tween.ScrollTiming{
			Delay:    constants.JoinScrollDelay,
			Duration: constants.JoinScrollDuration,
			Fade:     constants.OverlayFadeDuration,
			Dim:      constants.OverlayDimLevel,
		}),
		cue:     cue,
		machine: input.NewMachine(width, height),
	}

	rot.OnChange(a.onRotate)
	a.frame = sched.RequestFrame(a.draw)
	logger.Infof("mounted: %d items, %d focal points", len(doc.Rotator.Items), len(anim.Points()))
	return a, nil
}

// onRotate cues on ticks only, the exit clear also notifies
func (a *app) onRotate(snap rotator.Snapshot) {
	if snap.Previous == rotator.NoPrevious {
		return
	}
	a.logger.Debugf("rotate to %d %q", snap.Current, snap.Text())
	if a.cue != nil {
		a.cue.Play()
	}
}

// draw renders one frame and schedules the next
func (a *app) draw(now time.Time) {
	if a.stopping {
		return
	}
	a.hero.Draw(a.screen, render.Frame{
		Now:      now,
		Points:   a.anim.Points(),
		Opacity:  a.anim.Opacity(),
		Snapshot: a.rot.Snapshot(),
		Offset:   a.scroll.Offset(),
		Dim:      a.scroll.Dim(),
		Hover:    a.hover,
	})
	a.screen.Show()
	a.drawn++
	a.frame = a.sched.RequestFrame(a.draw)
}

// handle applies one terminal event
func (a *app) handle(ev tcell.Event) {
	for _, in := range a.machine.Process(ev) {
		switch in.Type {
		case input.IntentQuit:
			a.logger.Info("quit requested")
			a.shutdown()
			return
		case input.IntentResize:
			a.screen.Sync()
			a.resize()
		case input.IntentReload:
			if err := a.reload(); err != nil {
				a.logger.Errorf("reload failed: %v", err)
			}
		case input.IntentJoin:
			a.join()
		case input.IntentPointerEnter:
			a.anim.OnPointerEnter()
		case input.IntentPointerLeave:
			a.anim.OnPointerLeave()
			a.hover = false
		case input.IntentPointerMove:
			a.anim.OnPointerMove(in.X, in.Y)
			a.hover = a.hero.ButtonAt(in.Col, in.Row)
		case input.IntentClick:
			if a.hero.ButtonAt(in.Col, in.Row) {
				a.join()
			}
		}
	}
}

// join scrolls to the join section, or back to the banner when already there
func (a *app) join() {
	target := a.hero.JoinOffset()
	if math.Abs(a.scroll.Offset()-target) < 0.5 {
		target = 0
	}
	if a.scroll.To(target) {
		a.logger.Debugf("scroll to %.0f", target)
	}
}

// resize keeps a parked join section at the top of the new page
func (a *app) resize() {
	if a.scroll.Active() || a.scroll.Offset() == 0 {
		return
	}
	_, height := a.screen.Size()
	target := float64(render.PageHeight(height))
	a.scroll.Jump(target)
	a.logger.Debugf("join section moved to %.0f", target)
}

// reload re-reads the content file and reconfigures every component
// On a parse error the running hero is left untouched
func (a *app) reload() error {
	if a.path == "" {
		a.logger.Info("reload skipped, running on embedded content")
		return nil
	}
	doc, err := content.Load(a.path)
	if err != nil {
		return err
	}
	if err := a.hero.SetContent(doc); err != nil {
		return err
	}
	if err := a.rot.Reconfigure(doc.RotatorConfig()); err != nil {
		return errors.Wrap(err, "reconfigure rotator")
	}

	if doc.AmbientConfig() != a.doc.AmbientConfig() {
		anim, err := ambient.Mount(a.sched, doc.AmbientConfig())
		if err != nil {
			return errors.Wrap(err, "remount ambient")
		}
		if a.anim.Inside() {
			anim.OnPointerEnter()
		}
		a.anim.Teardown()
		a.anim = anim
	}

	a.doc = doc
	a.logger.Infof("reloaded %s: %d items", a.path, len(doc.Rotator.Items))
	return nil
}

// shutdown tears every component down and stops the scheduler, idempotent
func (a *app) shutdown() {
	if a.stopping {
		return
	}
	a.stopping = true
	if a.frame != nil {
		a.frame.Cancel()
	}
	a.scroll.Cancel()
	a.rot.Teardown()
	a.anim.Teardown()
	a.stop()
}
