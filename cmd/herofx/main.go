// Command herofx renders an animated hero banner in the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/daml/herofx/audio"
	"github.com/daml/herofx/constants"
	"github.com/daml/herofx/content"
	"github.com/daml/herofx/core"
	"github.com/daml/herofx/engine"
)

var (
	contentFlag = flag.String("content", "", "Hero content YAML file, embedded default when empty")
	watchFlag   = flag.Bool("watch", false, "Reload content when the file changes")
	soundFlag   = flag.Bool("sound", false, "Play a cue when the subtitle rotates")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/herofx.log")
	fpsFlag     = flag.Int("fps", 60, "Frame rate")
)

func main() {
	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	err := run(logger)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "herofx: %v\n", err)
		os.Exit(1)
	}
}

// frameInterval converts a frame rate flag to an interval, clamped to the supported range
func frameInterval(fps int) time.Duration {
	fps = max(constants.MinFrameRate, min(constants.MaxFrameRate, fps))
	return time.Second / time.Duration(fps)
}

// loadContent reads path, or the embedded document when path is empty
func loadContent(path string) (*content.Hero, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}

func run(logger *log.Logger) error {
	doc, err := loadContent(*contentFlag)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	core.SetCrashScreen(screen)
	defer fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	cue := audio.NewCue(*soundFlag, logger)
	defer cue.Close()

	loop := engine.NewLoop(frameInterval(*fpsFlag))
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var a *app
	ready := make(chan error, 1)
	loop.Post(func() {
		var err error
		a, err = newApp(loop, screen, doc, *contentFlag, cue, logger, loop.Stop)
		ready <- err
	})

	g, gctx := errgroup.WithContext(ctx)
	wait := func() error {
		err := g.Wait()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	loopDone := make(chan struct{})
	g.Go(core.Guard(func() error {
		// Ending the loop ends every other task
		defer close(loopDone)
		defer cancel()
		defer fini()
		return loop.Run(gctx)
	}))

	mounted, err := awaitMount(ready, loopDone)
	if err != nil {
		loop.Stop()
		_ = g.Wait()
		return err
	}
	if !mounted {
		// Signalled before the loop ran the mount
		return wait()
	}

	g.Go(core.Guard(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			loop.Post(func() { a.handle(ev) })
		}
	}))

	if *watchFlag && *contentFlag != "" {
		watcher, err := content.NewWatcher(*contentFlag)
		if err != nil {
			logger.Errorf("watch disabled: %v", err)
		} else {
			g.Go(core.Guard(func() error {
				defer watcher.Close()
				for {
					select {
					case <-gctx.Done():
						return nil
					case name, ok := <-watcher.Events:
						if !ok {
							return nil
						}
						logger.Debugf("content changed: %s", name)
						loop.Post(func() {
							if err := a.reload(); err != nil {
								logger.Errorf("reload failed: %v", err)
							}
						})
					case err, ok := <-watcher.Errors:
						if !ok {
							return nil
						}
						logger.Warnf("watch error: %v", err)
					}
				}
			}))
		}
	}

	return wait()
}

// awaitMount waits for the posted mount to report, or for the loop to end without running it
func awaitMount(ready <-chan error, loopDone <-chan struct{}) (bool, error) {
	select {
	case err := <-ready:
		return err == nil, err
	case <-loopDone:
		select {
		case err := <-ready:
			return err == nil, err
		default:
			return false, nil
		}
	}
}
