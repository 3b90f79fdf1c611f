package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"screen-capture-overlay/capture"
	"screen-capture-overlay/config"
	"screen-capture-overlay/eventloop"
	"screen-capture-overlay/hotkey"
	"screen-capture-overlay/logutil"
	"screen-capture-overlay/overlay"
	"screen-capture-overlay/sysinfo"
	"screen-capture-overlay/wayland"
	"screen-capture-overlay/worker"
)

func main() {
	// DPI awareness must be set before any window is created or screen
	// metrics are queried.
	enableDPIAwareness()

	// The native message loop must stay on one OS thread.
	runtime.LockOSThread()

	accentFlag := flag.String("accent-color", "", "Selection border color (#RRGGBB)")
	modeFlag := flag.String("mode", "", "Capture mode: raw or parse")
	waitHotkey := flag.Bool("wait-hotkey", false, "Wait for the configured hotkey before showing the overlay")
	flag.Parse()

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		AccentColorOverride: *accentFlag,
		CaptureModeOverride: *modeFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logutil.Setup(cfg.EnableFileLogging)

	if *waitHotkey {
		pressed := make(chan struct{}, 1)
		hotkey.Listen(cfg.Hotkey, func() {
			select {
			case pressed <- struct{}{}:
			default:
			}
		})
		log.Printf("Main: Waiting for hotkey %s", cfg.Hotkey)
		<-pressed
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	sys, err := sysinfo.Collect()
	if err != nil {
		return fmt.Errorf("failed to collect system info: %v", err)
	}

	mode := capture.ParseMode(cfg.CaptureMode)
	modeProvider := capture.ModeFunc(func() capture.Mode { return mode })

	var reposition overlay.Repositioner
	if sys.DisplayManager == sysinfo.DisplayManagerWayland {
		mover, err := wayland.NewMover()
		if err != nil {
			log.Printf("Main: Wayland mover unavailable: %v", err)
		} else {
			defer mover.Close()
			reposition = mover
		}
	}

	host := overlay.NewHost()
	var mainWindow *overlay.Window
	for _, screen := range sys.Screens {
		surface := host.NewSurface(screen.Geometry)
		w, err := overlay.New(overlay.Config{
			Sys:         sys,
			ScreenIndex: screen.Index,
			AccentColor: cfg.AccentColor,
			Mode:        modeProvider,
			Main:        mainWindow, // nil for the first: it becomes main
			Reposition:  reposition,
		}, surface)
		if err != nil {
			return err
		}
		host.Bind(surface, w)
		if mainWindow == nil {
			mainWindow = w
		}
	}

	events, err := mainWindow.Com().Register("shell", 16)
	if err != nil {
		return err
	}
	defer mainWindow.Com().Shutdown()

	// The downstream capture/OCR pipeline attaches here; the CLI ships a
	// logging sink.
	pool := worker.New(logSink{}, 0)
	defer pool.Close()

	loop := eventloop.New(cfg, events, pool, host, len(sys.Screens))
	loopDone := make(chan error, 1)
	go func() { loopDone <- loop.Run(context.Background()) }()

	if err := host.Run(); err != nil {
		return err
	}
	return <-loopDone
}

// logSink stands in for the external capture pipeline.
type logSink struct{}

func (logSink) HandleRegion(ctx context.Context, region capture.Region, screenIndex int) error {
	log.Printf("Main: Selected region x=%d y=%d w=%d h=%d on screen %d", region.X, region.Y, region.Width, region.Height, screenIndex)
	fmt.Printf("%d,%d %dx%d (screen %d)\n", region.X, region.Y, region.Width, region.Height, screenIndex)
	return nil
}
