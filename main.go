package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"swipe-stack/pkg/config"
	"swipe-stack/pkg/performance"
	"swipe-stack/screens/root"
)

func main() {
	// SDL must stay on the main OS thread
	runtime.LockOSThread()

	// Configure logging
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := initializeSDL2(cfg.VideoDriver); err != nil {
		log.Fatalf("Failed to initialize SDL2: %v", err)
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()

	width, height := windowDimensions(cfg)
	log.Printf("Starting %s | Resolution: %dx%d", cfg.Title, width, height)

	logDisplayInfo()

	window, err := createWindow(cfg.Title, width, height, cfg.Fullscreen)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := createRenderer(window)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	screen, err := root.NewRootScreen(window, renderer, cfg)
	if err != nil {
		log.Fatalf("Failed to create root screen: %v", err)
	}
	defer screen.Close()

	runLoop(screen, cfg)

	log.Printf("%s shutting down...", cfg.Title)
}

// initializeSDL2 initializes SDL2, trying the configured video driver first
// and then platform fallbacks
func initializeSDL2(preferred string) error {
	var videoDrivers []string
	if runtime.GOOS == "darwin" {
		videoDrivers = []string{"cocoa", "software", "dummy"}
	} else {
		videoDrivers = []string{"wayland", "x11", "kmsdrm", "fbcon", "software", "dummy"}
	}
	if preferred != "" {
		log.Printf("Using configured SDL_VIDEODRIVER: %s", preferred)
		videoDrivers = append([]string{preferred}, videoDrivers...)
	}

	for _, driver := range videoDrivers {
		log.Printf("Attempting SDL2 initialization with %s driver", driver)

		if err := trySDLInitialization(driver); err != nil {
			log.Printf("SDL2 initialization failed with %s driver: %v", driver, err)
			continue
		}

		log.Printf("SDL2 successfully initialized with %s driver", driver)
		return nil
	}

	return fmt.Errorf("all SDL2 video drivers failed")
}

// trySDLInitialization attempts to initialize SDL2 video with one driver
func trySDLInitialization(driver string) error {
	// Clean up any previous SDL2 state
	sdl.Quit()

	os.Setenv("SDL_VIDEODRIVER", driver)
	sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)

	switch driver {
	case "cocoa":
		sdl.SetHint("SDL_VIDEO_COCOA_ALLOW_SCREENSAVER", "1")
		sdl.SetHint(sdl.HINT_RENDER_DRIVER, "opengl")
	case "kmsdrm":
		sdl.SetHint("SDL_KMSDRM_REQUIRE_DRM_MASTER", "1")
		sdl.SetHint(sdl.HINT_RENDER_DRIVER, "opengles2")
	case "fbcon":
		sdl.SetHint("SDL_FBDEV", "/dev/fb0")
	case "wayland":
		sdl.SetHint("SDL_VIDEO_WAYLAND_WMCLASS", "swipe-stack")
	case "software":
		sdl.SetHint(sdl.HINT_RENDER_DRIVER, "software")
	}

	// Fingers are handled as touch events; without this SDL also reports
	// each one as a mouse drag
	sdl.SetHint("SDL_TOUCH_MOUSE_EVENTS", "0")
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")
	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_INIT_VIDEO failed: %w", err)
	}

	driverName, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		return fmt.Errorf("failed to get video driver: %w", err)
	}
	log.Printf("Video driver initialized: %s", driverName)

	return nil
}

// windowDimensions returns the display size when fullscreen and the
// configured size otherwise
func windowDimensions(cfg config.Config) (int32, int32) {
	if !cfg.Fullscreen {
		return cfg.Width, cfg.Height
	}

	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		log.Printf("Warning: Failed to get display mode, using configured size: %v", err)
		return cfg.Width, cfg.Height
	}
	return displayMode.W, displayMode.H
}

// logDisplayInfo outputs debugging information about the display setup
func logDisplayInfo() {
	numDisplays, err := sdl.GetNumVideoDisplays()
	if err != nil {
		log.Printf("Failed to get number of displays: %v", err)
		return
	}

	for i := 0; i < numDisplays; i++ {
		mode, err := sdl.GetCurrentDisplayMode(i)
		if err != nil {
			log.Printf("Display %d: failed to get mode (%v)", i, err)
			continue
		}
		name, _ := sdl.GetDisplayName(i)
		log.Printf("Display %d: %s %dx%d @ %dHz", i, name, mode.W, mode.H, mode.RefreshRate)
	}
}

// createWindow creates an SDL2 window, fullscreen or centered
func createWindow(title string, width, height int32, fullscreen bool) (*sdl.Window, error) {
	var windowFlags uint32 = sdl.WINDOW_SHOWN
	var x, y int32 = sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED

	if fullscreen {
		windowFlags |= sdl.WINDOW_FULLSCREEN
		x, y = 0, 0
	}

	return sdl.CreateWindow(title, x, y, width, height, windowFlags)
}

// createRenderer creates an accelerated, vsynced renderer and falls back to
// software rendering
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		log.Printf("Hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}

	if info, err := renderer.GetInfo(); err == nil {
		log.Printf("Renderer: %s (accelerated=%v, vsync=%v)", info.Name,
			info.Flags&sdl.RENDERER_ACCELERATED != 0,
			info.Flags&sdl.RENDERER_PRESENTVSYNC != 0)
	}

	// Card and glyph opacity rely on alpha blending
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	return renderer, nil
}

// runLoop executes the main SDL2 loop
func runLoop(screen *root.RootScreen, cfg config.Config) {
	frameTime := cfg.FrameTime()
	monitor := performance.NewFrameMonitor(cfg.TargetFPS*2, frameTime)
	lastStats := time.Now()

	for {
		frameStart := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return
			}
			screen.HandleEvent(event)
		}

		if err := screen.Update(); err != nil {
			log.Printf("Screen update error: %v", err)
			return
		}
		if screen.QuitRequested() {
			return
		}

		if err := screen.Draw(); err != nil {
			log.Printf("Screen draw error: %v", err)
			return
		}

		elapsed := time.Since(frameStart)
		monitor.RecordFrame(elapsed)

		// Frame rate limiting
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}

		if cfg.StatsInterval > 0 && time.Since(lastStats) >= cfg.StatsInterval {
			r := monitor.Report()
			log.Printf("Frames: avg=%.2fms max-fps=%.1f slow=%d/%d healthy=%v",
				r.AvgFrameMs, r.FPS, r.SlowFrames, r.TotalFrames, r.IsHealthy)
			lastStats = time.Now()
		}
	}
}
