package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/five82/pulse/internal/app"
	"github.com/five82/pulse/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	screen := flag.String("screen", "", "screen to open: "+strings.Join(ui.ScreenNames(), ", "))
	fps := flag.Int("fps", 0, "animation frames per second (optional, defaults to 30)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Screen:     *screen,
		FPS:        *fps,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "pulse: %v\n", err)
		return 1
	}
	return 0
}
