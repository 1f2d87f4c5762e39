package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/term"

	"github.com/b/theme-audit/pkg/paths"
	"github.com/b/theme-audit/pkg/perf"
	"github.com/b/theme-audit/pkg/report"
	"github.com/b/theme-audit/pkg/theme"
)

var (
	themeFile = flag.String("file", "", "YAML theme file to watch (default: the user themes file)")
	markdown  = flag.Bool("markdown", false, "emit markdown reports instead of styled output")
)

func main() {
	flag.Parse()

	path := *themeFile
	if path == "" {
		path = paths.ThemesPath()
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	audit(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	// Watch the directory so atomic saves (write to temp, rename over the
	// file) are still seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Watching %s\n", path)

	var debounce *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case event := <-watcher.Events:
			if filepath.Base(event.Name) != filepath.Base(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Editors fire several events per save; coalesce them.
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			audit(path)
		case err := <-watcher.Errors:
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
			return
		}
	}
}

func audit(path string) {
	timer := perf.Start("watch-audit")
	defer timer.Stop()

	t, err := theme.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[%s] %v\n", time.Now().Format("15:04:05"), err)
		return
	}
	r := t.Validate()

	fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05"), path)
	if !*markdown && term.IsTerminal(int(os.Stdout.Fd())) {
		report.RenderTerminal(os.Stdout, r)
	} else {
		fmt.Print(report.RenderMarkdown(r))
	}
}
