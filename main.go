package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/term"

	"github.com/VICTORTBK/Portfolio/content"
	"github.com/VICTORTBK/Portfolio/doctor"
	"github.com/VICTORTBK/Portfolio/log"
	"github.com/VICTORTBK/Portfolio/render"
	"github.com/VICTORTBK/Portfolio/shutdown"
	"github.com/VICTORTBK/Portfolio/typewriter"
)

var version = "dev"

var shutdownOnce sync.Once

func gracefulShutdown(hero *typewriter.Typewriter, about *typewriter.MultiLine) {
	shutdownOnce.Do(func() {
		hero.Destroy()
		about.Destroy()
		if n := sectionVisits.Load(); n > 0 {
			log.SessionEnd(int(n))
		}
		log.Close()
		tuiMu.Lock()
		p := tuiProgram
		tuiMu.Unlock()
		if p != nil {
			p.Quit()
		}
	})
}

func main() {
	configFlag := flag.String("config", "", "Path to portfolio config file (default: OS config dir)")
	themeFlag := flag.String("theme", "auto", "Markdown render theme: auto, dark, light, notty")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	altScreenFlag := flag.Bool("altscreen", true, "Run in the terminal alternate screen buffer")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run environment diagnostics and exit")
	flag.Parse()

	// Resolve log directory early
	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)

	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	if *versionFlag {
		fmt.Printf("portfolio %s\n", version)
		os.Exit(0)
	}

	if *doctorFlag {
		os.Exit(doctor.Run(*configFlag))
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: portfolio needs an interactive terminal")
		os.Exit(1)
	}

	configPath, err := content.ResolvePath(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve config path: %v\n", err)
		os.Exit(1)
	}
	c, err := content.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config %s: %v\n", configPath, err)
		os.Exit(1)
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	} else {
		log.SessionStart(version, *themeFlag)
	}

	cache, err := render.NewCache(*themeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: markdown renderer: %v\n", err)
		os.Exit(1)
	}

	m := newTUIModel(c, cache)
	hero, about := m.hero, m.about

	opts := []tea.ProgramOption{tea.WithReportFocus()}
	if *altScreenFlag {
		opts = append(opts, tea.WithAltScreen())
	}

	tuiMu.Lock()
	tuiProgram = tea.NewProgram(m, opts...)
	tuiMu.Unlock()

	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		<-sigChan
		gracefulShutdown(hero, about)
	}()

	if _, err := tuiProgram.Run(); err != nil {
		log.Errorf("TUI error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gracefulShutdown(hero, about)
}
