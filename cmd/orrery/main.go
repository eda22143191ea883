package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/metrics"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/service"
)

var (
	bodiesFlag  = flag.String("bodies", "", "TOML scene file overriding the built-in body table")
	debugFlag   = flag.Bool("debug", false, "Write a debug log to logs/orrery.log")
	metricsFlag = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9100")
	noAudioFlag = flag.Bool("no-audio", false, "Disable sound cues")
	seedFlag    = flag.Int64("seed", 0, "Meteor and starfield seed, 0 picks one from the clock")
)

// flightLog writes flight transitions to the debug log
type flightLog struct{}

func (flightLog) FlightStarted(f camera.Flight) {
	log.Printf("flight to %s started, target %+v", f.Body, f.Target)
}

func (flightLog) FlightFinished(f camera.Flight) {
	log.Printf("flight to %s finished", f.Body)
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	// Configuration errors are reported before the terminal is taken over
	var (
		cfg *config.Config
		err error
	)
	if *bodiesFlag != "" {
		cfg, err = config.Load(*bodiesFlag)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d, %d bodies", seed, len(cfg.Bodies))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	core.SetCrashScreen(screen)

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	// Metrics and audio are optional services; a failed start is logged and the run continues
	hub := service.NewHub()
	defer hub.StopAll()

	var collector *metrics.Collector
	if *metricsFlag != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		if c, err := metrics.NewCollector(reg); err != nil {
			log.Printf("metrics disabled: %v", err)
		} else {
			collector = c
			if err := hub.Register(metrics.NewServer(*metricsFlag, collector)); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}
	}

	audioCfg := audio.LoadAudioConfig()
	if *noAudioFlag {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := hub.Register(sounds); err != nil {
		log.Printf("audio: %v", err)
	}
	hub.StartAll()

	rng := rand.New(rand.NewSource(seed))
	renderer := render.NewTerminalRenderer(screen, rng)
	a := newApp(cfg, renderer, engine.NewMonotonicTimeProvider(), rng, collector)
	a.flight.AddListener(flightLog{})
	a.flight.AddListener(sounds)

	scheduler := engine.NewFrameScheduler(cfg.Simulation.FrameInterval(), a.loop.Tick)
	router := input.NewRouter(a.layer, a.controls, renderer, scheduler.RequestStop)
	machine := input.NewMachine()

	scheduler.Start()

	// The poller never touches simulation state, it posts intents to the frame goroutine
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			if !scheduler.Post(func() { router.Handle(intent) }) {
				return
			}
		}
	})

	<-scheduler.Done()
	scheduler.Stop()
	log.Printf("stopped after %d frames", scheduler.Ticks())

	core.SetCrashScreen(nil)
	screen.Fini()
}
