// quicklog-demo drives the engine end to end: producer goroutines log
// through their own Loggers while a single server drains into a
// selectable backend. Each producer measures its own Log call latency
// and reports the numbers through the pipeline itself, the way any other
// message travels. With -compare the same messages are also formatted
// eagerly for contrast.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	plog "github.com/phuslu/log"
	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"pkt.systems/pslog"
	"pkt.systems/quicklog"
	"pkt.systems/quicklog/printers"
)

func main() {
	var (
		producers int
		messages  int
		arenas    int
		arenaSize int
		backend   string
		platform  string
		compare   bool
	)
	flag.IntVar(&producers, "producers", 4, "number of producer goroutines")
	flag.IntVar(&messages, "messages", 1024, "messages per producer")
	flag.IntVar(&arenas, "arenas", 8, "arenas per logger")
	flag.IntVar(&arenaSize, "arena-size", 16*1024, "bytes per arena")
	flag.StringVar(&backend, "backend", "printf", "printf, zerolog, zap, phuslu, pslog or discard")
	flag.StringVar(&platform, "platform", "notify", "notify or yield")
	flag.BoolVar(&compare, "compare", false, "also time fmt.Fprintf and fmt.Sprintf directly")
	flag.Parse()

	diag := pslog.New(os.Stderr)
	if producers < 1 || messages < 1 {
		diag.Fatal("producers and messages must be at least 1",
			"producers", producers, "messages", messages)
	}

	printer, err := pickBackend(backend)
	if err != nil {
		diag.Fatal("backend selection failed", "error", err)
	}
	counted := quicklog.NewCountingPrinter(printer)

	plat, err := pickPlatform(platform)
	if err != nil {
		diag.Fatal("platform selection failed", "error", err)
	}

	srv := quicklog.NewServerWithOptions(quicklog.ServerOptions{
		MaxLoggers: producers,
		Platform:   plat,
		Printer:    counted,
	})
	go srv.Run()

	opts := quicklog.LoggerOptions{Arenas: arenas, ArenaSize: arenaSize}
	start := time.Now()
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runProducer(srv, opts, id, messages, diag)
		}(p)
	}
	wg.Wait()
	logged := time.Since(start)

	srv.Shutdown()
	<-srv.Done()

	diag.Info("drained",
		"backend", backend,
		"platform", platform,
		"producers", producers,
		"logged", producers*messages,
		"emitted", counted.Count(),
		"logging_took", logged,
		"total_took", time.Since(start),
	)

	if compare {
		runComparison(messages, diag)
	}
}

func runProducer(srv *quicklog.Server, opts quicklog.LoggerOptions, id, messages int, diag pslog.Logger) {
	lg := quicklog.NewWithOptions(opts)
	if err := srv.Register(lg); err != nil {
		diag.Error("register failed", "producer", id, "error", err)
		return
	}
	var worst, total time.Duration
	for n := 0; n < messages; n++ {
		before := time.Now()
		lg.Log("the quick brown fox jumps over the lazy dog %d of producer %d", n, id)
		d := time.Since(before)
		total += d
		if d > worst {
			worst = d
		}
	}
	lg.Log("producer %d: %d messages, mean %v, worst %v, dropped %d",
		id, messages, total/time.Duration(messages), worst, lg.Dropped())
	lg.Flush()
}

func runComparison(messages int, diag pslog.Logger) {
	var worst, total time.Duration
	for n := 0; n < messages; n++ {
		before := time.Now()
		fmt.Fprintf(os.Stdout, "the quick brown fox jumps over the lazy dog %d directly\n", n)
		d := time.Since(before)
		total += d
		if d > worst {
			worst = d
		}
	}
	diag.Info("eager fmt.Fprintf to stdout",
		"messages", messages,
		"mean", total/time.Duration(messages),
		"worst", worst,
	)

	worst, total = 0, 0
	for n := 0; n < messages; n++ {
		before := time.Now()
		line := fmt.Sprintf("the quick brown fox jumps over the lazy dog %d directly", n)
		d := time.Since(before)
		total += d
		if d > worst {
			worst = d
		}
		_ = line
	}
	diag.Info("eager fmt.Sprintf, no write",
		"messages", messages,
		"mean", total/time.Duration(messages),
		"worst", worst,
	)
}

func pickBackend(name string) (quicklog.Printer, error) {
	switch name {
	case "printf":
		return quicklog.NewWriterPrinter(os.Stdout), nil
	case "zerolog":
		return printers.Zerolog(zerolog.New(os.Stdout).With().Timestamp().Logger()), nil
	case "zap":
		encoderCfg := zap.NewProductionEncoderConfig()
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
		return printers.Zap(zap.New(core, zap.WithCaller(false)).Sugar()), nil
	case "phuslu":
		logger := &plog.Logger{
			Level:  plog.InfoLevel,
			Writer: plog.IOWriter{Writer: os.Stdout},
		}
		return printers.Phuslu(logger), nil
	case "pslog":
		return printers.Pslog(pslog.NewStructured(os.Stdout)), nil
	case "discard":
		return quicklog.Noop(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}

func pickPlatform(name string) (quicklog.Platform, error) {
	switch name {
	case "notify":
		return quicklog.NewNotifyPlatform(), nil
	case "yield":
		return &quicklog.YieldPlatform{}, nil
	}
	return nil, fmt.Errorf("unknown platform %q", name)
}
