package printers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	plog "github.com/phuslu/log"
	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pkt.systems/pslog"

	"pkt.systems/quicklog/printers"
)

func TestZerologPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := printers.Zerolog(zerolog.New(&buf))
	p.Print("rebalanced %d shards in %s", 3, "125ms")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json output %q: %v", buf.String(), err)
	}
	if payload["message"] != "rebalanced 3 shards in 125ms" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
}

func TestZapPrinter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := printers.Zap(zap.New(core).Sugar())
	p.Print("compacted %d segments", 12)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "compacted 12 segments" {
		t.Fatalf("unexpected message: %q", entries[0].Message)
	}
	if entries[0].Level != zapcore.InfoLevel {
		t.Fatalf("unexpected level: %v", entries[0].Level)
	}
}

func TestPhusluPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := printers.Phuslu(&plog.Logger{Level: plog.InfoLevel, Writer: plog.IOWriter{Writer: &buf}})
	p.Print("evicted %d of %d keys", 40, 1000)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json output %q: %v", buf.String(), err)
	}
	if payload["message"] != "evicted 40 of 1000 keys" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
}

func TestPslogPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := printers.Pslog(pslog.NewWithOptions(&buf, pslog.Options{
		Mode:             pslog.ModeConsole,
		DisableTimestamp: true,
		NoColor:          true,
	}))
	p.Print("disk %s at %d%%", "sda", 93)

	got := strings.TrimSpace(buf.String())
	if got != "INF disk sda at 93%" {
		t.Fatalf("unexpected output: got %q", got)
	}
}

func TestSlogPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := printers.Slog(slog.New(slog.NewTextHandler(&buf, nil)))
	p.Print("batch %d of %d done", 3, 4)

	if !strings.Contains(buf.String(), `msg="batch 3 of 4 done"`) {
		t.Fatalf("unexpected output: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "level=INFO") {
		t.Fatalf("unexpected level: %q", buf.String())
	}
}
