package app

import (
	"errors"
	"flag"
	"testing"

	"wildfire/internal/noise"
	"wildfire/internal/worldgen"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-size", "32", "-seed", "9", "-noise", "simplex", "-tps", "30"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 32 || cfg.Seed != 9 || cfg.Noise != "simplex" || cfg.TPS != 30 {
		t.Fatalf("parsed config = %+v", cfg)
	}
	if cfg.Sim != "firespread" || cfg.Scale != 8 {
		t.Fatalf("defaults lost: %+v", cfg)
	}

	wc, err := cfg.WorldConfig()
	if err != nil {
		t.Fatal(err)
	}
	if wc.Width != 32 || wc.Depth != 32 || wc.Seed != 9 || wc.Noise != noise.KindSimplex {
		t.Fatalf("world config = %+v", wc)
	}
}

func TestWorldConfigErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Noise = "perlni"
	if _, err := cfg.WorldConfig(); !errors.Is(err, noise.ErrUnknownKind) {
		t.Fatalf("bad noise: err = %v", err)
	}
	cfg = NewConfig()
	cfg.Size = 0
	if _, err := cfg.WorldConfig(); !errors.Is(err, worldgen.ErrInvalidConfig) {
		t.Fatalf("zero size: err = %v", err)
	}
}
