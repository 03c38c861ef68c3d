// Command generate builds a world offline and writes it as JSON, for
// static hosting or for feeding a renderer without running the server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"glade.dev/internal/config"
	"glade.dev/internal/generation"
)

func main() {
	var (
		seed       = flag.String("seed", "", "world seed (default: seed from config)")
		configPath = flag.String("config", "", "path to a YAML config file")
		out        = flag.String("o", "world.json", "output file path")
		compress   = flag.Bool("compress", false, "zstd-compress the output (.json.zst)")
		indent     = flag.Bool("indent", false, "pretty-print the JSON")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail("loading config: %v", err)
	}

	worldCfg := cfg.World
	if *seed != "" {
		worldCfg.Seed = generation.SeedFromString(*seed)
	}

	fmt.Printf("Generating world for seed %q...\n", worldCfg.Seed.String())

	world, err := generation.BuildWorld(worldCfg)
	if err != nil {
		fail("generating world: %v", err)
	}

	path := *out
	if *compress && !strings.HasSuffix(path, ".zst") {
		path += ".zst"
	}

	if err := writeWorld(world, path, *compress, *indent); err != nil {
		fail("writing %s: %v", path, err)
	}

	fmt.Printf("Wrote %s (%d patches, %d paths, %d trees, %d landmarks)\n",
		path, len(world.Patches), len(world.Paths), len(world.Trees), len(world.Landmarks))
}

func writeWorld(world *generation.World, path string, compress, indent bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var w io.Writer = f
	if compress {
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		defer zw.Close()
		w = zw
	}

	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(world)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
