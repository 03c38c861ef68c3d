package services

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"glade.dev/internal/generation"
	"glade.dev/internal/models"
)

//go:embed pack_schema.json
var packSchemaSrc string

// PackService loads world data packs from the data directory and merges
// them into a generation config. Pack documents may be .yaml, .json, or
// zstd-compressed .json.zst; every document is validated against the pack
// schema before anything merges.
type PackService struct {
	dataPath string
	logger   *slog.Logger
	schema   *jsonschema.Schema
}

// NewPackService creates a pack loader rooted at dataPath
func NewPackService(dataPath string, logger *slog.Logger) (*PackService, error) {
	schema, err := jsonschema.CompileString("pack_schema.json", packSchemaSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling pack schema: %w", err)
	}
	return &PackService{dataPath: dataPath, logger: logger, schema: schema}, nil
}

// Apply merges every pack under <dataPath>/packs into cfg and returns the
// result. Fetched packs may unpack as directories, so the whole tree is
// walked. A missing packs directory is fine; a malformed pack is an error
// naming the offending file. Packs merge in lexical path order so the
// outcome never depends on directory iteration order.
func (s *PackService) Apply(cfg generation.Config) (generation.Config, error) {
	dir := filepath.Join(s.dataPath, "packs")

	var names []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			names = append(names, rel)
		}
		return nil
	})
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading pack dir: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		pack, err := s.loadPack(filepath.Join(dir, name))
		if err != nil {
			return cfg, fmt.Errorf("pack %s: %w", name, err)
		}
		if pack == nil {
			continue // not a pack document
		}
		cfg = mergePack(cfg, pack)
		s.logger.Info("pack merged",
			"pack", pack.Name,
			"file", name,
			"landmarks", len(pack.Landmarks),
			"patch_colors", len(pack.PatchColors))
	}

	// Collisions between packs, or between a pack and the built-in
	// registry, surface here rather than on the first world build.
	if err := generation.ValidateLandmarks(cfg.EffectiveLandmarks()); err != nil {
		return cfg, fmt.Errorf("merged packs: %w", err)
	}

	return cfg, nil
}

// loadPack reads one pack document. Files with unrelated extensions are
// skipped by returning a nil pack.
func (s *PackService) loadPack(path string) (*models.Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Normalize every supported format to JSON bytes so the schema and
	// the decoder see the same document.
	switch {
	case strings.HasSuffix(path, ".json.zst"):
		if raw, err = decompress(raw); err != nil {
			return nil, fmt.Errorf("decompressing: %w", err)
		}
	case strings.HasSuffix(path, ".json"):
		// already JSON
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
		if raw, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("converting yaml: %w", err)
		}
	default:
		return nil, nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	if err := s.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	pack := &models.Pack{}
	if err := json.Unmarshal(raw, pack); err != nil {
		return nil, fmt.Errorf("decoding pack: %w", err)
	}
	return pack, nil
}

func mergePack(cfg generation.Config, pack *models.Pack) generation.Config {
	if len(pack.Landmarks) > 0 {
		base := cfg.EffectiveLandmarks()
		merged := make([]generation.Landmark, 0, len(base)+len(pack.Landmarks))
		merged = append(merged, base...)
		for _, m := range pack.Landmarks {
			merged = append(merged, generation.Landmark{
				ID:   m.ID,
				Name: m.Name,
				Type: generation.LandmarkType(m.Type),
				X:    m.X,
				Z:    m.Z,
			})
		}
		cfg.Landmarks = merged
	}

	if len(pack.PatchColors) > 0 {
		cfg.PatchColors = pack.PatchColors
	}

	return cfg
}

func decompress(raw []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
