package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-flock/pkg/flock"
	"github.com/santhosh-tekuri/jsonschema/v5"
	golog "github.com/tochemey/goakt/v3/log"
)

//go:embed config.schema.json
var configSchema string

type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`
	Buffer      float64 `json:"buffer"` // how far a boid may leave the screen before wrapping

	// Population
	Population   int `json:"population"`
	PredatorLife int `json:"predatorLife"` // ticks

	// Flocking parameters, restored by Reset
	SeparationWeight   float64 `json:"separationWeight"`
	AlignmentWeight    float64 `json:"alignmentWeight"`
	CohesionWeight     float64 `json:"cohesionWeight"`
	Inertia            float64 `json:"inertia"`
	Speed              float64 `json:"speed"`
	NeighborhoodRadius float64 `json:"neighborhoodRadius"`
	ViewAngle          float64 `json:"viewAngle"` // radians

	// Engine
	Mode           string `json:"mode"`  // snapshot or sequential
	Index          string `json:"index"` // grid or scan
	Seed           uint64 `json:"seed"`  // 0 picks a random seed
	TicksPerSecond int    `json:"ticksPerSecond"`
	LogLevel       string `json:"logLevel"`
}

func DefaultConfig() *Config {
	p := flock.DefaultParams()
	return &Config{
		WorldWidth:         flock.DefaultWidth,
		WorldHeight:        flock.DefaultHeight,
		Buffer:             flock.DefaultBuffer,
		Population:         flock.DefaultPopulation,
		PredatorLife:       flock.DefaultPredatorLife,
		SeparationWeight:   p.SeparationWeight,
		AlignmentWeight:    p.AlignmentWeight,
		CohesionWeight:     p.CohesionWeight,
		Inertia:            p.Inertia,
		Speed:              p.Speed,
		NeighborhoodRadius: p.NeighborhoodRadius,
		ViewAngle:          p.ViewAngle,
		Mode:               flock.ModeSnapshot.String(),
		Index:              "grid",
		TicksPerSecond:     60,
		LogLevel:           "info",
	}
}

// LoadConfig reads a JSON or TOML file (chosen by extension), validates it
// against the embedded schema and overlays it onto DefaultConfig.
func LoadConfig(configFile string) (*Config, error) {
	f, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".toml":
		return DecodeTOML(f)
	default:
		return DecodeJSON(f)
	}
}

// DecodeTOML converts the TOML document to JSON so both formats share one schema.
func DecodeTOML(r io.Reader) (*Config, error) {
	var doc map[string]any
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode config toml: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config toml: %w", err)
	}
	return decode(b)
}

// DecodeJSON validates and decodes a JSON document.
func DecodeJSON(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return decode(b)
}

func decode(b []byte) (*Config, error) {
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// fields missing from the document keep their default value
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Params returns the flocking parameters the world starts with.
func (c *Config) Params() flock.Params {
	return flock.Params{
		SeparationWeight:   c.SeparationWeight,
		AlignmentWeight:    c.AlignmentWeight,
		CohesionWeight:     c.CohesionWeight,
		Inertia:            c.Inertia,
		Speed:              c.Speed,
		NeighborhoodRadius: c.NeighborhoodRadius,
		ViewAngle:          c.ViewAngle,
	}
}

func (c *Config) Bounds() flock.Bounds {
	return flock.Bounds{Width: c.WorldWidth, Height: c.WorldHeight, Buffer: c.Buffer}
}

// Logger builds the goakt logger writing to stdout at the configured level.
func (c *Config) Logger() golog.Logger {
	return golog.New(logLevel(c.LogLevel), os.Stdout)
}

func logLevel(s string) golog.Level {
	switch s {
	case "debug":
		return golog.DebugLevel
	case "warn":
		return golog.WarningLevel
	case "error":
		return golog.ErrorLevel
	default:
		return golog.InfoLevel
	}
}

// NewWorld creates the world described by the config and seeds its population.
func (c *Config) NewWorld(logger golog.Logger) *flock.World {
	opts := []flock.Option{
		flock.WithParams(c.Params()),
		flock.WithBounds(c.Bounds()),
		flock.WithPopulation(c.Population),
		flock.WithPredatorLife(c.PredatorLife),
		flock.WithMode(flock.ParseMode(c.Mode)),
		flock.WithLogger(logger),
	}
	if c.Index == "scan" {
		opts = append(opts, flock.WithIndex(flock.NewScanIndex()))
	}
	if c.Seed != 0 {
		opts = append(opts, flock.WithRand(rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))))
	}
	w := flock.NewWorld(opts...)
	w.Reset()
	return w
}
