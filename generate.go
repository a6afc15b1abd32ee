package areamap

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
)

// Config controls a single generation run.
type Config struct {
	Output     string      // Destination JSON path (default: "./entsoe_area_map.json")
	MergeFiles []string    // Existing JSON maps folded into the output
	DefaultISO string      // Fallback ISO code when detection fails
	Logger     *zap.Logger // Defaults to a no-op logger
}

// Option is a functional option for configuring generation.
type Option func(*Config)

// WithOutput sets the destination path for the generated JSON.
func WithOutput(path string) Option {
	return func(c *Config) {
		c.Output = path
	}
}

// WithMergeFiles adds existing JSON maps that should be merged into the
// output.
func WithMergeFiles(paths ...string) Option {
	return func(c *Config) {
		c.MergeFiles = append(c.MergeFiles, paths...)
	}
}

// WithDefaultISO sets the fallback ISO code used when detection fails.
func WithDefaultISO(iso string) Option {
	return func(c *Config) {
		c.DefaultISO = iso
	}
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func defaultConfig() *Config {
	return &Config{
		Output: "./entsoe_area_map.json",
		Logger: zap.NewNop(),
	}
}

// Generate runs the full pipeline: load the XML source, extract and
// classify areas, fold in any merge files, and write the sorted JSON map.
// Returns the number of ISO entries written.
//
// Load and XML parse failures are fatal. A document with no Domain
// elements, an unreadable merge file, or a malformed merge file only warn.
func Generate(source string, opts ...Option) (int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.Logger

	data, err := LoadSource(source)
	if err != nil {
		return 0, fmt.Errorf("loading source %s: %w", source, err)
	}

	areas, err := ExtractAreas(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("invalid XML from %s: %w", source, err)
	}
	if len(areas) == 0 {
		log.Warn("no Domain elements found; check if the namespace needs updating",
			zap.String("source", source))
	}

	result := NewAreaMap()
	defaultISO := NormalizeISO(cfg.DefaultISO)
	for _, area := range areas {
		if !result.Classify(area, defaultISO) {
			log.Debug("dropping unclassifiable area",
				zap.String("eic", area.EIC),
				zap.String("name", area.Name))
		}
	}

	for _, path := range cfg.MergeFiles {
		mergeData, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			log.Warn("skipping merge file", zap.String("path", path), zap.Error(err))
			continue
		}
		if err := result.MergeJSON(mergeData); err != nil {
			log.Warn("skipping merge file", zap.String("path", path), zap.Error(err))
		}
	}

	if err := result.WriteFile(cfg.Output); err != nil {
		return 0, err
	}

	for _, iso := range sortedKeys(result) {
		log.Debug("mapped areas",
			zap.String("iso", iso),
			zap.String("country", Label(iso)),
			zap.Int("areas", len(result[iso])))
	}
	return len(result), nil
}

func sortedKeys(m AreaMap) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
