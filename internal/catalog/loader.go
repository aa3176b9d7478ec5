package catalog

import (
	"compress/gzip"
	"context"
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"aesthetic-cakes/internal/model"

	"github.com/rs/zerolog"
)

//go:embed data/*.yaml
var embeddedData embed.FS

// embeddedLoader implements Loader over the sections compiled into the binary.
type embeddedLoader struct {
	logger zerolog.Logger
}

// NewEmbeddedLoader creates a loader for the built-in catalogue.
func NewEmbeddedLoader(logger zerolog.Logger) Loader {
	return &embeddedLoader{
		logger: logger.With().Str("component", "embedded-catalog-loader").Logger(),
	}
}

// Load decodes the embedded section for kind.
func (l *embeddedLoader) Load(ctx context.Context, kind model.Kind) (*Section, error) {
	name := path.Join("data", FileName(kind))

	file, err := embeddedData.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded section %s: %w", name, err)
	}
	defer file.Close()

	section, err := Decode(file, kind)
	if err != nil {
		l.logger.Error().Err(err).Str("file", name).Msg("failed to decode embedded section")
		return nil, err
	}

	l.logger.Debug().
		Str("kind", string(kind)).
		Int("products", len(section.Products)).
		Msg("embedded section loaded")

	return section, nil
}

// fileLoader implements Loader for section files in a local directory.
// A gzipped archive (cakes.yaml.gz) takes precedence over plain YAML.
type fileLoader struct {
	dir    string
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader rooted at dir.
func NewFileLoader(dir string, logger zerolog.Logger) Loader {
	return &fileLoader{
		dir:    dir,
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads kind's section from the loader's directory.
func (l *fileLoader) Load(ctx context.Context, kind model.Kind) (*Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filePath := filepath.Join(l.dir, ArchiveName(kind))
	gzipped := true
	if _, err := os.Stat(filePath); err != nil {
		filePath = filepath.Join(l.dir, FileName(kind))
		gzipped = false
	}

	l.logger.Info().Str("file", filePath).Msg("loading catalog section")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalog section")
		return nil, fmt.Errorf("failed to open catalog section %s: %w", filePath, err)
	}
	defer file.Close()

	var r io.Reader = file
	if gzipped {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	section, err := Decode(r, kind)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode catalog section")
		return nil, fmt.Errorf("failed to read catalog section %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(section.Products)).
		Msg("catalog section loaded successfully")

	return section, nil
}
