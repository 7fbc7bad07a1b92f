package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/folio/pkg/project"
)

// ErrNotFound reports that a document has never been saved.
var ErrNotFound = errors.New("store: not found")

// Catalog names a global list stored beside the workspace.
type Catalog string

const (
	CatalogTemplates Catalog = "templates"
	CatalogLocations Catalog = "locations"
)

const (
	workspaceKey  = "workspace"
	catalogPrefix = "catalog"
	tempDir       = ".tmp"
)

// Persistence defines the persistence contract for the workspace and its catalogs.
type Persistence interface {
	LoadWorkspace(ctx context.Context) (*project.Workspace, error)
	SaveWorkspace(ctx context.Context, ws *project.Workspace) error
	LoadCatalog(ctx context.Context, kind Catalog, out any) error
	SaveCatalog(ctx context.Context, kind Catalog, v any) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Option configures Load.
type Option func(*persistence)

// WithLogger routes store diagnostics to log.
func WithLogger(log *zap.Logger) Option {
	return func(p *persistence) {
		if log != nil {
			p.log = log
		}
	}
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		settings, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = settings
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, tempDir),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

func (p *persistence) LoadWorkspace(ctx context.Context) (*project.Workspace, error) {
	ws := &project.Workspace{}
	if err := p.read(ctx, workspaceKey, ws); err != nil {
		return nil, err
	}
	ws.Normalize()
	return ws, nil
}

func (p *persistence) SaveWorkspace(ctx context.Context, ws *project.Workspace) error {
	if ws == nil {
		return errors.New("store: nil workspace")
	}
	return p.write(ctx, workspaceKey, ws)
}

func (p *persistence) LoadCatalog(ctx context.Context, kind Catalog, out any) error {
	return p.read(ctx, catalogKey(kind), out)
}

func (p *persistence) SaveCatalog(ctx context.Context, kind Catalog, v any) error {
	return p.write(ctx, catalogKey(kind), v)
}

// read bypasses the diskv cache so external edits picked up by Watch are seen.
func (p *persistence) read(ctx context.Context, key string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(data) == 0 {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func (p *persistence) write(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	p.log.Debug("document saved", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

func catalogKey(kind Catalog) string {
	return fmt.Sprintf("%s-%s", catalogPrefix, kind)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
