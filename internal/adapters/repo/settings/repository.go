package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/bnema/gfg-downloader/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	PathKey         = "config"
	DefaultPath     = "config.json"
	settingsFileMod = 0o600
	settingsDirMode = 0o700
	tempFilePattern = ".settings-*.tmp"
)

type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SettingsRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	cfg.SetDefault(PathKey, DefaultPath)

	path := cfg.GetString(PathKey)
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("settings path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve settings path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Repository{path: absPath, mu: lockForPath(absPath)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

// Load returns the persisted settings with defaults for missing keys. When the
// document is absent or malformed it is replaced by defaults. The returned
// settings are always usable; a non-nil error only reports what went wrong.
func (r *Repository) Load(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.DefaultSettings(), err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *Repository) load() (domain.Settings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return domain.DefaultSettings(), fmt.Errorf("%w: read %s: %w", domain.ErrConfigIO, r.path, err)
		}
		return r.writeDefaults(nil)
	}

	file, err := r.decode(data)
	if err != nil {
		return r.writeDefaults(fmt.Errorf("decode settings file: %w", err))
	}

	return fromSchema(file), nil
}

func (r *Repository) Save(ctx context.Context, s domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.write(toSchema(s.WithDefaults()))
}

// Set changes one key and persists the document immediately.
func (r *Repository) Set(ctx context.Context, key string, value string) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load()
	if err != nil && errors.Is(err, domain.ErrConfigIO) {
		return current, err
	}

	if err := current.Set(key, value); err != nil {
		return current, err
	}

	if err := r.write(toSchema(current.WithDefaults())); err != nil {
		return current, err
	}
	return current, nil
}

func (r *Repository) writeDefaults(cause error) (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if err := r.write(toSchema(defaults)); err != nil {
		return defaults, errors.Join(cause, err)
	}
	return defaults, cause
}

func (r *Repository) isTOML() bool {
	return strings.EqualFold(filepath.Ext(r.path), ".toml")
}

func (r *Repository) decode(data []byte) (fileSchema, error) {
	var file fileSchema
	if r.isTOML() {
		err := toml.Unmarshal(data, &file)
		return file, err
	}
	err := json.Unmarshal(data, &file)
	return file, err
}

func (r *Repository) encode(file fileSchema) ([]byte, error) {
	if r.isTOML() {
		return toml.Marshal(file)
	}
	data, err := json.MarshalIndent(file, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) write(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(r.path), settingsDirMode); err != nil {
		return fmt.Errorf("%w: create settings directory: %w", domain.ErrConfigIO, err)
	}

	data, err := r.encode(file)
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("%w: create temp settings file: %w", domain.ErrConfigIO, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("%w: write temp settings file: %w", domain.ErrConfigIO, err)
	}

	if err := tempFile.Chmod(settingsFileMod); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("%w: chmod temp settings file: %w", domain.ErrConfigIO, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("%w: close temp settings file: %w", domain.ErrConfigIO, err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("%w: replace settings file: %w", domain.ErrConfigIO, err)
	}

	cleanup = false
	return nil
}
