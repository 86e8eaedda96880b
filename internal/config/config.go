// Package config loads the whiteboard configuration file.
//
// The file is TOML and every key is optional:
//
//	[server]
//	addr = ":8080"
//	token = ""          # empty disables authentication
//	read_timeout = "15s"
//
//	[store]
//	backend = "file"    # file | memory | redis | mongo
//	dir = "~/.local/share/whiteboard/boards"
//	redis_addr = "localhost:6379"
//	mongo_uri = "mongodb://localhost:27017"
//	mongo_database = "whiteboard"
//
//	[cache]
//	backend = "file"    # file | memory | redis | none
//	dir = "~/.cache/whiteboard"
//	prefix = "whiteboard:"
//
//	[render]
//	scale = 1.0
//	padding = 40.0
//	background = "#ffffff"
//
//	[icons]
//	size = 128
//
// WHITEBOARD_TOKEN overrides server.token.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/whiteboard/pkg/store"
)

const appName = "whiteboard"

// TokenEnv overrides the server token.
const TokenEnv = "WHITEBOARD_TOKEN"

// Duration decodes TOML strings such as "15s".
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

type Server struct {
	Addr        string   `toml:"addr"`
	Token       string   `toml:"token"`
	ReadTimeout Duration `toml:"read_timeout"`
}

type Store struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

type Cache struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
	Prefix  string `toml:"prefix"`
}

type Render struct {
	Scale      float64 `toml:"scale"`
	Padding    float64 `toml:"padding"`
	Background string  `toml:"background"`
}

type Icons struct {
	Size int `toml:"size"`
}

// Config is the decoded configuration file.
type Config struct {
	Server Server `toml:"server"`
	Store  Store  `toml:"store"`
	Cache  Cache  `toml:"cache"`
	Render Render `toml:"render"`
	Icons  Icons  `toml:"icons"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Server: Server{Addr: ":8080", ReadTimeout: Duration{15 * time.Second}},
		Store: Store{
			Backend:       store.BackendFile,
			Dir:           filepath.Join(dataHome(), appName, "boards"),
			RedisAddr:     "localhost:6379",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: appName,
		},
		Cache:  Cache{Backend: "file", Dir: filepath.Join(cacheHome(), appName), Prefix: appName + ":"},
		Render: Render{Scale: 1, Padding: 40, Background: "#ffffff"},
		Icons:  Icons{Size: 128},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("load config %s: unknown key %s", path, undecoded[0])
		}
	}
	if tok, ok := os.LookupEnv(TokenEnv); ok {
		cfg.Server.Token = tok
	}
	cfg.Store.Dir = expandHome(cfg.Store.Dir)
	cfg.Cache.Dir = expandHome(cfg.Cache.Dir)
	return cfg, cfg.Validate()
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	if !contains(store.Backends, c.Store.Backend) {
		return fmt.Errorf("store.backend: unknown backend %q", c.Store.Backend)
	}
	if !contains([]string{"file", "memory", "redis", "none"}, c.Cache.Backend) {
		return fmt.Errorf("cache.backend: unknown backend %q", c.Cache.Backend)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("render.scale: must be positive")
	}
	if c.Render.Padding < 0 {
		return fmt.Errorf("render.padding: must not be negative")
	}
	if c.Icons.Size <= 0 || c.Icons.Size > 1024 {
		return fmt.Errorf("icons.size: must be in 1..1024")
	}
	return nil
}

// StoreOptions maps the store section onto store.Options.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Backend:       c.Store.Backend,
		Dir:           c.Store.Dir,
		RedisAddr:     c.Store.RedisAddr,
		RedisPassword: c.Store.RedisPassword,
		RedisDB:       c.Store.RedisDB,
		RedisPrefix:   c.Cache.Prefix,
		MongoURI:      c.Store.MongoURI,
		MongoDatabase: c.Store.MongoDatabase,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/whiteboard/config.toml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share")
}

func cacheHome() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
