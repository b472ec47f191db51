package newapp

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Lax999/Newapp/stores"
	"github.com/joho/godotenv"
)

// EndpointEnvVar names the environment variable carrying the primary endpoint
// base URL. Loopback fallbacks are appended after it.
const EndpointEnvVar = "NEWAPP_OLLAMA_URL"

// loopbackFallbacks are the documented platform fallbacks tried after the
// configured endpoint. 10.0.2.2 reaches the host machine from an emulator.
var loopbackFallbacks = []string{
	"http://10.0.2.2:11434",
	"http://127.0.0.1:11434",
}

// defaultModels is the fixed model preference order, most capable first down
// to minimal fallbacks.
var defaultModels = []string{
	"llama3.2",
	"llama3.2:1b",
	"llama3.1",
	"llama3",
	"tinyllama",
}

const defaultWarmupDelay = 2 * time.Second

func init() {
	// Load .env file if it exists (not present in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Config holds the process-wide, read-only-after-initialization settings for
// the generation service and orchestrator.
type Config struct {
	Endpoints   []string
	Models      []string
	WarmupDelay time.Duration
	TraceStore  stores.TraceStore
	Launcher    MapsLauncher
}

// NewConfig builds a configuration with default endpoint, model and warm-up
// settings. The endpoint list starts from EndpointEnvVar when set.
func NewConfig() *Config {
	return &Config{
		Endpoints:   Candidate_Endpoints(os.Getenv(EndpointEnvVar)),
		Models:      append([]string(nil), defaultModels...),
		WarmupDelay: defaultWarmupDelay,
	}
}

// WithEndpoints replaces the candidate endpoint list, deduplicated in order.
func (c *Config) WithEndpoints(endpoints ...string) *Config {
	c.Endpoints = dedupe(endpoints)
	return c
}

// WithModels replaces the model preference list.
func (c *Config) WithModels(models ...string) *Config {
	c.Models = append([]string(nil), models...)
	return c
}

// WithWarmupDelay overrides the fixed delay applied once per Generate call.
func (c *Config) WithWarmupDelay(d time.Duration) *Config {
	c.WarmupDelay = d
	return c
}

// WithTraceStore attaches a store that records every completion attempt.
func (c *Config) WithTraceStore(store stores.TraceStore) *Config {
	c.TraceStore = store
	return c
}

// WithSQLiteTraceStore attaches a SQLite-backed trace store at the given path.
func (c *Config) WithSQLiteTraceStore(dbPath string) *Config {
	store, err := stores.NewSQLiteTraceStore(dbPath)
	if err != nil {
		panic("Failed to create SQLite trace store: " + err.Error())
	}
	c.TraceStore = store
	return c
}

// WithLauncher sets the maps-launch collaborator.
func (c *Config) WithLauncher(launcher MapsLauncher) *Config {
	c.Launcher = launcher
	return c
}

// Candidate_Endpoints builds the prioritized endpoint list: the primary
// configured URL first, then the documented loopback fallbacks, duplicates
// removed preserving first occurrence.
func Candidate_Endpoints(primary string) []string {
	candidates := make([]string, 0, len(loopbackFallbacks)+1)
	if strings.TrimSpace(primary) != "" {
		candidates = append(candidates, strings.TrimSpace(primary))
	}
	candidates = append(candidates, loopbackFallbacks...)
	return dedupe(candidates)
}

func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimRight(strings.TrimSpace(u), "/")
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
