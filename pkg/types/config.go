package types

// OutputFormat selects how a batch of ideas is written.
type OutputFormat string

const (
	OutputText     OutputFormat = "text"
	OutputMarkdown OutputFormat = "markdown"
	OutputJSON     OutputFormat = "json"
	OutputYAML     OutputFormat = "yaml"
)

// Count bounds for a single batch, matching the dashboard's number input.
const (
	MinCount     = 1
	MaxCount     = 10
	DefaultCount = 3
)

// DefaultMaxAttempts bounds the rejection loop of a filtered generation.
const DefaultMaxAttempts = 1000

// GeneratorConfig holds settings for the generate command and the API defaults.
type GeneratorConfig struct {
	// Count is the number of ideas per batch (1-10, default 3).
	Count int `json:"count" yaml:"count" mapstructure:"count"`

	// Variant selects the tables drawn and the description phrasing.
	Variant Variant `json:"variant" yaml:"variant" mapstructure:"variant"`

	// MaxAttempts is the retry bound for filtered generation (default 1000).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts" mapstructure:"max_attempts"`

	// Seed makes output reproducible when non-zero.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty" mapstructure:"seed"`

	// Format selects the CLI output format.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// CatalogConfig locates optional reference table overrides.
type CatalogConfig struct {
	// File is a YAML catalog overlaid on the built-in tables.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`

	// Dir holds one plain-text file per table, applied after File.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" mapstructure:"dir"`
}

// ServerConfig holds settings for the HTTP dashboard.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// LogMode selects the zap configuration: "dev" or "prod".
	LogMode string `json:"log_mode" yaml:"log_mode" mapstructure:"log_mode"`

	// AllowOrigins lists the CORS origins allowed to call the API.
	AllowOrigins []string `json:"allow_origins,omitempty" yaml:"allow_origins,omitempty" mapstructure:"allow_origins"`
}

// Config groups all settings read from idea-engine.yaml and the environment.
type Config struct {
	Generator GeneratorConfig `json:"generator" yaml:"generator" mapstructure:"generator"`
	Catalog   CatalogConfig   `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Server    ServerConfig    `json:"server" yaml:"server" mapstructure:"server"`
}
