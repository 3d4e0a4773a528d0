package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that call NCBI.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperscout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the PubMed fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of PMIDs requested from ESearch
	// (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Tool is the client name sent as the E-utilities tool parameter.
	Tool string `json:"tool" yaml:"tool"`

	// Email is sent as the E-utilities email parameter so NCBI can reach
	// the operator about a misbehaving client.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey raises the NCBI rate limit from 3 to 10 requests per second.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// StoreConfig holds settings for the SQLite results store.
type StoreConfig struct {
	// Path is the database file location (e.g. "paperscout.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of listed rows (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
