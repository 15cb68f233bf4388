package qdrant

import (
	"time"
)

const (
	// DefaultRegistryCollection holds one metadata point per managed collection.
	DefaultRegistryCollection = "_collection_registry"

	defaultVectorSize = 1536
	defaultDistance   = "Cosine"
)

// Config holds connection and behavior settings for the Qdrant client.
//
// It is intentionally minimal, readable, and easy to override from environment
// variables, YAML, or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := qdrant.DefaultConfig()
//	cfg.Endpoint = "localhost"
//	cfg.ApiKey = os.Getenv("QDRANT_API_KEY")
//	cfg.Timeout = 10 * time.Second
//
// Example (builder style):
//
//	cfg := qdrant.FromEndpoint("qdrant.internal").
//	    WithApiKey(os.Getenv("QDRANT_API_KEY")).
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" env:"QDRANT_ENDPOINT"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"QDRANT_PORT"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// UseTLS enables TLS on the gRPC connection.
	UseTLS bool `yaml:"use_tls" env:"QDRANT_USE_TLS"`

	// Maximum duration of a single request before timing out.
	Timeout time.Duration `yaml:"timeout" env:"QDRANT_TIMEOUT"`

	// Whether to perform version compatibility checks between client and server.
	CheckCompatibility bool `yaml:"check_compatibility" env:"QDRANT_CHECK_COMPATIBILITY"`

	// RegistryCollection stores collection metadata, which Qdrant has no
	// native place for. It is hidden from ListCollections.
	RegistryCollection string `yaml:"registry_collection" env:"QDRANT_REGISTRY_COLLECTION"`

	// VectorSize is the dimension of vectors in newly created collections.
	VectorSize uint64 `yaml:"vector_size" env:"QDRANT_VECTOR_SIZE"`

	// Distance is the similarity metric of new collections: Cosine, Dot, Euclid or Manhattan.
	Distance string `yaml:"distance" env:"QDRANT_DISTANCE"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:           "localhost",
		Port:               6334,
		Timeout:            5 * time.Second,
		CheckCompatibility: true,
		RegistryCollection: DefaultRegistryCollection,
		VectorSize:         defaultVectorSize,
		Distance:           defaultDistance,
	}
}

// FromEndpoint returns a default config pre-filled with a specific endpoint.
func FromEndpoint(host string) *Config {
	cfg := DefaultConfig()
	cfg.Endpoint = host
	return cfg
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithApiKey(key string) *Config {
	c.ApiKey = key
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

func (c *Config) WithCompatibilityCheck(enabled bool) *Config {
	c.CheckCompatibility = enabled
	return c
}

func (c *Config) WithVectorParams(size uint64, distance string) *Config {
	c.VectorSize = size
	c.Distance = distance
	return c
}
