package config

import "os"

const inferenceKeyEnvKey = "INFERENCE_API_KEY"

// Temp and NucleusTopP are pointers so an explicit 0 (greedy
// decoding) stays distinguishable from "not set".
type InferenceConfig struct {
	EndpointURL  string   `yaml:"endpoint"`
	FallbackURL  string   `yaml:"fallback-endpoint"`
	Key          string   `yaml:"api-key"`
	MaxNewTokens int      `yaml:"max-new-tokens"`
	Temp         *float64 `yaml:"temperature"`
	NucleusTopP  *float64 `yaml:"top-p"`
}

func (c *InferenceConfig) applyEnv() {
	if v := os.Getenv(inferenceKeyEnvKey); v != "" {
		c.Key = v
	}
}

func (c *InferenceConfig) Endpoint() string {
	return c.EndpointURL
}

func (c *InferenceConfig) FallbackEndpoint() string {
	return c.FallbackURL
}

func (c *InferenceConfig) ApiKey() string {
	return c.Key
}

func (c *InferenceConfig) MaxTokens() int {
	if c.MaxNewTokens <= 0 {
		return 250
	}
	return c.MaxNewTokens
}

func (c *InferenceConfig) Temperature() float64 {
	if c.Temp == nil {
		return 0.7
	}
	return *c.Temp
}

func (c *InferenceConfig) TopP() float64 {
	if c.NucleusTopP == nil {
		return 0.9
	}
	return *c.NucleusTopP
}
