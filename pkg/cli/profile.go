package cli

import (
	"fmt"
	"os"
	"time"

	"sigs.k8s.io/yaml"
)

const (
	// KindProfile is the expected kind of a corectl profile file.
	KindProfile = "CorectlProfile"
)

// Profile holds the endpoints and default log fields corectl uses to
// build its clients.
type Profile struct {
	Kind      string      `json:"kind"`
	Endpoints Endpoints   `json:"endpoints"`
	Log       LogDefaults `json:"log,omitempty"`

	// TimeoutSeconds overrides the clients' default request timeout.
	// It also bounds crypto requests, which are otherwise unbounded.
	TimeoutSeconds *int `json:"timeoutSeconds,omitempty"`
}

// Endpoints are the URLs of the core service and its sidecars. Each
// command requires only the endpoint it talks to.
type Endpoints struct {
	Config  string `json:"config,omitempty"`
	Plugins string `json:"plugins,omitempty"`
	Crypto  string `json:"crypto,omitempty"`
	Logging string `json:"logging,omitempty"`
}

// LogDefaults are the default fields for events sent with corectl log.
type LogDefaults struct {
	Source      string   `json:"source,omitempty"`
	Destination []string `json:"destination,omitempty"`
	Group       string   `json:"group,omitempty"`
	Category    string   `json:"category,omitempty"`
	Alert       string   `json:"alert,omitempty"`
	Severity    string   `json:"severity,omitempty"`
}

// Read parses a profile from raw YAML (or JSON) bytes and validates
// its kind.
func Read(data []byte) (*Profile, error) {
	p := &Profile{}

	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}

	if p.Kind != KindProfile {
		return nil, fmt.Errorf("cannot use kind '%s' as a corectl profile (want '%s')", p.Kind, KindProfile)
	}

	return p, nil
}

// FromFile loads a profile from a file path.
func FromFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile '%s': %w", path, err)
	}

	return Read(data)
}

// Timeout returns the configured timeout override, or zero when the
// clients should keep their own defaults.
func (p *Profile) Timeout() time.Duration {
	if p.TimeoutSeconds == nil {
		return 0
	}
	return time.Duration(*p.TimeoutSeconds) * time.Second
}

// requireEndpoint returns url or an error naming the missing profile
// field.
func requireEndpoint(url, field string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("profile does not define endpoints.%s", field)
	}
	return url, nil
}
