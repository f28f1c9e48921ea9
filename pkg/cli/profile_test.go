package cli

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"k8s.io/utils/ptr"
)

const basePath = "testdata"

func TestFromFile(t *testing.T) {
	tt := map[string]struct {
		file      string
		expected  *Profile
		expectErr bool
	}{
		"full profile": {
			file: "full-profile.yaml",
			expected: &Profile{
				Kind: KindProfile,
				Endpoints: Endpoints{
					Config:  "http://core.local/api/config",
					Plugins: "http://core.local/api/plugins",
					Crypto:  "http://crypto.local/api",
					Logging: "http://logging.local/api/webhook",
				},
				Log: LogDefaults{
					Source:      "corectl",
					Destination: []string{"teams"},
					Group:       "operations",
					Category:    "manual",
					Alert:       "none",
					Severity:    "info",
				},
				TimeoutSeconds: ptr.To(5),
			},
		},
		"minimal profile": {
			file: "minimal-profile.yaml",
			expected: &Profile{
				Kind: KindProfile,
				Endpoints: Endpoints{
					Config: "http://core.local/api/config",
				},
			},
		},
		"wrong kind": {
			file:      "wrong-kind.yaml",
			expectErr: true,
		},
		"missing file": {
			file:      "does-not-exist.yaml",
			expectErr: true,
		},
	}

	for tn, tc := range tt {
		t.Run(tn, func(t *testing.T) {
			got, err := FromFile(fmt.Sprintf("%s/%s", basePath, tc.file))
			if tc.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRead_RejectsInvalidYAML(t *testing.T) {
	_, err := Read([]byte("kind: [not, a, string"))
	assert.Error(t, err)
}

func TestProfile_Timeout(t *testing.T) {
	p := &Profile{}
	assert.Zero(t, p.Timeout())

	p.TimeoutSeconds = ptr.To(5)
	assert.Equal(t, 5*time.Second, p.Timeout())
}

func TestRequireEndpoint(t *testing.T) {
	url, err := requireEndpoint("http://core.local", "config")
	assert.NoError(t, err)
	assert.Equal(t, "http://core.local", url)

	_, err = requireEndpoint("", "crypto")
	assert.ErrorContains(t, err, "endpoints.crypto")
}
