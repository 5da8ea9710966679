package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-a", ":8000"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-a", ":8000"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-c", "-config=alt.json"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "-config=alt.json"},
		},
		{
			name:    "order and repeats preserved",
			args:    []string{"-d", "dsn", "-c", "one.json", "-c", "two.json"},
			allowed: []string{"-c", "-d"},
			want:    []string{"-d", "dsn", "-c", "one.json", "-c", "two.json"},
		},
		{
			name:    "empty",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "/etc/pm.json", ConfigFileFlag([]string{"-c", "/etc/pm.json"}))
	assert.Equal(t, "/etc/pm.json", ConfigFileFlag([]string{"-a", ":1", "-config", "/etc/pm.json"}))
	assert.Equal(t, "/two.json", ConfigFileFlag([]string{"-c", "/one.json", "-config=/two.json"}))
	assert.Empty(t, ConfigFileFlag([]string{"-x", "1"}))
}

func TestEnvFileFlag(t *testing.T) {
	assert.Equal(t, "prod.env", EnvFileFlag([]string{"-e", "prod.env", "-c", "x.json"}))
	assert.Equal(t, "prod.env", EnvFileFlag([]string{"-envfile=prod.env"}))
	assert.Empty(t, EnvFileFlag(nil))
}
