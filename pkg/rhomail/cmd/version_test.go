package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/runrho/rhomail/pkg/version"
)

func TestVersionCommand(t *testing.T) {
	origVersion := version.Version
	origGitCommit := version.GitCommit
	origBuildDate := version.BuildDate
	defer func() {
		version.Version = origVersion
		version.GitCommit = origGitCommit
		version.BuildDate = origBuildDate
	}()

	version.Version = "v0.3.1"
	version.GitCommit = "abc123"
	version.BuildDate = "2026-08-01T10:00:00Z"

	tests := []struct {
		name         string
		args         []string
		wantContains []string
		validateJSON bool
		validateYAML bool
	}{
		{
			name:         "default output format",
			args:         []string{},
			wantContains: []string{"rhomail v0.3.1", "commit: abc123", "built: 2026-08-01T10:00:00Z"},
		},
		{
			name:         "json output format",
			args:         []string{"-o", "json"},
			validateJSON: true,
			wantContains: []string{"v0.3.1", "abc123"},
		},
		{
			name:         "yaml output format",
			args:         []string{"-o", "yaml"},
			validateYAML: true,
			wantContains: []string{"version: v0.3.1", "gitcommit: abc123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := NewVersionCommand()
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.NoError(t, err)

			output := buf.String()

			if tt.validateJSON {
				var info version.BuildInfo
				err := json.Unmarshal(buf.Bytes(), &info)
				require.NoError(t, err, "output should be valid JSON")
				require.Equal(t, "v0.3.1", info.Version)
				require.NotEmpty(t, info.GoVersion)
			}

			if tt.validateYAML {
				var info version.BuildInfo
				err := yaml.Unmarshal(buf.Bytes(), &info)
				require.NoError(t, err, "output should be valid YAML")
				require.Equal(t, "v0.3.1", info.Version)
			}

			for _, want := range tt.wantContains {
				require.Contains(t, output, want, "output should contain %q", want)
			}
		})
	}
}

func TestVersionCommandViaRoot(t *testing.T) {
	buf := &bytes.Buffer{}
	root := NewRootCommand(Config{OutputWriter: buf})
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Contains(t, buf.String(), "rhomail ")
}
