package parser_test

import (
	"testing"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/stretchr/testify/require"
)

func envWith(vars map[string]string) parser.LookupEnv {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestBuild(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		env     map[string]string
		wantCfg *model.Config
		wantErr error
	}{
		{
			name:    "Positive - query and path, no env",
			args:    []string{"minigrep", "duct", "poem.txt"},
			wantCfg: &model.Config{Query: "duct", FilePath: "poem.txt"},
		},
		{
			name:    "Positive - IGNORE_CASE with value",
			args:    []string{"minigrep", "rust", "poem.txt"},
			env:     map[string]string{parser.IgnoreCaseEnv: "1"},
			wantCfg: &model.Config{Query: "rust", FilePath: "poem.txt", IgnoreCase: true},
		},
		{
			name:    "Positive - IGNORE_CASE empty value still enables",
			args:    []string{"minigrep", "rust", "poem.txt"},
			env:     map[string]string{parser.IgnoreCaseEnv: ""},
			wantCfg: &model.Config{Query: "rust", FilePath: "poem.txt", IgnoreCase: true},
		},
		{
			name:    "Positive - extra args ignored",
			args:    []string{"minigrep", "q", "f.txt", "extra"},
			wantCfg: &model.Config{Query: "q", FilePath: "f.txt"},
		},
		{
			name:    "Positive - empty query is valid",
			args:    []string{"minigrep", "", "f.txt"},
			wantCfg: &model.Config{Query: "", FilePath: "f.txt"},
		},
		{
			name:    "Negative - no args at all",
			args:    []string{},
			wantErr: parser.ErrMissingQuery,
		},
		{
			name:    "Negative - only program name",
			args:    []string{"minigrep"},
			wantErr: parser.ErrMissingQuery,
		},
		{
			name:    "Negative - missing file path",
			args:    []string{"minigrep", "q"},
			wantErr: parser.ErrMissingFilePath,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Build(tt.args, envWith(tt.env))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantCfg, cfg)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	require.EqualError(t, parser.ErrMissingQuery, "Didn't get a query string")
	require.EqualError(t, parser.ErrMissingFilePath, "Didn't get a file path")
}

func TestParseServerFlags(t *testing.T) {
	cfg, err := parser.ParseServerFlags(nil)
	require.NoError(t, err)
	require.Equal(t, model.DefaultServerAddress, cfg.Address)

	cfg, err = parser.ParseServerFlags([]string{"-address", ":9090"})
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Address)

	_, err = parser.ParseServerFlags([]string{"-address", ""})
	require.ErrorContains(t, err, "empty server address")

	_, err = parser.ParseServerFlags([]string{"-unknown"})
	require.Error(t, err)
}
