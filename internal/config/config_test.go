package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"appredirect/internal/redirect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags gives Init a fresh command line, since it registers its flags on flag.CommandLine.
func resetFlags(t *testing.T, args ...string) {
	t.Helper()

	oldArgs := os.Args
	oldCommandLine := flag.CommandLine
	os.Args = append([]string{oldArgs[0]}, args...)
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	})
}

func TestNewConfig(t *testing.T) {
	config := NewConfig()

	// check default values
	require.Equal(t, "3000", config.Port)
	require.Equal(t, "https://apps.apple.com/app/idXXXXXXXXX", config.Destinations.IOS)
	require.Equal(t, "https://play.google.com/store/apps/details?id=com.example", config.Destinations.Android)
	require.Equal(t, "https://limoaffiliatesworldwide.com", config.Destinations.Web)
	require.Equal(t, "https://api.limoaffiliatesworldwide.com/app-store-redirect", config.QR.Target)
	require.Equal(t, "./logo.png", config.QR.LogoPath)
	require.Equal(t, "./qrcodes/rider_with_logo.png", config.QR.OutputPath)
	require.Equal(t, "#083344", config.QR.DarkColor)
	require.Equal(t, "#ffffff", config.QR.LightColor)
	require.Equal(t, 10, config.ShutdownTimeout)
	require.Equal(t, ":3000", config.Addr())
	require.NoError(t, config.Validate())
}

func TestNewConfigReturnsFreshCopy(t *testing.T) {
	a := NewConfig()
	a.Port = "9999"
	b := NewConfig()
	require.Equal(t, "3000", b.Port)
}

func TestInitDefaults(t *testing.T) {
	resetFlags(t)
	t.Setenv("PORT", "")

	config := NewConfig()
	require.NoError(t, Init(config))
	require.Equal(t, "3000", config.Port)
}

func TestInitWithEnvVariables(t *testing.T) {
	resetFlags(t)
	t.Setenv("PORT", "8081")

	config := NewConfig()
	require.NoError(t, Init(config))
	require.Equal(t, "8081", config.Port)
	require.Equal(t, ":8081", config.Addr())
}

func TestInitWithFlags(t *testing.T) {
	resetFlags(t, "-p", "9090")
	t.Setenv("PORT", "8081")

	config := NewConfig()
	require.NoError(t, Init(config))
	require.Equal(t, "9090", config.Port)
}

func TestInitWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"port": "4000",
		"destinations": {
			"ios": "https://apps.apple.com/app/id123",
			"android": "https://play.google.com/store/apps/details?id=org.example",
			"web": "https://example.org"
		},
		"qr": {"output_path": "/tmp/out.png"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	resetFlags(t, "-c", path)
	t.Setenv("PORT", "")

	config := NewConfig()
	require.NoError(t, Init(config))

	require.Equal(t, "4000", config.Port)
	require.Equal(t, redirect.Destinations{
		IOS:     "https://apps.apple.com/app/id123",
		Android: "https://play.google.com/store/apps/details?id=org.example",
		Web:     "https://example.org",
	}, config.Destinations)
	require.Equal(t, "/tmp/out.png", config.QR.OutputPath)
	// untouched keys keep their defaults
	require.Equal(t, "./logo.png", config.QR.LogoPath)
	require.Equal(t, path, config.ConfigPath)
}

func TestInitFlagBeatsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": "4000"}`), 0o600))

	resetFlags(t, "-c", path, "-p", "5000")

	config := NewConfig()
	require.NoError(t, Init(config))
	require.Equal(t, "5000", config.Port)
}

func TestInitErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"port":`), 0o600))
	badURL := filepath.Join(dir, "bad_url.json")
	require.NoError(t, os.WriteFile(badURL, []byte(`{"destinations": {"ios": "not a url"}}`), 0o600))

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "missing file", args: []string{"-c", filepath.Join(dir, "nope.json")}, wantErr: ErrReadConfig},
		{name: "broken json", args: []string{"-c", broken}, wantErr: ErrParseConfig},
		{name: "port not a number", args: []string{"-p", "http"}, wantErr: ErrInvalidPort},
		{name: "port out of range", args: []string{"-p", "70000"}, wantErr: ErrInvalidPort},
		{name: "bad destination", args: []string{"-c", badURL}, wantErr: redirect.ErrInvalidDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)
			t.Setenv("PORT", "")

			err := Init(NewConfig())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
