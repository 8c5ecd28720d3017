package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg, Default())
	is.Equal(cfg.Orientation, OrientationWarn)
}

func TestLoadFile(t *testing.T) {
	is := is.New(t)

	cfg, err := Load(writeConfig(t, `
orientation: reject
indent: 2
fetch_timeout: 5s
allow_remote: true
`))
	is.NoErr(err)
	is.Equal(cfg.Orientation, OrientationReject)
	is.Equal(cfg.Indent, 2)
	is.Equal(cfg.FetchTimeout, 5*time.Second)
	is.True(cfg.AllowRemote)
	is.Equal(cfg.MaxBodyBytes, int64(DefaultMaxBodyBytes))
}

func TestLoadInvalid(t *testing.T) {
	is := is.New(t)

	_, err := Load(writeConfig(t, "orientation: sideways\n"))
	is.True(errors.Is(err, ErrInvalid))

	_, err = Load(writeConfig(t, "indent: 12\n"))
	is.True(errors.Is(err, ErrInvalid))

	_, err = Load(writeConfig(t, "indent: [\n"))
	is.True(err != nil)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestParseOrientation(t *testing.T) {
	is := is.New(t)

	o, err := ParseOrientation("ignore")
	is.NoErr(err)
	is.Equal(o, OrientationIgnore)

	_, err = ParseOrientation("Reject")
	is.True(errors.Is(err, ErrInvalid))
}

func TestExampleMatchesDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load(filepath.Join("..", "..", "config.example.yaml"))
	is.NoErr(err)
	is.Equal(cfg, Default())
}
