package configuration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration(t *testing.T) {
	t.Run("configuration_struct_exists", func(t *testing.T) {
		require.NotNil(t, &C, "Configuration should not be nil")
		require.NotNil(t, &C.App, "App configuration should exist")
		require.NotNil(t, &C.Database, "Database configuration should exist")
		require.NotNil(t, &C.Mapbox, "Mapbox configuration should exist")
	})

	t.Run("defaults_applied", func(t *testing.T) {
		assert.NotZero(t, C.App.Port)
		assert.NotEmpty(t, C.Mapbox.Style)
		assert.NotZero(t, C.Mapbox.SearchLimit)
	})
}

func TestMissingRequired(t *testing.T) {
	saved := C
	defer func() { C = saved }()

	C.Database.Psql = Db{}
	C.App.SecretKey = ""
	C.Mapbox.AccessToken = ""

	missing := MissingRequired()
	assert.Contains(t, missing, "DB_HOST")
	assert.Contains(t, missing, "SECRET_KEY")
	assert.Contains(t, missing, "MAPBOX_TOKEN")

	C.Database.Psql = Db{Host: "localhost", Name: "walkingtube", User: "postgres"}
	C.App.SecretKey = "secret"
	C.Mapbox.AccessToken = "pk.test"
	assert.Empty(t, MissingRequired())
}

func TestLoadEnvFromFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "env")
	require.NoError(t, err)
	_, err = f.WriteString("# comment\nWALKINGTUBE_TEST_KEY=\"from-file\"\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	t.Setenv("WALKINGTUBE_TEST_EXISTING", "keep")
	LoadEnvFromFile(f.Name())

	assert.Equal(t, "from-file", os.Getenv("WALKINGTUBE_TEST_KEY"))
	assert.Equal(t, "keep", os.Getenv("WALKINGTUBE_TEST_EXISTING"))
	_ = os.Unsetenv("WALKINGTUBE_TEST_KEY")
}
