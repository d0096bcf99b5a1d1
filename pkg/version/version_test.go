package version_test

import (
	"encoding/json"
	"strings"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-modelsdev/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_version_001(t *testing.T) {
	assert := assert.New(t)
	assert.NotEmpty(version.Version())
	assert.True(strings.HasPrefix(version.UserAgent(), "go-modelsdev/"))
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)
	version.GitTag = "v1.2.3"
	defer func() { version.GitTag = "" }()
	assert.Equal("v1.2.3", version.Version())
	assert.Equal("go-modelsdev/v1.2.3", version.UserAgent())

	var metadata map[string]string
	assert.NoError(json.Unmarshal(version.JSON("modelsdev"), &metadata))
	assert.Equal("modelsdev", metadata["name"])
	assert.Equal("v1.2.3", metadata["tag"])
	assert.NotEmpty(metadata["platform"])
}
