package storage

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var keyPattern = regexp.MustCompile(`^3d-models/\d+-[a-zA-Z0-9-]+-[0-9a-f]{8}\.glb$`)

func TestObjectKeyShape(t *testing.T) {
	key := ObjectKey(ModelFolder, "My Chair (v2).GLB")

	assert.Regexp(t, keyPattern, key)
	assert.True(t, strings.HasSuffix(key, ".glb"), "extension preserved, lowercased")
	assert.Contains(t, key, "-My-Chair--v2-")
}

func TestObjectKeyHandlesWeirdFilenames(t *testing.T) {
	key := ObjectKey(BackgroundFolder, "../../etc/passwd")
	assert.True(t, strings.HasPrefix(key, BackgroundFolder+"/"))
	assert.NotContains(t, key[len(BackgroundFolder)+1:], "/")

	key = ObjectKey(ModelFolder, "....")
	assert.Contains(t, key, "-file-")
}

func TestObjectKeysAreDistinct(t *testing.T) {
	a := ObjectKey(ModelFolder, "chair.glb")
	b := ObjectKey(ModelFolder, "chair.glb")
	assert.NotEqual(t, a, b)
}

func TestKeyFromURLRoundTrip(t *testing.T) {
	s := &MinioStorage{publicBase: "http://localhost:9000/models"}

	url := s.PublicURL("3d-models/123-chair-abcd1234.glb")
	key, ok := s.KeyFromURL(url)
	assert.True(t, ok)
	assert.Equal(t, "3d-models/123-chair-abcd1234.glb", key)

	_, ok = s.KeyFromURL("https://elsewhere.example/file.glb")
	assert.False(t, ok)

	_, ok = s.KeyFromURL("http://localhost:9000/models/")
	assert.False(t, ok)
}
