package storage

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Key prefixes inside the bucket.
const (
	ModelFolder      = "3d-models"
	BackgroundFolder = "backgrounds"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ObjectKey builds a collision-resistant object key for an uploaded file:
// "{folder}/{unix-millis}-{sanitized-base}-{uuid-prefix}{ext}". The original
// filename's extension is preserved so viewers can infer the format (.glb, .gltf).
func ObjectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Trim(unsafeChars.ReplaceAllString(base, "-"), "-")
	if base == "" {
		base = "file"
	}
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s/%d-%s-%s%s", folder, time.Now().UnixMilli(), base, suffix, ext)
}
