package media

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Asset is what the catalog keeps about an uploaded binary: the object
// store key and the public URL. The bytes themselves never land in the DB.
type Asset struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

type Store interface {
	Upload(ctx context.Context, kind Kind, filename string, data []byte) (*Asset, error)
	Delete(ctx context.Context, publicID string) error
}

var allowedExtensions = map[Kind]map[string]bool{
	KindImage: {".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true},
	KindVideo: {".mp4": true, ".webm": true, ".mkv": true, ".mov": true},
}

func checkExtension(kind Kind, filename string) (string, error) {
	extension := strings.ToLower(path.Ext(filename))
	if extension == "" {
		return "", fmt.Errorf("file %q has no extension", filename)
	}
	if !allowedExtensions[kind][extension] {
		return "", fmt.Errorf("file extension %s not allowed for %s upload", extension, kind)
	}
	return extension, nil
}
