// util/resources.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// GetResourcesFS returns a filesystem rooted at the static data directory
// (navaids, airbases). The PELORUS_RESOURCES environment variable
// overrides the default search, which tries "resources" in the working
// directory and the two directories above it.
func GetResourcesFS() fs.StatFS {
	fsys, ok := os.DirFS(getResourcesFolderPath()).(fs.StatFS)
	if !ok {
		panic("FS from DirFS is not a StatFS?")
	}
	return fsys
}

func getResourcesFolderPath() string {
	if dir, ok := os.LookupEnv("PELORUS_RESOURCES"); ok {
		return dir
	}

	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	// Try CWD as well as the two directories above it.
	for i := 0; i < 3; i++ {
		resourcesPath := filepath.Join(dir, "resources")
		if _, err := os.Stat(filepath.Join(resourcesPath, "navaids.json.zst")); err == nil {
			return resourcesPath
		}
		dir = filepath.Join(dir, "..")
	}
	panic("unable to find resources directory with navaids.json.zst")
}

// Unfortunately, unlike io.ReadCloser, the zstd Decoder's Close() method
// doesn't return an error, so we need to make our own custom ReadCloser
// interface.
type ResourceReadCloser interface {
	io.Reader
	Close()
}

type bytesReadCloser struct {
	*bytes.Reader
}

func (bytesReadCloser) Close() {}

// LoadResource provides a ResourceReadCloser to access the specified file
// from the given resources filesystem; if it's zstd compressed, the Reader
// will handle decompression transparently. It panics if the file is not
// found since missing resources are pretty much impossible to recover
// from.
func LoadResource(fsys fs.FS, path string) ResourceReadCloser {
	f, err := fs.ReadFile(fsys, path)
	if err != nil {
		panic(err)
	}
	br := bytesReadCloser{bytes.NewReader(f)}

	if filepath.Ext(path) == ".zst" {
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(0))
		if err != nil {
			panic(err)
		}
		return zr
	}

	return br
}
