/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package fingerprint computes one deterministic content digest across a
// root template file and its associated files. Each file is hashed
// independently and the per-file digests are sorted before the final
// combining round, so the result does not depend on directory enumeration
// order, set iteration order, or scheduling.
package fingerprint

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"
)

const (
	// chunkSize bounds peak memory per file regardless of file size.
	chunkSize = 64 * 1024

	// maxConcurrentFiles bounds the hashing fan-out.
	maxConcurrentFiles = 4
)

// HashAll hashes the root file plus the named associated files, resolved
// relative to the root's containing directory, and returns the combined
// lowercase hexadecimal digest. The associated names form a set: naming the
// same file twice contributes it once.
func HashAll(rootPath string, associated []string) (string, error) {
	rootDir := filepath.Dir(rootPath)
	seen := map[string]struct{}{filepath.Clean(rootPath): {}}
	paths := []string{rootPath}
	for _, name := range associated {
		path := filepath.Clean(filepath.Join(rootDir, name))
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	return combine(paths)
}

// HashTree hashes the root file plus every file under dir, walked
// recursively in sorted order, and returns the combined lowercase
// hexadecimal digest. The sorted walk keeps traversal reproducible, though
// the combining round sorts per-file digests again, making traversal order
// strictly irrelevant to the final value.
func HashTree(rootPath, dir string) (string, error) {
	paths := []string{rootPath}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk %q: %w", dir, err)
	}
	return combine(paths)
}

// combine hashes every path independently, sorts the raw per-file digests,
// and hashes their concatenation with the same algorithm.
func combine(paths []string) (string, error) {
	sums := make([][]byte, len(paths))

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(maxConcurrentFiles)
	for i, path := range paths {
		g.Go(func() error {
			sum, err := hashFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			sums[i] = sum
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	sort.Slice(sums, func(i, j int) bool {
		return bytes.Compare(sums[i], sums[j]) < 0
	})

	combiner := digest.Canonical.Digester()
	for _, sum := range sums {
		combiner.Hash().Write(sum)
	}
	final := combiner.Digest().Encoded()

	slog.Debug("combined content fingerprint",
		slog.Int("files", len(paths)),
		slog.String("digest", final))
	return final, nil
}

// hashFile hashes one file with sequential fixed-size chunk reads.
func hashFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	digester := digest.Canonical.Digester()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(digester.Hash(), f, buf); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return digester.Hash().Sum(nil), nil
}
