package catalog

// Catalog source resolution.
// Uses hashicorp/go-getter so a catalog can live anywhere go-getter can reach:
//   - Local paths: ./organisms.yaml, ~/catalogs/shop.toml
//   - HTTP(S) URLs: https://example.com/catalog.json
//   - Git and forge shorthand: github.com/org/repo//catalogs/shop.yaml

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter"

	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
)

// Source is a resolved catalog location
type Source struct {
	// LocalPath is the file to read (original or fetched)
	LocalPath string
	// Input is what the user passed
	Input string
	// Fetched reports whether the file was downloaded
	Fetched bool

	cleanup func()
}

// Cleanup removes any temporary download
func (s *Source) Cleanup() {
	if s != nil && s.cleanup != nil {
		s.cleanup()
	}
}

// Resolve maps input to a local catalog file, downloading it when remote.
// The returned Source must be cleaned up.
func Resolve(ctx context.Context, input string) (*Source, error) {
	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}

	detected, remote, err := detect(input, pwd)
	if err != nil {
		return nil, err
	}
	if remote {
		return fetch(ctx, input, detected)
	}

	local := input
	if !strings.HasPrefix(input, "~/") {
		if u, err := url.Parse(detected); err == nil && u.Scheme == "file" {
			local = u.Path
		}
	}
	if strings.HasPrefix(local, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to expand home directory")
		}
		local = filepath.Join(home, local[2:])
	}
	if !filepath.IsAbs(local) {
		local = filepath.Join(pwd, local)
	}
	return &Source{LocalPath: local, Input: input, cleanup: func() {}}, nil
}

// IsRemote reports whether input names a source that would be downloaded.
// Nothing is fetched.
func IsRemote(input string) (bool, error) {
	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}
	_, remote, err := detect(input, pwd)
	return remote, err
}

// detect runs go-getter detection. Forced getters ("git::") are always remote.
func detect(input, pwd string) (string, bool, error) {
	detected, err := getter.Detect(input, pwd, getter.Detectors)
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to detect catalog source %q", input)
	}
	logger.Debugw("Catalog source detected", "input", input, "detected", detected)

	if forced, _, ok := strings.Cut(detected, "::"); ok && forced != "file" {
		return detected, true, nil
	}
	u, err := url.Parse(detected)
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to parse catalog source %q", detected)
	}
	return detected, u.Scheme != "file" && u.Scheme != "", nil
}

func fetch(ctx context.Context, input, detected string) (*Source, error) {
	tempDir, err := os.MkdirTemp("", "scaffold-catalog-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp directory")
	}

	dst := filepath.Join(tempDir, remoteBaseName(detected))
	client := &getter.Client{
		Ctx:     ctx,
		Src:     detected,
		Dst:     dst,
		Mode:    getter.ClientModeFile,
		Getters: getter.Getters,
	}

	logger.Infow("Fetching catalog", "input", input, "destination", dst)
	if err := client.Get(); err != nil {
		os.RemoveAll(tempDir)
		return nil, errors.Wrapf(err, "failed to fetch catalog %s", input)
	}

	return &Source{
		LocalPath: dst,
		Input:     input,
		Fetched:   true,
		cleanup: func() {
			logger.Debugw("Removing fetched catalog", "path", tempDir)
			os.RemoveAll(tempDir)
		},
	}, nil
}

// remoteBaseName keeps the remote file name so the format can be inferred
// from its extension. The forced getter prefix ("git::"), go-getter
// subdirectory ("//") and query parts are dropped.
func remoteBaseName(detected string) string {
	if _, rest, ok := strings.Cut(detected, "::"); ok {
		detected = rest
	}
	u, err := url.Parse(detected)
	if err != nil {
		return "catalog.yaml"
	}
	p := u.Path
	if i := strings.LastIndex(p, "//"); i >= 0 {
		p = p[i+1:]
	}
	base := path.Base(p)
	if base == "." || base == "/" || base == "" {
		return "catalog.yaml"
	}
	if _, err := FormatFromPath(base); err != nil {
		return base + ".yaml"
	}
	return base
}

// Open resolves input and loads the catalog it points to. An empty input
// yields the built-in table.
func Open(ctx context.Context, input string) (*Catalog, string, error) {
	if input == "" {
		return Builtin(), BuiltinName, nil
	}
	src, err := Resolve(ctx, input)
	if err != nil {
		return nil, "", err
	}
	defer src.Cleanup()

	cat, err := Load(src.LocalPath)
	if err != nil {
		return nil, "", err
	}
	return cat, src.Input, nil
}
