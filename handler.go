// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package vdfs

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// Handler is the operator facade over one mounted archive tree. One operation
// runs to completion before the next; mutations are best-effort with no
// rollback, and export/remove traversal failures are logged and reported as
// non-fatal outcomes.
type Handler struct {
	tree  *Tree
	fs    billy.Filesystem
	codec Codec
	log   *zap.Logger
	path  string
	name  string

	exists bool
}

// NewHandler mounts the archive at archivePath, or starts an empty tree when
// the path does not exist (the archive name then keeps the given value, or a
// timestamped placeholder when empty). Mount failures are fatal.
func NewHandler(archivePath string, opts HandlerOptions) (*Handler, error) {
	opts.applyDefaults()

	h := &Handler{
		tree:  NewTree(),
		fs:    opts.Filesystem,
		codec: opts.Codec,
		log:   opts.Logger,
	}

	switch {
	case archivePath == "":
		h.name = fmt.Sprintf("Unnamed_%s%s", time.Now().Format("2006-01-02 15:04:05"), Extension)
	default:
		info, err := h.fs.Stat(archivePath)
		if err != nil || info.IsDir() {
			h.name = archivePath
			break
		}

		h.path = archivePath
		h.name = path.Base(NormalizePath(archivePath))
		h.exists = true
	}

	if h.exists {
		if err := h.mount(archivePath); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// mount reads and decodes the archive file into the tree.
func (h *Handler) mount(archivePath string) error {
	f, err := h.fs.Open(archivePath)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	defer func() { _ = f.Close() }()

	if err := h.tree.Mount(f, h.codec); err != nil {
		return fmt.Errorf("mount archive %s: %w", archivePath, err)
	}

	h.log.Debug("archive mounted",
		zap.String("archive", h.name),
		zap.Int("files", h.tree.FileCount()),
		zap.Stringer("version", h.tree.Version()),
	)

	return nil
}

// Tree returns the mounted archive tree.
func (h *Handler) Tree() *Tree {
	return h.tree
}

// ArchiveName returns the display name of the archive.
func (h *Handler) ArchiveName() string {
	return h.name
}

// Exists reports whether the handler was constructed from an existing archive file.
func (h *Handler) Exists() bool {
	return h.exists
}

// SetGameVersion declares the format generation used on save from a version token.
func (h *Handler) SetGameVersion(token string) error {
	version, err := ParseGameVersion(token)
	if err != nil {
		return err
	}

	h.tree.SetVersion(version)
	return nil
}

// Get returns the first node anywhere in the tree with the given name.
func (h *Handler) Get(name string) (*Node, error) {
	h.log.Info("loading node", zap.String("name", name))

	node := h.tree.Find(name)
	if node == nil {
		h.log.Info("node not found", zap.String("name", name))
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return node, nil
}

// Insert inserts content or a host file/directory into the tree using the
// default casing policy. Resolution and creation failures propagate (fatal
// for the operation).
func (h *Handler) Insert(internalPath string, sourcePath string, content []byte) (*Node, error) {
	return h.InsertWithOptions(internalPath, sourcePath, content, InsertOptions{})
}

// InsertWithOptions inserts with an explicit casing policy. With no source
// path, content is stored at internalPath (a path without "." resolves
// directories only). A host source path inserts the file, or merges the
// directory tree, under internalPath.
func (h *Handler) InsertWithOptions(internalPath string, sourcePath string, content []byte, opts InsertOptions) (*Node, error) {
	if sourcePath == "" {
		if internalPath == "" {
			return nil, ErrNoInput
		}

		h.log.Info("inserting", zap.String("internal_path", internalPath))
		return h.tree.InsertContent(internalPath, content, opts)
	}

	h.log.Info("inserting", zap.String("source", sourcePath), zap.String("internal_path", internalPath))

	info, err := h.fs.Stat(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("stat source %s: %w", sourcePath, err)
	}

	if info.IsDir() {
		return h.tree.InsertHostDir(h.fs, sourcePath, internalPath, opts)
	}

	return h.tree.InsertHostFile(h.fs, sourcePath, internalPath, opts)
}

// Export writes the named node (or, in wildcard mode, every file whose name
// contains name) to destDir, defaulting to the current working directory.
// A missing name fails with ErrNodeNotFound; write failures partway through
// are logged and reported as a non-fatal outcome.
func (h *Handler) Export(name string, destDir string, matchAll bool) error {
	destDir, err := h.resolveDestDir(destDir)
	if err != nil {
		return err
	}

	err = h.tree.ExportNode(h.fs, name, destDir, ExportOptions{MatchAll: matchAll})
	if errors.Is(err, ErrNodeNotFound) {
		return err
	}

	if err != nil {
		h.log.Error("failed to export node", zap.String("name", name), zap.Error(err))
		return nil
	}

	return nil
}

// ExportAll writes the entire tree into destDir (current working directory
// by default). Partial failures are logged and not rolled back.
func (h *Handler) ExportAll(destDir string) error {
	h.log.Info("exporting all files", zap.String("archive", h.name))

	destDir, err := h.resolveDestDir(destDir)
	if err != nil {
		return err
	}

	count, err := h.tree.ExportAll(h.fs, destDir, ExportOptions{})
	if err != nil {
		h.log.Error("failed to export all files", zap.Error(err))
		return nil
	}

	h.log.Info("extracted files", zap.Int("count", count), zap.String("destination", destDir))
	return nil
}

// Remove detaches nodes matching name from the whole tree. A missing name in
// exact mode fails with ErrNodeNotFound; traversal failures are logged and
// reported as a non-fatal outcome.
func (h *Handler) Remove(name string, matchAll bool) error {
	h.log.Info("removing", zap.String("name", name), zap.Bool("match_all", matchAll))

	removed, err := h.tree.Remove(name, nil, RemoveOptions{MatchAll: matchAll})
	if errors.Is(err, ErrNodeNotFound) {
		return err
	}

	if err != nil {
		h.log.Error("failed to remove", zap.String("name", name), zap.Error(err))
		return nil
	}

	h.log.Info("removed nodes", zap.String("name", name), zap.Int("count", removed))
	return nil
}

// Print returns the indented tree view of the mounted archive.
func (h *Handler) Print() string {
	h.log.Info("printing archive tree", zap.String("archive", h.name))
	return Render(h.tree.Root(), h.name)
}

// Save serializes the tree to destPath using the declared format generation.
// An empty destination means the original archive path (or the working
// directory for fresh trees); a destination whose final element carries no
// "." is treated as a directory and joined with the archive name.
func (h *Handler) Save(destPath string) error {
	destPath, err := h.resolveSavePath(destPath)
	if err != nil {
		return err
	}

	h.log.Info("saving archive", zap.String("destination", destPath), zap.Stringer("version", h.tree.Version()))

	f, err := h.fs.Create(destPath)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", destPath, err)
	}

	if err := h.tree.Save(f, h.codec); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close archive %s: %w", destPath, err)
	}

	h.path = destPath
	h.exists = true
	h.log.Info("archive saved", zap.String("destination", destPath))

	return nil
}

// resolveDestDir defaults an empty destination to the working directory.
func (h *Handler) resolveDestDir(destDir string) (string, error) {
	if destDir != "" {
		return destDir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	return cwd, nil
}

// resolveSavePath applies the save destination defaulting rules.
func (h *Handler) resolveSavePath(destPath string) (string, error) {
	if destPath == "" {
		if h.path != "" {
			return h.path, nil
		}

		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}

		return h.fs.Join(cwd, h.name), nil
	}

	if !strings.Contains(path.Base(NormalizePath(destPath)), ".") {
		return h.fs.Join(destPath, h.name), nil
	}

	return destPath, nil
}
