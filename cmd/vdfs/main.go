// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

// Command vdfs inspects and edits VDF archives: print the tree, unpack or
// extract entries, add host files or directories, remove entries by name or
// wildcard. One primary action per invocation; handled failures are logged
// and the process still exits 0.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"github.com/woozymasta/vdfs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var flags struct {
	extract   string
	add       string
	into      string
	remove    string
	output    string
	unpack    bool
	tree      bool
	gothic1   bool
	debug     bool
	fullDebug bool
}

var rootCmd = &cobra.Command{
	Use:   "vdfs <archive.vdf>",
	Short: "Inspect and edit Gothic VDF archives",
	Long: "vdfs prints, unpacks, extracts from, adds to and removes from VDF archives.\n" +
		"Extract/remove names may carry a '*' to switch to case-insensitive substring matching.",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flags.unpack, "unpack", "u", false, "unpack the whole archive into the output directory")
	rootCmd.Flags().StringVarP(&flags.extract, "extract", "e", "", "extract a file or directory tree by name ('*name' for wildcard)")
	rootCmd.Flags().StringVarP(&flags.add, "add", "a", "", "add a host file or directory ('dir/*name' selects matching files)")
	rootCmd.Flags().StringVarP(&flags.into, "into", "i", "", "internal destination path for --add")
	rootCmd.Flags().StringVarP(&flags.remove, "remove", "r", "", "remove nodes by name ('*name' for wildcard)")
	rootCmd.Flags().BoolVarP(&flags.tree, "tree", "t", false, "print the archive tree")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "output path for unpack/extract/save")
	rootCmd.Flags().BoolVar(&flags.gothic1, "g1", false, "save packed archives in the Gothic 1 format")
	rootCmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	rootCmd.Flags().BoolVarP(&flags.fullDebug, "full-debug", "f", false, "enable full debug logging with stack traces")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printColored("red", fmt.Sprintf("Aborting: %v", err))
	}

	// Exit code 0 even for handled failures; distinct codes are not defined.
	os.Exit(0)
}

func run(_ *cobra.Command, args []string) error {
	archivePath, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	if !strings.EqualFold(filepath.Ext(archivePath), vdfs.Extension) || !fileExists(archivePath) {
		printColored("red", fmt.Sprintf("Aborting: %s is not a valid VDF archive.", args[0]))
		return nil
	}

	logger := buildLogger(flags.debug, flags.fullDebug)
	defer func() { _ = logger.Sync() }()

	handler, err := vdfs.NewHandler(archivePath, vdfs.HandlerOptions{Logger: logger})
	if err != nil {
		printColored("red", fmt.Sprintf("Aborting: failed to mount %s: %v", args[0], err))
		return nil
	}

	if flags.gothic1 {
		if err := handler.SetGameVersion("g1"); err != nil {
			return err
		}
	}

	if flags.tree {
		fmt.Print(handler.Print())
	}

	switch {
	case flags.unpack:
		return handler.ExportAll(outputAbs())
	case flags.extract != "":
		return runExtract(handler)
	case flags.add != "":
		return runAdd(handler)
	case flags.remove != "":
		return runRemove(handler)
	}

	return nil
}

// runExtract exports one node by name, or every matching file in wildcard mode.
func runExtract(handler *vdfs.Handler) error {
	name, wildcard := splitWildcard(flags.extract)

	err := handler.Export(name, outputAbs(), wildcard)
	if errors.Is(err, vdfs.ErrNodeNotFound) {
		printColored("red", fmt.Sprintf("Aborting: %s was not found in %s.", name, handler.ArchiveName()))
		return nil
	}

	return err
}

// runAdd inserts a host file or directory, or the host files selected by a
// wildcard source, then saves the archive.
func runAdd(handler *vdfs.Handler) error {
	source := flags.add

	if !strings.Contains(source, "*") {
		if _, err := handler.Insert(flags.into, absPath(source), nil); err != nil {
			printColored("red", fmt.Sprintf("Aborting: failed to add %s: %v", source, err))
			return nil
		}

		return saveArchive(handler)
	}

	dir, filter, _ := strings.Cut(source, "*")
	dir = strings.TrimSuffix(strings.TrimSuffix(dir, "/"), string(filepath.Separator))
	if dir == "" {
		dir = "."
	}

	dir = absPath(dir)
	entries, err := osfs.New("/").ReadDir(dir)
	if err != nil {
		printColored("red", fmt.Sprintf("Aborting: %s was not found.", dir))
		return nil
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(strings.ToLower(entry.Name()), strings.ToLower(filter)) {
			continue
		}

		if _, err := handler.Insert(flags.into, filepath.Join(dir, entry.Name()), nil); err != nil {
			printColored("red", fmt.Sprintf("Aborting: failed to add %s: %v", entry.Name(), err))
			return nil
		}
	}

	return saveArchive(handler)
}

// runRemove removes nodes by exact name or wildcard, then saves the archive.
func runRemove(handler *vdfs.Handler) error {
	name, wildcard := splitWildcard(flags.remove)

	err := handler.Remove(name, wildcard)
	if errors.Is(err, vdfs.ErrNodeNotFound) {
		printColored("red", fmt.Sprintf("Aborting: %s was not found in %s.", name, handler.ArchiveName()))
		return nil
	}

	if err != nil {
		return err
	}

	return saveArchive(handler)
}

// saveArchive writes the modified archive to the output path (or in place).
func saveArchive(handler *vdfs.Handler) error {
	if err := handler.Save(outputAbs()); err != nil {
		printColored("red", fmt.Sprintf("Aborting: failed to save %s: %v", handler.ArchiveName(), err))
		return nil
	}

	printColored("green", fmt.Sprintf("Saved %s.", handler.ArchiveName()))
	return nil
}

// splitWildcard splits "prefix*filter" into its parts and reports whether a
// wildcard marker was present.
func splitWildcard(value string) (string, bool) {
	_, after, found := strings.Cut(value, "*")
	if !found || after == "" {
		return strings.TrimSuffix(value, "*"), false
	}

	return after, true
}

// buildLogger maps the CLI verbosity flags to a zap logger.
func buildLogger(debug bool, fullDebug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)

	if debug || fullDebug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	opts := []zap.Option{}
	if fullDebug {
		opts = append(opts, zap.AddStacktrace(zapcore.WarnLevel))
	}

	logger, err := cfg.Build(opts...)
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// outputAbs absolutizes the output flag, keeping "" as "use the default".
func outputAbs() string {
	if flags.output == "" {
		return ""
	}

	return absPath(flags.output)
}

// absPath absolutizes one host path, falling back to the input on failure.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}

	return abs
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
