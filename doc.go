// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

/*
Package vdfs provides tree-resolution and synchronization operations for VDF
(Virtual Disk File) archives used by the Gothic games: inspecting, inserting,
extracting and removing entries of a mounted archive tree. The archive binary
layout itself is out of scope and is consumed through the Codec collaborator;
this package owns the in-memory tree and the algorithms on top of it.

Name matching is case-insensitive throughout. Mutating operations are
immediate and best-effort: there is no transactional rollback, and a failure
partway through an export or removal leaves already-applied changes in place.

# Mounting

Open an archive through a Handler:

	h, err := vdfs.NewHandler("worlds.vdf", vdfs.HandlerOptions{})
	if err != nil {
	    return err
	}

A missing path starts an empty tree that can be populated and saved later.
HandlerOptions carry the host filesystem (billy, OS-rooted by default), the
archive codec, and a zap logger (no-op by default).

# Inserting

Insert raw content, a host file, or a whole host directory tree:

	node, err := h.Insert("textures/anims/fire.tex", "", payload)
	node, err = h.Insert("scripts", "/mods/patch/startup.d", nil)
	node, err = h.Insert("", "/mods/patch", nil)

Directory resolution is path-scoped: each segment resolves against the
current directory's direct children, creating missing directories on the way.
Stored name casing follows InsertOptions.Casing; the default applies the
archive format convention (single-file inserts are upper-cased, merged host
trees keep source casing).

# Exporting

	err := h.Export("humans.mds", "/tmp/out", false) // one node, structure kept
	err = h.Export("fire", "/tmp/out", true)         // every matching file, flat
	err = h.ExportAll("/tmp/out")

ExportOptions.Rules select files by archive-relative path during subtree
export:

	_, err := h.Tree().ExportAll(fs, "out/", vdfs.ExportOptions{
	    Rules: []pathrules.Rule{
	        {Action: pathrules.ActionInclude, Pattern: "anims/**"},
	    },
	})

Output names are rewritten to filesystem-safe form unless RawNames is set.

# Removing

	err := h.Remove("fire.tex", false) // exact name, every disjoint match
	err = h.Remove("fire", true)       // substring, files only

# Saving

	if err := h.SetGameVersion("g1"); err != nil {
	    return err
	}
	if err := h.Save("/tmp/patched.vdf"); err != nil {
	    return err
	}

Save uses the configured Codec. SnapshotCodec (the default) round-trips the
tree for development and tests; production wiring points Codec at the
external VDF serializer.
*/
package vdfs
