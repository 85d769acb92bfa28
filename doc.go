/*
Package mds implements the core of a Managed Data Structures runtime: an
in-memory, transactionally-versioned object store whose record fields are
observed and mutated relative to an isolation context that names a branch
of a version tree.

# Record types

A record type is declared with Declare, given an optional single
supertype, and grown with AddField until EnsureCreated is called. Once
created, a type is either canonical or forwards to an equivalent,
previously-registered canonical type; lookups always resolve through the
forward chain.

# Records and fields

A record is created from a created record type with CreateRecord, which
pairs the new record with the branch the caller's isolation context
shadows top_level_branch to. Fields are read and written through
RecordField, which lazily creates a multi-version slot (MSV) per field on
first write.

# Branches and isolation contexts

A Branch is a node in a version tree rooted at TopLevelBranch. A Context
maps branches to the branches it actually observes (Shadow); this is the
only way a context influences behavior, and it is applied exactly once
per operation, immediately before the branch reaches the MSV.

# What this package does not do

This package does not implement persistence, a foreign-language bridge,
collection types other than records, namespace lookup, or the
publish/merge algorithm that reconciles branches. Those are external
collaborators; see the publish subpackage for the read-only hook this
core exposes to such a consumer.
*/
package mds
