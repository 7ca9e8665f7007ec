// SPDX-License-Identifier: MPL-2.0

// Package cargo locates Cargo project roots in the working tree, resolves
// changed files to the projects that own them, and runs one cargo subcommand
// per affected project directory.
//
// A repository may contain several independent Cargo projects or workspaces;
// each directory that directly contains a Cargo.toml is treated as a project
// root. A changed file always belongs to its deepest enclosing root, so a
// file inside a workspace member triggers the member, not the workspace.
package cargo
