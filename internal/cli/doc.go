// Package cli provides the interactive showcase command-line demo.
//
// It wires configuration, the local record store, services, and an
// interactive REPL that walks a visitor through the guided configuration
// wizard. Typical flow: the startup migration seeds or repairs the local
// data, the user optionally signs in, runs the build wizard to a
// recommendation, and attaches accessories.
//
// Key features:
//   - Login / Register / Logout against the local record store
//   - Guided build wizard (intake chat, four build steps, recommendations)
//   - Browsing of community posts
//   - Admin moderation: ban/unban users, delete posts
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
