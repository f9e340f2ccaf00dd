// Package commands defines the peerkey CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init     Load or generate the identity key pair
//   - info     Print key id, fingerprint and difficulty
//   - sign     Sign a file or stdin
//   - verify   Verify a signature
//   - encrypt  ECIES-encrypt for a peer (or yourself)
//   - decrypt  ECIES-decrypt with the own key
//
// # Implementation
//
// The root command builds the dependency graph (key store, key service)
// before any subcommand runs, so the identity is loaded or generated
// exactly once per invocation. --gen-timeout bounds the otherwise
// unbounded proof-of-work generation loop.
package commands
