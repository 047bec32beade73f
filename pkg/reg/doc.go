// Package reg provides programmatic access to the Windows registry by
// driving the reg.exe command-line tool and parsing its textual output.
//
// The entry point is a Key: an immutable handle on one registry key,
// addressed by hive, path, and optionally a remote host and a 32/64-bit
// view selector. Every operation is one tool invocation: build the
// argument vector, spawn the tool, drain both output streams, parse the
// stdout back into records.
//
//	k, err := reg.New(reg.HKCU, `\Software\Vendor\App`)
//	if err != nil { ... }
//	values, err := k.Values(ctx)
//
// Operations block until the tool exits; bound them with the context.
// Keys are safe for concurrent use: each operation owns its subprocess
// and buffers exclusively, so nothing is shared between in-flight calls.
package reg
