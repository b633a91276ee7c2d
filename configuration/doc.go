// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is executed as a Lua chunk and must return a table; the
// table is mapped onto a struct using the "gluamapper" field tags.
// The standard Lua libraries are open so a file can read environment
// variables with os.getenv and compute paths relative to arg[0], the
// name of the configuration file itself.
package configuration
