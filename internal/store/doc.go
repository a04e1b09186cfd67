// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package store keeps saved commands as flat files in a database directory.
//
// Each record is a file named after the command. Its content is a single line:
// the command, one space, then the arguments joined by single spaces. There is
// no quoting, so arguments containing spaces do not survive a round trip.
// The filesystem is the only source of truth; nothing is cached.
package store
