// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scenario - drive a fleet through a sequence of inserts,
// removals and tree type changes
//
// after every step the tree invariants are verified and the fleet is
// handed to a Reporter, normally the console or a log channel
package scenario
