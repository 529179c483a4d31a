// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fleet - an ordered collection of ships keyed by ship
// identifier, held in a binary tree that can be switched between three
// balancing modes: plain BST, AVL and Splay
//
// Note: an individual fleet is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Ships outside the identifier range or with an identifier already in
// the fleet are rejected without changing the tree; the returned error
// only describes the reason and can be ignored.
//
// Deleting a ship with two children copies the identifier and state of
// its in-order successor into the deleted position and then removes the
// successor, so a ship value may be relocated by a delete.
package fleet
