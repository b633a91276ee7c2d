// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - exact integer amounts in beddows
//
// all arithmetic is exact; values are never converted to floating point
package amount
