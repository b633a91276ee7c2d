// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"
)

// TimeWithOffset - timestamp for now adjusted by offset, in whole
// seconds since EpochTime
func TimeWithOffset(now time.Time, offset time.Duration) int64 {
	return int64(now.Add(offset).Sub(EpochTime) / time.Second)
}

// TimestampTime - wall clock time of a timestamp
func TimestampTime(timestamp int64) time.Time {
	return EpochTime.Add(time.Duration(timestamp) * time.Second)
}
