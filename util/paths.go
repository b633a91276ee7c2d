// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// MakeDirectories - make each path absolute with respect to directory
// and create it if it does not already exist
func MakeDirectories(directory string, paths ...*string) error {
	for _, d := range paths {
		*d = EnsureAbsolute(directory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return err
		}
	}
	return nil
}
