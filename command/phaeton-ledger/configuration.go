// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/phaetonhq/phaeton-transactions/configuration"
	"github.com/phaetonhq/phaeton-transactions/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabaseName     = "phaeton"

	defaultLogDirectory = "log"
	defaultLogFile      = "phaeton-ledger.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultExpiryInterval = 60 // seconds
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the account database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ReservoirType - unconfirmed pool settings
type ReservoirType struct {
	ExpiryInterval int `gluamapper:"expiry_interval" json:"expiry_interval"`
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Reservoir     ReservoirType        `gluamapper:"reservoir" json:"reservoir"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabaseName,
		},

		Reservoir: ReservoirType{
			ExpiryInterval: defaultExpiryInterval,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    make(map[string]string),
		},
	}

	// the parsed table is merged into the defaults
	for tag, level := range defaultLogLevels {
		options.Logging.Levels[tag] = level
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// the database name must be a plain name within its directory
	switch filepath.Dir(options.Database.Name) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Database.Name)
	}

	if options.Reservoir.ExpiryInterval <= 0 {
		return nil, fmt.Errorf("Reservoir: expiry interval %d is not positive", options.Reservoir.ExpiryInterval)
	}

	err = util.MakeDirectories(options.DataDirectory, &options.Database.Directory, &options.Logging.Directory)
	if nil != err {
		return nil, err
	}
	options.Database.Name = filepath.Join(options.Database.Directory, options.Database.Name)

	return options, nil
}
