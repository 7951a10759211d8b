////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package main is its own utility that is compiled separate from tododb-WASM.
// It runs the add/getAll flow against the in-memory mock backend so the
// library can be exercised from a terminal, including its failure paths, and
// is not a WASM module itself.

package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/tododb-wasm/mockdb"
	"gitlab.com/elixxir/tododb-wasm/task"
)

// Flag variables.
var (
	logFile                       string
	logLevel                      int
	failOpen, failAdd, failGetAll bool
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Stores a sample task through a mock backend and reads the full list back,
// printing one display line per stored task. The failure flags force the
// corresponding backend operation to fail so each error path can be observed.
// Every run is tagged with a random identifier that appears in the stored
// task title and in any failure log.
var cmd = &cobra.Command{
	Use: "tododemo",
	Short: "Stores a sample task through an in-memory mock backend and reads " +
		"the full task list back, printing one line per task. The --fail-* " +
		"flags force individual backend operations to fail. Refer to the " +
		"flags for details.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {

		// Initialize the logging
		initLog(jww.Threshold(logLevel), logFile)

		// Tag this run so its entries and errors can be told apart
		runID := strconv.Itoa(rand.Intn(100000))

		backend := mockdb.NewBackend(mockdb.Config{
			KeyPath:    task.KeyPath,
			FailOpen:   failOpen,
			FailAdd:    failAdd,
			FailGetAll: failGetAll,
		})
		list := task.NewList(backend)

		sample := task.Task{
			TaskTitle: "Walk dog #" + runID,
			Hours:     19,
			Minutes:   30,
			Day:       24,
			Month:     11,
			Year:      2013,
			Notified:  "no",
		}

		titles, err := list.Add(sample)
		if err != nil {
			jww.FATAL.Panicf("[run %s] Failed to add task: %+v", runID, err)
		}
		jww.INFO.Printf("[run %s] Stored task %q", runID, titles[0])

		tasks, err := list.All()
		if err != nil {
			jww.FATAL.Panicf("[run %s] Failed to get tasks: %+v", runID, err)
		}

		for _, t := range tasks {
			fmt.Println(t)
		}
	},
}

// init is the initialization function for Cobra which defines flags.
func init() {
	cmd.Flags().StringVarP(&logFile, "log", "l", "-",
		"Log output path. By default, logs are printed to stdout. "+
			"To disable logging, set this to empty (\"\").")
	cmd.Flags().IntVarP(&logLevel, "logLevel", "v", 2,
		"Verbosity level of logging. 0 = TRACE, 1 = DEBUG, 2 = INFO, "+
			"3 = WARN, 4 = ERROR, 5 = CRITICAL, 6 = FATAL")
	cmd.Flags().BoolVar(&failOpen, "fail-open", false,
		"Force the backend's open operation to fail.")
	cmd.Flags().BoolVar(&failAdd, "fail-add", false,
		"Force the backend's add operation to fail.")
	cmd.Flags().BoolVar(&failGetAll, "fail-getall", false,
		"Force the backend's getAll operation to fail.")
}

// initLog will enable JWW logging to the given log path with the given
// threshold. If log path is empty, then logging is not enabled. Panics if the
// log file cannot be opened or if the threshold is invalid.
func initLog(threshold jww.Threshold, logPath string) {
	if logPath == "" {
		// Do not enable logging if no log file is set
		return
	} else if logPath != "-" {
		// Set the log file if stdout is not selected

		// Disable stdout output
		jww.SetStdoutOutput(io.Discard)

		// Use log file
		logOutput, err :=
			os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		jww.SetLogOutput(logOutput)
	}

	if threshold < jww.LevelTrace || threshold > jww.LevelFatal {
		panic("Invalid log threshold: " + strconv.Itoa(int(threshold)))
	}

	// Display microseconds if the threshold is set to TRACE or DEBUG
	if threshold == jww.LevelTrace || threshold == jww.LevelDebug {
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	// Enable logging
	jww.SetStdoutThreshold(threshold)
	jww.SetLogThreshold(threshold)
	jww.INFO.Printf("Log level set to: %s", threshold)
}
