////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package logging

import (
	"log"
	"syscall/js"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// LogLevel sets the level of logging. All logs at the set level and below
// will be displayed (e.g., when log level is ERROR, only ERROR, CRITICAL, and
// FATAL messages will be printed). Output goes to the Javascript console
// instead of stdout.
//
// The default log level without updates is INFO.
func LogLevel(threshold jww.Threshold) error {
	if threshold < jww.LevelTrace || threshold > jww.LevelFatal {
		return errors.Errorf("log level is not valid: log level: %d", threshold)
	}

	jww.SetLogThreshold(threshold)
	jww.SetFlags(log.LstdFlags | log.Lmicroseconds)

	ll := NewJsConsoleLogListener(threshold)
	AddLogListener(ll.Listen)
	jww.SetStdoutThreshold(jww.LevelFatal + 1)

	jww.INFO.Printf("Log level set to: %s", threshold)
	return nil
}

// LogLevelJS sets the log level from Javascript.
//
// Parameters:
//   - args[0] - Log level (int): 0 TRACE, 1 DEBUG, 2 INFO, 3 WARN, 4 ERROR,
//     5 CRITICAL, 6 FATAL.
//
// Returns:
//   - Error message (string) on failure, otherwise null.
func LogLevelJS(_ js.Value, args []js.Value) any {
	threshold := jww.Threshold(args[0].Int())
	err := LogLevel(threshold)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return js.Null()
}
