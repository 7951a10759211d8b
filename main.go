///////////////////////////////////////////////////////////////////////////////
// Copyright © 2020 xx network SEZC                                          //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"syscall/js"

	"gitlab.com/elixxir/tododb-wasm/bindings"
	"gitlab.com/elixxir/tododb-wasm/logging"
)

func main() {
	fmt.Println("Go Web Assembly")

	// bindings/tasks.go
	js.Global().Set("AddTask", js.FuncOf(bindings.AddTask))
	js.Global().Set("GetTasks", js.FuncOf(bindings.GetTasks))
	js.Global().Set("NotificationsEnabled",
		js.FuncOf(bindings.NotificationsEnabled))
	js.Global().Set("SetNotificationsEnabled",
		js.FuncOf(bindings.SetNotificationsEnabled))

	// logging/logLevel.go
	js.Global().Set("LogLevel", js.FuncOf(logging.LogLevelJS))

	// Wait until the user terminates the program
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	os.Exit(0)
}
