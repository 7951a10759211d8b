////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package indexedDb

import (
	"encoding/json"
	"syscall/js"

	"github.com/pkg/errors"

	"gitlab.com/elixxir/tododb-wasm/tododb"
)

// jsJSON is the Javascript JSON object.
var jsJSON = js.Global().Get("JSON")

// jsToJSON converts the Javascript value to JSON.
func jsToJSON(value js.Value) string {
	return jsJSON.Call("stringify", value).String()
}

// entryToJS converts an entry to a [js.Value] of the object subtype.
func entryToJS(entry tododb.Entry) (js.Value, error) {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return js.ValueOf(nil), errors.Errorf(
			"Unable to marshal entry: %+v", err)
	}
	var jsObj map[string]any
	err = json.Unmarshal(entryJSON, &jsObj)
	if err != nil {
		return js.ValueOf(nil), errors.Errorf(
			"Unable to convert entry: %+v", err)
	}
	return js.ValueOf(jsObj), nil
}

// entryFromJS converts a [js.Value] object back to an entry.
func entryFromJS(value js.Value) (tododb.Entry, error) {
	var entry tododb.Entry
	err := json.Unmarshal([]byte(jsToJSON(value)), &entry)
	if err != nil {
		return nil, errors.Errorf("Unable to unmarshal entry: %+v", err)
	}
	return entry, nil
}

// jsToGo converts a scalar Javascript result, such as a primary key, to its
// Go counterpart.
func jsToGo(value js.Value) any {
	switch value.Type() {
	case js.TypeString:
		return value.String()
	case js.TypeNumber:
		return value.Float()
	case js.TypeBoolean:
		return value.Bool()
	case js.TypeNull, js.TypeUndefined:
		return nil
	default:
		return jsToJSON(value)
	}
}
