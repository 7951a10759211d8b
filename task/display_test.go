////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package task

import (
	"testing"
)

// Tests the composed due date of the reference task.
func TestTask_DueDate(t *testing.T) {
	walkDog := Task{
		TaskTitle: "Walk dog #R",
		Hours:     19,
		Minutes:   30,
		Day:       24,
		Month:     11,
		Year:      2013,
		Notified:  "no",
	}

	expected := "24th November 2013, 19:30"
	if walkDog.DueDate() != expected {
		t.Errorf("Unexpected due date.\nexpected: %q\nreceived: %q",
			expected, walkDog.DueDate())
	}

	expectedLine := "Walk dog #R — 24th November 2013, 19:30 (notified: no)"
	if walkDog.String() != expectedLine {
		t.Errorf("Unexpected display line.\nexpected: %q\nreceived: %q",
			expectedLine, walkDog.String())
	}
}

// Tests ordinal suffixes, including the teens, which all take "th".
func Test_ordinalSuffix(t *testing.T) {
	tests := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th", 7: "th", 10: "th",
		11: "th", 12: "th", 13: "th", 21: "st", 22: "nd", 23: "rd",
		30: "th", 31: "st",
	}
	for day, expected := range tests {
		if suffix := ordinalSuffix(day); suffix != expected {
			t.Errorf("Unexpected suffix for %d.\nexpected: %q\nreceived: %q",
				day, expected, suffix)
		}
	}
}

// Tests that minutes are zero padded.
func TestTask_DueDate_Padding(t *testing.T) {
	task := Task{Hours: 9, Minutes: 5, Day: 1, Month: 1, Year: 2024}

	expected := "1st January 2024, 09:05"
	if task.DueDate() != expected {
		t.Errorf("Unexpected due date.\nexpected: %q\nreceived: %q",
			expected, task.DueDate())
	}
}
