////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package task

import (
	"fmt"
	"time"
)

// DueDate composes the task's date and time fields into a human-readable due
// date, e.g. "24th November 2013, 19:30". Month is 1-based.
func (t Task) DueDate() string {
	return fmt.Sprintf("%d%s %s %d, %02d:%02d", t.Day, ordinalSuffix(t.Day),
		time.Month(t.Month), t.Year, t.Hours, t.Minutes)
}

// String renders the task as a single display line with its title, due date,
// and notification status.
func (t Task) String() string {
	return fmt.Sprintf(
		"%s — %s (notified: %s)", t.TaskTitle, t.DueDate(), t.Notified)
}

// ordinalSuffix returns the English ordinal suffix for the given day of the
// month. The teens all take "th", including 11, 12, and 13.
func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
