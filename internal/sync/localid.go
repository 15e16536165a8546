package sync

import (
	"strconv"
	gosync "sync"
	"time"
)

var localIDMu gosync.Mutex
var lastLocalID int64

// nextLocalMilli issues a unix-millisecond value for records created in
// local mode. Consecutive calls within the same millisecond are bumped so
// IDs stay unique within the process.
func nextLocalMilli() int64 {
	localIDMu.Lock()
	defer localIDMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastLocalID {
		now = lastLocalID + 1
	}
	lastLocalID = now
	return now
}

// nextLocalID is the string form used for course and task documents.
func nextLocalID() string {
	return strconv.FormatInt(nextLocalMilli(), 10)
}

// nextNoteID is the numeric form used for personal notes.
func nextNoteID() int64 {
	return nextLocalMilli()
}
