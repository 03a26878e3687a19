package input

import (
	"fmt"
	"strings"
)

// Motion is a named caret, selection or clipboard operation.
type Motion int

const (
	MotionNone Motion = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionNextWord
	MotionPreviousWord
	MotionLineStart
	MotionLineEnd
	MotionNextPage
	MotionPreviousPage
	MotionDocumentStart
	MotionDocumentEnd
	MotionBackspace
	MotionDelete
	MotionCopy
	MotionPaste
	MotionCut
	MotionSelectAll
	MotionHistoryBack
	MotionHistoryForward
)

var motionNames = []string{
	MotionNone:           "none",
	MotionLeft:           "left",
	MotionRight:          "right",
	MotionUp:             "up",
	MotionDown:           "down",
	MotionNextWord:       "next-word",
	MotionPreviousWord:   "previous-word",
	MotionLineStart:      "line-start",
	MotionLineEnd:        "line-end",
	MotionNextPage:       "next-page",
	MotionPreviousPage:   "previous-page",
	MotionDocumentStart:  "document-start",
	MotionDocumentEnd:    "document-end",
	MotionBackspace:      "backspace",
	MotionDelete:         "delete",
	MotionCopy:           "copy",
	MotionPaste:          "paste",
	MotionCut:            "cut",
	MotionSelectAll:      "select-all",
	MotionHistoryBack:    "history-back",
	MotionHistoryForward: "history-forward",
}

func (m Motion) String() string {
	if m >= 0 && int(m) < len(motionNames) {
		return motionNames[m]
	}
	return fmt.Sprintf("Motion(%d)", int(m))
}

// ParseMotion returns the motion with the given name.
func ParseMotion(s string) (Motion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range motionNames {
		if name == s && i != int(MotionNone) {
			return Motion(i), nil
		}
	}
	return MotionNone, fmt.Errorf("unknown motion %q", s)
}

// Moves reports whether m only moves the caret, so that shift extends the
// selection instead of collapsing it.
func (m Motion) Moves() bool {
	return m >= MotionLeft && m <= MotionDocumentEnd
}
