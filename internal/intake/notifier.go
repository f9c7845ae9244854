// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import "sync"

// NoticeLevel grades a user-facing notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a short operator-facing message produced by a submission attempt.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Notifier receives submission outcome notices.
type Notifier interface {
	Notify(Notice)
}

// LatestNotifier keeps only the most recent notice. A new notice always
// replaces the previous one, read or not, so rapid successive submissions
// never queue up stale messages.
type LatestNotifier struct {
	mu     sync.Mutex
	latest *Notice
}

func NewLatestNotifier() *LatestNotifier {
	return &LatestNotifier{}
}

func (n *LatestNotifier) Notify(notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.latest = &notice
}

// Latest returns the most recent notice and clears it. The second return is
// false when no notice is pending.
func (n *LatestNotifier) Latest() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.latest == nil {
		return Notice{}, false
	}
	notice := *n.latest
	n.latest = nil
	return notice, true
}
