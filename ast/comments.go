package ast

import (
	"fmt"

	"github.com/petermattis/goid"
)

// CommentAttacher is the only way to change the comments attached to a
// terminal node once it has been created.
//
// A lexer creates each terminal with every comment that precedes it as a
// leading comment. It then uses a CommentAttacher to move comments that
// really belong to the previous token onto that token's trailing comments.
//
// An attacher only changes terminals registered with it, and a terminal
// can be registered with a single attacher, ever. The attacher must be used
// from the goroutine that created it, and only until Finish is called.
// After that, the terminals it owns are read-only and the tree built from
// them may be shared freely.
type CommentAttacher struct {
	owner    int64
	finished bool
}

// NewCommentAttacher starts a comment attachment pass on the current
// goroutine that owns the given terminals. More can be registered with Add.
func NewCommentAttacher(terminals ...TerminalNode) *CommentAttacher {
	a := &CommentAttacher{owner: goid.Get()}
	a.Add(terminals...)
	return a
}

// Add registers terminals with a. It panics if any of them already belongs
// to an attachment pass, including a finished one.
func (a *CommentAttacher) Add(terminals ...TerminalNode) {
	a.check()
	for _, n := range terminals {
		t := n.token()
		if t.attacher != nil {
			panic(fmt.Sprintf("ast: terminal %q at %v already belongs to a comment attacher", t.raw, t.posRange.Start))
		}
		t.attacher = a
	}
}

func (a *CommentAttacher) check(terminals ...TerminalNode) {
	if a.finished {
		panic("ast: comment attacher used after Finish")
	}
	if id := goid.Get(); id != a.owner {
		panic(fmt.Sprintf("ast: comment attacher created on goroutine %d used on goroutine %d", a.owner, id))
	}
	for _, n := range terminals {
		if t := n.token(); t.attacher != a {
			panic(fmt.Sprintf("ast: terminal %q at %v does not belong to this comment attacher", t.raw, t.posRange.Start))
		}
	}
}

// PopLeadingComment removes and returns the most recently queued leading
// comment of n. It returns false if n has no leading comments.
func (a *CommentAttacher) PopLeadingComment(n TerminalNode) (Comment, bool) {
	a.check(n)
	t := n.token()
	if len(t.leading) == 0 {
		return Comment{}, false
	}
	c := t.leading[len(t.leading)-1]
	t.leading = t.leading[:len(t.leading)-1]
	return c, true
}

// PushTrailingComment appends c to the trailing comments of n.
func (a *CommentAttacher) PushTrailingComment(n TerminalNode, c Comment) {
	a.check(n)
	t := n.token()
	t.trailing = append(t.trailing, c)
}

// Attribute decides which of the leading comments of cur actually trail
// prev, which is the token lexically before cur, and moves them. It returns
// the number of comments moved.
//
// A comment on the same line as prev always moves. A group of comments that
// starts on the line after prev moves if it is detached from cur (a blank
// line separates them, or the group is followed by more comments). Tokens
// that are punctuation, other than '.', never keep a leading comment group
// that could instead trail the previous token.
func (a *CommentAttacher) Attribute(prev, cur TerminalNode) int {
	if prev == nil {
		a.check(cur)
		return 0
	}
	a.check(prev, cur)
	comments := cur.token().leading
	if len(comments) == 0 {
		return 0
	}

	curStart := cur.Start().Line
	if r, ok := cur.(*RuneNode); ok && r.r != '.' {
		// Makes the leading comments look detached, so the logic below
		// gives them to the previous symbol instead of to a comma,
		// semicolon, or brace.
		curStart += 2
	}
	prevEnd := prev.End().Line
	if prevEnd >= curStart {
		return 0
	}

	var count int
	first := comments[0]
	switch firstLine := first.Start.Line; {
	case firstLine == prevEnd:
		count = 1
	case firstLine == prevEnd+1:
		lineStyle := first.IsLineComment()
		line := first.End.Line
		for i := 1; i < len(comments); i++ {
			c := comments[i]
			if !lineStyle || c.Start.Line > line+1 || !c.IsLineComment() {
				// a gap, or a change of comment style, ends the group
				count = i
				break
			}
			line = c.End.Line
		}
		if count == 0 && comments[len(comments)-1].End.Line < curStart-1 {
			// a single group that is detached from cur
			count = len(comments)
		}
	}

	a.move(prev, cur, count)
	return count
}

func (a *CommentAttacher) move(prev, cur TerminalNode, count int) {
	if count == 0 {
		return
	}
	p, c := prev.token(), cur.token()
	p.trailing = append(p.trailing, c.leading[:count]...)
	c.leading = c.leading[count:]
}

// Finish ends the attachment pass. Any further use of a panics, and the
// terminals it owns can no longer be changed by any attacher.
func (a *CommentAttacher) Finish() {
	a.check()
	a.finished = true
}
