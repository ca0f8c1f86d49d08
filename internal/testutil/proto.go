package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
)

// AssertMessagesEqual reports a diff if exp and act are not equal
// messages.
func AssertMessagesEqual(t testing.TB, exp, act proto.Message, msgAndArgs ...any) {
	t.Helper()
	AssertMessagesEqualWithOptions(t, exp, act, nil, msgAndArgs...)
}

// AssertMessagesEqualWithOptions is like AssertMessagesEqual but applies
// extra cmp options, such as protocmp.IgnoreFields.
func AssertMessagesEqualWithOptions(t testing.TB, exp, act proto.Message, opts []cmp.Option, msgAndArgs ...any) {
	t.Helper()
	cmpOpts := []cmp.Option{protocmp.Transform()}
	cmpOpts = append(cmpOpts, opts...)
	if diff := cmp.Diff(exp, act, cmpOpts...); diff != "" {
		var prefix string
		if len(msgAndArgs) == 1 {
			if msg, ok := msgAndArgs[0].(string); ok {
				prefix = msg + ": "
			} else {
				prefix = fmt.Sprintf("%+v: ", msgAndArgs[0])
			}
		} else if len(msgAndArgs) > 1 {
			prefix = fmt.Sprintf(msgAndArgs[0].(string)+": ", msgAndArgs[1:]...)
		}
		t.Errorf("%smessage mismatch (-want +got):\n%v", prefix, diff)
	}
}
