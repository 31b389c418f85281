package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOwner mirrors a typical provider: one handler with an optional
// trailing argument, plus a few that exercise the failure paths.
type testOwner struct {
	lastOne  int
	lastTwo  Value
	sideHits int
}

func (o *testOwner) OwnerID() string { return "test" }

func (o *testOwner) Commands() []Definition {
	return []Definition{
		{
			Name:    "test",
			Params:  Shape{IntArg(), Opt(IntArg())},
			Returns: ReturnString,
			Handler: func(owner Owner, args Args) (string, error) {
				t := owner.(*testOwner)
				t.lastOne, t.lastTwo = args.Int(0), args.Value(1)
				if v, ok := args.OptInt(1); ok {
					return fmt.Sprintf("found testTwo, %d + %d", args.Int(0), v), nil
				}
				return fmt.Sprintf("found no testTwo, %d", args.Int(0)), nil
			},
		},
		{
			Name:    "side",
			Returns: ReturnNone,
			Handler: func(owner Owner, _ Args) (string, error) {
				owner.(*testOwner).sideHits++
				return "ignored", nil
			},
		},
		{
			Name:    "blank",
			Returns: ReturnString,
			Handler: func(Owner, Args) (string, error) { return "   \n", nil },
		},
		{
			Name:    "padded",
			Params:  Shape{StringArg()},
			Returns: ReturnString,
			Handler: func(_ Owner, args Args) (string, error) { return "  " + args.Str(0) + "  ", nil },
		},
		{
			Name:    "fail",
			Returns: ReturnString,
			Handler: func(Owner, Args) (string, error) { return "", errors.New("disk on fire") },
		},
		{
			Name:    "silent",
			Returns: ReturnString,
			Handler: func(Owner, Args) (string, error) { return "", errors.New("") },
		},
		{
			Name:    "panic",
			Returns: ReturnString,
			Handler: func(Owner, Args) (string, error) { panic("boom") },
		},
		{
			Name:    "name",
			Params:  Shape{StringArg().WithClamp(NewStringClamp(true, 2, 4))},
			Returns: ReturnString,
			Handler: func(_ Owner, args Args) (string, error) { return args.Str(0), nil },
		},
		{
			Name: "nohandler",
		},
	}
}

func newTestDispatcher(opts ...Option) (*Dispatcher, *testOwner) {
	reg := NewRegistry()
	owner := &testOwner{}
	reg.Register(owner)
	return NewDispatcher(reg, opts...), owner
}

func TestDispatcher_NotACommand(t *testing.T) {
	d, _ := newTestDispatcher()
	for _, line := range []string{"test 5", "", " .test 5", "hello"} {
		assert.Equal(t, `Supplied command does not start with catalyst, ".".`, d.Execute(line))
	}
}

func TestDispatcher_OptionalArgument(t *testing.T) {
	d, owner := newTestDispatcher()

	assert.Equal(t, "found no testTwo, 5", d.Execute(".test 5"))
	assert.Equal(t, 5, owner.lastOne)
	assert.False(t, owner.lastTwo.Present)

	assert.Equal(t, "found testTwo, 5 + 7", d.Execute(".test 5 7"))
	assert.True(t, owner.lastTwo.Present)
	assert.Equal(t, 7, owner.lastTwo.Int())
}

func TestDispatcher_TypeMismatch(t *testing.T) {
	d, _ := newTestDispatcher()
	assert.Equal(t,
		`Argument Mismatch: Required = "Int, Optional<Int>.", received = "x [String], expected Optional<Int>"`,
		d.Execute(".test 5 x"))
}

func TestDispatcher_ArityMismatch(t *testing.T) {
	d, _ := newTestDispatcher()
	assert.Equal(t,
		`Argument Mismatch: Required = "Int, Optional<Int>.", received = "[(1, Int), (2, Int), (three, String)]"`,
		d.Execute(".test 1 2 three"))
	assert.Equal(t,
		`Argument Mismatch: Required = "Int, Optional<Int>.", received = "[]"`,
		d.Execute(".test"))
}

func TestDispatcher_ClampViolation(t *testing.T) {
	d, _ := newTestDispatcher()
	reply := d.Execute(".name a")
	assert.True(t, strings.HasPrefix(reply, `Argument Mismatch: Required = "String.", received = "a: length 1`), reply)
	assert.Equal(t, "abc", d.Execute(".name abc"))
}

func TestDispatcher_AliasNotFound(t *testing.T) {
	d, _ := newTestDispatcher()
	assert.Equal(t, "Function for command nope not found.", d.Execute(".nope 1 2"))
}

func TestDispatcher_OwnerInstanceMissing(t *testing.T) {
	d, _ := newTestDispatcher()
	delete(d.Registry().instances, "test")
	assert.Equal(t, "Class for function test not found.", d.Execute(".test 5"))
}

func TestDispatcher_AliasCaseInsensitive(t *testing.T) {
	d, _ := newTestDispatcher()
	assert.Equal(t, d.Execute(".test 5"), d.Execute(".TEST 5"))
	assert.Equal(t, d.Execute(".test 5 6"), d.Execute(".TeSt 5 6"))
}

func TestDispatcher_ReturnKinds(t *testing.T) {
	d, owner := newTestDispatcher()

	assert.Equal(t, "", d.Execute(".side"))
	assert.Equal(t, 1, owner.sideHits)

	assert.Equal(t, "", d.Execute(".blank"))
	assert.Equal(t, "hi", d.Execute(".padded hi"))
	assert.Equal(t, "", d.Execute(".nohandler"))
}

func TestDispatcher_HandlerErrors(t *testing.T) {
	d, _ := newTestDispatcher()
	assert.Equal(t, "disk on fire", d.Execute(".fail"))
	assert.Equal(t, "Exception Caught: Null Message!", d.Execute(".silent"))
	assert.Equal(t, "boom", d.Execute(".panic"))

	// Still usable after failures.
	assert.Equal(t, "found no testTwo, 1", d.Execute(".test 1"))
}

func TestDispatcher_Idempotent(t *testing.T) {
	d, _ := newTestDispatcher()
	for _, line := range []string{".test 5", ".test 5 x", ".nope", "plain", ".fail"} {
		require.Equal(t, d.Execute(line), d.Execute(line), line)
	}
}

func TestDispatcher_CustomCatalyst(t *testing.T) {
	d, _ := newTestDispatcher(WithCatalyst("!"))
	assert.Equal(t, "!", d.Catalyst())
	assert.Equal(t, "found no testTwo, 3", d.Execute("!test 3"))
	assert.Equal(t, `Supplied command does not start with catalyst, "!".`, d.Execute(".test 3"))
}

func TestDispatcher_EmptyCatalystKeepsDefault(t *testing.T) {
	d, _ := newTestDispatcher(WithCatalyst(""))
	assert.Equal(t, DefaultCatalyst, d.Catalyst())
}

func TestDispatcher_QuotedArgument(t *testing.T) {
	d, _ := newTestDispatcher()
	assert.Equal(t, "a b", d.Execute(`.padded "a b"`))
	assert.Equal(t,
		`Argument Mismatch: Required = "Int, Optional<Int>.", received = "5 [String], expected Int"`,
		d.Execute(`.test "5"`))
}

func TestDispatcher_MessagesKeepTextVerbatim(t *testing.T) {
	d, _ := newTestDispatcher()
	assert.Equal(t,
		`Argument Mismatch: Required = "Int, Optional<Int>.", received = "C:\dir [String], expected Int"`,
		d.Execute(`.test C:\dir`))
	assert.Equal(t,
		`Argument Mismatch: Required = "Int, Optional<Int>.", received = "say "hi" [String], expected Int"`,
		d.Execute(`.test 'say "hi"'`))

	d, _ = newTestDispatcher(WithCatalyst(`\`))
	assert.Equal(t, `Supplied command does not start with catalyst, "\".`, d.Execute(".test 1"))
}
