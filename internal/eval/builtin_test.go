package eval

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nickandperla.net/tinyps/internal/store"
	"nickandperla.net/tinyps/internal/value"
)

func TestStackOperators(t *testing.T) {
	tests := []struct {
		input string
		want  []value.Value
	}{
		{"1 2 exch", []value.Value{value.Int(2), value.Int(1)}},
		{"1 2 pop", []value.Value{value.Int(1)}},
		{"7 dup", []value.Value{value.Int(7), value.Int(7)}},
		{"1 2 3 clear", nil},
		{"1 2 count", []value.Value{value.Int(1), value.Int(2), value.Int(2)}},
		{"count", []value.Value{value.Int(0)}},
		{"1 2 3 2 copy", []value.Value{value.Int(1), value.Int(2), value.Int(3), value.Int(2), value.Int(3)}},
		{"1 2 0 copy", []value.Value{value.Int(1), value.Int(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ctx := run(t, tt.input)
			assertStack(t, ctx, tt.want...)
		})
	}
}

// dup copies the handle, not the contents.
func TestDupSharesStringIdentity(t *testing.T) {
	ctx := run(t, "(abc) dup 0 (Z) putinterval")
	assertStack(t, ctx, value.NewString("Zbc"))
}

func TestCopyComposite(t *testing.T) {
	_, err := runErr(t, "1 dict 1 dict copy")
	require.ErrorIs(t, err, ErrCopyNotImplemented)

	_, err = runErr(t, "(a) (b) copy")
	require.ErrorIs(t, err, ErrCopyNotImplemented)
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  value.Value
	}{
		{"1 2 add", value.Int(3)},
		{"1.5 2 add", value.Real(3.5)},
		{"1 2.5 add", value.Real(3.5)},
		{"1.5 2.5 add", value.Real(4)},
		{"5 3 sub", value.Int(2)},
		{"5 0.5 sub", value.Real(4.5)},
		{"4 3 mul", value.Int(12)},
		{"4 0.5 mul", value.Real(2)},
		{"6 3 div", value.Real(2)},
		{"1 2 div", value.Real(0.5)},
		{"7 2 idiv", value.Int(3)},
		{"-7 2 idiv", value.Int(-3)},
		{"5 3 mod", value.Int(2)},
		{"-5 3 mod", value.Int(-2)},
		{"5 -3 mod", value.Int(2)},
		{"-3 abs", value.Int(3)},
		{"-3.5 abs", value.Real(3.5)},
		{"3 neg", value.Int(-3)},
		{"2.5 neg", value.Real(-2.5)},
		{"2 ceiling", value.Real(2)},
		{"2.1 ceiling", value.Real(3)},
		{"2 floor", value.Real(2)},
		{"2.9 floor", value.Real(2)},
		{"-2.1 floor", value.Real(-3)},
		{"3 round", value.Int(3)},
		{"2.4 round", value.Real(2)},
		{"2.5 round", value.Real(3)},
		{"-2.5 round", value.Real(-3)},
		{"9 sqrt", value.Real(3)},
		{"2.25 sqrt", value.Real(1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ctx := run(t, tt.input)
			assertStack(t, ctx, tt.want)
		})
	}
}

// idiv truncates toward zero and mod carries the dividend's sign, so
// a = (a idiv b)*b + (a mod b) for all pairs.
func TestIdivModLaw(t *testing.T) {
	for _, a := range []int64{-7, -5, -1, 0, 1, 5, 7} {
		for _, b := range []int64{-3, -2, 2, 3} {
			ctx := run(t, fmt.Sprintf("%d %d idiv %d %d mod", a, b, a, b))
			require.Len(t, ctx.Operands, 2)
			q := int64(ctx.Operands[0].(value.Int))
			r := int64(ctx.Operands[1].(value.Int))
			assert.Equal(t, a, q*b+r, "a=%d b=%d", a, b)
			if r != 0 {
				assert.Equal(t, a < 0, r < 0, "remainder sign for a=%d b=%d", a, b)
			}
		}
	}
}

func TestArithmeticTypeErrors(t *testing.T) {
	for _, src := range []string{"1 (a) add", "(a) 1 sub", "(a) abs", "1 2.0 idiv", "1.0 2 mod"} {
		_, err := runErr(t, src)
		assert.ErrorIs(t, err, ErrTypeCheck, "src %q", src)
	}
}

func TestStackUnderflow(t *testing.T) {
	for _, src := range []string{"pop", "exch", "1 exch", "dup", "add", "1 add", "1 2 ifelse"} {
		_, err := runErr(t, src)
		assert.ErrorIs(t, err, ErrStackUnderflow, "src %q", src)
	}
}

func TestDictOperators(t *testing.T) {
	ctx := run(t, "5 dict")
	require.Len(t, ctx.Operands, 1)
	require.IsType(t, (*value.Dict)(nil), ctx.Operands[0])

	assertStack(t, run(t, "5 dict maxlength"), value.Int(5))
	assertStack(t, run(t, "5 dict length"), value.Int(0))
	assertStack(t, run(t, "(abc) length"), value.Int(3))
	assertStack(t, run(t, "{ 1 2 } length"), value.Int(2))
}

func TestLengthOfClosure(t *testing.T) {
	ctx := run(t, "{ 1 2 add } length", WithLexicalScoping())
	assertStack(t, ctx, value.Int(3))
}

func TestDictErrors(t *testing.T) {
	_, err := runErr(t, "(x) dict")
	assert.ErrorIs(t, err, ErrTypeCheck)

	_, err = runErr(t, "end")
	assert.ErrorIs(t, err, ErrDictStackUnderflow)

	_, err = runErr(t, "10 dict begin end end")
	assert.ErrorIs(t, err, ErrDictStackUnderflow)

	_, err = runErr(t, "1 2 def")
	assert.ErrorIs(t, err, ErrTypeCheck)

	_, err = runErr(t, "1 begin")
	assert.ErrorIs(t, err, ErrTypeCheck)
}

func TestGet(t *testing.T) {
	assertStack(t, run(t, "(abc) 0 get"), value.Int('a'))
	assertStack(t, run(t, "(abc) 2 get"), value.Int('c'))

	_, err := runErr(t, "(abc) 3 get")
	assert.ErrorIs(t, err, ErrRangeCheck)
	_, err = runErr(t, "(abc) -1 get")
	assert.ErrorIs(t, err, ErrRangeCheck)
	_, err = runErr(t, "(abc) (x) get")
	assert.ErrorIs(t, err, ErrTypeCheck)
	_, err = runErr(t, "1 dict 0 get")
	assert.ErrorIs(t, err, ErrTypeCheck)
}

func TestGetinterval(t *testing.T) {
	assertStack(t, run(t, "(abcdef) 1 3 getinterval"), value.NewString("bcd"))
	assertStack(t, run(t, "(abc) 0 0 getinterval"), value.NewString(""))

	_, err := runErr(t, "(abc) 1 3 getinterval")
	assert.ErrorIs(t, err, ErrRangeCheck)
	_, err = runErr(t, "(abc) 0 -1 getinterval")
	assert.ErrorIs(t, err, ErrRangeCheck)
}

// getinterval copies: mutating the substring leaves the source alone.
func TestGetintervalCopies(t *testing.T) {
	ctx := run(t, "(abcdef) dup 1 3 getinterval 0 (Z) putinterval")
	assertStack(t, ctx, value.NewString("abcdef"))
}

func TestPutinterval(t *testing.T) {
	assertStack(t, run(t, "(abcdef) dup 2 (XY) putinterval"), value.NewString("abXYef"))

	_, err := runErr(t, "(abc) 2 (xyz) putinterval")
	assert.ErrorIs(t, err, ErrRangeCheck)
	_, err = runErr(t, "(abc) -1 (x) putinterval")
	assert.ErrorIs(t, err, ErrRangeCheck)
	_, err = runErr(t, "(abc) 0 1 putinterval")
	assert.ErrorIs(t, err, ErrTypeCheck)
}

// Mutation through one binding is visible through every other binding
// to the same string.
func TestPutintervalVisibleThroughAliases(t *testing.T) {
	ctx := run(t, "/s (abcdef) def /alias s def s 2 (XY) putinterval alias")
	assertStack(t, ctx, value.NewString("abXYef"))
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1 2 lt", true},
		{"2 2 lt", false},
		{"2 2 le", true},
		{"3 2 gt", true},
		{"2 3 ge", false},
		{"1 1.0 le", true},
		{"1.5 1 gt", true},
		{"(abc) (abd) lt", true},
		{"(b) (a) gt", true},
		{"(abc) (abc) le", true},
		{"(ab) (abc) lt", true},
		{"1 1 eq", true},
		{"1 2 eq", false},
		{"1 1.0 eq", false},
		{"(abc) (abc) eq", true},
		{"(abc) (abd) ne", true},
		{"/x /x eq", true},
		{"true true eq", true},
		{"1 (a) eq", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertStack(t, run(t, tt.input), value.Bool(tt.want))
		})
	}
}

func TestComparisonTypeErrors(t *testing.T) {
	for _, src := range []string{"1 (a) lt", "(a) 1 ge", "true false lt"} {
		_, err := runErr(t, src)
		assert.ErrorIs(t, err, ErrTypeCheck, "src %q", src)
	}
}

func TestBoolAndBitOperators(t *testing.T) {
	tests := []struct {
		input string
		want  value.Value
	}{
		{"true false and", value.Bool(false)},
		{"true true and", value.Bool(true)},
		{"true false or", value.Bool(true)},
		{"false false or", value.Bool(false)},
		{"true not", value.Bool(false)},
		{"false not", value.Bool(true)},
		{"12 10 and", value.Int(8)},
		{"12 10 or", value.Int(14)},
		{"0 not", value.Int(-1)},
		{"-1 not", value.Int(0)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertStack(t, run(t, tt.input), tt.want)
		})
	}

	_, err := runErr(t, "true 1 and")
	assert.ErrorIs(t, err, ErrTypeCheck)
	_, err = runErr(t, "(a) not")
	assert.ErrorIs(t, err, ErrTypeCheck)
}

func TestIf(t *testing.T) {
	assertStack(t, run(t, "true { 1 } if"), value.Int(1))
	assertStack(t, run(t, "false { 1 } if"))
	// Non-executable proc lands on the operand stack.
	assertStack(t, run(t, "true 5 if"), value.Int(5))

	_, err := runErr(t, "1 { } if")
	assert.ErrorIs(t, err, ErrTypeCheck)
}

func TestIfelse(t *testing.T) {
	assertStack(t, run(t, "true { 1 } { 2 } ifelse"), value.Int(1))
	assertStack(t, run(t, "false { 1 } { 2 } ifelse"), value.Int(2))
	assertStack(t, run(t, "3 4 lt { (yes) } { (no) } ifelse"), value.NewString("yes"))

	_, err := runErr(t, "(x) { } { } ifelse")
	assert.ErrorIs(t, err, ErrTypeCheck)
}

func TestOutputOperators(t *testing.T) {
	var out bytes.Buffer
	run(t, "(hi) print (hi) = (hi) == 3 = 2.5 = /x = { 1 (a) } ==", WithOutput(&out))
	want := "hi" +
		"hi\n" +
		"(hi)\n" +
		"3\n" +
		"2.5\n" +
		"/x\n" +
		"{1 (a)}\n"
	assert.Equal(t, want, out.String())
}

func TestPrintRequiresString(t *testing.T) {
	var out bytes.Buffer
	_, err := runErr(t, "1 print", WithOutput(&out))
	assert.ErrorIs(t, err, ErrTypeCheck)
}

func TestDictDisplayForms(t *testing.T) {
	var out bytes.Buffer
	run(t, "1 dict =", WithOutput(&out))
	assert.Equal(t, "--nostringval--\n", out.String())
}

func TestPersist(t *testing.T) {
	mem := store.NewMemory()
	run(t, "/sq { dup mul } def /sq persist", WithDefinitionStore(mem))

	src, err := mem.Get("sq")
	require.NoError(t, err)
	assert.Equal(t, "/sq {dup mul} def", src)
}

func TestPersistStringNameForm(t *testing.T) {
	mem := store.NewMemory()
	run(t, "/limit 42 def (limit) persist", WithDefinitionStore(mem))

	src, err := mem.Get("limit")
	require.NoError(t, err)
	assert.Equal(t, "/limit 42 def", src)
}

func TestPersistClosureSerializesBody(t *testing.T) {
	mem := store.NewMemory()
	run(t, "/sq { dup mul } def /sq persist", WithDefinitionStore(mem), WithLexicalScoping())

	src, err := mem.Get("sq")
	require.NoError(t, err)
	assert.Equal(t, "/sq {dup mul} def", src)
}

func TestPersistErrors(t *testing.T) {
	mem := store.NewMemory()

	_, err := runErr(t, "/missing persist", WithDefinitionStore(mem))
	assert.ErrorIs(t, err, ErrUndefinedName)

	_, err = runErr(t, "/d 1 dict def /d persist", WithDefinitionStore(mem))
	assert.ErrorIs(t, err, ErrTypeCheck)

	_, err = runErr(t, "1 persist", WithDefinitionStore(mem))
	assert.ErrorIs(t, err, ErrTypeCheck)
}

func TestPersistWithoutStoreIsNoOp(t *testing.T) {
	ctx := run(t, "/v 1 def /v persist /v unpersist")
	assertStack(t, ctx)
}

func TestUnpersist(t *testing.T) {
	mem := store.NewMemory()
	run(t, "/v 1 def /v persist /v unpersist", WithDefinitionStore(mem))

	src, err := mem.Get("v")
	require.NoError(t, err)
	assert.Equal(t, "", src)
}
