package tosql

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/dekarrin/tosql/value"
	"github.com/stretchr/testify/assert"
)

// failer always fails to convert with the given error.
type failer struct {
	err error
}

func (f failer) ToSQL() (Output, error) {
	return nil, f.err
}

// lazy returns neither an Output nor an error.
type lazy struct{}

func (lazy) ToSQL() (Output, error) {
	return nil, nil
}

func Test_ToSQL_Scalars(t *testing.T) {
	testCases := []struct {
		name   string
		input  ToSQL
		expect Output
	}{
		{
			name:   "true",
			input:  Bool(true),
			expect: Owned{Value: value.Bool(true)},
		},
		{
			name:   "false",
			input:  Bool(false),
			expect: Owned{Value: value.Bool(false)},
		},
		{
			name:   "int32",
			input:  Int32(-2147483648),
			expect: Owned{Value: value.Int64(-2147483648)},
		},
		{
			name:   "int64 42",
			input:  Int64(42),
			expect: Owned{Value: value.Int64(42)},
		},
		{
			name:   "int64 max",
			input:  Int64(math.MaxInt64),
			expect: Owned{Value: value.Int64(math.MaxInt64)},
		},
		{
			name:   "float64",
			input:  Float64(2.5),
			expect: Owned{Value: value.Float64(2.5)},
		},
		{
			name:   "float64 infinity",
			input:  Float64(math.Inf(-1)),
			expect: Owned{Value: value.Float64(math.Inf(-1))},
		},
		{
			name:   "null",
			input:  Null{},
			expect: Owned{Value: value.Null()},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := tc.input.ToSQL()
			if !assert.NoError(err) {
				return
			}

			assert.IsType(Owned{}, actual)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_ToSQL_Kinds(t *testing.T) {
	testCases := []struct {
		name   string
		input  ToSQL
		expect value.Kind
	}{
		{name: "bool", input: Bool(true), expect: value.KindBoolean},
		{name: "int32", input: Int32(1), expect: value.KindInteger},
		{name: "int64", input: Int64(1), expect: value.KindInteger},
		{name: "float64", input: Float64(1), expect: value.KindReal},
		{name: "null", input: Null{}, expect: value.KindNull},
		{name: "text", input: Text("1"), expect: value.KindText},
		{name: "blob", input: Blob{1}, expect: value.KindBlob},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := tc.input.ToSQL()
			if !assert.NoError(err) {
				return
			}

			switch out := actual.(type) {
			case Owned:
				assert.Equal(tc.expect, out.Value.Kind())
			case Borrowed:
				assert.Equal(tc.expect, out.Ref.Kind())
			default:
				assert.Failf("unexpected output", "%T", actual)
			}
		})
	}
}

func Test_ToSQL_Borrowed(t *testing.T) {
	testCases := []struct {
		name   string
		input  ToSQL
		expect Output
	}{
		{
			name:   "text",
			input:  Text("hello"),
			expect: Borrowed{Ref: value.TextRef("hello")},
		},
		{
			name:   "empty text",
			input:  Text(""),
			expect: Borrowed{Ref: value.TextRef("")},
		},
		{
			name:   "non-ascii text",
			input:  Text("héllo, 世界"),
			expect: Borrowed{Ref: value.TextRef("héllo, 世界")},
		},
		{
			name:   "blob",
			input:  Blob{0x00, 0x01, 0xfe},
			expect: Borrowed{Ref: value.BlobRef([]byte{0x00, 0x01, 0xfe})},
		},
		{
			name:   "empty blob",
			input:  Blob{},
			expect: Borrowed{Ref: value.BlobRef([]byte{})},
		},
		{
			name:   "nil blob is an empty blob",
			input:  Blob(nil),
			expect: Borrowed{Ref: value.BlobRef([]byte{})},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := tc.input.ToSQL()
			if !assert.NoError(err) {
				return
			}

			assert.IsType(Borrowed{}, actual)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Blob_ViewAliasesSource(t *testing.T) {
	assert := assert.New(t)

	src := Blob("abcd")
	out, err := src.ToSQL()
	if !assert.NoError(err) {
		return
	}

	b, ok := out.(Borrowed).Ref.Blob()
	if !assert.True(ok) {
		return
	}

	assert.Same(&src[0], &b[0], "blob was copied")

	src[0] = 'z'
	assert.Equal([]byte("zbcd"), b)
}

func Test_Option(t *testing.T) {
	testCases := []struct {
		name      string
		input     ToSQL
		expect    Output
		expectErr error
	}{
		{
			name:   "none int32",
			input:  None[Int32](),
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "none text",
			input:  None[Text](),
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "zero value is none",
			input:  Option[Blob]{},
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "some int32",
			input:  Some(Int32(7)),
			expect: Owned{Value: value.Int64(7)},
		},
		{
			name:   "some text stays borrowed",
			input:  Some(Text("hi")),
			expect: Borrowed{Ref: value.TextRef("hi")},
		},
		{
			name:   "some null",
			input:  Some(Null{}),
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "nested none outer",
			input:  None[Option[Int64]](),
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "nested none inner",
			input:  Some(None[Int64]()),
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "nested some",
			input:  Some(Some(Int64(3))),
			expect: Owned{Value: value.Int64(3)},
		},
		{
			name:      "some failure is passed through",
			input:     Some(Uint64(math.MaxUint64)),
			expectErr: ErrOutOfRange,
		},
		{
			name:   "some nil pointer",
			input:  Some[*Int64](nil),
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "some nil interface",
			input:  Some[ToSQL](nil),
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "nested some nil pointer",
			input:  Some(Some[*Text](nil)),
			expect: Owned{Value: value.Null()},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := tc.input.ToSQL()

			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
				assert.Nil(actual)
				return
			}

			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Option_SameAsInner(t *testing.T) {
	inners := []ToSQL{Bool(false), Int32(-1), Int64(1 << 40), Float64(0.5), Text("x"), Blob{9}, Null{}}

	for _, inner := range inners {
		expect, expectErr := inner.ToSQL()
		actual, actualErr := Some(inner).ToSQL()

		assert.Equal(t, expectErr, actualErr)
		assert.Equal(t, expect, actual)
	}

	nullOut, _ := Null{}.ToSQL()
	noneOut, _ := None[ToSQL]().ToSQL()
	assert.Equal(t, nullOut, noneOut)
}

func Test_Option_ErrorUnchanged(t *testing.T) {
	cause := errors.New("bad value")

	_, err := Some(failer{err: cause}).ToSQL()

	assert.Equal(t, cause, err)
}

func Test_FromPtr(t *testing.T) {
	assert := assert.New(t)

	var nilPtr *Int64
	assert.False(FromPtr(nilPtr).IsSome())

	i := Int64(12)
	opt := FromPtr(&i)
	got, ok := opt.Get()
	assert.True(ok)
	assert.Equal(Int64(12), got)
}

func Test_Pointer_SameAsReferent(t *testing.T) {
	b := Bool(true)
	i := Int64(99)
	s := Text("ref")
	bl := Blob{1, 2}
	opt := Some(Int32(5))

	testCases := []struct {
		name     string
		ref      ToSQL
		referent ToSQL
	}{
		{name: "bool", ref: &b, referent: b},
		{name: "int64", ref: &i, referent: i},
		{name: "text", ref: &s, referent: s},
		{name: "blob", ref: &bl, referent: bl},
		{name: "option", ref: &opt, referent: opt},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			expect, err := tc.referent.ToSQL()
			if !assert.NoError(err) {
				return
			}

			actual, err := tc.ref.ToSQL()
			if !assert.NoError(err) {
				return
			}
			assert.Equal(expect, actual)

			actual, err = Convert(tc.ref)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(expect, actual)
		})
	}
}

func Test_PassThrough(t *testing.T) {
	testCases := []struct {
		name   string
		input  ToSQL
		expect Output
	}{
		{
			name:   "owned value is viewed",
			input:  Value{value.Text("abc")},
			expect: Borrowed{Ref: value.TextRef("abc")},
		},
		{
			name:   "owned null value",
			input:  Value{value.Null()},
			expect: Borrowed{Ref: value.NullRef()},
		},
		{
			name:   "ref",
			input:  Ref{value.IntegerRef(4)},
			expect: Borrowed{Ref: value.IntegerRef(4)},
		},
		{
			name:   "owned output",
			input:  Owned{Value: value.Float64(1.25)},
			expect: Owned{Value: value.Float64(1.25)},
		},
		{
			name:   "borrowed output",
			input:  Borrowed{Ref: value.BlobRef([]byte{7})},
			expect: Borrowed{Ref: value.BlobRef([]byte{7})},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := tc.input.ToSQL()
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, actual)

			again, err := actual.ToSQL()
			if !assert.NoError(err) {
				return
			}
			assert.Equal(actual, again, "repeated conversion changed output")
		})
	}
}

func Test_PassThrough_ViewsOwnStorage(t *testing.T) {
	assert := assert.New(t)

	v := Value{value.Blob([]byte("xyz"))}
	out, err := v.ToSQL()
	if !assert.NoError(err) {
		return
	}

	owned, _ := v.Blob()
	viewed, _ := out.(Borrowed).Ref.Blob()
	assert.Same(&owned[0], &viewed[0])
}

func Test_Convert(t *testing.T) {
	var nilInt *Int64
	var nilOpt *Option[Text]
	cause := errors.New("custom failure")

	testCases := []struct {
		name             string
		input            ToSQL
		expect           Output
		expectErrToMatch []error
	}{
		{
			name:   "nil interface",
			input:  nil,
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "nil pointer",
			input:  nilInt,
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "nil pointer to option",
			input:  nilOpt,
			expect: Owned{Value: value.Null()},
		},
		{
			name:   "scalar",
			input:  Int64(42),
			expect: Owned{Value: value.Int64(42)},
		},
		{
			name:   "nil blob is not null",
			input:  Blob(nil),
			expect: Borrowed{Ref: value.BlobRef([]byte{})},
		},
		{
			name:             "plain error gets conversion cause",
			input:            failer{err: cause},
			expectErrToMatch: []error{cause, ErrConversion},
		},
		{
			name:             "out of range",
			input:            Uint64(math.MaxInt64 + 1),
			expectErrToMatch: []error{ErrOutOfRange, ErrConversion},
		},
		{
			name:             "no output and no error",
			input:            lazy{},
			expectErrToMatch: []error{ErrConversion},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := Convert(tc.input)

			if tc.expectErrToMatch == nil {
				if !assert.NoError(err) {
					return
				}
				assert.Equal(tc.expect, actual)
			} else {
				if !assert.Error(err) {
					return
				}
				assert.Nil(actual)
				if !assert.IsType(Error{}, err, "wrong type error") {
					return
				}

				for _, expectMatch := range tc.expectErrToMatch {
					assert.ErrorIs(err, expectMatch)
				}
			}
		})
	}
}

func Test_Convert_KeepsCauseMessage(t *testing.T) {
	_, err := Convert(failer{err: errors.New("value too spicy")})

	assert.EqualError(t, err, "value too spicy")
}

func Test_Use(t *testing.T) {
	t.Run("fn receives output", func(t *testing.T) {
		assert := assert.New(t)

		var got Output
		err := Use(Text("scoped"), func(out Output) error {
			got = out
			return nil
		})

		assert.NoError(err)
		assert.Equal(Borrowed{Ref: value.TextRef("scoped")}, got)
	})

	t.Run("fn error is returned", func(t *testing.T) {
		fnErr := errors.New("bind failed")

		err := Use(Int32(1), func(out Output) error {
			return fnErr
		})

		assert.Equal(t, fnErr, err)
	})

	t.Run("conversion failure skips fn", func(t *testing.T) {
		assert := assert.New(t)

		called := false
		err := Use(Uint64(math.MaxUint64), func(out Output) error {
			called = true
			return nil
		})

		assert.ErrorIs(err, ErrOutOfRange)
		assert.False(called)
	})
}

func Test_Output_String(t *testing.T) {
	testCases := []struct {
		name   string
		input  ToSQL
		expect string
	}{
		{name: "bool", input: Bool(true), expect: "Owned(Boolean(true))"},
		{name: "int", input: Int64(42), expect: "Owned(Integer(42))"},
		{name: "text", input: Text("hello"), expect: `Borrowed(Text("hello"))`},
		{name: "empty blob", input: Blob{}, expect: "Borrowed(Blob([]))"},
		{name: "none", input: None[Int32](), expect: "Owned(Null)"},
		{name: "some", input: Some(Int32(7)), expect: "Owned(Integer(7))"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Convert(tc.input)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tc.expect, actual.String())
		})
	}
}

func Test_Convert_OptionNilInner(t *testing.T) {
	assert := assert.New(t)

	var p *Int64
	direct, err := Convert(p)
	if !assert.NoError(err) {
		return
	}

	viaOption, err := Convert(Some(p))
	if !assert.NoError(err) {
		return
	}

	assert.Equal(direct, viaOption)
}

func Test_PassThrough_NaN(t *testing.T) {
	assert := assert.New(t)

	nan := Value{Value: value.Float64(math.NaN())}

	first, err := Convert(nan)
	if !assert.NoError(err) {
		return
	}
	second, err := Convert(first)
	if !assert.NoError(err) {
		return
	}

	firstRef := first.(Borrowed).Ref
	secondRef := second.(Borrowed).Ref
	assert.Truef(firstRef.Equal(secondRef), "%s vs %s", firstRef, secondRef)
}

func Test_Convert_SharedAcrossGoroutines(t *testing.T) {
	const workers = 8

	text := Text("shared text")
	blob := Blob{1, 2, 3, 4}

	results := make([][2]Output, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			textOut, err := Convert(text)
			if err != nil {
				errs[i] = err
				return
			}
			blobOut, err := Convert(blob)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = [2]Output{textOut, blobOut}
		}(i)
	}
	wg.Wait()

	assert := assert.New(t)
	for i := 0; i < workers; i++ {
		if !assert.NoError(errs[i]) {
			continue
		}
		assert.Equal(Borrowed{Ref: value.TextRef("shared text")}, results[i][0])
		assert.Equal(Borrowed{Ref: value.BlobRef([]byte{1, 2, 3, 4})}, results[i][1])
	}
	assert.Equal(Blob{1, 2, 3, 4}, blob, "source was modified")
}
