package ntree_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-ntree"
	"github.com/KimNorgaard/go-ntree/ast"
	"github.com/KimNorgaard/go-ntree/internal/testutil"
)

func load(t *testing.T, s string, opts ...ntree.Option) *ntree.Document {
	t.Helper()
	doc, err := ntree.Load(strings.NewReader(s), opts...)
	require.NoError(t, err)
	return doc
}

func TestLoad_Null(t *testing.T) {
	null := ntree.NewDocument(&ast.Node{})
	out, err := ntree.Marshal(null)
	require.NoError(t, err)
	require.Equal(t, "0,0,,null\n", string(out))

	doc := load(t, "a = null")
	require.True(t, doc.Root().IsNull())
	require.True(t, doc.Equal(null))

	// Whitespace between tokens is ignored.
	require.True(t, load(t, "a = \t\r\n\n\r null \t\r\n\n\r ").Equal(null))
}

func TestLoad_String(t *testing.T) {
	hello := ntree.NewDocument(ast.NewString("Hello"))
	require.True(t, load(t, "a = \t\r\n\n\r \"Hello\" \t\r\n\n\r ").Equal(hello))

	doc := load(t, `a = "\"q\" \\ \n\r\t"`)
	s, err := doc.Root().AsString()
	require.NoError(t, err)
	require.Equal(t, "\"q\" \\ \n\r\t", s)
}

func TestLoad_Array(t *testing.T) {
	arr := ntree.NewDocument(ast.NewArray(
		ast.NewString("1").SetName("x"),
		ast.NewString("0").SetName("y"),
		ast.NewString("0").SetName("z"),
	).SetName("test"))

	doc := load(t, `test = {x="1" y="0" z="0"}`)
	require.True(t, doc.Equal(arr))

	elems, err := doc.Root().AsArray()
	require.NoError(t, err)
	require.Len(t, elems, 3)
	for i, want := range []string{"1", "0", "0"} {
		got, err := elems[i].AsString()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	require.False(t, load(t, `test = {a = {x="1" y="0" z="0"}}`).Root().IsNull())
	require.True(t, load(t, "test =  \r \n {x=\"1\" \r\n\t y=\"0\" \n \n  \t\t z=\"0\"}\n").Equal(arr))
	require.False(t, load(t, `test = {x="1" y="0"}`).Equal(arr))
}

func TestLoad_Rejects(t *testing.T) {
	cases, err := testutil.ReadCases("reject.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			doc, err := ntree.Load(strings.NewReader(tc.Input))
			require.Nil(t, doc)
			var perr *ntree.ParsingError
			require.ErrorAs(t, err, &perr)
			require.True(t, strings.HasPrefix(perr.Message, "invalid data format: "), perr.Message)
			require.ErrorContains(t, err, tc.Error)
			require.Positive(t, perr.Line)
			require.Positive(t, perr.Column)
		})
	}
}

func TestLoad_Accepts(t *testing.T) {
	cases, err := testutil.ReadCases("accept.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := ntree.Load(strings.NewReader(tc.Input))
			require.NoError(t, err)
		})
	}
}

func TestLoad_ErrorPosition(t *testing.T) {
	_, err := ntree.Parse([]byte("a = {\n  b = \"x\"\n  c = [\n}"))
	require.EqualError(t, err, `ntree: parsing error at line 3, column 7: invalid data format: unexpected '[', expected string, null or array`)
}

func TestLoad_ReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("a = {b = null "), iotest.ErrReader(boom))
	_, err := ntree.Load(r)
	var perr *ntree.ParsingError
	require.ErrorAs(t, err, &perr)
	require.ErrorIs(t, err, boom)
}

func TestLoad_RawBytes(t *testing.T) {
	doc := load(t, "a\xe9 = { s = \"\xff\xfe\" }")
	out, err := ntree.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, "1,0,a\xe9,{s}\n  2,1,s,\xff\xfe\n", string(out))

	again, err := ntree.Parse([]byte(doc.Root().String()))
	require.NoError(t, err)
	require.True(t, doc.Equal(again))
	require.Equal(t, "a\xe9", again.Root().Name())
}

func TestLoad_Identity(t *testing.T) {
	src, err := os.ReadFile("testdata/shape.ntree")
	require.NoError(t, err)

	for range 2 {
		doc, err := ntree.Parse(src)
		require.NoError(t, err)

		want := 1
		ast.Walk(doc.Root(), func(n, parent *ast.Node, _ int) bool {
			require.Equal(t, want, n.ID(), "ids follow pre-order")
			if parent != nil {
				require.Less(t, parent.ID(), n.ID())
			}
			want++
			return true
		})
		require.Equal(t, 25, want)
	}
}

func TestLoad_ConcurrentNumbering(t *testing.T) {
	var wg sync.WaitGroup
	ids := make([][]int, 8)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := ntree.Parse([]byte(`a = { b = null c = { d = "x" } }`))
			if err != nil {
				return
			}
			ast.Walk(doc.Root(), func(n, _ *ast.Node, _ int) bool {
				ids[i] = append(ids[i], n.ID())
				return true
			})
		}()
	}
	wg.Wait()
	for _, got := range ids {
		require.Equal(t, []int{1, 2, 3, 4}, got)
	}
}

func TestRoundTrip(t *testing.T) {
	src, err := os.ReadFile("testdata/shape.ntree")
	require.NoError(t, err)
	doc, err := ntree.Parse(src)
	require.NoError(t, err)

	again, err := ntree.Parse([]byte(doc.Root().String()))
	require.NoError(t, err)
	require.True(t, doc.Equal(again))

	first, err := ntree.Marshal(doc)
	require.NoError(t, err)
	second, err := ntree.Marshal(again)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestOptions(t *testing.T) {
	t.Run("IndentStep", func(t *testing.T) {
		doc := load(t, `a = { b = { c = null } }`)
		out, err := ntree.Marshal(doc, ntree.IndentStep(4))
		require.NoError(t, err)
		require.Equal(t, "1,0,a,{b}\n    2,1,b,{c}\n        3,2,c,null\n", string(out))

		out, err = ntree.Marshal(doc, ntree.IndentStep(0))
		require.NoError(t, err)
		require.Equal(t, "1,0,a,{b}\n2,1,b,{c}\n3,2,c,null\n", string(out))

		_, err = ntree.Marshal(doc, ntree.IndentStep(-1))
		require.EqualError(t, err, "ntree: indent step cannot be negative")
	})

	t.Run("MaxDepth", func(t *testing.T) {
		input := "a = {b = {c = {d = null}}}"
		_, err := ntree.Parse([]byte(input), ntree.MaxDepth(3))
		require.NoError(t, err)

		_, err = ntree.Parse([]byte(input), ntree.MaxDepth(2))
		var perr *ntree.ParsingError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, "invalid data format: maximum nesting depth 2 exceeded", perr.Message)

		_, err = ntree.Parse([]byte(input), ntree.MaxDepth(0))
		require.EqualError(t, err, "ntree: max depth must be a positive integer")

		deep := strings.Repeat("a = {", 1001) + "b = null" + strings.Repeat("}", 1001)
		_, err = ntree.Parse([]byte(deep))
		require.ErrorAs(t, err, &perr)
	})

	t.Run("DisallowTrailingData", func(t *testing.T) {
		input := "a = null\n b = null"
		doc, err := ntree.Parse([]byte(input))
		require.NoError(t, err)
		require.Equal(t, "a", doc.Root().Name())

		_, err = ntree.Parse([]byte(input), ntree.DisallowTrailingData())
		require.EqualError(t, err, `ntree: parsing error at line 2, column 2: invalid data format: unexpected 'b' after top-level node`)

		_, err = ntree.Parse([]byte("a = null \n\t"), ntree.DisallowTrailingData())
		require.NoError(t, err)
	})

	t.Run("WithLogger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		doc := load(t, `a = { b = null c = "x" }`, ntree.WithLogger(logger))
		require.Contains(t, buf.String(), `msg="document loaded" root=a nodes=3`)

		require.NoError(t, ntree.Print(doc, io.Discard, ntree.WithLogger(logger)))
		require.Contains(t, buf.String(), `msg="document printed" root=a records=3`)

		_, err := ntree.Parse([]byte("a = {}"), ntree.WithLogger(logger))
		require.Error(t, err)
		require.Contains(t, buf.String(), `msg="load failed" line=1 column=5`)

		_, err = ntree.Parse([]byte("a = null"), ntree.WithLogger(nil))
		require.EqualError(t, err, "ntree: nil logger")
	})
}

func TestPrint_NilDocument(t *testing.T) {
	require.EqualError(t, ntree.Print(nil, io.Discard), "ntree: Print(nil document)")

	doc := ntree.NewDocument(ast.NewArray(nil, ast.NewNull().SetName("a")).SetName("x"))
	out, err := ntree.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, "0,0,x,{a}\n  0,0,a,null\n", string(out))
}

func TestDocument_Equal(t *testing.T) {
	a := load(t, `a = { x = "1" }`)
	b := load(t, `b = { y = "1" }`)
	c := load(t, `a = { x = "2" }`)
	require.True(t, a.Equal(b), "names are not part of equality")
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))

	var nilDoc *ntree.Document
	require.True(t, nilDoc.Equal(nil))
}

func TestTypeMismatch(t *testing.T) {
	doc := load(t, "a = null")
	_, err := doc.Root().AsArray()
	var mismatch *ntree.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, ast.NullKind, mismatch.Kind)

	var perr *ntree.ParsingError
	require.False(t, errors.As(err, &perr))
}
