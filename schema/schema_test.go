package schema

import (
	"fmt"
	"maps"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/github2/datecodec"
	"github.com/kbukum/github2/errors"
)

func issueSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := New("issue", "An issue",
		Attr("title", "Issue title"),
		Attr("number", "Issue number"),
		DateAttr("created_at", "When the issue was opened", datecodec.GitHub),
		DateAttr("closed_at", "When the issue was closed", datecodec.GitHub),
	)
	require.NoError(t, err)
	return s
}

func TestNew_RejectsBadDeclarations(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		fields []Field
	}{
		{"empty schema name", "", nil},
		{"empty field name", "x", []Field{Attr("", "nameless")}},
		{"nil attribute", "x", []Field{{Name: "a"}}},
		{"duplicate field", "x", []Field{Attr("a", "one"), Attr("a", "two")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.schema, "", tc.fields...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeSchema))
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew("x", "", Attr("a", ""), Attr("a", "")) })
}

func TestNew_EmptySchemaIsValid(t *testing.T) {
	s, err := New("base", "")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	rec, err := s.New(map[string]any{"anything": 1})
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Len())
	v, ok := rec.Get("anything")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestSchema_New_ConvertsDeclaredDates(t *testing.T) {
	s := issueSchema(t)
	rec, err := s.New(map[string]any{
		"title":      "Crash on start",
		"created_at": "2010/04/21 10:31:00 -0700",
	})
	require.NoError(t, err)

	v, ok := rec.Get("created_at")
	require.True(t, ok)
	ts, isTime := v.(time.Time)
	require.True(t, isTime, "expected time.Time, got %T", v)
	assert.Equal(t, time.Date(2010, 4, 21, 10, 31, 0, 0, time.UTC), ts)
	assert.Equal(t, ts, rec.Time("created_at"))
}

func TestSchema_New_UndeclaredPassthrough(t *testing.T) {
	s := issueSchema(t)
	raw := map[string]any{"nested": true}
	rec, err := s.New(map[string]any{
		"title":     "x",
		"labels":    []any{"bug"},
		"pull_meta": raw,
		"votes_at":  "2010/04/21 10:31:00 -0700",
		"gravatar":  nil,
	})
	require.NoError(t, err)

	v, ok := rec.Get("gravatar")
	assert.True(t, ok, "undeclared nil is stored")
	assert.Nil(t, v)
	assert.True(t, rec.Has("gravatar"))
	wire, err := rec.Wire()
	require.NoError(t, err)
	assert.Contains(t, wire, "gravatar")
	assert.Nil(t, wire["gravatar"])

	v, ok = rec.Get("votes_at")
	require.True(t, ok)
	assert.Equal(t, "2010/04/21 10:31:00 -0700", v, "undeclared values are stored verbatim")

	v, _ = rec.Get("pull_meta")
	assert.Equal(t, raw, v)

	extras := maps.Collect(rec.Extras())
	assert.Len(t, extras, 4)
	_, hasTitle := extras["title"]
	assert.False(t, hasTitle)
}

func TestSchema_New_AlreadyNativeIsNoop(t *testing.T) {
	s := issueSchema(t)
	ts := time.Date(2011, 1, 2, 3, 4, 5, 0, time.UTC)
	rec, err := s.New(map[string]any{"created_at": ts})
	require.NoError(t, err)
	assert.Equal(t, ts, rec.Time("created_at"))

	again, err := s.New(maps.Collect(rec.All()))
	require.NoError(t, err)
	assert.Equal(t, ts, again.Time("created_at"))
}

func TestSchema_New_BadDate(t *testing.T) {
	s := issueSchema(t)
	_, err := s.New(map[string]any{"created_at": "yesterday"})
	require.Error(t, err)
	assert.True(t, errors.IsDateFormat(err))

	appErr, _ := errors.AsAppError(err)
	assert.Equal(t, "created_at", appErr.Details["field"])

	_, err = s.New(map[string]any{"closed_at": 12})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestRecord_All_SkipsUnsetFields(t *testing.T) {
	s := issueSchema(t)
	rec, err := s.New(map[string]any{
		"title":      "x",
		"number":     float64(7),
		"created_at": "2010/04/21 10:31:00 -0700",
		"closed_at":  nil,
		"extra":      "kept aside",
	})
	require.NoError(t, err)

	var names []string
	for name := range rec.All() {
		names = append(names, name)
	}
	assert.Equal(t, []string{"title", "number", "created_at"}, names)
	assert.NotContains(t, names, "closed_at")
	assert.NotContains(t, names, "extra")
}

func TestRecord_All_IsRestartableAndStoppable(t *testing.T) {
	s := issueSchema(t)
	rec, err := s.New(map[string]any{"title": "x", "number": 1})
	require.NoError(t, err)

	first := maps.Collect(rec.All())
	second := maps.Collect(rec.All())
	assert.Equal(t, first, second)

	count := 0
	for range rec.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestRecord_SetUnset(t *testing.T) {
	s := issueSchema(t)
	rec, err := s.New(nil)
	require.NoError(t, err)
	assert.False(t, rec.Has("title"))

	require.NoError(t, rec.Set("title", "hello"))
	require.NoError(t, rec.Set("closed_at", "2010/04/22 09:00:00 -0700"))
	assert.Equal(t, "hello", rec.String("title"))
	assert.False(t, rec.Time("closed_at").IsZero())

	require.NoError(t, rec.Set("closed_at", nil))
	assert.False(t, rec.Has("closed_at"))

	rec.Unset("title")
	assert.False(t, rec.Has("title"))
	assert.Equal(t, 0, rec.Len())
}

func TestRecord_TypedAccessors(t *testing.T) {
	s := issueSchema(t)
	rec, err := s.New(map[string]any{
		"title":  "x",
		"number": float64(42),
		"locked": true,
	})
	require.NoError(t, err)

	assert.Equal(t, 42, rec.Int("number"))
	assert.Equal(t, 0, rec.Int("title"))
	assert.True(t, rec.Bool("locked"))
	assert.False(t, rec.Bool("missing"))
	assert.Equal(t, "", rec.String("number"))
	assert.True(t, rec.Time("title").IsZero())
}

func TestRecord_Wire(t *testing.T) {
	s := issueSchema(t)
	rec, err := s.New(map[string]any{
		"title":      "x",
		"created_at": "2010/04/21 10:31:00 +0100",
		"votes":      float64(3),
	})
	require.NoError(t, err)

	wire, err := rec.Wire()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"title":      "x",
		"created_at": "2010/04/21 10:31:00 -0700",
		"votes":      float64(3),
	}, wire)
}

func TestDate_Conversions(t *testing.T) {
	d := NewDate("help")
	assert.Equal(t, datecodec.GitHub, d.Format())
	assert.Equal(t, "help", d.Help())

	v, err := d.ToNative(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = d.ToNative("")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	ts := time.Date(2009, 3, 21, 18, 1, 48, 0, time.UTC)
	v, err = d.ToNative(&ts)
	require.NoError(t, err)
	assert.Equal(t, ts, v)

	w, err := d.ToWire(ts)
	require.NoError(t, err)
	assert.Equal(t, "2009/03/21 18:01:48 -0700", w)

	w, err = d.ToWire("already wire")
	require.NoError(t, err)
	assert.Equal(t, "already wire", w)

	w, err = d.ToWire(time.Time{})
	require.NoError(t, err)
	assert.Nil(t, w)

	c := NewDate("commit date", datecodec.Commit)
	w, err = c.ToWire(&ts)
	require.NoError(t, err)
	assert.Equal(t, "2009-03-21T18:01:48-07:00", w)
}

func TestGeneric_Identity(t *testing.T) {
	g := NewGeneric("anything")
	for _, v := range []any{nil, "s", 1.5, []any{1}, map[string]any{"a": 1}} {
		n, err := g.ToNative(v)
		require.NoError(t, err)
		assert.Equal(t, v, n)
		w, err := g.ToWire(v)
		require.NoError(t, err)
		assert.Equal(t, v, w)
	}
}

func TestSchema_Describe(t *testing.T) {
	s := issueSchema(t)
	desc := s.Describe()
	assert.True(t, strings.HasPrefix(desc, "An issue\n\n"))
	assert.Contains(t, desc, "- title: Issue title")
	assert.Contains(t, desc, "- created_at: When the issue was opened (github date)")
	assert.Less(t, strings.Index(desc, "- title"), strings.Index(desc, "- number"))

	bare := MustNew("bare", "Just a marker")
	assert.Equal(t, "Just a marker", bare.Describe())
}

func TestSchema_FieldsIsACopy(t *testing.T) {
	s := issueSchema(t)
	fields := s.Fields()
	fields[0] = Attr("hijacked", "")
	_, ok := s.Lookup("hijacked")
	assert.False(t, ok)
	_, ok = s.Lookup("title")
	assert.True(t, ok)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	s := MustNew("user", "")
	require.NoError(t, r.Register(s))

	err := r.Register(MustNew("user", ""))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSchema))

	got, err := r.Lookup("user")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = r.Lookup("nope")
	assert.True(t, errors.IsNotFound(err))

	r.MustRegister(MustNew("issue", ""))
	assert.Equal(t, []string{"issue", "user"}, r.Names())
	assert.Error(t, r.Register(nil))
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := NewRegistry()
	for i := range 10 {
		r.MustRegister(MustNew(fmt.Sprintf("kind%d", i), ""))
	}
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Lookup(fmt.Sprintf("kind%d", i%10))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
