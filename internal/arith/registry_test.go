package arith

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	ops := Catalog()
	require.Len(t, ops, 20)

	t.Run("IDs and aliases are unique", func(t *testing.T) {
		seen := make(map[string]string)
		for _, op := range ops {
			names := append([]string{op.ID}, op.Aliases...)
			for _, name := range names {
				if owner, dup := seen[name]; dup {
					t.Errorf("name %q claimed by both %q and %q", name, owner, op.ID)
				}
				seen[name] = op.ID
			}
		}
	})

	t.Run("every operation has prompt metadata", func(t *testing.T) {
		for _, op := range ops {
			assert.NotEmpty(t, op.Title, "op=%s", op.ID)
			assert.NotEmpty(t, op.Summary, "op=%s", op.ID)
			assert.NotEmpty(t, op.Doc, "op=%s", op.ID)
			assert.NotEmpty(t, op.Params, "op=%s", op.ID)
			for _, p := range op.Params {
				assert.NotEmpty(t, p.Name, "op=%s", op.ID)
				assert.NotEmpty(t, p.Hint, "op=%s", op.ID)
			}
		}
	})

	t.Run("order is stable", func(t *testing.T) {
		var got []string
		for _, op := range Catalog() {
			got = append(got, op.ID)
		}
		want := []string{
			"even-odd", "max", "leap-year", "sum-naturals", "factorial",
			"times-table", "reverse", "palindrome", "prime", "digit-count",
			"digit-sum", "armstrong", "fibonacci", "vowel", "calc",
			"gcd", "perfect", "divisors", "sign", "power",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("catalog order mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLookup(t *testing.T) {
	t.Run("by ID", func(t *testing.T) {
		op, ok := Lookup("gcd")
		require.True(t, ok)
		assert.Equal(t, "gcd", op.ID)
	})

	t.Run("by alias", func(t *testing.T) {
		op, ok := Lookup("fib")
		require.True(t, ok)
		assert.Equal(t, "fibonacci", op.ID)
	})

	t.Run("by menu number", func(t *testing.T) {
		op, ok := Lookup("7")
		require.True(t, ok)
		assert.Equal(t, "reverse", op.ID)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		op, ok := Lookup("  Prime ")
		require.True(t, ok)
		assert.Equal(t, "prime", op.ID)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := Lookup("quaternion")
		assert.False(t, ok)
	})
}

func TestOperationInvoke(t *testing.T) {
	mustLookup := func(t *testing.T, name string) Operation {
		t.Helper()
		op, ok := Lookup(name)
		require.True(t, ok)
		return op
	}

	t.Run("single integer operation", func(t *testing.T) {
		r := mustLookup(t, "fibonacci").Invoke([]string{"5"})
		require.True(t, r.IsSuccess())
		assert.Equal(t, "0 1 1 2 3", r.Value())
	})

	t.Run("float result drops trailing zeros", func(t *testing.T) {
		r := mustLookup(t, "max").Invoke([]string{"3", "7"})
		require.True(t, r.IsSuccess())
		assert.Equal(t, "7", r.Value())
	})

	t.Run("calculator with operator", func(t *testing.T) {
		r := mustLookup(t, "calc").Invoke([]string{"10", "/", "4"})
		require.True(t, r.IsSuccess())
		assert.Equal(t, "2.5", r.Value())
	})

	t.Run("domain failure flows through", func(t *testing.T) {
		r := mustLookup(t, "calc").Invoke([]string{"10", "/", "0"})
		require.False(t, r.IsSuccess())
		assert.Equal(t, "division by zero", r.Message())
	})

	t.Run("parse failure names the parameter", func(t *testing.T) {
		r := mustLookup(t, "factorial").Invoke([]string{"five"})
		require.False(t, r.IsSuccess())
		assert.Equal(t, `n: "five" is not an integer`, r.Message())
	})

	t.Run("arity mismatch", func(t *testing.T) {
		r := mustLookup(t, "gcd").Invoke([]string{"12"})
		require.False(t, r.IsSuccess())
		assert.Equal(t, "gcd takes 2 input(s), got 1", r.Message())
	})

	t.Run("every operation is invokable", func(t *testing.T) {
		sample := map[Kind]string{
			KindInt:      "6",
			KindFloat:    "2.5",
			KindChar:     "e",
			KindOperator: "+",
		}
		for _, op := range Catalog() {
			raw := make([]string, len(op.Params))
			for i, p := range op.Params {
				raw[i] = sample[p.Kind]
			}
			r := op.Invoke(raw)
			assert.True(t, r.IsSuccess(), "op=%s message=%s", op.ID, r.Message())
		}
	})
}
