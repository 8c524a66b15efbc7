// SPDX-License-Identifier: MIT
package semantic_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gml4tdm/linkfeatures/dataset/semantic"
)

// table renders a CSV in the exporter's layout: class1, class2, the sixteen
// cosine columns, and a trailing empty column.
func table(rows ...string) string {
	var sb strings.Builder
	sb.WriteString("class1,class2,")
	sb.WriteString(strings.Join(semantic.Columns[:], ","))
	sb.WriteString(",\n")
	for _, r := range rows {
		sb.WriteString(r)
		sb.WriteString("\n")
	}

	return sb.String()
}

// row builds a data line whose k-th cosine is base + k/100.
func row(from, to string, base float64) string {
	parts := []string{from, to}
	for k := 0; k < semantic.CosineCount; k++ {
		parts = append(parts, fmt.Sprintf("%g", base+float64(k)/100))
	}

	return strings.Join(parts, ",") + ","
}

func TestRead_ExporterLayout(t *testing.T) {
	t.Parallel()
	recs, err := semantic.Read(strings.NewReader(table(
		row("org.a", "org.b", 0.1),
		row("org.b", "org.a", 0.5),
	)))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	require.Equal(t, "org.a", recs[0].From)
	require.Equal(t, "org.b", recs[0].To)
	require.InDelta(t, 0.1, recs[0].Cosine[0], 1e-12)
	require.InDelta(t, 0.25, recs[0].Cosine[15], 1e-12)
	require.InDelta(t, 0.5, recs[1].Cosine[0], 1e-12)
}

func TestRead_ColumnsByName(t *testing.T) {
	t.Parallel()
	// reverse the cosine columns and put the pair last.
	cols := append([]string(nil), semantic.Columns[:]...)
	for i, j := 0, len(cols)-1; i < j; i, j = i+1, j-1 {
		cols[i], cols[j] = cols[j], cols[i]
	}
	values := make([]string, len(cols))
	for k := range cols {
		values[k] = fmt.Sprintf("%d", len(cols)-1-k)
	}
	in := strings.Join(append(cols, "extra", "class1", "class2"), ",") + "\n" +
		strings.Join(append(values, "ignored", "x", "y"), ",") + "\n"

	recs, err := semantic.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, semantic.Key{From: "x", To: "y"}, recs[0].Key())
	for k := 0; k < semantic.CosineCount; k++ {
		require.Equal(t, float64(k), recs[0].Cosine[k], semantic.Columns[k])
	}
}

func TestRead_ByteOrderMark(t *testing.T) {
	t.Parallel()
	recs, err := semantic.Read(strings.NewReader("\ufeff" + table(row("a", "b", 0))))
	require.NoError(t, err)
	require.Len(t, recs, 1)
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", semantic.ErrMissingColumn},
		{"missing cosine", "class1,class2,comments#Cosine\n", semantic.ErrMissingColumn},
		{"missing pair", strings.Join(semantic.Columns[:], ",") + "\n", semantic.ErrMissingColumn},
		{"bad float", table(strings.Replace(row("a", "b", 0), "0.01", "abc", 1)), semantic.ErrMalformedRecord},
		{"short row", table("a,b,0.1"), semantic.ErrMalformedRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := semantic.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sample-1.0-semantic.txt")
	require.NoError(t, os.WriteFile(path, []byte(table(row("a", "b", 0.2))), 0o600))

	recs, err := semantic.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	_, err = semantic.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestIndex_LastRowWins(t *testing.T) {
	t.Parallel()
	recs, err := semantic.Read(strings.NewReader(table(
		row("a", "b", 0.1),
		row("b", "a", 0.2),
		row("a", "b", 0.3),
	)))
	require.NoError(t, err)

	idx := semantic.Index(recs)
	require.Len(t, idx, 2)
	require.InDelta(t, 0.3, idx[semantic.Key{From: "a", To: "b"}].Cosine[0], 1e-12)
	require.InDelta(t, 0.2, idx[semantic.Key{From: "b", To: "a"}].Cosine[0], 1e-12)
}
