package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatTable},
		{input: "TABLE", want: FormatTable},
		{input: " json ", want: FormatJSON},
		{input: "yml", want: FormatYAML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}
}

type row struct {
	Name string `json:"name" yaml:"name"`
}

func TestPrinter(t *testing.T) {
	table := NewTableData("ID", "Name")
	table.AddRow("01ARZ3NDEKTSV4RRFFQ69G5FAV", "Work")

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(table))
	assert.Contains(t, buf.String(), "NAME")
	assert.Contains(t, buf.String(), "Work")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatJSON, false).Print([]row{{Name: "Work"}}))
	assert.JSONEq(t, `[{"name":"Work"}]`, buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatYAML, false).Print([]row{{Name: "Work"}}))
	assert.Equal(t, "- name: Work\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(row{Name: "plain"}))
	assert.JSONEq(t, `{"name":"plain"}`, buf.String())
}

func TestPrinterMessages(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, FormatTable, false).Success("done")
	assert.Equal(t, "done\n", buf.String())

	buf.Reset()
	NewPrinter(&buf, FormatTable, true).Warning("careful")
	assert.Equal(t, "\033[33mcareful\033[0m\n", buf.String())
}
