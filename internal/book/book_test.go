package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePublishedDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare year", input: "1999", want: "1999-01-01"},
		{name: "full date", input: "2001-07-04", want: "2001-07-04"},
		{name: "degenerate length falls back to sentinel", input: "??", want: "0000-01-01"},
		{name: "empty falls back to sentinel", input: "", want: "0000-01-01"},
		{name: "month precision falls back to sentinel", input: "1999-07", want: "0000-01-01"},
		{name: "non-numeric year", input: "abcd", wantErr: true},
		{name: "malformed full date", input: "2001-13-40", wantErr: true},
		{name: "ten chars but not a date", input: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePublishedDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	b := New(3, "The Dispossessed", []string{"Ursula K. Le Guin"}, NewDate(1974, 5, 1))

	raw, err := json.Marshal(b)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"title":"The Dispossessed","authors":["Ursula K. Le Guin"],"published_date":"1974-05-01"}`, string(raw))

	var decoded Book
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, b.PublishedDate.String(), decoded.PublishedDate.String())
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"first of May"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}
