package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		input    string
		expected Gender
	}{
		{input: "Female", expected: GenderFemale},
		{input: "Male", expected: GenderMale},
		{input: "female", expected: GenderMale},
		{input: "FEMALE", expected: GenderMale},
		{input: " Female", expected: GenderMale},
		{input: "Other", expected: GenderMale},
		{input: "", expected: GenderMale},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseGender(tt.input))
		})
	}
}

func TestContactInputDecoding(t *testing.T) {
	t.Run("absent keys stay absent", func(t *testing.T) {
		var in ContactInput
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Ann"}`), &in))

		name, ok := in.Name.Get()
		assert.True(t, ok)
		assert.Equal(t, "Ann", name)
		assert.False(t, in.Phone.Present())
		assert.False(t, in.Email.Present())
		assert.False(t, in.Gender.Present())
	})

	t.Run("explicit empty string is present", func(t *testing.T) {
		var in ContactInput
		require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &in))

		name, ok := in.Name.Get()
		assert.True(t, ok)
		assert.Empty(t, name)
	})

	t.Run("non-string values are absorbed as empty", func(t *testing.T) {
		var in ContactInput
		require.NoError(t, json.Unmarshal([]byte(`{"name":42,"phone":true,"gender":{"x":1}}`), &in))

		assert.True(t, in.Name.Present())
		assert.Empty(t, in.Name.String())
		assert.True(t, in.Phone.Present())
		assert.Empty(t, in.Phone.String())
		assert.True(t, in.Gender.Present())
		assert.Equal(t, GenderMale, ParseGender(in.Gender.String()))
	})
}

func TestOptMarshal(t *testing.T) {
	b, err := json.Marshal(ContactInput{Name: Some("Ann")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ann","phone":null,"email":null,"gender":null}`, string(b))
}
