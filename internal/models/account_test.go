package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserializeAccount_Valid(t *testing.T) {
	payload := `{"name":"Ana","email":"a@x.com","address":"1 Main St","phone_number":"555-1111","date_joined":"2024-01-01"}`

	account, err := DeserializeAccount(strings.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, "Ana", account.Name)
	assert.Equal(t, "a@x.com", account.Email)
	assert.Equal(t, "1 Main St", account.Address)
	assert.Equal(t, "555-1111", account.PhoneNumber)
	assert.Equal(t, NewDate(2024, time.January, 1), account.DateJoined)
}

func TestDeserializeAccount_MissingRequiredField(t *testing.T) {
	payloads := map[string]string{
		"name":    `{"email":"a@x.com","address":"1 Main St"}`,
		"email":   `{"name":"Ana","address":"1 Main St"}`,
		"address": `{"name":"Ana","email":"a@x.com"}`,
		"all":     `{"name":"not enough data"}`,
	}

	for field, payload := range payloads {
		_, err := DeserializeAccount(strings.NewReader(payload))
		assert.ErrorIs(t, err, ErrValidation, "payload missing %s should fail validation", field)
	}
}

func TestDeserializeAccount_RejectsNonObject(t *testing.T) {
	_, err := DeserializeAccount(strings.NewReader(`[1, 2, 3]`))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = DeserializeAccount(strings.NewReader(`{not json`))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeserializeAccount_DefaultsDateJoined(t *testing.T) {
	payload := `{"name":"Ana","email":"a@x.com","address":"1 Main St"}`

	account, err := DeserializeAccount(strings.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, Today(), account.DateJoined)
}

func TestDeserializeAccount_IgnoresID(t *testing.T) {
	payload := `{"id":99,"name":"Ana","email":"a@x.com","address":"1 Main St"}`

	account, err := DeserializeAccount(strings.NewReader(payload))
	require.NoError(t, err)

	assert.Zero(t, account.ID, "client-supplied ids are ignored")
}

func TestSerializeRoundTrip(t *testing.T) {
	original := &Account{
		ID:          7,
		Name:        "Ana",
		Email:       "a@x.com",
		Address:     "1 Main St",
		PhoneNumber: "555-1111",
		DateJoined:  NewDate(2024, time.January, 1),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := DeserializeAccount(strings.NewReader(string(data)))
	require.NoError(t, err)

	assert.Equal(t, original.Name, decoded.Name)
	assert.Equal(t, original.Email, decoded.Email)
	assert.Equal(t, original.Address, decoded.Address)
	assert.Equal(t, original.PhoneNumber, decoded.PhoneNumber)
	assert.Equal(t, original.DateJoined, decoded.DateJoined)
}

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2024, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01"`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-15"`), &d))
	assert.Equal(t, NewDate(2024, time.June, 15), d)

	err = json.Unmarshal([]byte(`"not-a-date"`), &d)
	assert.Error(t, err)
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2024, time.January, 1), d)

	require.NoError(t, d.Scan("2024-06-15"))
	assert.Equal(t, NewDate(2024, time.June, 15), d)

	assert.Error(t, d.Scan(42))
}
