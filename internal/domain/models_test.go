package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Amount
	}{
		{name: "number", input: `1000`, expected: Amount{Value: 1000, Valid: true}},
		{name: "zero is present", input: `0`, expected: Amount{Value: 0, Valid: true}},
		{name: "negative", input: `-12.5`, expected: Amount{Value: -12.5, Valid: true}},
		{name: "numeric string", input: `" 250.75 "`, expected: Amount{Value: 250.75, Valid: true}},
		{name: "null", input: `null`, expected: Amount{}},
		{name: "empty string", input: `""`, expected: Amount{}},
		{name: "text", input: `"abc"`, expected: Amount{}},
		{name: "NaN string", input: `"NaN"`, expected: Amount{}},
		{name: "infinity string", input: `"Infinity"`, expected: Amount{}},
		{name: "overflow", input: `1e400`, expected: Amount{}},
		{name: "object", input: `{"value":1}`, expected: Amount{}},
		{name: "bool", input: `true`, expected: Amount{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAmount([]byte(tt.input)))
		})
	}
}

func TestAmount_Float(t *testing.T) {
	assert.Equal(t, 0.0, Amount{}.Float())
	assert.Equal(t, 0.0, Amount{Value: 99, Valid: false}.Float())
	assert.Equal(t, 42.0, NewAmount(42).Float())
	assert.False(t, AmountPtr(nil).Valid)

	v := 7.5
	assert.Equal(t, NewAmount(7.5), AmountPtr(&v))
	assert.Nil(t, Amount{}.Ptr())
	assert.Equal(t, 7.5, *NewAmount(7.5).Ptr())
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "RFC3339", input: `"2024-03-05T10:11:12Z"`, expected: time.Date(2024, 3, 5, 10, 11, 12, 0, time.UTC)},
		{name: "RFC3339 millis", input: `"2024-03-05T10:11:12.500Z"`, expected: time.Date(2024, 3, 5, 10, 11, 12, 500000000, time.UTC)},
		{name: "offset", input: `"2024-03-05T12:00:00+02:00"`, expected: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)},
		{name: "date only", input: `"2024-03-05"`, expected: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "epoch millis", input: `1709633472000`, expected: time.UnixMilli(1709633472000).UTC()},
		{name: "garbage", input: `"yesterday"`, expected: time.Time{}},
		{name: "null", input: `null`, expected: time.Time{}},
		{name: "object", input: `{}`, expected: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(ParseTimestamp([]byte(tt.input)).Time))
		})
	}
}

func TestBooking_UnmarshalMalformed(t *testing.T) {
	body := `{
		"id": "b1",
		"status": "confirmed",
		"pricing": "not-an-object",
		"total": "oops",
		"amount": 300,
		"createdAt": "bad date",
		"customer": 5,
		"package": {"name": "Safari"}
	}`

	var b Booking
	require.NoError(t, json.Unmarshal([]byte(body), &b))

	assert.Equal(t, "b1", b.ID)
	assert.False(t, b.Pricing.Total.Valid)
	assert.False(t, b.Total.Valid)
	assert.Equal(t, NewAmount(300), b.Amount)
	assert.True(t, b.CreatedAt.IsZero())
	assert.Equal(t, Customer{}, b.Customer)
	assert.Equal(t, "Safari", b.Package.Name)
}

func TestBooking_UnmarshalMongoID(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"64f0","status":"created","price":"12.5"}`), &b))

	assert.Equal(t, "64f0", b.ID)
	assert.Equal(t, NewAmount(12.5), b.Price)

	var v Vehicle
	require.NoError(t, json.Unmarshal([]byte(`{"id":"v1","_id":"ignored","model":"Hiace"}`), &v))
	assert.Equal(t, "v1", v.ID)
	assert.Equal(t, "Hiace", v.Model)
}

func TestBooking_UnmarshalMistypedScalars(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{"id":123,"status":false,"customerName":{"first":"A"},"packageName":null,"pricing":{"total":1000}}`), &b))

	assert.Equal(t, "123", b.ID)
	assert.Empty(t, b.Status)
	assert.Empty(t, b.CustomerName)
	assert.Empty(t, b.PackageName)
	assert.Equal(t, NewAmount(1000), b.Pricing.Total)

	var v Vehicle
	require.NoError(t, json.Unmarshal([]byte(`{"_id":9,"model":{"name":"Hiace"},"manufacturer":"Toyota","licensePlate":12}`), &v))
	assert.Equal(t, "9", v.ID)
	assert.Empty(t, v.Model)
	assert.Equal(t, "Toyota (12)", v.DisplayName())
}

func TestText_Unmarshal(t *testing.T) {
	tests := []struct {
		input    string
		expected Text
	}{
		{input: `"abc"`, expected: "abc"},
		{input: `42`, expected: "42"},
		{input: `1.5e3`, expected: "1.5e3"},
		{input: `null`, expected: ""},
		{input: `true`, expected: ""},
		{input: `{"a":1}`, expected: ""},
		{input: `[1]`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			text := Text("stale")
			require.NoError(t, json.Unmarshal([]byte(tt.input), &text))
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestEmployeeRef_Unmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected EmployeeRef
	}{
		{name: "id only", input: `"e1"`, expected: EmployeeRef{ID: "e1"}},
		{name: "populated", input: `{"id":"e2","name":"Ann","type":"driver"}`, expected: EmployeeRef{ID: "e2", Name: "Ann", Type: "driver"}},
		{name: "mongo id", input: `{"_id":"e3","fullName":"Bob"}`, expected: EmployeeRef{ID: "e3", Name: "Bob"}},
		{name: "malformed", input: `42`, expected: EmployeeRef{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref EmployeeRef
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ref))
			assert.Equal(t, tt.expected, ref)
		})
	}
}

func TestVehicle_DisplayName(t *testing.T) {
	assert.Equal(t, "Toyota Hiace (KA-01)", Vehicle{Manufacturer: "Toyota", Model: "Hiace", LicensePlate: "KA-01"}.DisplayName())
	assert.Equal(t, "Toyota", Vehicle{Manufacturer: "Toyota"}.DisplayName())
	assert.Equal(t, "KA-01", Vehicle{LicensePlate: "KA-01"}.DisplayName())
	assert.Equal(t, "v1", Vehicle{ID: "v1"}.DisplayName())
}
