package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCreated   = "created"

	ComponentEarning   = "earning"
	ComponentDeduction = "deduction"

	ExpenseTypeVehicle  = "vehicle"
	ExpenseTypeEmployee = "employee"
)

// Text decodes a JSON string or number. Any other value decodes as empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = ""
	if len(data) == 0 {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*t = Text(s)
		}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Text(n.String())
	}
	return nil
}

// Or returns t, or fallback when t is empty.
func (t Text) Or(fallback Text) string {
	if t == "" {
		return string(fallback)
	}
	return string(t)
}

// Booking is owned by the booking service and is read-only here.
type Booking struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	Pricing      Pricing   `json:"pricing"`
	Total        Amount    `json:"total"`
	Amount       Amount    `json:"amount"`
	Price        Amount    `json:"price"`
	CreatedAt    Timestamp `json:"createdAt"`
	CustomerName string    `json:"customerName,omitempty"`
	Customer     Customer  `json:"customer"`
	PackageName  string    `json:"packageName,omitempty"`
	Package      Package   `json:"package"`
}

// UnmarshalJSON falls back to "_id" when "id" is empty. Mistyped scalar
// fields decode as empty and never drop the record.
func (b *Booking) UnmarshalJSON(data []byte) error {
	type plain Booking
	var v struct {
		plain
		ID           Text `json:"id"`
		MongoID      Text `json:"_id"`
		Status       Text `json:"status"`
		CustomerName Text `json:"customerName"`
		PackageName  Text `json:"packageName"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = Booking(v.plain)
	b.ID = v.ID.Or(v.MongoID)
	b.Status = string(v.Status)
	b.CustomerName = string(v.CustomerName)
	b.PackageName = string(v.PackageName)
	return nil
}

type Pricing struct {
	Total      Amount `json:"total"`
	Subtotal   Amount `json:"subtotal"`
	GrandTotal Amount `json:"grandTotal"`
}

func (p *Pricing) UnmarshalJSON(data []byte) error {
	type plain Pricing
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		*p = Pricing{}
		return nil
	}
	*p = Pricing(v)
	return nil
}

type Customer struct {
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	type plain Customer
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		*c = Customer{}
		return nil
	}
	*c = Customer(v)
	return nil
}

// FullName joins first and last name, skipping empty parts.
func (c Customer) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

type Package struct {
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

func (p *Package) UnmarshalJSON(data []byte) error {
	type plain Package
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		*p = Package{}
		return nil
	}
	*p = Package(v)
	return nil
}

// EmployeeRef may arrive as a bare id string or as a populated object.
type EmployeeRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

func (e *EmployeeRef) UnmarshalJSON(data []byte) error {
	*e = EmployeeRef{}
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		e.ID = id
		return nil
	}
	var v struct {
		ID       string `json:"id"`
		MongoID  string `json:"_id"`
		Name     string `json:"name"`
		FullName string `json:"fullName"`
		Type     string `json:"type"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	e.ID = v.ID
	if e.ID == "" {
		e.ID = v.MongoID
	}
	e.Name = v.Name
	if e.Name == "" {
		e.Name = v.FullName
	}
	e.Type = v.Type
	return nil
}

type Salary struct {
	ID            string      `json:"id"            db:"id"`
	Employee      EmployeeRef `json:"employee"`
	BaseAmount    Amount      `json:"baseAmount"    db:"base_amount"`
	Currency      string      `json:"currency"      db:"currency"`
	Components    []Component `json:"components"    db:"components"`
	EffectiveFrom Timestamp   `json:"effectiveFrom" db:"effective_from"`
	EffectiveTo   Timestamp   `json:"effectiveTo"   db:"effective_to"`
	CreatedAt     time.Time   `json:"createdAt"     db:"created_at"`
}

type Component struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	Amount     Amount `json:"amount"`
	Percentage Amount `json:"percentage"`
}

type Expense struct {
	ID            string    `json:"id"            db:"id"`
	Type          string    `json:"type"          db:"type"`
	RecipientID   string    `json:"recipientId"   db:"recipient_id"`
	RecipientName string    `json:"recipientName" db:"recipient_name"`
	Amount        Amount    `json:"amount"        db:"amount"`
	Category      string    `json:"category"      db:"category"`
	Description   string    `json:"description"   db:"description"`
	Date          Timestamp `json:"date"          db:"date"`
	CreatedAt     time.Time `json:"createdAt"     db:"created_at"`
}

// Vehicle is owned by the fleet service and is only used for display names.
type Vehicle struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	Capacity     Amount `json:"capacity"`
	Status       string `json:"status"`
	LicensePlate string `json:"licensePlate"`
}

// DisplayName renders "manufacturer model (plate)" from whatever is known.
func (v Vehicle) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(v.Manufacturer) + " " + strings.TrimSpace(v.Model))
	switch {
	case name == "" && v.LicensePlate == "":
		return v.ID
	case name == "":
		return v.LicensePlate
	case v.LicensePlate == "":
		return name
	}
	return name + " (" + v.LicensePlate + ")"
}

func (v *Vehicle) UnmarshalJSON(data []byte) error {
	type plain Vehicle
	var raw struct {
		plain
		ID           Text `json:"id"`
		MongoID      Text `json:"_id"`
		Type         Text `json:"type"`
		Model        Text `json:"model"`
		Manufacturer Text `json:"manufacturer"`
		Status       Text `json:"status"`
		LicensePlate Text `json:"licensePlate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = Vehicle(raw.plain)
	v.ID = raw.ID.Or(raw.MongoID)
	v.Type = string(raw.Type)
	v.Model = string(raw.Model)
	v.Manufacturer = string(raw.Manufacturer)
	v.Status = string(raw.Status)
	v.LicensePlate = string(raw.LicensePlate)
	return nil
}
