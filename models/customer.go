package models

import "time"

// Customer is a record in the company's customer book. Customers are
// created by any authenticated portal user and listed newest-first.
type Customer struct {
	// ID is the internal unique identifier of the customer.
	ID int64 `json:"id"`

	// Name is the customer's display name.
	Name string `json:"name"`

	// Email is the customer's contact address.
	Email string `json:"email"`

	// Phone is the customer's contact phone number.
	Phone string `json:"phone"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customers"
}
