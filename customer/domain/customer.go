package domain

import "time"

// ServiceAgreement is the recurring service subscription a customer holds.
// MonthlyPrice is the agreed price excluding VAT.
type ServiceAgreement struct {
	Type         string     `firestore:"type" json:"type"`
	MonthlyPrice float64    `firestore:"monthlyPrice" json:"monthlyPrice"`
	Active       bool       `firestore:"active" json:"active"`
	StartDate    *time.Time `firestore:"startDate" json:"startDate"`
	RenewalDate  *time.Time `firestore:"renewalDate" json:"renewalDate"`
}

// Customer is the external customer record consumed by billing. Customer CRUD
// itself lives outside this service.
type Customer struct {
	ID        string            `firestore:"-" json:"id"`
	Name      string            `firestore:"name" json:"name"`
	Email     string            `firestore:"email" json:"email"`
	Address   string            `firestore:"address" json:"address"`
	OrgNumber string            `firestore:"orgNumber" json:"orgNumber"`
	Agreement *ServiceAgreement `firestore:"serviceAgreement" json:"serviceAgreement"`
}

// HasBillableAgreement reports whether the customer holds an active agreement
// with a positive monthly price. No invoice amount can be synthesized for a
// customer without one.
func (c *Customer) HasBillableAgreement() bool {
	return c.Agreement != nil && c.Agreement.Active && c.Agreement.MonthlyPrice > 0
}
