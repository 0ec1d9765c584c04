package domain

// PaymentChannels lists the ways a customer can pay the issuer. The payment
// instructions block on rendered documents is only produced when at least one
// channel is configured.
type PaymentChannels struct {
	BankAccount string `firestore:"bankAccount" json:"bankAccount"`
	IBAN        string `firestore:"iban" json:"iban"`
	BIC         string `firestore:"bic" json:"bic"`
	VippsNumber string `firestore:"vippsNumber" json:"vippsNumber"`
}

// Empty reports whether no payment channel is configured.
func (p PaymentChannels) Empty() bool {
	return p.BankAccount == "" && p.IBAN == "" && p.BIC == "" && p.VippsNumber == ""
}

// Profile is the issuer/company profile printed on invoices and quotes and
// used as the sender identity for dispatched email.
type Profile struct {
	Name      string          `firestore:"name" json:"name"`
	Address   string          `firestore:"address" json:"address"`
	OrgNumber string          `firestore:"orgNumber" json:"orgNumber"`
	Email     string          `firestore:"email" json:"email"`
	Phone     string          `firestore:"phone" json:"phone"`
	Website   string          `firestore:"website" json:"website"`
	Payment   PaymentChannels `firestore:"payment" json:"payment"`
}
