package models

import "time"

// Subscriber is a newsletter signup.
// Collection: newsletter
type Subscriber struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	SubscribedAt time.Time `bson:"subscribed_at" json:"subscribed_at"`
}

// Contact is a message submitted through the contact form.
// Collection: contacts
type Contact struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// GiftingInquiry is a corporate gifting lead.
// Collection: gifting_inquiries
type GiftingInquiry struct {
	ID              string    `bson:"_id" json:"id"`
	CompanyName     string    `bson:"company_name" json:"company_name"`
	ContactName     string    `bson:"contact_name" json:"contact_name"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	PackageInterest string    `bson:"package_interest" json:"package_interest"`
	Quantity        int       `bson:"quantity" json:"quantity"`
	Occasion        string    `bson:"occasion,omitempty" json:"occasion,omitempty"`
	Message         string    `bson:"message,omitempty" json:"message,omitempty"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
