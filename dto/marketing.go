package dto

type NewsletterSubscribeRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type ContactRequestDTO struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type GiftingInquiryRequestDTO struct {
	CompanyName     string `json:"company_name" binding:"required"`
	ContactName     string `json:"contact_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	PackageInterest string `json:"package_interest" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	Occasion        string `json:"occasion"`
	Message         string `json:"message"`
}

type GiftingInquiryResponseDTO struct {
	Message   string `json:"message"`
	InquiryID string `json:"inquiry_id"`
}
