package model

type CarbonDonation struct {
	DTO
	UserId          uint    `gorm:"index;not null" json:"user_id"`
	Amount          float64 `gorm:"not null;check:amount > 0" json:"amount"` // kg CO2
	CertificateCode string  `gorm:"size:20;uniqueIndex;not null" json:"certificate_code"`
	CertificateUrl  *string `json:"certificate_url,omitempty"`
	User            User    `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

type CreateCarbonDonationInput struct {
	UserId uint    `json:"user_id" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0,lte=1000000"`
}

type CarbonSummary struct {
	UserId    uint             `json:"user_id"`
	Total     float64          `json:"total"`
	Donations []CarbonDonation `json:"donations"`
}
