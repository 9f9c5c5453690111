package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"carbon_zero/certificate"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const certificateDateLayout = "02 January 2006"

type CarbonService interface {
	Create(ctx context.Context, input model.CreateCarbonDonationInput) (*model.CarbonDonation, error)
	Total(ctx context.Context) (float64, error)
	ByUser(ctx context.Context, userId uint) (*model.CarbonSummary, error)
	Certificate(ctx context.Context, id uint) ([]byte, *model.CarbonDonation, error)
}

type carbonService struct {
	db   *gorm.DB
	deps Deps
}

func NewCarbonService(db *gorm.DB, deps Deps) CarbonService {
	return &carbonService{db: db, deps: deps}
}

// NewCertificateCode returns CERT- followed by 8 uppercase hex characters.
func NewCertificateCode() string {
	return "CERT-" + shortCode()
}

func shortCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *carbonService) Create(ctx context.Context, input model.CreateCarbonDonationInput) (*model.CarbonDonation, error) {
	var (
		donation model.CarbonDonation
		user     model.User
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, input.UserId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidReference
			}
			return err
		}
		donation = model.CarbonDonation{
			UserId:          input.UserId,
			Amount:          input.Amount,
			CertificateCode: NewCertificateCode(),
		}
		return tx.Create(&donation).Error
	})
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		s.deps.Cache.InvalidateCarbonTotal(ctx)
	}
	s.deps.publish("carbon.donated", donation)
	s.deliverCertificate(ctx, &donation, user)

	return &donation, nil
}

// deliverCertificate uploads and mails the rendered certificate. Failures are logged;
// the donation is already committed.
func (s *carbonService) deliverCertificate(ctx context.Context, donation *model.CarbonDonation, user model.User) {
	if s.deps.Uploader == nil && s.deps.Mailer == nil {
		return
	}
	png, err := certificate.Render(certificateData(donation, user))
	if err != nil {
		log.Printf("render certificate %s failed: %v", donation.CertificateCode, err)
		return
	}

	if s.deps.Uploader != nil {
		url, err := s.deps.Uploader.Upload(ctx, donation.CertificateCode, png)
		if err != nil {
			log.Printf("%v", err)
		} else if url != "" {
			if err := s.db.WithContext(ctx).Model(donation).Update("certificate_url", url).Error; err != nil {
				log.Printf("save certificate url %s failed: %v", donation.CertificateCode, err)
			} else {
				donation.CertificateUrl = &url
			}
		}
	}

	if s.deps.Mailer != nil {
		s.deps.Mailer.SendCertificate(utils.CertificateMailData{
			To:     user.Email,
			Name:   fullName(user),
			Code:   donation.CertificateCode,
			Amount: donation.Amount,
			PNG:    png,
		})
	}
}

func (s *carbonService) Total(ctx context.Context) (float64, error) {
	if s.deps.Cache != nil {
		if total, ok := s.deps.Cache.GetCarbonTotal(ctx); ok {
			return total, nil
		}
	}

	var total float64
	err := s.db.WithContext(ctx).
		Model(&model.CarbonDonation{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	if s.deps.Cache != nil {
		s.deps.Cache.SetCarbonTotal(ctx, total)
	}
	return total, nil
}

func (s *carbonService) ByUser(ctx context.Context, userId uint) (*model.CarbonSummary, error) {
	db := s.db.WithContext(ctx)
	ok, err := userExists(db, userId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	summary := model.CarbonSummary{UserId: userId, Donations: []model.CarbonDonation{}}
	if err := db.Where("user_id = ?", userId).Order("created_at DESC").Find(&summary.Donations).Error; err != nil {
		return nil, err
	}
	for _, d := range summary.Donations {
		summary.Total += d.Amount
	}
	return &summary, nil
}

func (s *carbonService) Certificate(ctx context.Context, id uint) ([]byte, *model.CarbonDonation, error) {
	var donation model.CarbonDonation
	if err := s.db.WithContext(ctx).Preload("User").First(&donation, id).Error; err != nil {
		return nil, nil, notFound(err)
	}

	png, err := certificate.Render(certificateData(&donation, donation.User))
	if err != nil {
		return nil, nil, fmt.Errorf("render certificate %s: %w", donation.CertificateCode, err)
	}
	return png, &donation, nil
}

func certificateData(donation *model.CarbonDonation, user model.User) certificate.Data {
	return certificate.Data{
		Name:   strings.ToUpper(fullName(user)),
		Amount: donation.Amount,
		Date:   donation.CreatedAt.Format(certificateDateLayout),
		Code:   donation.CertificateCode,
	}
}

func fullName(user model.User) string {
	return strings.TrimSpace(user.Name + " " + user.Lastname)
}
