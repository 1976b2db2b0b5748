package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	contactdomain "github.com/smallbiznis/sapbridge/internal/contact/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultLang = "es_MX"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  contactdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  contactdomain.Repository
}

func New(p Params) contactdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("contact.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req contactdomain.CreateContactRequest) (contactdomain.Contact, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return contactdomain.Contact{}, contactdomain.ErrInvalidName
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return contactdomain.Contact{}, contactdomain.ErrInvalidEmail
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return contactdomain.Contact{}, contactdomain.ErrInvalidPhone
	}

	if req.IDSecondary == 0 {
		return contactdomain.Contact{}, contactdomain.ErrInvalidIDSecondary
	}

	now := time.Now().UTC()
	contact := contactdomain.Contact{
		ID:              s.genID.Generate(),
		IDSecondary:     req.IDSecondary,
		Name:            name,
		Email:           email,
		Phone:           phone,
		Active:          true,
		CompanyType:     req.CompanyType,
		ParentID:        req.ParentID,
		Street:          req.Street,
		Street2:         req.Street2,
		CityID:          req.CityID,
		City:            req.City,
		StateID:         req.StateID,
		Zip:             req.Zip,
		CountryID:       req.CountryID,
		VAT:             req.VAT,
		EdiUsage:        req.EdiUsage,
		FiscalRegime:    req.FiscalRegime,
		PaymentMethodID: req.PaymentMethodID,
		PaymentTermID:   req.PaymentTermID,
		PricelistID:     req.PricelistID,
		SalespersonID:   req.SalespersonID,
		Lang:            defaultLang,
		Ref:             req.Ref,
		Metadata:        datatypes.JSONMap{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if req.Active != nil {
		contact.Active = *req.Active
	}
	if req.Lang != nil && strings.TrimSpace(*req.Lang) != "" {
		contact.Lang = strings.TrimSpace(*req.Lang)
	}
	if len(req.Metadata) > 0 {
		contact.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := s.repo.Insert(ctx, s.db, &contact); err != nil {
		return contactdomain.Contact{}, err
	}

	s.log.Info("contact created",
		zap.String("contact_id", contact.ID.String()),
		zap.Int64("id_secondary", contact.IDSecondary),
	)

	return contact, nil
}

func (s *Service) Update(ctx context.Context, req contactdomain.UpdateContactRequest) (contactdomain.Contact, error) {
	if req.IDSecondary == 0 {
		return contactdomain.Contact{}, contactdomain.ErrInvalidIDSecondary
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return contactdomain.Contact{}, contactdomain.ErrInvalidName
	}

	existing, err := s.repo.FindByIDSecondary(ctx, s.db, req.IDSecondary)
	if err != nil {
		return contactdomain.Contact{}, err
	}
	if existing == nil {
		return contactdomain.Contact{}, &contactdomain.NotFoundError{IDSecondary: req.IDSecondary}
	}

	existing.Name = name
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" || !strings.Contains(email, "@") {
			return contactdomain.Contact{}, contactdomain.ErrInvalidEmail
		}
		existing.Email = email
	}
	if req.Phone != nil {
		existing.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Active != nil {
		existing.Active = *req.Active
	}
	if req.CompanyType != nil {
		existing.CompanyType = req.CompanyType
	}
	if req.ParentID != nil {
		existing.ParentID = req.ParentID
	}
	if req.Street != nil {
		existing.Street = req.Street
	}
	if req.Street2 != nil {
		existing.Street2 = req.Street2
	}
	if req.CityID != nil {
		existing.CityID = req.CityID
	}
	if req.City != nil {
		existing.City = req.City
	}
	if req.StateID != nil {
		existing.StateID = req.StateID
	}
	if req.Zip != nil {
		existing.Zip = req.Zip
	}
	if req.CountryID != nil {
		existing.CountryID = req.CountryID
	}
	if req.VAT != nil {
		existing.VAT = req.VAT
	}
	if req.EdiUsage != nil {
		existing.EdiUsage = req.EdiUsage
	}
	if req.FiscalRegime != nil {
		existing.FiscalRegime = req.FiscalRegime
	}
	if req.PaymentMethodID != nil {
		existing.PaymentMethodID = req.PaymentMethodID
	}
	if req.PaymentTermID != nil {
		existing.PaymentTermID = req.PaymentTermID
	}
	if req.PricelistID != nil {
		existing.PricelistID = req.PricelistID
	}
	if req.SalespersonID != nil {
		existing.SalespersonID = req.SalespersonID
	}
	if req.Lang != nil && strings.TrimSpace(*req.Lang) != "" {
		existing.Lang = strings.TrimSpace(*req.Lang)
	}
	if req.Ref != nil {
		existing.Ref = req.Ref
	}
	if len(req.Metadata) > 0 {
		existing.Metadata = datatypes.JSONMap(req.Metadata)
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return contactdomain.Contact{}, err
	}

	s.log.Info("contact updated",
		zap.String("contact_id", existing.ID.String()),
		zap.Int64("id_secondary", existing.IDSecondary),
	)

	return *existing, nil
}

func (s *Service) GetByIDSecondary(ctx context.Context, idSecondary int64) (contactdomain.Contact, error) {
	if idSecondary == 0 {
		return contactdomain.Contact{}, contactdomain.ErrInvalidIDSecondary
	}

	existing, err := s.repo.FindByIDSecondary(ctx, s.db, idSecondary)
	if err != nil {
		return contactdomain.Contact{}, err
	}
	if existing == nil {
		return contactdomain.Contact{}, &contactdomain.NotFoundError{IDSecondary: idSecondary}
	}

	return *existing, nil
}
