package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	credentialdomain "github.com/smallbiznis/sapbridge/internal/credential/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	credentialKeyPrefix    = "sap_live_key_"
	credentialSecretPrefix = "sap_live_secret_"
	credentialSecretBytes  = 24
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  credentialdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  credentialdomain.Repository
}

func New(p Params) credentialdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("credential.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Authenticate(ctx context.Context, key, secret string) error {
	key = strings.TrimSpace(key)
	secret = strings.TrimSpace(secret)
	if key == "" || secret == "" {
		return credentialdomain.ErrMissingCredentials
	}

	credential, err := s.repo.FindActiveByPair(ctx, s.db, key, secret)
	if err != nil {
		return err
	}
	if credential == nil {
		return credentialdomain.ErrInvalidCredentials
	}

	return nil
}

func (s *Service) List(ctx context.Context) ([]credentialdomain.Response, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]credentialdomain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i]))
	}

	return resp, nil
}

func (s *Service) Create(ctx context.Context, req credentialdomain.CreateRequest) (*credentialdomain.SecretResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, credentialdomain.ErrInvalidName
	}

	key := strings.TrimSpace(req.Key)
	if key == "" {
		generated, err := generateToken(credentialKeyPrefix)
		if err != nil {
			return nil, err
		}
		key = generated
	}
	secret := strings.TrimSpace(req.Secret)
	if secret == "" {
		generated, err := generateToken(credentialSecretPrefix)
		if err != nil {
			return nil, err
		}
		secret = generated
	}

	now := time.Now().UTC()
	credential := &credentialdomain.Credential{
		ID:        s.genID.Generate(),
		Name:      name,
		Key:       key,
		Secret:    secret,
		Active:    true,
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, credential); err != nil {
		return nil, err
	}

	s.log.Info("credential created", zap.String("credential_id", credential.ID.String()), zap.String("name", name))

	return &credentialdomain.SecretResponse{
		ID:     credential.ID.String(),
		Name:   credential.Name,
		Key:    credential.Key,
		Secret: credential.Secret,
	}, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return credentialdomain.ErrInvalidID
	}

	credential, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return err
	}
	if credential == nil {
		return credentialdomain.ErrNotFound
	}

	credential.Active = false
	credential.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, s.db, credential)
}

func toResponse(credential *credentialdomain.Credential) credentialdomain.Response {
	return credentialdomain.Response{
		ID:        credential.ID.String(),
		Name:      credential.Name,
		Active:    credential.Active,
		Notes:     credential.Notes,
		CreatedAt: credential.CreatedAt,
		UpdatedAt: credential.UpdatedAt,
	}
}

func generateToken(prefix string) (string, error) {
	raw := make([]byte, credentialSecretBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return prefix + hex.EncodeToString(raw), nil
}
