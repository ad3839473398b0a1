package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/repository"
)

// SettingMarketAPIKey is the system_setting key holding the market-data API key.
const SettingMarketAPIKey = "market_api_key"

// SettingService handles system settings. When an encryption key is
// configured, sensitive values are fernet-encrypted before they reach the
// database.
type SettingService struct {
	settingRepo *repository.SettingRepository
	key         *fernet.Key // nil when encryption is not configured
}

// NewSettingService creates a new SettingService. fernetKey is a base64
// fernet key; pass empty to store sensitive values in plaintext.
func NewSettingService(settingRepo *repository.SettingRepository, fernetKey string) (*SettingService, error) {
	if fernetKey == "" {
		return &SettingService{settingRepo: settingRepo}, nil
	}

	key, err := fernet.DecodeKey(fernetKey)
	if err != nil {
		return nil, fmt.Errorf("invalid fernet key: %w", err)
	}

	return &SettingService{settingRepo: settingRepo, key: key}, nil
}

// SetMarketAPIKey stores the market-data API key, encrypted at rest when an
// encryption key is configured.
func (s *SettingService) SetMarketAPIKey(ctx context.Context, apiKey string) error {
	value := apiKey
	if s.key != nil {
		token, err := fernet.EncryptAndSign([]byte(apiKey), s.key)
		if err != nil {
			return fmt.Errorf("failed to encrypt api key: %w", err)
		}
		value = string(token)
	}

	if err := s.settingRepo.Upsert(ctx, SettingMarketAPIKey, value); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
	}

	return nil
}

// MarketAPIKey returns the stored market-data API key, or empty when none
// has been configured.
func (s *SettingService) MarketAPIKey(ctx context.Context) (string, error) {
	setting, err := s.settingRepo.Get(ctx, SettingMarketAPIKey)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
	}

	if s.key == nil {
		return setting.Value, nil
	}

	// TTL 0 disables token expiry; the key does not age out
	plain := fernet.VerifyAndDecrypt([]byte(setting.Value), 0, []*fernet.Key{s.key})
	if plain == nil {
		return "", errors.New("stored api key failed decryption")
	}

	return string(plain), nil
}
