package service

import (
	"log"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/repository"
)

// fallbackVersion is served when the app_config row is missing or the
// lookup fails; the version endpoint must never block a client.
const fallbackVersion = "1.2.0"

const versionConfigKey = "version"

type VersionService struct {
	configRepo repository.ConfigRepositoryInterface
}

func NewVersionService(configRepo repository.ConfigRepositoryInterface) *VersionService {
	return &VersionService{configRepo: configRepo}
}

// GetVersion returns the current app version string.
func (s *VersionService) GetVersion() string {
	value, err := s.configRepo.GetValue(versionConfigKey)
	if err != nil || value == "" {
		if err != nil {
			log.Printf("Version lookup failed: %v", err)
		}
		return fallbackVersion
	}
	return value
}
