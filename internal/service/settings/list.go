package settings

import (
	"context"
	"fmt"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// AllSettings returns every setting across all users. Never cached.
func (s *Service) AllSettings(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.settings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings.AllSettings: %w", err)
	}
	return settings, nil
}
