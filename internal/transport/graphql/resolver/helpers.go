package resolver

import (
	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

func settingPtrs(settings []domain.Setting) []*domain.Setting {
	out := make([]*domain.Setting, len(settings))
	for i := range settings {
		out[i] = &settings[i]
	}
	return out
}
