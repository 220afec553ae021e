package settings

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// SettingInput is one key/value pair of a single-user update.
type SettingInput struct {
	Key   string
	Value string
}

// Validate validates one setting input entry.
func (i SettingInput) Validate() error {
	var errs []domain.FieldError

	if i.Key == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	} else if len(i.Key) > 255 {
		errs = append(errs, domain.FieldError{Field: "key", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkUpdateItem is one (user, key, value) triple of a bulk update.
type BulkUpdateItem struct {
	UserID uuid.UUID
	Key    string
	Value  string
}

// Validate validates one bulk update triple.
func (i BulkUpdateItem) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Key == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	} else if len(i.Key) > 255 {
		errs = append(errs, domain.FieldError{Field: "key", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
