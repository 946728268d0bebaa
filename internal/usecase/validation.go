package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
)

// ValidateOrderDraft checks that every intake field is present. The order
// form has no optional fields.
func ValidateOrderDraft(draft model.OrderDraft) error {
	required := map[string]string{
		"nama":         draft.Nama,
		"namaAplikasi": draft.NamaAplikasi,
		"keperluan":    draft.Keperluan,
		"akunTiktok":   draft.AkunTiktok,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s wajib diisi", domainErrors.ErrValidation, field)
		}
	}

	if len(draft.Teknologi) == 0 {
		return fmt.Errorf("%w: teknologi wajib diisi", domainErrors.ErrValidation)
	}
	if len(draft.Fitur) == 0 {
		return fmt.Errorf("%w: fitur wajib diisi", domainErrors.ErrValidation)
	}
	if draft.Deadline.IsZero() {
		return fmt.Errorf("%w: deadline wajib diisi", domainErrors.ErrValidation)
	}

	return nil
}
