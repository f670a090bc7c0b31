package user

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
)

// ValidateUserID rejects empty, blank and oversized user identifiers.
func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" || utf8.RuneCountInString(userID) > domain.MaxUserIDLength {
		return domain.ErrInvalidUserID
	}
	return nil
}

func validateProfile(p domain.Profile) error {
	if utf8.RuneCountInString(p.FirstName) > MaxFirstNameLength {
		return fmt.Errorf("%w: first name too long", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(p.Username) > MaxUsernameLength {
		return fmt.Errorf("%w: username too long", domain.ErrInvalidInput)
	}
	if p.PhotoURL != nil && len(*p.PhotoURL) > MaxPhotoURLLength {
		return fmt.Errorf("%w: photo url too long", domain.ErrInvalidInput)
	}
	return nil
}

func validateGrantAmount(amount int64) error {
	if amount <= 0 || amount > domain.MaxGrantAmount {
		return fmt.Errorf(ErrMsgGrantAmountFmt, amount, domain.MaxGrantAmount, domain.ErrInvalidAmount)
	}
	return nil
}
