package mapper

import (
	"taskhive/internal/adapter/http/dto"
	"taskhive/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:       user.ID,
		Username: user.Username,
	}
}
