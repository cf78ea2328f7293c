package converter

import (
	dto "promo_backend/internal/api/dto/auth"
	"promo_backend/internal/model"
)

func RegisterRequestToAdminModel(req *dto.RegisterRequest) *model.Admin {
	return &model.Admin{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}
