package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"notekeep/internal/contract"
	"notekeep/internal/domain/entity"
	"notekeep/internal/utils"
	"notekeep/internal/utils/apierror"
)

type UserRepository interface {
	FindByUsername(username string) (*entity.User, error)
	Save(user *entity.User) error
}

type DefaultUserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *DefaultUserService {
	return &DefaultUserService{
		UserRepo: userRepo,
		Validate: validate,
	}
}

// Login registers the username on first sight and is a state no-op on
// every later call for the same name.
func (u *DefaultUserService) Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := u.UserRepo.FindByUsername(req.Username)
	if err != nil {
		log.Errorf("failed to fetch user: %v", err)
		return nil, apierror.InternalServerError
	}

	message := contract.MessageWelcomeBack
	if user == nil {
		user = &entity.User{
			Username:  req.Username,
			CreatedAt: utils.NowUTC(),
		}
		if err := u.UserRepo.Save(user); err != nil {
			log.Errorf("failed to create user: %v", err)
			return nil, apierror.InternalServerError
		}

		message = contract.MessageNewUser
		log.Infof("new user created: %s", user.Username)
	}

	return &contract.LoginResponse{
		Success:  true,
		Username: user.Username,
		Message:  message,
	}, nil
}
