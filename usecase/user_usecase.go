package usecase

import (
	"context"
	"crypto/md5"
	"fmt"
	"os"
	"time"

	"walkingtube/domain/dto"
	"walkingtube/domain/model"
	"walkingtube/domain/repository"
	"walkingtube/infrastructure/configuration"
	"walkingtube/infrastructure/logger"
	"walkingtube/infrastructure/utils"
)

type IUserUsecase interface {
	Login(ctx context.Context, req model.ReqLogin) dto.Res
	Register(ctx context.Context, req model.ReqRegister) dto.Res
}

type userUsecase struct {
	userRepo repository.IUser
}

func NewUserUsecase(userRepo repository.IUser) IUserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) Login(ctx context.Context, req model.ReqLogin) dto.Res {
	var res dto.Res
	res.ResponseCode = "401"
	res.ResponseMessage = "Invalid username or password"

	user, err := u.userRepo.GetByUserName(ctx, req.UserName)
	if err != nil {
		logger.GetLogger().WithField("userName", req.UserName).Info("Login attempt for unknown user")
		return res
	}

	hashed := fmt.Sprintf("%x", md5.Sum([]byte(req.Password)))
	if user.Password != hashed {
		return res
	}

	token, err := utils.GenerateToken(map[string]interface{}{
		"iss":       user.ID,
		"user_name": user.UserName,
		"iat":       utils.GetCurrentTime().Unix(),
		"exp":       utils.GetCurrentTime().Add(24 * time.Hour).Unix(),
	}, secretKey())
	if err != nil {
		res.ResponseCode = "500"
		res.ResponseMessage = "Error while generating token"
		return res
	}

	res.ResponseCode = "200"
	res.ResponseMessage = "Success"
	res.Data = map[string]interface{}{
		"accessToken": token,
		"user": map[string]interface{}{
			"id":       user.ID,
			"name":     user.Name,
			"userName": user.UserName,
		},
	}
	return res
}

func (u *userUsecase) Register(ctx context.Context, req model.ReqRegister) dto.Res {
	var res dto.Res

	if _, err := u.userRepo.GetByUserName(ctx, req.UserName); err == nil {
		res.ResponseCode = "409"
		res.ResponseMessage = "Username is already taken"
		return res
	}

	user := model.User{
		Name:     req.Name,
		UserName: req.UserName,
		Password: req.Password,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating user")
		res.ResponseCode = "500"
		res.ResponseMessage = "Error while creating user"
		return res
	}

	res.ResponseCode = "201"
	res.ResponseMessage = "Success"
	return res
}

func secretKey() string {
	if key := os.Getenv("SECRET_KEY"); key != "" {
		return key
	}
	return configuration.C.App.SecretKey
}
