package controllers

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/requests"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	onceAuthController.Do(func() {
		instance := &AuthController{
			Log:         logger,
			AuthUsecase: authUsecase,
		}
		authControllerInstance = instance
	})
	return authControllerInstance
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	const caller = "AuthController.Signup"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	request := new(requests.Signup)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.SanitizeSignupRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		buildValidationErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.Signup(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	ctrl.Log.Info(caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, response.User.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccessMessage, response)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	const caller = "AuthController.Login"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.SanitizeLoginRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		buildValidationErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (ctrl *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	const caller = "AuthController.ForgotPassword"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	request := new(requests.ForgotPassword)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.SanitizeForgotPasswordRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		buildValidationErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.ForgotPassword(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ForgotPasswordSuccessMessage, response)
}

func (ctrl *AuthController) VerifyCode(w http.ResponseWriter, r *http.Request) {
	const caller = "AuthController.VerifyCode"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	request := new(requests.VerifyCode)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.SanitizeVerifyCodeRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		buildValidationErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.AuthUsecase.VerifyCode(ctx, request); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyCodeSuccessMessage, nil)
}

func (ctrl *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	const caller = "AuthController.ResetPassword"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	request := new(requests.ResetPassword)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.SanitizeResetPasswordRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		buildValidationErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.AuthUsecase.ResetPassword(ctx, request); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetPasswordSuccessMessage, nil)
}

func (ctrl *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	const caller = "AuthController.ChangePassword"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	request := new(requests.ChangePassword)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		buildValidationErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	userID, err := utils.ResolveUserID(r.Context(), request.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.UserID = userID

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.AuthUsecase.ChangePassword(ctx, request); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChangePasswordSuccessMessage, nil)
}
