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

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase contracts.ProfileUsecase
}

var (
	profileControllerInstance *ProfileController
	onceProfileController     sync.Once
)

func NewProfileController(logger *zap.Logger, profileUsecase contracts.ProfileUsecase) *ProfileController {
	onceProfileController.Do(func() {
		instance := &ProfileController{
			Log:            logger,
			ProfileUsecase: profileUsecase,
		}
		profileControllerInstance = instance
	})
	return profileControllerInstance
}

func (ctrl *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	const caller = "ProfileController.GetProfile"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	userID, err := utils.ResolveQueryUserID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	profile, err := ctrl.ProfileUsecase.GetProfile(ctx, userID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, profile)
}

func (ctrl *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	const caller = "ProfileController.UpdateProfile"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	request := new(requests.UpdateProfile)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.SanitizeUpdateProfileRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		buildValidationErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	userID, err := resolveBodyUserID(r, request.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.UserID = userID

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	profile, err := ctrl.ProfileUsecase.UpdateProfile(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, profile)
}

func (ctrl *ProfileController) GetSettings(w http.ResponseWriter, r *http.Request) {
	const caller = "ProfileController.GetSettings"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	userID, err := utils.ResolveQueryUserID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	settings, err := ctrl.ProfileUsecase.GetSettings(ctx, userID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSettingsSuccessMessage, settings)
}

func (ctrl *ProfileController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	const caller = "ProfileController.UpdateSettings"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	request := new(requests.UpdateSettings)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.SanitizeUpdateSettingsRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		buildValidationErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	userID, err := resolveBodyUserID(r, request.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.UserID = userID

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	settings, err := ctrl.ProfileUsecase.UpdateSettings(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSettingsSuccessMessage, settings)
}

// resolveBodyUserID prefers the userId query parameter and falls back to the
// one sent in the body.
func resolveBodyUserID(r *http.Request, bodyUserID string) (string, error) {
	requested := r.URL.Query().Get(constvars.URLQueryParamUserID)
	if requested == "" {
		requested = bodyUserID
	}
	return utils.ResolveUserID(r.Context(), requested)
}
