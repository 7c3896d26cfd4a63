package auth

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/shared/jwtmanager"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/requests"
	"afiatrack-service/internal/pkg/dto/responses"
	"afiatrack-service/internal/pkg/exceptions"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	Stores         *recordstore.Stores
	JWTManager     *jwtmanager.JWTManager
	MailerService  contracts.MailerService
	RateLimiter    contracts.RateLimiter
	Seeder         contracts.Seeder
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

// NewAuthUsecase wires the account flows. seeder may be nil to skip demo
// data on signup.
func NewAuthUsecase(
	stores *recordstore.Stores,
	jwtManager *jwtmanager.JWTManager,
	mailerService contracts.MailerService,
	rateLimiter contracts.RateLimiter,
	seeder contracts.Seeder,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = newAuthUsecase(stores, jwtManager, mailerService, rateLimiter, seeder, internalConfig, logger)
	})
	return authUsecaseInstance
}

func newAuthUsecase(
	stores *recordstore.Stores,
	jwtManager *jwtmanager.JWTManager,
	mailerService contracts.MailerService,
	rateLimiter contracts.RateLimiter,
	seeder contracts.Seeder,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *authUsecase {
	return &authUsecase{
		Stores:         stores,
		JWTManager:     jwtManager,
		MailerService:  mailerService,
		RateLimiter:    rateLimiter,
		Seeder:         seeder,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, err := uc.Stores.Users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if strings.EqualFold(user.Email, request.Email) {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		if strings.EqualFold(user.Username, request.Username) {
			return nil, exceptions.ErrUsernameAlreadyExist(nil)
		}
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := uc.now()
	userID := utils.GenerateRecordID()
	credentials := &models.UserCredentials{
		RecordBase: models.RecordBase{ID: userID, UserID: userID},
		Username:   request.Username,
		Email:      request.Email,
		Password:   hashedPassword,
		TimeModel:  models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	credentials, err = uc.Stores.Users.Create(ctx, userID, credentials)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		RecordBase: models.RecordBase{ID: userID, UserID: userID},
		Name:       request.Username,
		Email:      request.Email,
		Allergies:  []string{},
		Conditions: []string{},
		TimeModel:  models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if _, err := uc.Stores.Profiles.Create(ctx, userID, profile); err != nil {
		return nil, err
	}

	if _, err := uc.Stores.Settings.Create(ctx, userID, models.DefaultUserSettings(userID)); err != nil {
		return nil, err
	}

	if uc.Seeder != nil {
		err = uc.Seeder.SeedUser(ctx, userID)
		if err != nil {
			uc.Log.Error("authUsecase.Signup error seeding demo data",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, userID),
				zap.Error(err),
			)
		}
	}

	session, err := uc.buildSession(ctx, credentials)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return session, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, err := uc.Stores.Users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Email != request.EmailOrUsername && user.Username != request.EmailOrUsername {
			continue
		}
		if !utils.CheckPasswordHash(request.Password, user.Password) {
			continue
		}

		uc.Log.Info("authUsecase.Login succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
		)
		return uc.buildSession(ctx, user)
	}

	return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
}

// ForgotPassword issues a fresh reset code, replacing any earlier one, and
// hands it to the mailer queue.
func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (*responses.ForgotPassword, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.Method),
	)

	identifier := request.Email
	if identifier == "" {
		identifier = request.Phone
	}

	allowed, err := uc.RateLimiter.Allow(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, exceptions.ErrTooManyRequests(nil, identifier)
	}

	user, phone, err := uc.findUserForReset(ctx, request)
	if err != nil {
		return nil, err
	}

	code, err := utils.GenerateOTP(constvars.VerificationCodeLength)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	now := uc.now()
	expiresAt := now.Add(time.Duration(uc.InternalConfig.App.ForgotPasswordCodeExpiredTimeInMinutes) * time.Minute)
	verificationCode := &models.VerificationCode{
		RecordBase: models.RecordBase{ID: models.VerificationCodeID(user.ID, constvars.VerificationCodeTypeReset)},
		Code:       code,
		Type:       constvars.VerificationCodeTypeReset,
		ExpiresAt:  expiresAt,
		CreatedAt:  now,
	}
	if _, err := recordstore.Upsert(ctx, uc.Stores.VerificationCodes, user.ID, verificationCode); err != nil {
		return nil, err
	}

	uc.deliverResetCode(ctx, request.Method, user, phone, code, expiresAt)

	response := &responses.ForgotPassword{
		Method:    request.Method,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}
	if uc.InternalConfig.App.ExposeResetCode {
		response.Code = code
	}

	uc.Log.Info("authUsecase.ForgotPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return response, nil
}

func (uc *authUsecase) VerifyCode(ctx context.Context, request *requests.VerifyCode) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.VerifyCode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.findUserByEmail(ctx, request.Email)
	if err != nil {
		return err
	}

	_, err = uc.checkResetCode(ctx, user.ID, request.Code)
	return err
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.findUserByEmail(ctx, request.Email)
	if err != nil {
		return err
	}

	verificationCode, err := uc.checkResetCode(ctx, user.ID, request.Code)
	if err != nil {
		return err
	}

	err = uc.updatePassword(ctx, user, request.NewPassword)
	if err != nil {
		return err
	}

	_, err = uc.Stores.VerificationCodes.Delete(ctx, user.ID, verificationCode.ID)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) ChangePassword(ctx context.Context, request *requests.ChangePassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ChangePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	user, ok, err := recordstore.Find(ctx, uc.Stores.Users, request.UserID, request.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return exceptions.ErrUserNotExist(nil)
	}

	if !utils.CheckPasswordHash(request.CurrentPassword, user.Password) {
		return exceptions.ErrInvalidCurrentPassword(nil)
	}

	err = uc.updatePassword(ctx, user, request.NewPassword)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.ChangePassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) buildSession(ctx context.Context, user *models.UserCredentials) (*responses.Session, error) {
	token, err := uc.JWTManager.CreateToken(ctx, &jwtmanager.CreateTokenInput{Subject: user.ID})
	if err != nil {
		return nil, err
	}

	return &responses.Session{
		User: responses.User{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		Token: token.Token,
	}, nil
}

func (uc *authUsecase) findUserByEmail(ctx context.Context, email string) (*models.UserCredentials, error) {
	users, err := uc.Stores.Users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, exceptions.ErrUserNotExist(nil)
}

// findUserForReset resolves the account by email, or by the phone number on
// its profile. The returned phone is the sms destination.
func (uc *authUsecase) findUserForReset(ctx context.Context, request *requests.ForgotPassword) (*models.UserCredentials, string, error) {
	if request.Email != "" {
		user, err := uc.findUserByEmail(ctx, request.Email)
		if err != nil {
			return nil, "", err
		}
		return user, uc.profilePhone(ctx, user.ID), nil
	}

	profiles, err := uc.Stores.Profiles.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	for _, profile := range profiles {
		if profile.Phone == "" || profile.Phone != request.Phone {
			continue
		}
		user, ok, err := recordstore.Find(ctx, uc.Stores.Users, profile.UserID, profile.UserID)
		if err != nil {
			return nil, "", err
		}
		if ok {
			return user, profile.Phone, nil
		}
	}
	return nil, "", exceptions.ErrUserNotExist(nil)
}

func (uc *authUsecase) profilePhone(ctx context.Context, userID string) string {
	profile, ok, err := recordstore.Find(ctx, uc.Stores.Profiles, userID, userID)
	if err != nil || !ok {
		return ""
	}
	return profile.Phone
}

// checkResetCode compares code with the stored reset code of userID. A wrong
// code is reported before expiry.
func (uc *authUsecase) checkResetCode(ctx context.Context, userID, code string) (*models.VerificationCode, error) {
	id := models.VerificationCodeID(userID, constvars.VerificationCodeTypeReset)
	verificationCode, ok, err := recordstore.Find(ctx, uc.Stores.VerificationCodes, userID, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, exceptions.ErrVerificationCodeNotIssued(nil, userID)
	}

	if verificationCode.Code != code {
		return nil, exceptions.ErrVerificationCodeInvalid(nil)
	}
	if verificationCode.IsExpired(uc.now()) {
		return nil, exceptions.ErrVerificationCodeExpired(nil, verificationCode.ExpiresAt.Format(time.RFC3339))
	}
	return verificationCode, nil
}

func (uc *authUsecase) updatePassword(ctx context.Context, user *models.UserCredentials, newPassword string) error {
	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	user.Password = hashedPassword
	user.UpdatedAt = uc.now()
	_, err = uc.Stores.Users.Update(ctx, user.ID, user)
	return err
}

// deliverResetCode is best effort; the code stays valid when the queue is
// unreachable.
func (uc *authUsecase) deliverResetCode(ctx context.Context, method string, user *models.UserCredentials, phone, code string, expiresAt time.Time) {
	var err error
	switch method {
	case constvars.ForgotPasswordMethodSMS:
		if phone == "" {
			err = errors.New("no phone number on profile")
			break
		}
		err = uc.MailerService.SendSMS(ctx, &requests.SMSPayload{
			To:   phone,
			Body: fmt.Sprintf(constvars.SMSBodyResetPassword, code),
		})
	default:
		err = uc.MailerService.SendEmail(ctx, &requests.EmailPayload{
			Subject:  constvars.EmailForgotPasswordSubjectMessage,
			From:     uc.InternalConfig.Mailer.EmailSender,
			To:       []string{user.Email},
			HTMLCode: fmt.Sprintf(constvars.EmailBodyResetPassword, code, expiresAt.Format(time.RFC1123)),
		})
	}

	if err != nil {
		uc.Log.Warn("authUsecase.ForgotPassword could not deliver code",
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.Error(err),
		)
	}
}
