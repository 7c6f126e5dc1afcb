package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/infrastructure"
	"cuervostore/internal/app/store/repository"
	"cuervostore/internal/app/store/util"
	"cuervostore/pkg/logger"

	"github.com/google/uuid"
)

// AuthService обрабатывает бизнес-логику аутентификации:
// регистрация с подтверждением по коду, вход, сессии, профиль
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	mailer      infrastructure.MailSender
	tokens      *util.SessionTokenManager
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	mailer infrastructure.MailSender,
	tokens *util.SessionTokenManager,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		mailer:      mailer,
		tokens:      tokens,
	}
}

// Register регистрирует нового неподтверждённого пользователя.
// Email проверяется на уникальность без учёта регистра только здесь,
// в хранилище ограничения нет. Код подтверждения уходит в очередь
// уведомлений и возвращается вызывающему - реальной почты нет
func (s *AuthService) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.RegisterResponse, error) {
	// Проверяем, существует ли пользователь с таким email
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	// Хэшируем пароль
	passwordHash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token := util.NewConfirmToken()

	avatar := req.Avatar
	if avatar == "" {
		avatar = "assets/avatars/default.svg"
	}

	user := entity.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		Role:         entity.RoleBuyer,
		Avatar:       avatar,
		Career:       req.Career,
		Confirmed:    false,
		ConfirmToken: token,
		Banned:       false,
		CreatedAt:    time.Now(),
	}

	users := s.userRepo.GetAll(ctx)
	users = append(users, user)
	if err := s.userRepo.ReplaceAll(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	// Ставим письмо с кодом в очередь; пользователь уже создан,
	// поэтому сбой уведомления не отменяет регистрацию
	subject := "Confirm your account — Cuervo Store"
	body := fmt.Sprintf("Your confirmation code is: %s", token)
	if err := s.mailer.QueueMessage(ctx, user.Email, subject, body, token); err != nil {
		logger.Error().Err(err).Str("email", user.Email).Msg("failed to queue confirmation message")
	}

	return &entity.RegisterResponse{
		User:         user.Redacted(),
		ConfirmToken: token,
	}, nil
}

// ConfirmAccount подтверждает аккаунт по одноразовому коду и очищает код
func (s *AuthService) ConfirmAccount(ctx context.Context, token string) error {
	if _, err := s.userRepo.GetByConfirmToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to look up confirmation token: %w", err)
	}

	users := s.userRepo.GetAll(ctx)
	for i := range users {
		if users[i].ConfirmToken == token {
			users[i].Confirmed = true
			users[i].ConfirmToken = ""
			break
		}
	}

	if err := s.userRepo.ReplaceAll(ctx, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	return nil
}

// Login выполняет вход: проверяет учётные данные, статус подтверждения
// и бан, создает сессию с урезанной копией пользователя
func (s *AuthService) Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.Confirmed {
		return nil, ErrNotConfirmed
	}

	if user.Banned {
		return nil, ErrBanned
	}

	session := entity.Session{
		ID:        uuid.New(),
		User:      user.Redacted(),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Save(ctx, &session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	signed, err := s.tokens.Generate(&session)
	if err != nil {
		return nil, err
	}

	return &entity.LoginResponse{
		Session:      session,
		SessionToken: signed,
	}, nil
}

// Logout безусловно удаляет сессию; подписанный токен без сессии бесполезен
func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	s.sessionRepo.Delete(ctx, sessionID)
	return nil
}

// GetSession возвращает активную сессию по ID
func (s *AuthService) GetSession(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// UpdateProfile вливает непустые поля запроса в запись пользователя
// и обновляет копию в сессии
func (s *AuthService) UpdateProfile(ctx context.Context, sessionID uuid.UUID, req *entity.UpdateProfileRequest) (*entity.User, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	users := s.userRepo.GetAll(ctx)
	idx := -1
	for i := range users {
		if users[i].ID == session.User.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrUserNotFound
	}

	if req.Name != "" {
		users[idx].Name = req.Name
	}
	if req.Phone != "" {
		users[idx].Phone = req.Phone
	}
	if req.Avatar != "" {
		users[idx].Avatar = req.Avatar
	}
	if req.Career != "" {
		users[idx].Career = req.Career
	}

	if err := s.userRepo.ReplaceAll(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to save users: %w", err)
	}

	updated := users[idx].Redacted()

	session.User = updated
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}

	return &updated, nil
}
