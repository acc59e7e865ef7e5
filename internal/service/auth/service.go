package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/oijdod/hrms-backend-go/internal/domain/auth"
	"github.com/oijdod/hrms-backend-go/internal/domain/employee"
	"github.com/oijdod/hrms-backend-go/internal/domain/user"
	"github.com/oijdod/hrms-backend-go/internal/pkg/credentials"
	"github.com/oijdod/hrms-backend-go/internal/pkg/database"
	"github.com/oijdod/hrms-backend-go/internal/pkg/jwt"
	"github.com/oijdod/hrms-backend-go/internal/repository/postgresql"
	employeesvc "github.com/oijdod/hrms-backend-go/internal/service/employee"
)

// tempPasswordLength is the length of generated first-login passwords.
const tempPasswordLength = 12

type AuthServiceImpl struct {
	db          *database.DB
	companyCode string
	companyName string
	user.UserRepository
	employee.EmployeeRepository
	jwtService jwt.Service

	// runInTx wraps fn in a database transaction exposed through the context.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAuthService(
	db *database.DB,
	companyCode string,
	companyName string,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) auth.AuthService {
	s := &AuthServiceImpl{
		db:                 db,
		companyCode:        companyCode,
		companyName:        companyName,
		UserRepository:     userRepo,
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
	}
	s.runInTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			return fn(context.WithValue(ctx, "tx", tx))
		})
	}
	return s
}

func (a *AuthServiceImpl) userResponse(ctx context.Context, u user.User) (auth.UserResponse, error) {
	resp := auth.UserResponse{
		ID:           u.ID,
		LoginID:      u.LoginID,
		Role:         string(u.Role),
		IsFirstLogin: u.IsFirstLogin,
	}

	if u.EmployeeID != nil {
		emp, err := a.EmployeeRepository.GetByID(ctx, *u.EmployeeID)
		if err != nil {
			return auth.UserResponse{}, fmt.Errorf("failed to get employee for user: %w", err)
		}
		empResp := employeesvc.ToResponse(emp)
		resp.Employee = &empResp
	}

	return resp, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := a.UserRepository.GetByLoginID(ctx, req.LoginID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by login ID: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.LoginID, u.EmployeeID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	userResp, err := a.userResponse(ctx, u)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        userResp,
	}, nil
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}

	u, err := a.UserRepository.GetByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.UserRepository.UpdatePassword(ctx, u.ID, string(hash))
}

// initialsOf builds the login ID initials from the employee's name.
func initialsOf(firstName, lastName string) string {
	first := []rune(strings.TrimSpace(firstName))
	last := []rune(strings.TrimSpace(lastName))

	initials := ""
	if len(first) > 0 {
		initials += string(first[0])
	}
	if len(last) > 0 {
		initials += string(last[0])
	}
	return strings.ToUpper(initials)
}

// CreateEmployee implements auth.AuthService.
func (a *AuthServiceImpl) CreateEmployee(ctx context.Context, req auth.CreateEmployeeRequest) (auth.CreatedEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.CreatedEmployeeResponse{}, err
	}

	dateOfJoining, err := time.Parse("2006-01-02", req.DateOfJoining)
	if err != nil {
		return auth.CreatedEmployeeResponse{}, fmt.Errorf("failed to parse date of joining: %w", err)
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return auth.CreatedEmployeeResponse{}, fmt.Errorf("failed to parse date of birth: %w", err)
		}
		dateOfBirth = &dob
	}

	var gender *employee.Gender
	if req.Gender != nil {
		g := employee.Gender(*req.Gender)
		gender = &g
	}

	tempPassword, err := credentials.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return auth.CreatedEmployeeResponse{}, fmt.Errorf("failed to generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return auth.CreatedEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created employee.Employee
	var loginID string

	// The employee record and its user account are provisioned atomically;
	// a login ID collision rolls back both.
	err = a.runInTx(ctx, func(txCtx context.Context) error {
		serial, err := a.EmployeeRepository.NextSerialNumber(txCtx)
		if err != nil {
			return err
		}

		emp := employee.Employee{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Initials:      initialsOf(req.FirstName, req.LastName),
			Email:         req.Email,
			Phone:         req.Phone,
			DateOfBirth:   dateOfBirth,
			Gender:        gender,
			Nationality:   req.Nationality,
			Company:       a.companyName,
			Department:    req.Department,
			Position:      req.Position,
			ManagerID:     req.ManagerID,
			DateOfJoining: dateOfJoining,
			SerialNumber:  serial,
			LeaveBalances: employee.DefaultLeaveBalances(),
			IsActive:      true,
		}
		if req.Address != nil {
			emp.Address = *req.Address
		}
		if req.BankDetails != nil {
			emp.BankDetails = *req.BankDetails
		}

		created, err = a.EmployeeRepository.Create(txCtx, emp)
		if err != nil {
			return err
		}

		loginID = credentials.GenerateLoginID(a.companyCode, created.Initials, dateOfJoining.Year(), serial)

		u, err := a.UserRepository.Create(txCtx, user.User{
			LoginID:      loginID,
			PasswordHash: string(passwordHash),
			Role:         user.RoleEmployee,
			IsFirstLogin: true,
			EmployeeID:   &created.ID,
		})
		if err != nil {
			return err
		}

		return a.EmployeeRepository.SetUserID(txCtx, created.ID, u.ID)
	})
	if err != nil {
		return auth.CreatedEmployeeResponse{}, err
	}

	return auth.CreatedEmployeeResponse{
		Employee: employeesvc.ToResponse(created),
		Credentials: auth.Credentials{
			LoginID:      loginID,
			TempPassword: tempPassword,
		},
	}, nil
}

// Profile implements auth.AuthService.
func (a *AuthServiceImpl) Profile(ctx context.Context) (auth.UserResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	u, err := a.UserRepository.GetByID(ctx, claims.UserID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return a.userResponse(ctx, u)
}
