package repositories

import (
	"context"
	"database/sql"
	"time"

	"travelsuzBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

const userColumns = `id, username, email, password, first_name, last_name, phone_number, avatar_path, is_staff, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.PhoneNumber, &user.AvatarPath,
		&user.IsStaff, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO users (username, email, password, first_name, last_name, phone_number, avatar_path, is_staff, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	user.CreatedAt = time.Now()
	user.UpdatedAt = &user.CreatedAt
	result, err := r.DB.ExecContext(ctx, query,
		user.Username, user.Email, user.Password, user.FirstName, user.LastName,
		user.PhoneNumber, user.AvatarPath, user.IsStaff, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, username))
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UsernameTaken reports whether another account (excluding excludeID) already
// holds the username.
func (r *UserRepository) UsernameTaken(ctx context.Context, username string, excludeID int) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE username = ? AND id != ?`
	if err := r.DB.QueryRowContext(ctx, query, username, excludeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        UPDATE users
        SET username = ?, email = ?, password = ?, first_name = ?, last_name = ?,
            phone_number = ?, avatar_path = ?, is_staff = ?, updated_at = ?
        WHERE id = ?
    `
	updatedAt := time.Now()
	user.UpdatedAt = &updatedAt
	if _, err := r.DB.ExecContext(ctx, query,
		user.Username, user.Email, user.Password, user.FirstName, user.LastName,
		user.PhoneNumber, user.AvatarPath, user.IsStaff, user.UpdatedAt, user.ID,
	); err != nil {
		return models.User{}, err
	}
	return r.GetUserByID(ctx, user.ID)
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `INSERT INTO sessions (user_id, role, refresh_token, expires_at) VALUES (?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `SELECT user_id, role, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) DeleteSessionByToken(ctx context.Context, refreshToken string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE refresh_token = ?`, refreshToken)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrSessionNotFound
	}
	return nil
}

func (r *UserRepository) DeleteSessionsByUser(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}
