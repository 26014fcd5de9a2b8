package repositories

import (
	"context"
	"time"

	"github.com/Den-0786/ypg-website-sub003/internal/database"
	"github.com/Den-0786/ypg-website-sub003/internal/models"
)

// CredentialRepository handles database access to the singleton admin
// credential row.
type CredentialRepository struct {
	db *database.DB
}

// NewCredentialRepository creates a new CredentialRepository
func NewCredentialRepository(db *database.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Get fetches the admin credential, or models.ErrNotFound when the row
// (or the table itself) has never been provisioned.
func (r *CredentialRepository) Get(ctx context.Context) (*models.AdminCredential, error) {
	query := `
		SELECT id, username, password_hash, updated_at
		FROM admin_credentials
		WHERE id = $1
	`

	var cred models.AdminCredential
	err := r.db.Pool.QueryRow(ctx, query, models.AdminCredentialID).Scan(
		&cred.ID,
		&cred.Username,
		&cred.PasswordHash,
		&cred.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &cred, nil
}

// Create provisions the singleton credential row. Fails with
// models.ErrConflict if one already exists.
func (r *CredentialRepository) Create(ctx context.Context, username, passwordHash string) error {
	query := `
		INSERT INTO admin_credentials (id, username, password_hash, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Pool.Exec(ctx, query, models.AdminCredentialID, username, passwordHash, time.Now())
	return database.MapPostgresError(err)
}

// Update rotates the stored username and password hash
func (r *CredentialRepository) Update(ctx context.Context, username, passwordHash string) error {
	query := `
		UPDATE admin_credentials
		SET username = $2, password_hash = $3, updated_at = $4
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, models.AdminCredentialID, username, passwordHash, time.Now())
	if err != nil {
		return database.MapPostgresError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
