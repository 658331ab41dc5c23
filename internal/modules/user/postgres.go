package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Save(ctx context.Context, u *User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	query := `
		INSERT INTO users (id, email, first_name, last_name, birth_date, address, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
		    first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    birth_date = EXCLUDED.birth_date,
		    address = EXCLUDED.address,
		    phone = EXCLUDED.phone
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Email, u.FirstName, u.LastName, u.BirthDate, u.Address, u.Phone)
	return err
}

func scanUser(scan func(...interface{}) error) (*User, error) {
	u := &User{}
	err := scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.BirthDate, &u.Address, &u.Phone)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, first_name, last_name, birth_date, address, phone
		FROM users WHERE id = $1`, id)
	u, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

func (r *postgresRepository) FindByBirthDateRange(ctx context.Context, from, to Date) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, first_name, last_name, birth_date, address, phone
		FROM users
		WHERE birth_date >= $1 AND birth_date <= $2
		ORDER BY birth_date`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
