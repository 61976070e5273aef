package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contacts-be/internal/entities"
)

// ContactRepository defines the interface for contact database operations
type ContactRepository interface {
	Create(ctx context.Context, contact *entities.Contact) (*entities.Contact, error)
	List(ctx context.Context) ([]*entities.Contact, error)
	Update(ctx context.Context, id string, changes entities.ContactChanges) (*entities.Contact, error)
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

const contactColumns = `id, first_name, last_name, email, phone_number, company, job_title, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*entities.Contact, error) {
	var contact entities.Contact
	err := row.Scan(
		&contact.ID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.PhoneNumber,
		&contact.Company,
		&contact.JobTitle,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Create inserts a new contact. A taken phone number surfaces as *DuplicateError.
func (r *contactRepository) Create(ctx context.Context, contact *entities.Contact) (*entities.Contact, error) {
	query := `
		INSERT INTO contacts (first_name, last_name, email, phone_number, company, job_title)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + contactColumns

	created, err := scanContact(r.db.QueryRowContext(ctx, query,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.PhoneNumber,
		contact.Company,
		contact.JobTitle,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", classifyError(err))
	}

	return created, nil
}

// List returns every contact in insertion order
func (r *contactRepository) List(ctx context.Context) ([]*entities.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*entities.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	return contacts, nil
}

// Update overwrites the non-nil fields of changes and returns the stored row.
// There is no read-before-write: concurrent updates are last-write-wins.
func (r *contactRepository) Update(ctx context.Context, id string, changes entities.ContactChanges) (*entities.Contact, error) {
	query := `
		UPDATE contacts
		SET first_name   = COALESCE($2, first_name),
		    last_name    = COALESCE($3, last_name),
		    email        = COALESCE($4, email),
		    phone_number = COALESCE($5, phone_number),
		    company      = COALESCE($6, company),
		    job_title    = COALESCE($7, job_title),
		    updated_at   = NOW()
		WHERE id = $1
		RETURNING ` + contactColumns

	updated, err := scanContact(r.db.QueryRowContext(ctx, query,
		id,
		changes.FirstName,
		changes.LastName,
		changes.Email,
		changes.PhoneNumber,
		changes.Company,
		changes.JobTitle,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", classifyError(err))
	}

	return updated, nil
}

// Delete removes a contact by ID
func (r *contactRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
